package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ActiveOnly restricts a query to rows that have not been soft-deleted.
// Every lookup, existence check and listing goes through it so that "exists"
// and "get" can never disagree about what counts as a live row.
func ActiveOnly(db *gorm.DB) *gorm.DB {
	return db.Where("active = ?", true)
}

// IsNotFound reports whether err is gorm's missing-row error
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

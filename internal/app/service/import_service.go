package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/uncode/videojuegos/internal/app/repository"
	apperrors "github.com/uncode/videojuegos/internal/errors"
	"github.com/uncode/videojuegos/pkg/logger"
	"gorm.io/gorm"
)

// ImportRow is one spreadsheet line with its cells still as text.
// Category and Studio hold names, not identifiers.
type ImportRow struct {
	Line        int
	Name        string
	ImagePath   string
	Price       string
	Quantity    string
	Description string
	OnOffer     string
	ReleaseDate string
	Category    string
	Studio      string
}

type SkippedRow struct {
	Line   int    `json:"line"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

type ImportResult struct {
	Created int          `json:"created"`
	Skipped []SkippedRow `json:"skipped"`
}

type ImportService interface {
	ImportGames(rows []ImportRow) (*ImportResult, error)
}

type importService struct {
	db    *gorm.DB
	cache ListCache
}

// NewImportService imports through database. Each row runs in its own
// transaction, so a skipped row leaves no category or studio behind.
func NewImportService(database *gorm.DB, cache ...ListCache) ImportService {
	return &importService{
		db:    database,
		cache: pickCache(cache),
	}
}

// ImportGames creates one game per row. Rows rejected with a domain message
// are reported as skipped; an operation failure aborts the import.
func (s *importService) ImportGames(rows []ImportRow) (*ImportResult, error) {
	result := &ImportResult{Skipped: []SkippedRow{}}
	// Listings are dropped once the rows are committed, never from inside a
	// transaction that may still roll back.
	defer func() {
		if result.Created > 0 {
			invalidate(s.cache, CacheKeyCategories, CacheKeyStudios, CacheKeyGames)
		}
	}()

	for _, row := range rows {
		err := s.db.Transaction(func(tx *gorm.DB) error {
			return newRowImporter(tx).importRow(row)
		})
		if err == nil {
			result.Created++
			continue
		}
		if apperrors.IsUnexpected(err) {
			logger.Error("Import aborted", err, map[string]interface{}{
				"line":    row.Line,
				"created": result.Created,
			})
			return result, err
		}

		logger.Warn("Import row skipped", map[string]interface{}{
			"line":   row.Line,
			"name":   row.Name,
			"reason": err.Error(),
		})
		result.Skipped = append(result.Skipped, SkippedRow{
			Line:   row.Line,
			Name:   row.Name,
			Reason: err.Error(),
		})
	}

	logger.Info("Import finished", map[string]interface{}{
		"created": result.Created,
		"skipped": len(result.Skipped),
	})
	return result, nil
}

// rowImporter runs the catalogue services against one transaction
type rowImporter struct {
	categories CategoryService
	studios    StudioService
	games      GameService
}

func newRowImporter(tx *gorm.DB) *rowImporter {
	categories := NewCategoryService(repository.NewCategoryRepository(tx))
	studios := NewStudioService(repository.NewStudioRepository(tx))
	return &rowImporter{
		categories: categories,
		studios:    studios,
		games:      NewGameService(repository.NewGameRepository(tx), categories, studios),
	}
}

func (r *rowImporter) importRow(row ImportRow) error {
	price, err := ParsePrice(row.Price)
	if err != nil {
		return err
	}
	quantity, err := ParseQuantity(row.Quantity)
	if err != nil {
		return err
	}
	releaseDate, err := ParseReleaseDate(row.ReleaseDate)
	if err != nil {
		return err
	}

	categoryID, err := r.categoryID(row.Category)
	if err != nil {
		return err
	}
	studioID, err := r.studioID(row.Studio)
	if err != nil {
		return err
	}

	_, err = r.games.CreateGame(GameInput{
		Name:        row.Name,
		ImagePath:   row.ImagePath,
		Price:       price,
		Quantity:    quantity,
		Description: row.Description,
		OnOffer:     ParseOffer(row.OnOffer),
		ReleaseDate: releaseDate,
		CategoryID:  categoryID,
		StudioID:    studioID,
	})
	return err
}

func (r *rowImporter) categoryID(name string) (uuid.UUID, error) {
	category, err := r.categories.GetCategoryByName(name)
	if err == nil {
		return category.ID, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return uuid.Nil, err
	}
	return r.categories.CreateCategory(strings.TrimSpace(name))
}

func (r *rowImporter) studioID(name string) (uuid.UUID, error) {
	studio, err := r.studios.GetStudioByName(name)
	if err == nil {
		return studio.ID, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return uuid.Nil, err
	}
	return r.studios.CreateStudio(strings.TrimSpace(name))
}

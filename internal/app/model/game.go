package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Game struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null;index" json:"name"`
	ImagePath   string    `gorm:"not null" json:"image_path"`
	Price       float64   `gorm:"not null" json:"price"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	Description string    `gorm:"type:text;not null" json:"description"`
	OnOffer     bool      `gorm:"not null" json:"on_offer"`
	ReleaseDate time.Time `gorm:"type:date;not null" json:"release_date"`
	Active      bool      `gorm:"not null;index" json:"active"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index" json:"category_id"`
	StudioID    uuid.UUID `gorm:"type:uuid;not null;index" json:"studio_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	Category Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category"`
	Studio   Studio   `gorm:"foreignKey:StudioID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"studio"`
}

func (Game) TableName() string {
	return "games"
}

func (g *Game) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

package repository

import (
	"github.com/google/uuid"
	"github.com/uncode/videojuegos/internal/app/model"
	"github.com/uncode/videojuegos/pkg/logger"
	"gorm.io/gorm"
)

type StudioRepository interface {
	Create(studio *model.Studio) error
	Update(studio *model.Studio) error
	FindActive() ([]model.Studio, error)
	FindActiveByID(id uuid.UUID) (*model.Studio, error)
	FindActiveByName(name string) (*model.Studio, error)
	ExistsActiveByName(name string) (bool, error)
	ExistsActiveByNameExcludingID(id uuid.UUID, name string) (bool, error)
}

type studioRepository struct {
	db *gorm.DB
}

func NewStudioRepository(db *gorm.DB) StudioRepository {
	return &studioRepository{db: db}
}

func (r *studioRepository) Create(studio *model.Studio) error {
	logger.Debug("Creating studio in database", map[string]interface{}{
		"name": studio.Name,
	})

	if err := r.db.Create(studio).Error; err != nil {
		logger.Error("Failed to create studio in database", err, map[string]interface{}{
			"name": studio.Name,
		})
		return err
	}
	return nil
}

func (r *studioRepository) Update(studio *model.Studio) error {
	logger.Debug("Updating studio in database", map[string]interface{}{
		"studio_id": studio.ID,
		"name":        studio.Name,
		"active":      studio.Active,
	})

	if err := r.db.Save(studio).Error; err != nil {
		logger.Error("Failed to update studio in database", err, map[string]interface{}{
			"studio_id": studio.ID,
		})
		return err
	}
	return nil
}

func (r *studioRepository) FindActive() ([]model.Studio, error) {
	var studios []model.Studio
	if err := r.db.Scopes(ActiveOnly).Order("name ASC").Find(&studios).Error; err != nil {
		logger.Error("Failed to list active studios", err)
		return nil, err
	}

	logger.Debug("Active studios listed", map[string]interface{}{
		"count": len(studios),
	})
	return studios, nil
}

func (r *studioRepository) FindActiveByID(id uuid.UUID) (*model.Studio, error) {
	var studio model.Studio
	if err := r.db.Scopes(ActiveOnly).Where("id = ?", id).First(&studio).Error; err != nil {
		if !IsNotFound(err) {
			logger.Error("Failed to find studio by ID", err, map[string]interface{}{
				"studio_id": id,
			})
		}
		return nil, err
	}
	return &studio, nil
}

func (r *studioRepository) FindActiveByName(name string) (*model.Studio, error) {
	var studio model.Studio
	if err := r.db.Scopes(ActiveOnly).Where("name = ?", name).First(&studio).Error; err != nil {
		if !IsNotFound(err) {
			logger.Error("Failed to find studio by name", err, map[string]interface{}{
				"name": name,
			})
		}
		return nil, err
	}
	return &studio, nil
}

func (r *studioRepository) ExistsActiveByName(name string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Studio{}).Scopes(ActiveOnly).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		logger.Error("Failed to check studio name", err, map[string]interface{}{
			"name": name,
		})
		return false, err
	}
	return count > 0, nil
}

func (r *studioRepository) ExistsActiveByNameExcludingID(id uuid.UUID, name string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Studio{}).Scopes(ActiveOnly).
		Where("name = ? AND id <> ?", name, id).
		Count(&count).Error; err != nil {
		logger.Error("Failed to check studio name", err, map[string]interface{}{
			"studio_id": id,
			"name":        name,
		})
		return false, err
	}
	return count > 0, nil
}

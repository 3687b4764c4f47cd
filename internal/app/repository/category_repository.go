package repository

import (
	"github.com/google/uuid"
	"github.com/uncode/videojuegos/internal/app/model"
	"github.com/uncode/videojuegos/pkg/logger"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *model.Category) error
	Update(category *model.Category) error
	FindActive() ([]model.Category, error)
	FindActiveByID(id uuid.UUID) (*model.Category, error)
	FindActiveByName(name string) (*model.Category, error)
	ExistsActiveByName(name string) (bool, error)
	ExistsActiveByNameExcludingID(id uuid.UUID, name string) (bool, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *model.Category) error {
	logger.Debug("Creating category in database", map[string]interface{}{
		"name": category.Name,
	})

	if err := r.db.Create(category).Error; err != nil {
		logger.Error("Failed to create category in database", err, map[string]interface{}{
			"name": category.Name,
		})
		return err
	}
	return nil
}

// Update writes every column, including Active, so it also carries soft deletes
func (r *categoryRepository) Update(category *model.Category) error {
	logger.Debug("Updating category in database", map[string]interface{}{
		"category_id": category.ID,
		"name":        category.Name,
		"active":      category.Active,
	})

	if err := r.db.Save(category).Error; err != nil {
		logger.Error("Failed to update category in database", err, map[string]interface{}{
			"category_id": category.ID,
		})
		return err
	}
	return nil
}

func (r *categoryRepository) FindActive() ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.Scopes(ActiveOnly).Order("name ASC").Find(&categories).Error; err != nil {
		logger.Error("Failed to list active categories", err)
		return nil, err
	}

	logger.Debug("Active categories listed", map[string]interface{}{
		"count": len(categories),
	})
	return categories, nil
}

func (r *categoryRepository) FindActiveByID(id uuid.UUID) (*model.Category, error) {
	var category model.Category
	if err := r.db.Scopes(ActiveOnly).Where("id = ?", id).First(&category).Error; err != nil {
		if !IsNotFound(err) {
			logger.Error("Failed to find category by ID", err, map[string]interface{}{
				"category_id": id,
			})
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindActiveByName(name string) (*model.Category, error) {
	var category model.Category
	if err := r.db.Scopes(ActiveOnly).Where("name = ?", name).First(&category).Error; err != nil {
		if !IsNotFound(err) {
			logger.Error("Failed to find category by name", err, map[string]interface{}{
				"name": name,
			})
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) ExistsActiveByName(name string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Category{}).Scopes(ActiveOnly).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		logger.Error("Failed to check category name", err, map[string]interface{}{
			"name": name,
		})
		return false, err
	}
	return count > 0, nil
}

func (r *categoryRepository) ExistsActiveByNameExcludingID(id uuid.UUID, name string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Category{}).Scopes(ActiveOnly).
		Where("name = ? AND id <> ?", name, id).
		Count(&count).Error; err != nil {
		logger.Error("Failed to check category name", err, map[string]interface{}{
			"category_id": id,
			"name":        name,
		})
		return false, err
	}
	return count > 0, nil
}

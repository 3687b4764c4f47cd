package service

import (
	"strings"

	"github.com/google/uuid"
	"github.com/uncode/videojuegos/internal/app/model"
	"github.com/uncode/videojuegos/internal/app/repository"
	apperrors "github.com/uncode/videojuegos/internal/errors"
	"github.com/uncode/videojuegos/pkg/logger"
)

type CategoryService interface {
	CreateCategory(name string) (uuid.UUID, error)
	UpdateCategory(id uuid.UUID, name string) error
	DeleteCategory(id uuid.UUID) error
	ListCategories() ([]model.Category, error)
	GetCategory(id uuid.UUID) (*model.Category, error)
	GetCategoryByName(name string) (*model.Category, error)
	RefreshCache() error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	cache        ListCache
}

func NewCategoryService(categoryRepo repository.CategoryRepository, cache ...ListCache) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		cache:        pickCache(cache),
	}
}

func (s *categoryService) validate(name string) error {
	if isBlank(name) {
		return apperrors.Validation(apperrors.BlankMessage(apperrors.EntityCategory, "nombre"))
	}
	return nil
}

func (s *categoryService) CreateCategory(name string) (uuid.UUID, error) {
	if err := s.validate(name); err != nil {
		return uuid.Nil, err
	}
	name = strings.TrimSpace(name)

	exists, err := s.categoryRepo.ExistsActiveByName(name)
	if err != nil {
		return uuid.Nil, operationFailed("Failed to check category name", err, map[string]interface{}{
			"name": name,
		})
	}
	if exists {
		logger.Warn("Category name already taken", map[string]interface{}{
			"name": name,
		})
		return uuid.Nil, apperrors.Conflict(apperrors.ExistsMessage(apperrors.EntityCategory, "nombre", name))
	}

	category := &model.Category{Name: name, Active: true}
	if err := s.categoryRepo.Create(category); err != nil {
		return uuid.Nil, operationFailed("Failed to create category", err, map[string]interface{}{
			"name": name,
		})
	}

	invalidate(s.cache, CacheKeyCategories)
	logger.Info("Category created", map[string]interface{}{
		"category_id": category.ID,
		"name":        category.Name,
	})
	return category.ID, nil
}

func (s *categoryService) UpdateCategory(id uuid.UUID, name string) error {
	if err := s.validate(name); err != nil {
		return err
	}
	name = strings.TrimSpace(name)

	taken, err := s.categoryRepo.ExistsActiveByNameExcludingID(id, name)
	if err != nil {
		return operationFailed("Failed to check category name", err, map[string]interface{}{
			"category_id": id,
			"name":        name,
		})
	}
	if taken {
		logger.Warn("Category name already taken", map[string]interface{}{
			"category_id": id,
			"name":        name,
		})
		return apperrors.Conflict(apperrors.ExistsMessage(apperrors.EntityCategory, "nombre", name))
	}

	category, err := s.findActive(id)
	if err != nil {
		return err
	}

	category.Name = name
	if err := s.categoryRepo.Update(category); err != nil {
		return operationFailed("Failed to update category", err, map[string]interface{}{
			"category_id": id,
		})
	}

	// Games embed their category in the cached game listing.
	invalidate(s.cache, CacheKeyCategories, CacheKeyGames)
	logger.Info("Category updated", map[string]interface{}{
		"category_id": id,
		"name":        name,
	})
	return nil
}

func (s *categoryService) DeleteCategory(id uuid.UUID) error {
	category, err := s.findActive(id)
	if err != nil {
		return err
	}

	category.Active = false
	if err := s.categoryRepo.Update(category); err != nil {
		return operationFailed("Failed to delete category", err, map[string]interface{}{
			"category_id": id,
		})
	}

	invalidate(s.cache, CacheKeyCategories, CacheKeyGames)
	logger.Info("Category deleted", map[string]interface{}{
		"category_id": id,
	})
	return nil
}

func (s *categoryService) ListCategories() ([]model.Category, error) {
	return cachedList(s.cache, CacheKeyCategories, func() ([]model.Category, error) {
		categories, err := s.categoryRepo.FindActive()
		if err != nil {
			return nil, operationFailed("Failed to list categories", err, nil)
		}
		return categories, nil
	})
}

func (s *categoryService) GetCategory(id uuid.UUID) (*model.Category, error) {
	return s.findActive(id)
}

func (s *categoryService) GetCategoryByName(name string) (*model.Category, error) {
	category, err := s.categoryRepo.FindActiveByName(strings.TrimSpace(name))
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.EntityCategory)
		}
		return nil, operationFailed("Failed to fetch category by name", err, map[string]interface{}{
			"name": name,
		})
	}
	return category, nil
}

func (s *categoryService) RefreshCache() error {
	invalidate(s.cache, CacheKeyCategories)
	_, err := s.ListCategories()
	return err
}

func (s *categoryService) findActive(id uuid.UUID) (*model.Category, error) {
	category, err := s.categoryRepo.FindActiveByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			logger.Warn("Category not found", map[string]interface{}{
				"category_id": id,
			})
			return nil, apperrors.NotFound(apperrors.EntityCategory)
		}
		return nil, operationFailed("Failed to fetch category", err, map[string]interface{}{
			"category_id": id,
		})
	}
	return category, nil
}

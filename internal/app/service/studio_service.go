package service

import (
	"strings"

	"github.com/google/uuid"
	"github.com/uncode/videojuegos/internal/app/model"
	"github.com/uncode/videojuegos/internal/app/repository"
	apperrors "github.com/uncode/videojuegos/internal/errors"
	"github.com/uncode/videojuegos/pkg/logger"
)

type StudioService interface {
	CreateStudio(name string) (uuid.UUID, error)
	UpdateStudio(id uuid.UUID, name string) error
	DeleteStudio(id uuid.UUID) error
	ListStudios() ([]model.Studio, error)
	GetStudio(id uuid.UUID) (*model.Studio, error)
	GetStudioByName(name string) (*model.Studio, error)
	RefreshCache() error
}

type studioService struct {
	studioRepo repository.StudioRepository
	cache      ListCache
}

func NewStudioService(studioRepo repository.StudioRepository, cache ...ListCache) StudioService {
	return &studioService{
		studioRepo: studioRepo,
		cache:      pickCache(cache),
	}
}

func (s *studioService) validate(name string) error {
	if isBlank(name) {
		return apperrors.Validation(apperrors.BlankMessage(apperrors.EntityStudio, "nombre"))
	}
	return nil
}

func (s *studioService) CreateStudio(name string) (uuid.UUID, error) {
	if err := s.validate(name); err != nil {
		return uuid.Nil, err
	}
	name = strings.TrimSpace(name)

	exists, err := s.studioRepo.ExistsActiveByName(name)
	if err != nil {
		return uuid.Nil, operationFailed("Failed to check studio name", err, map[string]interface{}{
			"name": name,
		})
	}
	if exists {
		logger.Warn("Studio name already taken", map[string]interface{}{
			"name": name,
		})
		return uuid.Nil, apperrors.Conflict(apperrors.ExistsMessage(apperrors.EntityStudio, "nombre", name))
	}

	studio := &model.Studio{Name: name, Active: true}
	if err := s.studioRepo.Create(studio); err != nil {
		return uuid.Nil, operationFailed("Failed to create studio", err, map[string]interface{}{
			"name": name,
		})
	}

	invalidate(s.cache, CacheKeyStudios)
	logger.Info("Studio created", map[string]interface{}{
		"studio_id": studio.ID,
		"name":      studio.Name,
	})
	return studio.ID, nil
}

func (s *studioService) UpdateStudio(id uuid.UUID, name string) error {
	if err := s.validate(name); err != nil {
		return err
	}
	name = strings.TrimSpace(name)

	taken, err := s.studioRepo.ExistsActiveByNameExcludingID(id, name)
	if err != nil {
		return operationFailed("Failed to check studio name", err, map[string]interface{}{
			"studio_id": id,
			"name":      name,
		})
	}
	if taken {
		logger.Warn("Studio name already taken", map[string]interface{}{
			"studio_id": id,
			"name":      name,
		})
		return apperrors.Conflict(apperrors.ExistsMessage(apperrors.EntityStudio, "nombre", name))
	}

	studio, err := s.findActive(id)
	if err != nil {
		return err
	}

	studio.Name = name
	if err := s.studioRepo.Update(studio); err != nil {
		return operationFailed("Failed to update studio", err, map[string]interface{}{
			"studio_id": id,
		})
	}

	// The cached game listing embeds each game's studio.
	invalidate(s.cache, CacheKeyStudios, CacheKeyGames)
	logger.Info("Studio updated", map[string]interface{}{
		"studio_id": id,
		"name":      name,
	})
	return nil
}

func (s *studioService) DeleteStudio(id uuid.UUID) error {
	studio, err := s.findActive(id)
	if err != nil {
		return err
	}

	studio.Active = false
	if err := s.studioRepo.Update(studio); err != nil {
		return operationFailed("Failed to delete studio", err, map[string]interface{}{
			"studio_id": id,
		})
	}

	invalidate(s.cache, CacheKeyStudios, CacheKeyGames)
	logger.Info("Studio deleted", map[string]interface{}{
		"studio_id": id,
	})
	return nil
}

func (s *studioService) ListStudios() ([]model.Studio, error) {
	return cachedList(s.cache, CacheKeyStudios, func() ([]model.Studio, error) {
		studios, err := s.studioRepo.FindActive()
		if err != nil {
			return nil, operationFailed("Failed to list studios", err, nil)
		}
		return studios, nil
	})
}

func (s *studioService) GetStudio(id uuid.UUID) (*model.Studio, error) {
	return s.findActive(id)
}

func (s *studioService) GetStudioByName(name string) (*model.Studio, error) {
	studio, err := s.studioRepo.FindActiveByName(strings.TrimSpace(name))
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.EntityStudio)
		}
		return nil, operationFailed("Failed to fetch studio by name", err, map[string]interface{}{
			"name": name,
		})
	}
	return studio, nil
}

func (s *studioService) RefreshCache() error {
	invalidate(s.cache, CacheKeyStudios)
	_, err := s.ListStudios()
	return err
}

func (s *studioService) findActive(id uuid.UUID) (*model.Studio, error) {
	studio, err := s.studioRepo.FindActiveByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			logger.Warn("Studio not found", map[string]interface{}{
				"studio_id": id,
			})
			return nil, apperrors.NotFound(apperrors.EntityStudio)
		}
		return nil, operationFailed("Failed to fetch studio", err, map[string]interface{}{
			"studio_id": id,
		})
	}
	return studio, nil
}

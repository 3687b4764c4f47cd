package service

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uncode/videojuegos/internal/app/model"
	"github.com/uncode/videojuegos/internal/app/repository"
	apperrors "github.com/uncode/videojuegos/internal/errors"
	"github.com/uncode/videojuegos/pkg/logger"
)

// CategoryResolver resolves an active category. Satisfied by CategoryService.
type CategoryResolver interface {
	GetCategory(id uuid.UUID) (*model.Category, error)
}

// StudioResolver resolves an active studio. Satisfied by StudioService.
type StudioResolver interface {
	GetStudio(id uuid.UUID) (*model.Studio, error)
}

// GameInput carries every mutable field of a game
type GameInput struct {
	Name        string
	ImagePath   string
	Price       float64
	Quantity    int
	Description string
	OnOffer     bool
	ReleaseDate time.Time
	CategoryID  uuid.UUID
	StudioID    uuid.UUID
}

type GameService interface {
	CreateGame(input GameInput) (uuid.UUID, error)
	UpdateGame(id uuid.UUID, input GameInput) error
	DeleteGame(id uuid.UUID) error
	ListGames() ([]model.Game, error)
	GetGame(id uuid.UUID) (*model.Game, error)
	RefreshCache() error
}

type gameService struct {
	gameRepo   repository.GameRepository
	categories CategoryResolver
	studios    StudioResolver
	cache      ListCache
}

func NewGameService(
	gameRepo repository.GameRepository,
	categories CategoryResolver,
	studios StudioResolver,
	cache ...ListCache,
) GameService {
	return &gameService{
		gameRepo:   gameRepo,
		categories: categories,
		studios:    studios,
		cache:      pickCache(cache),
	}
}

func (s *gameService) validate(input GameInput) error {
	switch {
	case isBlank(input.Name):
		return apperrors.Validation(apperrors.BlankMessage(apperrors.EntityGame, "nombre"))
	case isBlank(input.ImagePath):
		return apperrors.Validation(apperrors.BlankMessage(apperrors.EntityGame, "rutaimg"))
	case isBlank(input.Description):
		return apperrors.Validation(apperrors.BlankMessage(apperrors.EntityGame, "descripcion"))
	case math.IsNaN(input.Price) || math.IsInf(input.Price, 0):
		return apperrors.Validation(apperrors.InvalidFormatMessage("precio"))
	case input.Price < 0:
		return apperrors.Validation(apperrors.NonNegativeMessage("precio"))
	case input.Quantity < 0:
		return apperrors.Validation(apperrors.NonNegativeMessage("cantidad"))
	case input.ReleaseDate.IsZero():
		return apperrors.Validation(apperrors.NullMessage(apperrors.EntityGame, "lanzamiento"))
	}
	return nil
}

// resolveReferences fetches both associations; errors from the resolvers are
// already domain errors and are returned untouched.
func (s *gameService) resolveReferences(input GameInput) (*model.Category, *model.Studio, error) {
	category, err := s.categories.GetCategory(input.CategoryID)
	if err != nil {
		return nil, nil, err
	}
	studio, err := s.studios.GetStudio(input.StudioID)
	if err != nil {
		return nil, nil, err
	}
	return category, studio, nil
}

func (s *gameService) CreateGame(input GameInput) (uuid.UUID, error) {
	if err := s.validate(input); err != nil {
		return uuid.Nil, err
	}
	input = normalize(input)

	exists, err := s.gameRepo.ExistsActiveByName(input.Name)
	if err != nil {
		return uuid.Nil, operationFailed("Failed to check game name", err, map[string]interface{}{
			"name": input.Name,
		})
	}
	if exists {
		logger.Warn("Game name already taken", map[string]interface{}{
			"name": input.Name,
		})
		return uuid.Nil, apperrors.Conflict(apperrors.ExistsMessage(apperrors.EntityGame, "nombre", input.Name))
	}

	category, studio, err := s.resolveReferences(input)
	if err != nil {
		return uuid.Nil, err
	}

	game := &model.Game{Active: true}
	apply(game, input, category, studio)
	if err := s.gameRepo.Create(game); err != nil {
		return uuid.Nil, operationFailed("Failed to create game", err, map[string]interface{}{
			"name": input.Name,
		})
	}

	invalidate(s.cache, CacheKeyGames)
	logger.Info("Game created", map[string]interface{}{
		"game_id":     game.ID,
		"name":        game.Name,
		"category_id": game.CategoryID,
		"studio_id":   game.StudioID,
	})
	return game.ID, nil
}

func (s *gameService) UpdateGame(id uuid.UUID, input GameInput) error {
	if err := s.validate(input); err != nil {
		return err
	}
	input = normalize(input)

	taken, err := s.gameRepo.ExistsActiveByNameExcludingID(id, input.Name)
	if err != nil {
		return operationFailed("Failed to check game name", err, map[string]interface{}{
			"game_id": id,
			"name":    input.Name,
		})
	}
	if taken {
		logger.Warn("Game name already taken", map[string]interface{}{
			"game_id": id,
			"name":    input.Name,
		})
		return apperrors.Conflict(apperrors.ExistsMessage(apperrors.EntityGame, "nombre", input.Name))
	}

	game, err := s.findActive(id)
	if err != nil {
		return err
	}

	category, studio, err := s.resolveReferences(input)
	if err != nil {
		return err
	}

	apply(game, input, category, studio)
	if err := s.gameRepo.Update(game); err != nil {
		return operationFailed("Failed to update game", err, map[string]interface{}{
			"game_id": id,
		})
	}

	invalidate(s.cache, CacheKeyGames)
	logger.Info("Game updated", map[string]interface{}{
		"game_id": id,
		"name":    game.Name,
	})
	return nil
}

func (s *gameService) DeleteGame(id uuid.UUID) error {
	game, err := s.findActive(id)
	if err != nil {
		return err
	}

	game.Active = false
	if err := s.gameRepo.Update(game); err != nil {
		return operationFailed("Failed to delete game", err, map[string]interface{}{
			"game_id": id,
		})
	}

	invalidate(s.cache, CacheKeyGames)
	logger.Info("Game deleted", map[string]interface{}{
		"game_id": id,
	})
	return nil
}

func (s *gameService) ListGames() ([]model.Game, error) {
	return cachedList(s.cache, CacheKeyGames, func() ([]model.Game, error) {
		games, err := s.gameRepo.FindActive()
		if err != nil {
			return nil, operationFailed("Failed to list games", err, nil)
		}
		return games, nil
	})
}

func (s *gameService) GetGame(id uuid.UUID) (*model.Game, error) {
	return s.findActive(id)
}

func (s *gameService) RefreshCache() error {
	invalidate(s.cache, CacheKeyGames)
	_, err := s.ListGames()
	return err
}

func (s *gameService) findActive(id uuid.UUID) (*model.Game, error) {
	game, err := s.gameRepo.FindActiveByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			logger.Warn("Game not found", map[string]interface{}{
				"game_id": id,
			})
			return nil, apperrors.NotFound(apperrors.EntityGame)
		}
		return nil, operationFailed("Failed to fetch game", err, map[string]interface{}{
			"game_id": id,
		})
	}
	return game, nil
}

func normalize(input GameInput) GameInput {
	input.Name = strings.TrimSpace(input.Name)
	input.ImagePath = strings.TrimSpace(input.ImagePath)
	input.Description = strings.TrimSpace(input.Description)
	return input
}

func apply(game *model.Game, input GameInput, category *model.Category, studio *model.Studio) {
	game.Name = input.Name
	game.ImagePath = input.ImagePath
	game.Price = input.Price
	game.Quantity = input.Quantity
	game.Description = input.Description
	game.OnOffer = input.OnOffer
	game.ReleaseDate = input.ReleaseDate
	game.CategoryID = category.ID
	game.Category = *category
	game.StudioID = studio.ID
	game.Studio = *studio
}

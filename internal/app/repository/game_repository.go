package repository

import (
	"github.com/google/uuid"
	"github.com/uncode/videojuegos/internal/app/model"
	"github.com/uncode/videojuegos/pkg/logger"
	"gorm.io/gorm"
)

type GameRepository interface {
	Create(game *model.Game) error
	Update(game *model.Game) error
	FindActive() ([]model.Game, error)
	FindActiveByID(id uuid.UUID) (*model.Game, error)
	ExistsActiveByName(name string) (bool, error)
	ExistsActiveByNameExcludingID(id uuid.UUID, name string) (bool, error)
}

type gameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) Create(game *model.Game) error {
	logger.Debug("Creating game in database", map[string]interface{}{
		"name":        game.Name,
		"category_id": game.CategoryID,
		"studio_id":   game.StudioID,
	})

	// Associations were resolved by the service; never upsert them from here.
	if err := r.db.Omit("Category", "Studio").Create(game).Error; err != nil {
		logger.Error("Failed to create game in database", err, map[string]interface{}{
			"name": game.Name,
		})
		return err
	}

	logger.Debug("Game created in database", map[string]interface{}{
		"game_id": game.ID,
	})
	return nil
}

func (r *gameRepository) Update(game *model.Game) error {
	logger.Debug("Updating game in database", map[string]interface{}{
		"game_id": game.ID,
		"name":    game.Name,
		"active":  game.Active,
	})

	if err := r.db.Omit("Category", "Studio").Save(game).Error; err != nil {
		logger.Error("Failed to update game in database", err, map[string]interface{}{
			"game_id": game.ID,
		})
		return err
	}
	return nil
}

func (r *gameRepository) baseQuery() *gorm.DB {
	return r.db.Model(&model.Game{}).
		Scopes(ActiveOnly).
		Preload("Category").
		Preload("Studio")
}

func (r *gameRepository) FindActive() ([]model.Game, error) {
	var games []model.Game
	if err := r.baseQuery().Order("name ASC").Find(&games).Error; err != nil {
		logger.Error("Failed to list active games", err)
		return nil, err
	}

	logger.Debug("Active games listed", map[string]interface{}{
		"count": len(games),
	})
	return games, nil
}

func (r *gameRepository) FindActiveByID(id uuid.UUID) (*model.Game, error) {
	var game model.Game
	if err := r.baseQuery().Where("id = ?", id).First(&game).Error; err != nil {
		if !IsNotFound(err) {
			logger.Error("Failed to find game by ID", err, map[string]interface{}{
				"game_id": id,
			})
		}
		return nil, err
	}
	return &game, nil
}

func (r *gameRepository) ExistsActiveByName(name string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Game{}).Scopes(ActiveOnly).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		logger.Error("Failed to check game name", err, map[string]interface{}{
			"name": name,
		})
		return false, err
	}
	return count > 0, nil
}

func (r *gameRepository) ExistsActiveByNameExcludingID(id uuid.UUID, name string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Game{}).Scopes(ActiveOnly).
		Where("name = ? AND id <> ?", name, id).
		Count(&count).Error; err != nil {
		logger.Error("Failed to check game name", err, map[string]interface{}{
			"game_id": id,
			"name":    name,
		})
		return false, err
	}
	return count > 0, nil
}

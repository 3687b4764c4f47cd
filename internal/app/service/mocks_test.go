package service

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/uncode/videojuegos/internal/app/model"
	"github.com/uncode/videojuegos/internal/app/repository"
)

// MockCategoryRepository is a mock implementation of repository.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(category *model.Category) error {
	return m.Called(category).Error(0)
}

func (m *MockCategoryRepository) Update(category *model.Category) error {
	return m.Called(category).Error(0)
}

func (m *MockCategoryRepository) FindActive() ([]model.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindActiveByID(id uuid.UUID) (*model.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindActiveByName(name string) (*model.Category, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepository) ExistsActiveByName(name string) (bool, error) {
	args := m.Called(name)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) ExistsActiveByNameExcludingID(id uuid.UUID, name string) (bool, error) {
	args := m.Called(id, name)
	return args.Bool(0), args.Error(1)
}

// MockGameRepository is a mock implementation of repository.GameRepository
type MockGameRepository struct {
	mock.Mock
}

func (m *MockGameRepository) Create(game *model.Game) error {
	return m.Called(game).Error(0)
}

func (m *MockGameRepository) Update(game *model.Game) error {
	return m.Called(game).Error(0)
}

func (m *MockGameRepository) FindActive() ([]model.Game, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Game), args.Error(1)
}

func (m *MockGameRepository) FindActiveByID(id uuid.UUID) (*model.Game, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Game), args.Error(1)
}

func (m *MockGameRepository) ExistsActiveByName(name string) (bool, error) {
	args := m.Called(name)
	return args.Bool(0), args.Error(1)
}

func (m *MockGameRepository) ExistsActiveByNameExcludingID(id uuid.UUID, name string) (bool, error) {
	args := m.Called(id, name)
	return args.Bool(0), args.Error(1)
}

// memoryCache is an in-process ListCache that round-trips through JSON like
// the redis implementation does.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	gens    map[string]int64
	deleted []string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}, gens: map[string]int64{}}
}

func (c *memoryCache) Get(key string, dest interface{}) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.entries[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (c *memoryCache) Generation(key string) (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gens[key], true
}

func (c *memoryCache) SetIfGeneration(key string, gen int64, value interface{}) (bool, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return false, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gens[key] != gen {
		return false, nil
	}
	c.entries[key] = raw
	return true, nil
}

// Set seeds an entry regardless of generation.
func (c *memoryCache) Set(key string, value interface{}) error {
	c.mu.Lock()
	gen := c.gens[key]
	c.mu.Unlock()
	_, err := c.SetIfGeneration(key, gen, value)
	return err
}

func (c *memoryCache) Delete(keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.entries, key)
		c.gens[key]++
		c.deleted = append(c.deleted, key)
	}
	return nil
}

func (c *memoryCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

// interleavingCategoryRepository runs afterFindActive once, right after the
// listing has been read and before the service caches it.
type interleavingCategoryRepository struct {
	repository.CategoryRepository
	afterFindActive func()
}

func (r *interleavingCategoryRepository) FindActive() ([]model.Category, error) {
	categories, err := r.CategoryRepository.FindActive()
	if hook := r.afterFindActive; hook != nil {
		r.afterFindActive = nil
		hook()
	}
	return categories, err
}

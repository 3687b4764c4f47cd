package service

import (
	"strings"

	apperrors "github.com/uncode/videojuegos/internal/errors"
	"github.com/uncode/videojuegos/pkg/logger"
)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// operationFailed logs the real cause and returns the generic domain error
func operationFailed(msg string, err error, fields map[string]interface{}) error {
	logger.Error(msg, err, fields)
	return apperrors.OperationFailed()
}

func invalidate(cache ListCache, keys ...string) {
	if err := cache.Delete(keys...); err != nil {
		logger.Warn("Failed to invalidate listing cache", map[string]interface{}{
			"keys":  keys,
			"error": err.Error(),
		})
	}
}

// cachedList serves key from the cache or loads it, caching the result only
// if no invalidation happened while loading.
func cachedList[T any](cache ListCache, key string, load func() ([]T, error)) ([]T, error) {
	var items []T
	if cache.Get(key, &items) {
		logger.Debug("Cache HIT", map[string]interface{}{"key": key})
		return items, nil
	}

	gen, cacheable := cache.Generation(key)
	items, err := load()
	if err != nil {
		return nil, err
	}
	if cacheable {
		storeInCache(cache, key, gen, items)
	}
	return items, nil
}

func storeInCache(cache ListCache, key string, gen int64, value interface{}) {
	stored, err := cache.SetIfGeneration(key, gen, value)
	if err != nil {
		logger.Warn("Failed to cache listing", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return
	}
	if !stored {
		logger.Debug("Listing changed while loading, not cached", map[string]interface{}{
			"key": key,
		})
	}
}

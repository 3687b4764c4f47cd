package redis

import (
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// Nothing listens on port 1, so every command fails fast.
func unreachableCache() *CatalogCache {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	return NewCatalogCache(client, time.Minute)
}

func TestCatalogCache_UnreachableReadsAsMiss(t *testing.T) {
	cache := unreachableCache()
	t.Cleanup(func() { cache.client.Close() })

	var dest []string
	assert.False(t, cache.Get("catalog:games", &dest))
	assert.Nil(t, dest)

	_, ok := cache.Generation("catalog:games")
	assert.False(t, ok)

	stored, err := cache.SetIfGeneration("catalog:games", 0, []string{"Chrono Trigger"})
	assert.Error(t, err)
	assert.False(t, stored)

	assert.Error(t, cache.Delete("catalog:games"))
}

func TestCatalogCache_DeleteWithoutKeys(t *testing.T) {
	cache := unreachableCache()
	t.Cleanup(func() { cache.client.Close() })

	assert.NoError(t, cache.Delete())
}

func TestCatalogCache_SetRejectsUnencodableValue(t *testing.T) {
	cache := unreachableCache()
	t.Cleanup(func() { cache.client.Close() })

	stored, err := cache.SetIfGeneration("catalog:games", 0, make(chan int))
	assert.Error(t, err)
	assert.False(t, stored)
}

func TestGenerationKey(t *testing.T) {
	assert.Equal(t, "catalog:games:gen", generationKey("catalog:games"))
}

package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uncode/videojuegos/config"
)

func TestConfigurePool(t *testing.T) {
	conn, err := SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		CleanupTestDB(conn)
	})

	require.NoError(t, configurePool(conn, &config.DatabaseConfig{
		MaxIdleConns:    2,
		MaxOpenConns:    3,
		ConnMaxLifetime: time.Minute,
	}))

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	assert.Equal(t, 3, sqlDB.Stats().MaxOpenConnections)

	// Zero limits leave the current pool untouched.
	require.NoError(t, configurePool(conn, &config.DatabaseConfig{}))
	assert.Equal(t, 3, sqlDB.Stats().MaxOpenConnections)
}

func TestClose_WithoutConnection(t *testing.T) {
	previous := DB
	DB = nil
	t.Cleanup(func() { DB = previous })

	assert.NoError(t, Close())
}

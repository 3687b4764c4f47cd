package main

import (
	"fmt"
	"os"

	"github.com/uncode/videojuegos/config"
	"github.com/uncode/videojuegos/internal/app/service"
	"github.com/uncode/videojuegos/internal/db"
	"github.com/uncode/videojuegos/internal/importer"
	"github.com/uncode/videojuegos/pkg/logger"
	"github.com/uncode/videojuegos/pkg/redis"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: go run cmd/seed/main.go <xlsx_file_path>")
		os.Exit(2)
	}
	filePath := os.Args[1]

	logger.Initialize(logger.Config{Level: "info", Format: "console", EnableColor: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	file, err := os.Open(filePath)
	if err != nil {
		logger.Fatal("Failed to open workbook", err, map[string]interface{}{"path": filePath})
	}
	defer file.Close()

	rows, err := importer.ReadGames(file)
	if err != nil {
		logger.Fatal("Failed to read workbook", err, map[string]interface{}{"path": filePath})
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to connect to database", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Imported rows must evict listings the server may have cached.
	var caches []service.ListCache
	if cfg.Redis.Enabled {
		if err := redis.Init(&cfg.Redis); err == nil {
			defer redis.Close()
			caches = append(caches, redis.NewCatalogCache(redis.GetClient(), cfg.Redis.CacheTTL))
		}
	}

	result, err := service.NewImportService(db.GetDB(), caches...).ImportGames(rows)
	if err != nil {
		logger.Fatal("Import aborted", err, map[string]interface{}{
			"created": result.Created,
		})
	}

	fmt.Printf("Imported %d games, skipped %d\n", result.Created, len(result.Skipped))
	for _, skipped := range result.Skipped {
		fmt.Printf("  line %d (%s): %s\n", skipped.Line, skipped.Name, skipped.Reason)
	}
}

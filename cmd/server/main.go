package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/uncode/videojuegos/config"
	"github.com/uncode/videojuegos/internal/app/controller"
	"github.com/uncode/videojuegos/internal/app/repository"
	"github.com/uncode/videojuegos/internal/app/service"
	"github.com/uncode/videojuegos/internal/db"
	"github.com/uncode/videojuegos/internal/router"
	"github.com/uncode/videojuegos/internal/scheduler"
	"github.com/uncode/videojuegos/internal/storage"
	"github.com/uncode/videojuegos/pkg/logger"
	"github.com/uncode/videojuegos/pkg/redis"
	"github.com/uncode/videojuegos/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logLevel := "info"
	logFormat := "json"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
		logFormat = "console"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      logFormat,
		EnableColor: true,
	})

	logger.Info("Starting Videojuegos server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Listing cache is optional; the services fall back to a no-op cache.
	var caches []service.ListCache
	if cfg.Redis.Enabled {
		if err := redis.Init(&cfg.Redis); err != nil {
			logger.Warn("Redis unavailable, listing cache disabled", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			defer redis.Close()
			caches = append(caches, redis.NewCatalogCache(redis.GetClient(), cfg.Redis.CacheTTL))
		}
	}

	categoryRepo := repository.NewCategoryRepository(db.GetDB())
	studioRepo := repository.NewStudioRepository(db.GetDB())
	gameRepo := repository.NewGameRepository(db.GetDB())

	categoryService := service.NewCategoryService(categoryRepo, caches...)
	studioService := service.NewStudioService(studioRepo, caches...)
	gameService := service.NewGameService(gameRepo, categoryService, studioService, caches...)

	if len(caches) > 0 {
		refresher := scheduler.NewCacheRefreshScheduler(cfg.Scheduler.CacheRefreshSpec, categoryService, studioService, gameService)
		if err := refresher.Start(); err != nil {
			logger.Warn("Cache refresh scheduler not started", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			defer refresher.Stop()
		}
	}

	var uploadController *controller.UploadController
	if cfg.S3.UploadsEnabled() {
		uploadController = controller.NewUploadController(storage.NewS3CoverStorage(&cfg.S3))
		logger.Info("Cover uploads enabled", map[string]interface{}{
			"bucket": cfg.S3.Bucket,
		})
	}

	templates, err := web.Templates()
	if err != nil {
		logger.Fatal("Failed to parse templates", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := router.NewRouter(
		controller.NewCategoryController(categoryService),
		controller.NewStudioController(studioService),
		controller.NewGameController(gameService, categoryService, studioService),
		uploadController,
		templates,
		registry,
		cfg,
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           r.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server started successfully", map[string]interface{}{
			"address": srv.Addr,
			"pid":     os.Getpid(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", err)
	}
	logger.Info("Server stopped successfully")
}

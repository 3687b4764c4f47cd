package scheduler

import (
	"github.com/robfig/cron/v3"
	"github.com/uncode/videojuegos/internal/app/service"
	"github.com/uncode/videojuegos/pkg/logger"
)

// CacheRefreshScheduler periodically reloads the cached catalog listings
type CacheRefreshScheduler struct {
	cron    *cron.Cron
	spec    string
	warmers []service.CacheWarmer
}

func NewCacheRefreshScheduler(spec string, warmers ...service.CacheWarmer) *CacheRefreshScheduler {
	return &CacheRefreshScheduler{
		cron:    cron.New(),
		spec:    spec,
		warmers: warmers,
	}
}

// Start registers the refresh job and starts the cron loop.
func (s *CacheRefreshScheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, s.RefreshAll)
	if err != nil {
		logger.Error("Failed to add cron job for cache refresh", err, map[string]interface{}{
			"spec": s.spec,
		})
		return err
	}

	s.cron.Start()
	logger.Info("Cache refresh scheduler started", map[string]interface{}{
		"spec": s.spec,
	})
	return nil
}

// RefreshAll runs one refresh pass. A failing listing does not stop the others.
func (s *CacheRefreshScheduler) RefreshAll() {
	logger.Debug("Starting scheduled cache refresh")

	failed := 0
	for _, warmer := range s.warmers {
		if err := warmer.RefreshCache(); err != nil {
			failed++
			logger.Error("Failed to refresh cached listing", err)
		}
	}

	logger.Info("Scheduled cache refresh finished", map[string]interface{}{
		"listings": len(s.warmers),
		"failed":   failed,
	})
}

func (s *CacheRefreshScheduler) Stop() {
	logger.Info("Stopping cache refresh scheduler...")
	<-s.cron.Stop().Done()
	logger.Info("Cache refresh scheduler stopped")
}

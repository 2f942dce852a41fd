package services

import (
	"context"
	"fmt"
	"time"

	"docyo/internal/logger"

	"github.com/go-co-op/gocron"
)

const catalogReloadTimeout = 30 * time.Second

// StartCatalogRefresh reloads the catalog from the database every interval so newly seeded
// doctors appear without a restart. The caller stops the returned scheduler on shutdown.
func StartCatalogRefresh(ctx context.Context, catalog *DoctorCatalog, interval time.Duration) (*gocron.Scheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("catalog refresh interval must be positive, got %s", interval)
	}

	log := logger.WithFields("job", "catalog_refresh", "interval", interval.String())
	scheduler := gocron.NewScheduler(time.UTC)
	scheduler.SingletonModeAll()

	_, err := scheduler.Every(interval).WaitForSchedule().Do(func() {
		reloadCtx, cancel := context.WithTimeout(ctx, catalogReloadTimeout)
		defer cancel()
		if err := catalog.Reload(reloadCtx); err != nil {
			log.Warn("Doctor catalog refresh failed", "error", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to schedule catalog refresh: %w", err)
	}

	scheduler.StartAsync()
	log.Info("Doctor catalog refresh scheduled")
	return scheduler, nil
}

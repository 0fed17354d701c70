package app

import (
	"context"
	"fmt"
	"time"

	"github.com/mission77/core/internal/middleware"
	"github.com/mission77/core/internal/modules/coverage"
	pkgcron "github.com/mission77/core/internal/pkg/cron"
	pkgredis "github.com/mission77/core/internal/pkg/redis"
	"go.uber.org/zap"
)

// registerCronJobs registers all scheduled background jobs.
func registerCronJobs(sched *pkgcron.Scheduler, covSvc *coverage.Service, rc *pkgredis.Client, logger *zap.Logger) {
	cronLogger := logger.Named("CronService")

	sched.Register(pkgcron.Job{
		Name:        "refresh_coverage",
		Description: "Reload district coverage from the datastore",
		Interval:    5 * time.Minute,
		Fn: func(ctx context.Context) error {
			covSvc.Load(ctx)
			cronLogger.Info(fmt.Sprintf("coverage refreshed, %d/77 districts covered", covSvc.CoveredCount()))
			return nil
		},
	})

	sched.Register(pkgcron.Job{
		Name:        "prune_api_cache",
		Description: "Drop all cached API responses",
		Interval:    6 * time.Hour,
		Fn: func(ctx context.Context) error {
			deleted, err := middleware.PurgeHTTPCache(ctx, rc.Raw())
			if err != nil {
				cronLogger.Warn("cache prune failed", zap.Error(err))
				return err
			}
			cronLogger.Info(fmt.Sprintf("cache pruned, %d entries deleted", deleted))
			return nil
		},
	})
}

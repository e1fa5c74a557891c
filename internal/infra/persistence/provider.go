// Package persistence selects the geoquery cache backend from configuration.
package persistence

import (
	"context"
	"log/slog"
	"time"

	"servicelocator/config"
	"servicelocator/internal/domain/constants"
	"servicelocator/internal/domain/repository"
	"servicelocator/internal/infra/persistence/memory"
	"servicelocator/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CacheParams holds dependencies for the cache repository, injected by Fx
type CacheParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewGeoQueryCacheRepository creates the cache repository named by cache.provider
// and schedules purging of expired entries.
func NewGeoQueryCacheRepository(params CacheParams) (repository.GeoQueryCacheRepository, error) {
	cfg := params.Config.Cache
	if cfg == nil {
		cfg = config.DefaultCacheConfig()
	}
	logger := params.Logger

	var repo repository.GeoQueryCacheRepository

	switch cfg.Provider {
	case constants.CacheProviderMemory, "":
		logger.Info("Using in-memory geoquery cache")

		repo = memory.NewGeoQueryCacheRepository()

	case constants.CacheProviderPostgres:
		if params.Config.Postgres == nil {
			return nil, errors.New("postgres configuration is required for postgres cache provider")
		}
		logger.Info("Using PostgreSQL geoquery cache")

		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return nil, err
		}
		repo = postgres.NewGeoQueryCacheRepository(db)

	default:
		return nil, errors.Errorf("unknown cache provider: %s", cfg.Provider)
	}

	if cfg.PurgeInterval > 0 {
		purgeCtx, cancelPurge := context.WithCancel(context.Background())
		params.Lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				go purgeExpired(purgeCtx, logger, repo, retention(params.Config), cfg.PurgeInterval)

				return nil
			},
			OnStop: func(context.Context) error {
				cancelPurge()

				return nil
			},
		})
	}

	return repo, nil
}

// retention is the longest TTL of any cache user. The store is shared, so a
// shorter cutoff would evict entries another user still treats as fresh.
func retention(cfg *config.Config) time.Duration {
	cacheCfg := cfg.Cache
	if cacheCfg == nil {
		cacheCfg = config.DefaultCacheConfig()
	}
	nearestCfg := cfg.Nearest
	if nearestCfg == nil {
		nearestCfg = config.DefaultNearestConfig()
	}

	return max(cacheCfg.TTL, nearestCfg.TTL)
}

func purgeExpired(ctx context.Context, logger *slog.Logger, repo repository.GeoQueryCacheRepository, ttl, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			removed, err := repo.DeleteOlderThan(ctx, now.Add(-ttl))
			if err != nil {
				logger.Warn("Failed to purge expired cache entries", slog.Any("error", err))

				continue
			}
			if removed > 0 {
				logger.Debug("Purged expired cache entries", slog.Int64("removed", removed))
			}
		}
	}
}

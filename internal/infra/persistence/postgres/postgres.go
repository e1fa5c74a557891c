package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"servicelocator/config"
	"servicelocator/internal/domain/lifecycle"
	"servicelocator/internal/infra/persistence/model"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolSampleInterval = 5 * time.Second
	poolSlowWait       = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the cache database. Start pings it, migrates the cache table and
// begins sampling pool contention; stop closes the pool.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres section is required for the postgres cache provider")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}
	db = db.Session(&gorm.Session{
		// every cache write is a single upsert
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config.Env.Debug),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "postgres sql.DB handle")
	}

	sampler := &poolSampler{logger: params.Logger, db: sqlDB}
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "ping postgres")
			}
			if err := db.WithContext(ctx).AutoMigrate(&model.GeoQueryCacheModel{}); err != nil {
				return errors.Wrap(err, "migrate geoquery cache table")
			}
			sampler.start(poolSampleInterval)

			return nil
		},
		OnStop: func(context.Context) error {
			sampler.stop()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// poolSampler logs connection-pool waits between two samples. Waits above
// poolSlowWait are warnings since they delay cache reads on the request path.
type poolSampler struct {
	logger *slog.Logger
	db     *sql.DB
	cancel context.CancelFunc
}

func (s *poolSampler) start(interval time.Duration) {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		prev := s.db.Stats()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				cur := s.db.Stats()
				s.report(ctx, prev, cur)
				prev = cur
			}
		}
	}()
}

func (s *poolSampler) stop() {
	if s.cancel != nil {
		s.cancel()
	}
}

// report returns false when no connection was waited for since prev.
func (s *poolSampler) report(ctx context.Context, prev, cur sql.DBStats) bool {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return false
	}
	waited := cur.WaitDuration - prev.WaitDuration

	level := slog.LevelDebug
	if waited >= poolSlowWait {
		level = slog.LevelWarn
	}
	s.logger.LogAttrs(ctx, level, "Cache database pool contention",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("max_open", cur.MaxOpenConnections),
	)

	return true
}

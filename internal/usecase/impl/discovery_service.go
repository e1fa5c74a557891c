package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"sync"
	"time"

	"servicelocator/config"
	deliverycontext "servicelocator/internal/delivery/context"
	"servicelocator/internal/domain/entity"
	domainerrors "servicelocator/internal/domain/errors"
	"servicelocator/internal/domain/repository"
	"servicelocator/internal/domain/service"
	"servicelocator/internal/usecase"
	"servicelocator/internal/util"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const eventPublishTimeout = 5 * time.Second

// discoveryService implements the DiscoveryUsecase interface.
type discoveryService struct {
	geodata   service.GeodataClient
	cache     repository.GeoQueryCacheRepository
	publisher service.EventPublisher

	radii     []int
	endpoints []string
	attempts  int
	schedule  retrySchedule
	ttl       time.Duration

	now    func() time.Time
	sleep  func(ctx context.Context, d time.Duration) error
	logger *slog.Logger

	// inflight tracks event publishes still running after Discover returned.
	inflight sync.WaitGroup
}

// DiscoveryServiceParams holds dependencies for DiscoveryService, injected by Fx.
type DiscoveryServiceParams struct {
	fx.In

	Lc        fx.Lifecycle `optional:"true"`
	Geodata   service.GeodataClient
	Cache     repository.GeoQueryCacheRepository
	Publisher service.EventPublisher `optional:"true"`
	Config    *config.Config
	Logger    *slog.Logger
}

// NewDiscoveryService is the constructor for discoveryService.
func NewDiscoveryService(params DiscoveryServiceParams) usecase.DiscoveryUsecase {
	cfg := params.Config.Discovery
	if cfg == nil {
		cfg = config.DefaultDiscoveryConfig()
	}
	cacheCfg := params.Config.Cache
	if cacheCfg == nil {
		cacheCfg = config.DefaultCacheConfig()
	}

	radii := append([]int(nil), cfg.Radii...)
	sort.Sort(sort.Reverse(sort.IntSlice(radii)))

	srv := &discoveryService{
		geodata:   params.Geodata,
		cache:     params.Cache,
		publisher: params.Publisher,
		radii:     radii,
		endpoints: cfg.Endpoints,
		attempts:  cfg.MaxAttempts,
		schedule: retrySchedule{
			attemptTimeout:     cfg.AttemptTimeout,
			attemptTimeoutStep: cfg.AttemptTimeoutStep,
			backoffBase:        cfg.BackoffBase,
			backoffStep:        cfg.BackoffStep,
		},
		ttl:    cacheCfg.TTL,
		now:    time.Now,
		sleep:  sleepContext,
		logger: params.Logger,
	}

	if params.Lc != nil {
		params.Lc.Append(fx.Hook{
			OnStop: srv.drain,
		})
	}

	return srv
}

func (srv *discoveryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CacheKey identifies a discovery result by rounded origin, brand and radius.
func CacheKey(origin entity.Coordinate, brand entity.BrandFilter, radius int) string {
	return fmt.Sprintf("geoquery:%.4f:%.4f:%s:%d", origin.Lat, origin.Lon, brand, radius)
}

// Discover tries every radius, largest first, until the cache or an endpoint yields a result.
func (srv *discoveryService) Discover(ctx context.Context, origin entity.Coordinate, brand string) (*usecase.DiscoveryResult, error) {
	filter := entity.NewBrandFilter(brand)
	if filter.IsEmpty() {
		return nil, domainerrors.ErrEmptyBrand
	}
	if !origin.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("origin coordinate out of range")
	}

	logger := srv.log(ctx).With(slog.String("brand", filter.String()))

	for _, radius := range srv.radii {
		key := CacheKey(origin, filter, radius)

		if entry := srv.freshEntry(ctx, key); entry != nil {
			logger.Debug("Discovery cache hit", slog.String("cache_key", key), slog.Int("count", len(entry.POIs)))

			result := &usecase.DiscoveryResult{
				POIs:      entry.POIs,
				Radius:    radius,
				FromCache: true,
				CacheKey:  key,
			}
			srv.publish(ctx, origin, filter, result)

			return result, nil
		}

		query := BuildDiscoveryQuery(filter, origin, radius)
		plan := newRadiusPlan(srv.endpoints, srv.attempts)

		pois, endpoint, err := srv.runPlan(ctx, plan, origin, query)
		if err != nil {
			// The caller went away; report that rather than an upstream outage.
			return nil, err
		}

		if plan.State() == planSucceeded {
			srv.store(ctx, key, pois)

			result := &usecase.DiscoveryResult{
				POIs:     pois,
				Radius:   radius,
				Endpoint: endpoint,
				CacheKey: key,
			}
			srv.publish(ctx, origin, filter, result)

			return result, nil
		}

		logger.Warn("Discovery radius exhausted",
			slog.Int("radius", radius),
			slog.Int("failures", len(plan.Failures())),
		)
	}

	return nil, domainerrors.ErrDiscoveryExhausted
}

// runPlan consumes the plan's tasks until one succeeds or none are left.
// It only returns an error when ctx itself is done.
func (srv *discoveryService) runPlan(ctx context.Context, plan *radiusPlan, origin entity.Coordinate, query string) ([]entity.POI, string, error) {
	logger := srv.log(ctx)

	for {
		task, ok := plan.Next()
		if !ok {
			return nil, "", nil
		}

		elements, err := srv.attempt(ctx, task, query)
		if err == nil {
			plan.Succeed()

			return normalizeElements(origin, elements), task.Endpoint, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, "", errors.WithStack(ctxErr)
		}

		plan.Fail(task, err)

		if errors.Is(err, domainerrors.ErrUpstreamError) {
			logger.Info("Geodata endpoint returned an error status",
				slog.String("endpoint", task.Endpoint),
				slog.Int("attempt", task.Attempt),
				slog.Any("error", err),
			)

			continue
		}

		if !plan.HasNext() {
			logger.Info("Geodata request failed",
				slog.String("endpoint", task.Endpoint),
				slog.Int("attempt", task.Attempt),
				slog.Any("error", err),
			)

			continue
		}

		backoff := srv.schedule.Backoff(task.Attempt)
		logger.Info("Geodata request failed, backing off",
			slog.String("endpoint", task.Endpoint),
			slog.Int("attempt", task.Attempt),
			util.Elapsed("backoff", backoff),
			slog.Any("error", err),
		)

		if err := srv.sleep(ctx, backoff); err != nil {
			return nil, "", errors.WithStack(err)
		}
	}
}

func (srv *discoveryService) attempt(ctx context.Context, task discoveryTask, query string) ([]entity.GeoElement, error) {
	attemptCtx := ctx
	if timeout := srv.schedule.Timeout(task.Attempt); timeout > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	return srv.geodata.Interpret(attemptCtx, task.Endpoint, query)
}

// freshEntry returns the cached entry under key if it is younger than the TTL.
// Cache failures count as a miss.
func (srv *discoveryService) freshEntry(ctx context.Context, key string) *entity.CacheEntry {
	entry, err := srv.cache.Find(ctx, key)
	if err != nil {
		if !errors.Is(err, repository.ErrCacheEntryNotFound) {
			srv.log(ctx).Warn("Discovery cache read failed", slog.String("cache_key", key), slog.Any("error", err))
		}

		return nil
	}

	if !entry.IsFresh(srv.now(), srv.ttl) {
		return nil
	}

	return entry
}

func (srv *discoveryService) store(ctx context.Context, key string, pois []entity.POI) {
	entry := &entity.CacheEntry{
		Key:      key,
		StoredAt: srv.now(),
		POIs:     pois,
	}

	if err := srv.cache.Save(ctx, entry); err != nil {
		srv.log(ctx).Warn("Discovery cache write failed", slog.String("cache_key", key), slog.Any("error", err))
	}
}

func (srv *discoveryService) publish(ctx context.Context, origin entity.Coordinate, brand entity.BrandFilter, result *usecase.DiscoveryResult) {
	if srv.publisher == nil {
		return
	}

	event := &service.DiscoveryEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		EventID:     uuid.NewString(),
		Brand:       brand.String(),
		Latitude:    origin.Lat,
		Longitude:   origin.Lon,
		Radius:      result.Radius,
		Endpoint:    result.Endpoint,
		FromCache:   result.FromCache,
		ResultCount: len(result.POIs),
		OccurredAt:  srv.now().UTC(),
	}

	logger := srv.log(ctx)
	detached := context.WithoutCancel(ctx)

	srv.inflight.Add(1)
	go func() {
		defer srv.inflight.Done()

		publishCtx, cancel := context.WithTimeout(detached, eventPublishTimeout)
		defer cancel()

		if err := srv.publisher.PublishDiscoveryEvent(publishCtx, event); err != nil {
			logger.Warn("Failed to publish discovery event", slog.String("event_id", event.EventID), slog.Any("error", err))
		}
	}()
}

// drain waits for in-flight event publishes or until ctx is done.
func (srv *discoveryService) drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		srv.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "waiting for discovery events")
	}
}

// normalizeElements turns raw elements into POIs sorted by great-circle
// distance from origin. Elements without a coordinate are dropped.
func normalizeElements(origin entity.Coordinate, elements []entity.GeoElement) []entity.POI {
	from := orb.Point{origin.Lon, origin.Lat}
	pois := make([]entity.POI, 0, len(elements))

	for idx, element := range elements {
		location, ok := element.Location()
		if !ok {
			continue
		}

		id := strconv.Itoa(idx)
		if element.ID != 0 {
			id = strconv.FormatInt(element.ID, 10)
		}

		pois = append(pois, entity.POI{
			ID:         id,
			Type:       element.Type,
			Coordinate: location,
			Tags:       element.Tags,
			Distance:   geo.DistanceHaversine(from, orb.Point{location.Lon, location.Lat}),
		})
	}

	sort.SliceStable(pois, func(i, j int) bool {
		return pois[i].Distance < pois[j].Distance
	})

	return pois
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

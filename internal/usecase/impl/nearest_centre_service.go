package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strconv"
	"time"

	"servicelocator/config"
	deliverycontext "servicelocator/internal/delivery/context"
	"servicelocator/internal/domain/entity"
	domainerrors "servicelocator/internal/domain/errors"
	"servicelocator/internal/domain/repository"
	"servicelocator/internal/domain/service"
	"servicelocator/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	nearestFallbackName  = "Service Centre"
	nearestFallbackPhone = "N/A"
	maxNearestRadius     = 50000

	// meanEarthRadius is the radius distance_km has always been reported with.
	meanEarthRadius = 6371000.0
)

// nearestCentreService implements the NearestCentreUsecase interface.
type nearestCentreService struct {
	geodata  service.GeodataClient
	cache    repository.GeoQueryCacheRepository
	endpoint string
	radius   int
	limit    int
	ttl      time.Duration
	timeout  time.Duration
	now      func() time.Time
	logger   *slog.Logger
}

// NearestCentreServiceParams holds dependencies for NearestCentreService, injected by Fx.
type NearestCentreServiceParams struct {
	fx.In

	Geodata service.GeodataClient
	Cache   repository.GeoQueryCacheRepository
	Config  *config.Config
	Logger  *slog.Logger
}

// NewNearestCentreService is the constructor for nearestCentreService.
func NewNearestCentreService(params NearestCentreServiceParams) usecase.NearestCentreUsecase {
	cfg := params.Config.Nearest
	if cfg == nil {
		cfg = config.DefaultNearestConfig()
	}

	return &nearestCentreService{
		geodata:  params.Geodata,
		cache:    params.Cache,
		endpoint: cfg.Endpoint,
		radius:   cfg.Radius,
		limit:    cfg.Limit,
		ttl:      cfg.TTL,
		timeout:  cfg.Timeout,
		now:      time.Now,
		logger:   params.Logger,
	}
}

func (srv *nearestCentreService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// nearestCacheKey rounds like CacheKey so fixes a few metres apart share an entry.
func nearestCacheKey(at entity.Coordinate, radius int) string {
	return fmt.Sprintf("nearest:%.4f:%.4f:%d", at.Lat, at.Lon, radius)
}

// Nearest queries a single mirror once. Results are cached by rounded coordinate and radius;
// distances are always measured from at itself.
func (srv *nearestCentreService) Nearest(ctx context.Context, at entity.Coordinate, radius int) ([]entity.NearbyCentre, error) {
	if !at.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("coordinate out of range")
	}
	if radius == 0 {
		radius = srv.radius
	}
	if radius < 0 || radius > maxNearestRadius {
		return nil, domainerrors.ErrValidationFailed.WithDetails("radius must be between 1 and " + strconv.Itoa(maxNearestRadius))
	}

	key := nearestCacheKey(at, radius)
	logger := srv.log(ctx).With(slog.String("cache_key", key))

	entry, err := srv.cache.Find(ctx, key)
	switch {
	case err == nil && entry.IsFresh(srv.now(), srv.ttl):
		logger.Debug("Nearest centres served from cache")

		return srv.toCentres(at, entry.POIs), nil
	case err != nil && !errors.Is(err, repository.ErrCacheEntryNotFound):
		logger.Warn("Nearest cache read failed", slog.Any("error", err))
	}

	queryCtx := ctx
	if srv.timeout > 0 {
		var cancel context.CancelFunc
		queryCtx, cancel = context.WithTimeout(ctx, srv.timeout)
		defer cancel()
	}

	elements, err := srv.geodata.Interpret(queryCtx, srv.endpoint, BuildNearestQuery(at, radius))
	if err != nil {
		logger.Error("Nearest centres query failed", slog.String("endpoint", srv.endpoint), slog.Any("error", err))

		return nil, domainerrors.ErrUpstreamError.WithDetails(err.Error())
	}

	pois := normalizeElements(at, elements)
	if len(pois) > srv.limit {
		pois = pois[:srv.limit]
	}

	if err := srv.cache.Save(ctx, &entity.CacheEntry{Key: key, StoredAt: srv.now(), POIs: pois}); err != nil {
		logger.Warn("Nearest cache write failed", slog.Any("error", err))
	}

	return srv.toCentres(at, pois), nil
}

func (srv *nearestCentreService) toCentres(at entity.Coordinate, pois []entity.POI) []entity.NearbyCentre {
	from := orb.Point{at.Lon, at.Lat}
	centres := make([]entity.NearbyCentre, 0, len(pois))
	for _, poi := range pois {
		name := poi.Tags[entity.TagName]
		if name == "" {
			name = nearestFallbackName
		}
		phone := poi.Tags[entity.TagPhone]
		if phone == "" {
			phone = nearestFallbackPhone
		}

		centres = append(centres, entity.NearbyCentre{
			Name:       name,
			Lat:        poi.Lat,
			Lon:        poi.Lon,
			Phone:      phone,
			DistanceKm: math.Round(meanEarthDistance(from, orb.Point{poi.Lon, poi.Lat})/1000*100) / 100,
		})
	}

	sort.SliceStable(centres, func(i, j int) bool {
		return centres[i].DistanceKm < centres[j].DistanceKm
	})

	if len(centres) > srv.limit {
		centres = centres[:srv.limit]
	}

	return centres
}

// meanEarthDistance is the haversine distance in metres on a 6371 km sphere.
func meanEarthDistance(from, to orb.Point) float64 {
	return geo.DistanceHaversine(from, to) * meanEarthRadius / orb.EarthRadius
}

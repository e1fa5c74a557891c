package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"servicelocator/config"
	"servicelocator/internal/domain/entity"
	domainerrors "servicelocator/internal/domain/errors"
	"servicelocator/internal/domain/repository"
	"servicelocator/internal/infra/persistence/memory"
	mockRepo "servicelocator/internal/mocks/repository"
	mockService "servicelocator/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newNearestService(t *testing.T, cache repository.GeoQueryCacheRepository) (*nearestCentreService, *mockService.MockGeodataClient, *fakeClock) {
	t.Helper()

	geodata := mockService.NewMockGeodataClient(t)
	clock := &fakeClock{current: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}

	svc := NewNearestCentreService(NearestCentreServiceParams{
		Geodata: geodata,
		Cache:   cache,
		Config:  &config.Config{Nearest: &config.NearestConfig{Endpoint: "https://overpass.test/api/interpreter", Radius: 5000, Limit: 2, TTL: 5 * time.Minute}},
		Logger:  testLogger(),
	}).(*nearestCentreService)
	svc.now = clock.Now

	return svc, geodata, clock
}

func repairShops() []entity.GeoElement {
	return []entity.GeoElement{
		{Type: "node", ID: 3, Lat: floatPtr(13.0500), Lon: floatPtr(77.7000)},
		{Type: "node", ID: 1, Lat: floatPtr(12.9750), Lon: floatPtr(77.5950), Tags: map[string]string{"name": "Quick Fix Garage", "phone": "+91 80 1234"}},
		{Type: "node", ID: 2, Lat: floatPtr(12.9800), Lon: floatPtr(77.6000)},
	}
}

func TestNearestCentreService_Nearest(t *testing.T) {
	svc, geodata, _ := newNearestService(t, memory.NewGeoQueryCacheRepository())

	geodata.EXPECT().Interpret(mock.Anything, "https://overpass.test/api/interpreter", BuildNearestQuery(bengaluru, 5000)).
		Return(repairShops(), nil).Once()

	centres, err := svc.Nearest(context.Background(), bengaluru, 0)
	require.NoError(t, err)

	require.Len(t, centres, 2)
	assert.Equal(t, "Quick Fix Garage", centres[0].Name)
	assert.Equal(t, "+91 80 1234", centres[0].Phone)
	assert.Equal(t, 12.975, centres[0].Lat)
	assert.Equal(t, 0.38, centres[0].DistanceKm)

	assert.Equal(t, "Service Centre", centres[1].Name)
	assert.Equal(t, "N/A", centres[1].Phone)
	assert.Equal(t, 1.1, centres[1].DistanceKm)

	// Second call is served from the cache.
	cached, err := svc.Nearest(context.Background(), bengaluru, 5000)
	require.NoError(t, err)
	assert.Equal(t, centres, cached)
}

func TestNearestCentreService_CacheExpires(t *testing.T) {
	svc, geodata, clock := newNearestService(t, memory.NewGeoQueryCacheRepository())

	geodata.EXPECT().Interpret(mock.Anything, mock.Anything, mock.Anything).Return(repairShops(), nil).Twice()

	_, err := svc.Nearest(context.Background(), bengaluru, 3000)
	require.NoError(t, err)

	clock.current = clock.current.Add(6 * time.Minute)

	_, err = svc.Nearest(context.Background(), bengaluru, 3000)
	require.NoError(t, err)
}

func TestNearestCentreService_Validation(t *testing.T) {
	svc, _, _ := newNearestService(t, memory.NewGeoQueryCacheRepository())

	_, err := svc.Nearest(context.Background(), entity.Coordinate{Lat: 91, Lon: 0}, 1000)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.Nearest(context.Background(), bengaluru, -5)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.Nearest(context.Background(), bengaluru, maxNearestRadius+1)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestNearestCentreService_UpstreamFailure(t *testing.T) {
	svc, geodata, _ := newNearestService(t, memory.NewGeoQueryCacheRepository())

	geodata.EXPECT().Interpret(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrUpstreamError.WithDetails("status 504")).Once()

	centres, err := svc.Nearest(context.Background(), bengaluru, 0)
	assert.Nil(t, centres)
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamError)
}

func TestNearestCentreService_CacheFailuresAreSwallowed(t *testing.T) {
	cache := mockRepo.NewMockGeoQueryCacheRepository(t)
	svc, geodata, _ := newNearestService(t, cache)

	cache.EXPECT().Find(mock.Anything, "nearest:12.9716:77.5946:5000").Return(nil, errors.New("connection reset")).Once()
	cache.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("connection reset")).Once()
	geodata.EXPECT().Interpret(mock.Anything, mock.Anything, mock.Anything).Return(repairShops(), nil).Once()

	centres, err := svc.Nearest(context.Background(), bengaluru, 0)
	require.NoError(t, err)
	assert.Len(t, centres, 2)
}

func TestNearestCentreService_DistanceUsesMeanEarthRadius(t *testing.T) {
	svc, geodata, _ := newNearestService(t, memory.NewGeoQueryCacheRepository())
	origin := entity.Coordinate{Lat: 0, Lon: 0}

	geodata.EXPECT().Interpret(mock.Anything, mock.Anything, mock.Anything).
		Return([]entity.GeoElement{{Type: "node", ID: 1, Lat: floatPtr(0), Lon: floatPtr(0.09)}}, nil).Once()

	centres, err := svc.Nearest(context.Background(), origin, 0)
	require.NoError(t, err)
	require.Len(t, centres, 1)

	// 0.09 degrees of the equator is 10.007 km on a 6371 km sphere and 10.019 km on WGS84's.
	assert.Equal(t, 10.01, centres[0].DistanceKm)
}

func TestNearestCentreService_NearbyFixesShareCacheEntry(t *testing.T) {
	svc, geodata, _ := newNearestService(t, memory.NewGeoQueryCacheRepository())

	geodata.EXPECT().Interpret(mock.Anything, mock.Anything, mock.Anything).Return(repairShops(), nil).Once()

	_, err := svc.Nearest(context.Background(), bengaluru, 0)
	require.NoError(t, err)

	// A couple of metres away, as a later GPS fix of the same driver would be.
	drifted := entity.Coordinate{Lat: 12.97162, Lon: 77.59458}
	assert.Equal(t, nearestCacheKey(bengaluru, 5000), nearestCacheKey(drifted, 5000))

	centres, err := svc.Nearest(context.Background(), drifted, 0)
	require.NoError(t, err)
	require.Len(t, centres, 2)
	assert.Equal(t, "Quick Fix Garage", centres[0].Name)
	assert.Equal(t, 0.38, centres[0].DistanceKm)
}

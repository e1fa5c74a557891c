package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"servicelocator/config"
	"servicelocator/internal/domain/entity"
	domainerrors "servicelocator/internal/domain/errors"
	mockUsecase "servicelocator/internal/mocks/usecase"
	"servicelocator/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionFixture struct {
	svc         *sessionService
	geolocation *mockUsecase.MockGeolocationUsecase
	discovery   *mockUsecase.MockDiscoveryUsecase
	maps        *mapFixture
	clock       *fakeClock
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()

	maps, _ := newMapFixture(t, false)
	f := &sessionFixture{
		geolocation: mockUsecase.NewMockGeolocationUsecase(t),
		discovery:   mockUsecase.NewMockDiscoveryUsecase(t),
		maps:        maps,
		clock:       &fakeClock{current: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)},
	}

	f.svc = NewSessionService(SessionServiceParams{
		Geolocation: f.geolocation,
		Discovery:   f.discovery,
		Maps:        maps.svc,
		Config:      &config.Config{Session: &config.SessionConfig{IdleTTL: 30 * time.Minute}},
		Logger:      testLogger(),
	}).(*sessionService)
	f.svc.now = f.clock.Now

	return f
}

// start opens a session at bengaluru.
func (f *sessionFixture) start(t *testing.T) *usecase.SessionView {
	t.Helper()

	f.geolocation.EXPECT().Locate(mock.Anything, mock.Anything).
		Return(&entity.Position{Coordinate: bengaluru, Timestamp: f.clock.Now()}, nil).Once()

	view, err := f.svc.Start(context.Background(), &usecase.StartSessionInput{})
	require.NoError(t, err)

	return view
}

func TestSessionService_Start(t *testing.T) {
	f := newSessionFixture(t)

	view := f.start(t)

	assert.NotEqual(t, uuid.Nil, view.ID)
	assert.Equal(t, bengaluru, view.Origin.Coordinate)
	assert.Empty(t, view.POIs)
	assert.Nil(t, view.Selection)
	require.NotNil(t, view.Map)
	assert.Equal(t, bengaluru, view.Map.Center)
	assert.Equal(t, defaultMapZoom, view.Map.Zoom)
	assert.Equal(t, userMarkerLabel, view.Map.User.Label)

	got, err := f.svc.Get(context.Background(), view.ID)
	require.NoError(t, err)
	assert.Equal(t, view.ID, got.ID)
}

func TestSessionService_Start_GeolocationError(t *testing.T) {
	f := newSessionFixture(t)

	f.geolocation.EXPECT().Locate(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrPermissionDenied).Once()

	view, err := f.svc.Start(context.Background(), &usecase.StartSessionInput{})
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
	assert.Empty(t, f.svc.sessions)
}

func TestSessionService_UnknownSession(t *testing.T) {
	f := newSessionFixture(t)
	id := uuid.New()

	_, err := f.svc.Get(context.Background(), id)
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)

	_, err = f.svc.Search(context.Background(), id, "Toyota")
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)

	_, err = f.svc.Select(context.Background(), id, 0)
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)

	_, err = f.svc.DirectionsURL(context.Background(), id)
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}

func TestSessionService_Search(t *testing.T) {
	f := newSessionFixture(t)
	view := f.start(t)

	f.discovery.EXPECT().Discover(mock.Anything, bengaluru, "Toyota").
		Return(&usecase.DiscoveryResult{POIs: samplePOIs(), Radius: 15000, FromCache: true}, nil).Once()

	outcome, err := f.svc.Search(context.Background(), view.ID, "  Toyota\n")
	require.NoError(t, err)

	assert.True(t, outcome.Applied)
	assert.Equal(t, uint64(1), outcome.Sequence)
	assert.Equal(t, "Toyota", outcome.Session.Brand)
	assert.Len(t, outcome.Session.POIs, 3)
	assert.Equal(t, 15000, outcome.Session.Radius)
	assert.True(t, outcome.Session.FromCache)
	require.Len(t, outcome.Session.Map.Markers, 3)
	assert.Equal(t, 1, outcome.Session.Map.Markers[0].Index)
	assert.NotNil(t, outcome.Session.Map.Bounds)
}

func TestSessionService_Search_EmptyBrandClearsResults(t *testing.T) {
	f := newSessionFixture(t)
	view := f.start(t)

	f.discovery.EXPECT().Discover(mock.Anything, bengaluru, "Toyota").
		Return(&usecase.DiscoveryResult{POIs: samplePOIs(), Radius: 15000}, nil).Once()

	_, err := f.svc.Search(context.Background(), view.ID, "Toyota")
	require.NoError(t, err)

	outcome, err := f.svc.Search(context.Background(), view.ID, "   ")
	require.NoError(t, err)

	assert.True(t, outcome.Applied)
	assert.Equal(t, uint64(2), outcome.Sequence)
	assert.Empty(t, outcome.Session.Brand)
	assert.Empty(t, outcome.Session.POIs)
	assert.Empty(t, outcome.Session.Map.Markers)
	assert.Zero(t, outcome.Session.Radius)
}

func TestSessionService_Search_Error(t *testing.T) {
	f := newSessionFixture(t)
	view := f.start(t)

	f.discovery.EXPECT().Discover(mock.Anything, bengaluru, "Toyota").
		Return(nil, domainerrors.ErrDiscoveryExhausted).Once()

	outcome, err := f.svc.Search(context.Background(), view.ID, "Toyota")
	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, domainerrors.ErrDiscoveryExhausted)
}

func TestSessionService_Search_SupersededIsDiscarded(t *testing.T) {
	f := newSessionFixture(t)
	view := f.start(t)
	ctx := context.Background()

	hondaPOIs := []entity.POI{{ID: "9", Coordinate: entity.Coordinate{Lat: 12.99, Lon: 77.61}, Distance: 2500}}

	var newer *usecase.SearchOutcome
	f.discovery.EXPECT().Discover(mock.Anything, bengaluru, "Toyota").
		RunAndReturn(func(ctx context.Context, _ entity.Coordinate, _ string) (*usecase.DiscoveryResult, error) {
			// A second search is issued and completes while the first is in flight.
			var err error
			newer, err = f.svc.Search(ctx, view.ID, "Honda")
			require.NoError(t, err)

			return &usecase.DiscoveryResult{POIs: samplePOIs(), Radius: 15000}, nil
		}).Once()
	f.discovery.EXPECT().Discover(mock.Anything, bengaluru, "Honda").
		Return(&usecase.DiscoveryResult{POIs: hondaPOIs, Radius: 5000}, nil).Once()

	older, err := f.svc.Search(ctx, view.ID, "Toyota")
	require.NoError(t, err)

	require.NotNil(t, newer)
	assert.True(t, newer.Applied)
	assert.Equal(t, uint64(2), newer.Sequence)

	assert.False(t, older.Applied)
	assert.Equal(t, uint64(1), older.Sequence)
	assert.Equal(t, "Honda", older.Session.Brand)
	assert.Equal(t, hondaPOIs, older.Session.POIs)

	current, err := f.svc.Get(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, "Honda", current.Brand)
	assert.Equal(t, 5000, current.Radius)
}

func TestSessionService_Search_SupersededErrorIsDiscarded(t *testing.T) {
	f := newSessionFixture(t)
	view := f.start(t)

	f.discovery.EXPECT().Discover(mock.Anything, bengaluru, "Toyota").
		RunAndReturn(func(ctx context.Context, _ entity.Coordinate, _ string) (*usecase.DiscoveryResult, error) {
			_, err := f.svc.Search(ctx, view.ID, "")
			require.NoError(t, err)

			return nil, domainerrors.ErrDiscoveryExhausted
		}).Once()

	outcome, err := f.svc.Search(context.Background(), view.ID, "Toyota")
	require.NoError(t, err)
	assert.False(t, outcome.Applied)
}

func TestSessionService_Select(t *testing.T) {
	f := newSessionFixture(t)
	view := f.start(t)
	ctx := context.Background()
	pois := samplePOIs()

	f.discovery.EXPECT().Discover(mock.Anything, bengaluru, "Toyota").
		Return(&usecase.DiscoveryResult{POIs: pois, Radius: 15000}, nil).Once()
	_, err := f.svc.Search(ctx, view.ID, "Toyota")
	require.NoError(t, err)

	route := &entity.RouteGeometry{Points: []entity.Coordinate{bengaluru, pois[1].Coordinate}}
	f.maps.routes.EXPECT().Route(mock.Anything, bengaluru, pois[1].Coordinate).Return(route, nil).Once()
	f.maps.details.EXPECT().Details(mock.Anything, pois[1].Coordinate).Return(nil, errors.New("nominatim down")).Once()

	selected, err := f.svc.Select(ctx, view.ID, 1)
	require.NoError(t, err)

	require.NotNil(t, selected.Selection)
	assert.Equal(t, "101", selected.Selection.Centre.ID)
	assert.Equal(t, route, selected.Selection.Route)
	assert.Nil(t, selected.Selection.Details)
	assert.Equal(t, selectedZoom, selected.Map.Zoom)
	assert.Equal(t, pois[1].Coordinate, selected.Map.Center)
	assert.Equal(t, route.Points, selected.Map.Route)
	assert.True(t, selected.Map.Markers[1].Selected)
	assert.False(t, selected.Map.Markers[0].Selected)

	url, err := f.svc.DirectionsURL(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t,
		"https://www.google.com/maps/dir/?api=1&origin=12.9716,77.5946&destination=12.98,77.6&travelmode=driving",
		url)

	f.maps.qrcodes.EXPECT().GenerateDirectionsQR(url).Return([]byte("png"), nil).Once()
	png, err := f.svc.DirectionsQR(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestSessionService_Select_InvalidIndex(t *testing.T) {
	f := newSessionFixture(t)
	view := f.start(t)

	for _, index := range []int{-1, 0, 5} {
		_, err := f.svc.Select(context.Background(), view.ID, index)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidSelection, "index %d", index)
	}
}

func TestSessionService_Select_ResultsReplacedWhileLoading(t *testing.T) {
	f := newSessionFixture(t)
	view := f.start(t)
	ctx := context.Background()
	pois := samplePOIs()

	f.discovery.EXPECT().Discover(mock.Anything, bengaluru, "Toyota").
		Return(&usecase.DiscoveryResult{POIs: pois, Radius: 15000}, nil).Once()
	_, err := f.svc.Search(ctx, view.ID, "Toyota")
	require.NoError(t, err)

	f.maps.routes.EXPECT().Route(mock.Anything, bengaluru, pois[0].Coordinate).
		RunAndReturn(func(ctx context.Context, _, _ entity.Coordinate) (*entity.RouteGeometry, error) {
			_, err := f.svc.Search(ctx, view.ID, "")
			require.NoError(t, err)

			return &entity.RouteGeometry{}, nil
		}).Once()
	f.maps.details.EXPECT().Details(mock.Anything, pois[0].Coordinate).Return(&entity.CentreDetails{}, nil).Once()

	_, err = f.svc.Select(ctx, view.ID, 0)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidSelection)
}

func TestSessionService_Directions_NoSelection(t *testing.T) {
	f := newSessionFixture(t)
	view := f.start(t)

	_, err := f.svc.DirectionsURL(context.Background(), view.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNoSelection)

	_, err = f.svc.DirectionsQR(context.Background(), view.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNoSelection)
}

func TestSessionService_IdleEviction(t *testing.T) {
	f := newSessionFixture(t)
	first := f.start(t)

	f.clock.current = f.clock.current.Add(20 * time.Minute)
	second := f.start(t)

	assert.Equal(t, 0, f.svc.EvictIdle(f.clock.Now()))

	f.clock.current = f.clock.current.Add(15 * time.Minute)
	assert.Equal(t, 1, f.svc.EvictIdle(f.clock.Now()))

	_, err := f.svc.Get(context.Background(), first.ID)
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)

	_, err = f.svc.Get(context.Background(), second.ID)
	require.NoError(t, err)
}

func TestSessionService_LookupEvictsLazily(t *testing.T) {
	f := newSessionFixture(t)
	view := f.start(t)

	f.clock.current = f.clock.current.Add(31 * time.Minute)

	_, err := f.svc.Get(context.Background(), view.ID)
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
	assert.Empty(t, f.svc.sessions)
}

func TestNewSessionService_DefaultIdleTTL(t *testing.T) {
	svc := NewSessionService(SessionServiceParams{
		Config: &config.Config{},
		Logger: testLogger(),
	}).(*sessionService)

	assert.Equal(t, time.Hour, svc.idleTTL)
}

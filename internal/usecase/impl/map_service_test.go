package impl

import (
	"context"
	"errors"
	"testing"

	"servicelocator/config"
	"servicelocator/internal/domain/entity"
	domainerrors "servicelocator/internal/domain/errors"
	mockService "servicelocator/internal/mocks/service"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mapFixture struct {
	svc     *mapService
	routes  *mockService.MockRouteProvider
	details *mockService.MockPlaceDetailsProvider
	qrcodes *mockService.MockQRCodeService
}

func newMapFixture(t *testing.T, withTiles bool) (*mapFixture, *mockService.MockTileServer) {
	t.Helper()

	f := &mapFixture{
		routes:  mockService.NewMockRouteProvider(t),
		details: mockService.NewMockPlaceDetailsProvider(t),
		qrcodes: mockService.NewMockQRCodeService(t),
	}

	params := MapServiceParams{
		Routes:  f.routes,
		Details: f.details,
		QRCodes: f.qrcodes,
		Logger:  testLogger(),
	}

	var tiles *mockService.MockTileServer
	if withTiles {
		tiles = mockService.NewMockTileServer(t)
		params.Tiles = tiles
	}
	f.svc = NewMapService(params).(*mapService)

	return f, tiles
}

func samplePOIs() []entity.POI {
	return []entity.POI{
		{
			ID:         "202",
			Coordinate: entity.Coordinate{Lat: 12.9750, Lon: 77.5950},
			Tags:       map[string]string{"brand": "Toyota", "addr:street": "100 Feet Road", "addr:housenumber": "12"},
			Distance:   42,
		},
		{
			ID:         "101",
			Coordinate: entity.Coordinate{Lat: 12.9800, Lon: 77.6000},
			Tags:       map[string]string{"name": "Toyota Service Indiranagar", "brand": "Toyota"},
			Distance:   1234.5,
		},
		{
			ID:         "3",
			Coordinate: entity.Coordinate{Lat: 13.0500, Lon: 77.7000},
			Distance:   14321,
		},
	}
}

func TestMapService_Init(t *testing.T) {
	f, _ := newMapFixture(t, false)

	handle := f.svc.Init(bengaluru, entity.Viewport{})
	assert.Equal(t, bengaluru, handle.Center)
	assert.Equal(t, 12, handle.Zoom)
	assert.Equal(t, defaultViewport, handle.Viewport)
	assert.Nil(t, handle.Bounds)

	handle = f.svc.Init(bengaluru, entity.Viewport{Width: 400, Height: 300})
	assert.Equal(t, entity.Viewport{Width: 400, Height: 300}, handle.Viewport)
}

func TestMapService_FitResults(t *testing.T) {
	f, _ := newMapFixture(t, false)
	handle := f.svc.Init(bengaluru, entity.Viewport{Width: 800, Height: 600})

	t.Run("empty list is a no-op", func(t *testing.T) {
		before := *handle
		f.svc.FitResults(handle, bengaluru, nil)
		assert.Equal(t, before, *handle)
	})

	t.Run("covers every POI and the user", func(t *testing.T) {
		pois := samplePOIs()
		f.svc.FitResults(handle, bengaluru, pois)

		require.NotNil(t, handle.Bounds)
		bound := orb.Bound{
			Min: orb.Point{handle.Bounds.SouthWest.Lon, handle.Bounds.SouthWest.Lat},
			Max: orb.Point{handle.Bounds.NorthEast.Lon, handle.Bounds.NorthEast.Lat},
		}
		assert.True(t, bound.Contains(toPoint(bengaluru)))
		for _, poi := range pois {
			assert.True(t, bound.Contains(toPoint(poi.Coordinate)), poi.ID)
		}

		// 0.2 padding on each side of the raw extent
		assert.InDelta(t, 12.9716-(13.05-12.9716)*0.2, handle.Bounds.SouthWest.Lat, 1e-9)
		assert.InDelta(t, 77.70+(77.70-77.5946)*0.2, handle.Bounds.NorthEast.Lon, 1e-9)

		center := bound.Center()
		assert.InDelta(t, center.Lat(), handle.Center.Lat, 1e-9)
		assert.InDelta(t, center.Lon(), handle.Center.Lon, 1e-9)

		assert.Equal(t, fitZoom(bound, handle.Viewport), handle.Zoom)
		assert.Greater(t, handle.Zoom, 0)
		assert.Less(t, handle.Zoom, maxFitZoom)
	})
}

func TestFitZoom(t *testing.T) {
	viewport := entity.Viewport{Width: 800, Height: 600}
	bound := padBound(orb.Bound{Min: orb.Point{77.5946, 12.9716}, Max: orb.Point{77.70, 13.05}}, fitPaddingRatio)

	zoom := fitZoom(bound, viewport)
	require.Less(t, zoom, maxFitZoom)

	fits := func(z int) bool {
		return fitZoom(bound, entity.Viewport{Width: viewport.Width << (maxFitZoom - z), Height: viewport.Height << (maxFitZoom - z)}) == maxFitZoom
	}
	assert.True(t, fits(zoom), "fits at the chosen zoom")
	assert.False(t, fits(zoom+1), "does not fit one level deeper")

	single := orb.Bound{Min: orb.Point{77.5946, 12.9716}, Max: orb.Point{77.5946, 12.9716}}
	assert.Equal(t, maxFitZoom, fitZoom(single, viewport))

	world := orb.Bound{Min: orb.Point{-180, -85}, Max: orb.Point{180, 85}}
	assert.Equal(t, 0, fitZoom(world, entity.Viewport{Width: 256, Height: 200}))
}

func TestMapService_Recenter(t *testing.T) {
	f, _ := newMapFixture(t, false)
	handle := f.svc.Init(bengaluru, entity.Viewport{})
	target := entity.Coordinate{Lat: 12.98, Lon: 77.60}

	f.svc.Recenter(handle, target, 15)
	assert.Equal(t, target, handle.Center)
	assert.Equal(t, 15, handle.Zoom)

	f.svc.Recenter(handle, bengaluru, 0)
	assert.Equal(t, bengaluru, handle.Center)
	assert.Equal(t, 15, handle.Zoom)
}

func TestMapService_Render(t *testing.T) {
	f, tiles := newMapFixture(t, true)
	tiles.EXPECT().URLTemplate().Return("/tiles/basemap/{z}/{x}/{y}.mvt")

	pois := samplePOIs()
	handle := f.svc.Init(bengaluru, entity.Viewport{})
	selection := &entity.Selection{
		Centre: pois[1],
		Route:  &entity.RouteGeometry{Points: []entity.Coordinate{bengaluru, pois[1].Coordinate}},
	}

	view := f.svc.Render(handle, bengaluru, pois, selection)

	assert.Equal(t, "/tiles/basemap/{z}/{x}/{y}.mvt", view.TileURL)
	assert.Equal(t, config.DefaultAttribution, view.Attribution)
	assert.Equal(t, bengaluru, view.User.Position)
	assert.Equal(t, 12, view.Zoom)

	require.Len(t, view.Markers, 3)
	assert.Equal(t, "Toyota", view.Markers[0].Label)
	assert.Equal(t, "100 Feet Road 12", view.Markers[0].Address)
	assert.Equal(t, "0.04 km", view.Markers[0].DistanceLabel)
	assert.Equal(t, "Toyota Service Indiranagar", view.Markers[1].Label)
	assert.Equal(t, "1.23 km", view.Markers[1].DistanceLabel)
	assert.True(t, view.Markers[1].Selected)
	assert.False(t, view.Markers[0].Selected)
	assert.Equal(t, "Service Center", view.Markers[2].Label)
	assert.Equal(t, "14.32 km", view.Markers[2].DistanceLabel)
	assert.Equal(t, 3, view.Markers[2].Index)

	require.NotNil(t, view.Highlight)
	assert.Equal(t, pois[0].Coordinate, view.Highlight.Center)
	assert.Equal(t, 100.0, view.Highlight.Radius)
	assert.Equal(t, selection.Route.Points, view.Route)
}

func TestMapService_Render_NoResults(t *testing.T) {
	f, _ := newMapFixture(t, false)

	view := f.svc.Render(nil, bengaluru, nil, nil)

	assert.Equal(t, config.DefaultTileURL, view.TileURL)
	assert.Empty(t, view.Markers)
	assert.Nil(t, view.Highlight)
	assert.Nil(t, view.Route)
	assert.Equal(t, bengaluru, view.Center)
}

func TestMapService_Select(t *testing.T) {
	poi := samplePOIs()[1]
	route := &entity.RouteGeometry{Points: []entity.Coordinate{bengaluru, poi.Coordinate}}
	address := "Indiranagar, Bengaluru"
	details := &entity.CentreDetails{Address: &address}

	t.Run("both lookups succeed", func(t *testing.T) {
		f, _ := newMapFixture(t, false)
		f.routes.EXPECT().Route(mock.Anything, bengaluru, poi.Coordinate).Return(route, nil).Once()
		f.details.EXPECT().Details(mock.Anything, poi.Coordinate).Return(details, nil).Once()

		selection := f.svc.Select(context.Background(), bengaluru, poi)

		assert.Equal(t, poi, selection.Centre)
		assert.Equal(t, route, selection.Route)
		assert.Equal(t, details, selection.Details)
		assert.Equal(t, "https://www.google.com/maps/dir/?api=1&origin=12.9716,77.5946&destination=12.98,77.6&travelmode=driving", selection.DirectionsURL)
	})

	t.Run("failures degrade silently", func(t *testing.T) {
		f, _ := newMapFixture(t, false)
		f.routes.EXPECT().Route(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("osrm down")).Once()
		f.details.EXPECT().Details(mock.Anything, mock.Anything).Return(details, nil).Once()

		selection := f.svc.Select(context.Background(), bengaluru, poi)

		assert.Nil(t, selection.Route)
		assert.Equal(t, details, selection.Details)
	})

	t.Run("both fail", func(t *testing.T) {
		f, _ := newMapFixture(t, false)
		f.routes.EXPECT().Route(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("osrm down")).Once()
		f.details.EXPECT().Details(mock.Anything, mock.Anything).Return(nil, errors.New("nominatim down")).Once()

		selection := f.svc.Select(context.Background(), bengaluru, poi)

		assert.Nil(t, selection.Route)
		assert.Nil(t, selection.Details)
		assert.NotEmpty(t, selection.DirectionsURL)
	})
}

func TestMapService_RouteValidation(t *testing.T) {
	f, _ := newMapFixture(t, false)

	_, err := f.svc.Route(context.Background(), bengaluru, entity.Coordinate{Lat: 100})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = f.svc.Details(context.Background(), entity.Coordinate{Lon: 200})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestMapService_DirectionsQR(t *testing.T) {
	f, _ := newMapFixture(t, false)
	dest := entity.Coordinate{Lat: 12.98, Lon: 77.6}

	f.qrcodes.EXPECT().
		GenerateDirectionsQR("https://www.google.com/maps/dir/?api=1&origin=12.9716,77.5946&destination=12.98,77.6&travelmode=driving").
		Return([]byte{0x89, 0x50}, nil).
		Once()

	png, err := f.svc.DirectionsQR(bengaluru, dest)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50}, png)
}

func TestMapService_Tile(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		f, _ := newMapFixture(t, false)

		_, err := f.svc.Tile(context.Background(), "basemap", 1, 0, 0, "mvt")
		assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	})

	t.Run("delegates", func(t *testing.T) {
		f, tiles := newMapFixture(t, true)
		tile := &entity.Tile{Data: []byte{1, 2, 3}}
		tiles.EXPECT().Tile(mock.Anything, "basemap", 3, 1, 2, "mvt").Return(tile, nil).Once()

		got, err := f.svc.Tile(context.Background(), "basemap", 3, 1, 2, "mvt")
		require.NoError(t, err)
		assert.Equal(t, tile, got)
	})
}

func TestDistanceLabel(t *testing.T) {
	assert.Equal(t, "", distanceLabel(0))
	assert.Equal(t, "0.1 km", distanceLabel(100))
	assert.Equal(t, "1.24 km", distanceLabel(1235))
	assert.Equal(t, "15 km", distanceLabel(15000))
}

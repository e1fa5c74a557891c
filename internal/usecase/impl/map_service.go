package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"servicelocator/config"
	deliverycontext "servicelocator/internal/delivery/context"
	"servicelocator/internal/domain/entity"
	domainerrors "servicelocator/internal/domain/errors"
	"servicelocator/internal/domain/service"
	"servicelocator/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	defaultMapZoom   = 12
	selectedZoom     = 15
	maxFitZoom       = 18
	fitPaddingRatio  = 0.2
	tilePixels       = 256
	minHighlightSize = 100.0
	maxMercatorLat   = 85.0511287798

	markerFallbackLabel = "Service Center"
	userMarkerLabel     = "Your location"
	directionsBaseURL   = "https://www.google.com/maps/dir/"
)

var defaultViewport = entity.Viewport{Width: 800, Height: 600}

// mapService implements the MapUsecase interface.
type mapService struct {
	routes  service.RouteProvider
	details service.PlaceDetailsProvider
	tiles   service.TileServer
	qrcodes service.QRCodeService
	logger  *slog.Logger
}

// MapServiceParams holds dependencies for MapService, injected by Fx.
type MapServiceParams struct {
	fx.In

	Routes  service.RouteProvider
	Details service.PlaceDetailsProvider
	Tiles   service.TileServer `optional:"true"`
	QRCodes service.QRCodeService
	Logger  *slog.Logger
}

// NewMapService is the constructor for mapService.
func NewMapService(params MapServiceParams) usecase.MapUsecase {
	return &mapService{
		routes:  params.Routes,
		details: params.Details,
		tiles:   params.Tiles,
		qrcodes: params.QRCodes,
		logger:  params.Logger,
	}
}

func (srv *mapService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Init centres a new handle on origin at the default zoom.
func (srv *mapService) Init(origin entity.Coordinate, viewport entity.Viewport) *entity.MapHandle {
	if viewport.Width <= 0 || viewport.Height <= 0 {
		viewport = defaultViewport
	}

	return &entity.MapHandle{
		Center:   origin,
		Zoom:     defaultMapZoom,
		Viewport: viewport,
	}
}

// FitResults recentres the handle on the padded bounds of all POIs and the
// user, at the deepest zoom where those bounds fit the viewport.
func (srv *mapService) FitResults(handle *entity.MapHandle, origin entity.Coordinate, pois []entity.POI) {
	if handle == nil || len(pois) == 0 {
		return
	}

	bound := orb.Bound{Min: toPoint(origin), Max: toPoint(origin)}
	for _, poi := range pois {
		bound = bound.Extend(toPoint(poi.Coordinate))
	}
	bound = padBound(bound, fitPaddingRatio)

	center := bound.Center()
	handle.Center = entity.Coordinate{Lat: center.Lat(), Lon: center.Lon()}
	handle.Zoom = fitZoom(bound, handle.Viewport)
	handle.Bounds = &entity.Bounds{
		SouthWest: entity.Coordinate{Lat: bound.Min.Lat(), Lon: bound.Min.Lon()},
		NorthEast: entity.Coordinate{Lat: bound.Max.Lat(), Lon: bound.Max.Lon()},
	}
}

// Recenter moves the handle to coord; a non-positive zoom keeps the current one.
func (srv *mapService) Recenter(handle *entity.MapHandle, coord entity.Coordinate, zoom int) {
	if handle == nil {
		return
	}

	handle.Center = coord
	if zoom > 0 {
		handle.Zoom = zoom
	}
}

// Render builds the drawable view of the handle, results and selection.
func (srv *mapService) Render(handle *entity.MapHandle, origin entity.Coordinate, pois []entity.POI, selection *entity.Selection) *entity.MapView {
	if handle == nil {
		handle = srv.Init(origin, entity.Viewport{})
	}

	tileURL := config.DefaultTileURL
	if srv.tiles != nil {
		tileURL = srv.tiles.URLTemplate()
	}

	view := &entity.MapView{
		TileURL:     tileURL,
		Attribution: config.DefaultAttribution,
		Center:      handle.Center,
		Zoom:        handle.Zoom,
		Bounds:      handle.Bounds,
		User: entity.Marker{
			ID:       "user",
			Position: origin,
			Label:    userMarkerLabel,
		},
		Markers: make([]entity.Marker, 0, len(pois)),
	}

	for idx, poi := range pois {
		view.Markers = append(view.Markers, entity.Marker{
			Index:         idx + 1,
			ID:            poi.ID,
			Position:      poi.Coordinate,
			Label:         poi.Label(markerFallbackLabel),
			Address:       poi.StreetAddress(),
			Distance:      poi.Distance,
			DistanceLabel: distanceLabel(poi.Distance),
			Selected:      selection != nil && selection.Centre.ID == poi.ID,
		})
	}

	if len(pois) > 0 {
		nearest := pois[0]
		view.Highlight = &entity.Circle{
			Center: nearest.Coordinate,
			Radius: math.Max(nearest.Distance, minHighlightSize),
		}
	}

	if selection != nil && selection.Route != nil {
		view.Route = selection.Route.Points
	}

	return view
}

// Select fetches route and details for poi concurrently. Failures are logged
// and leave the corresponding field nil.
func (srv *mapService) Select(ctx context.Context, origin entity.Coordinate, poi entity.POI) *entity.Selection {
	selection := &entity.Selection{
		Centre:        poi,
		DirectionsURL: srv.DirectionsURL(origin, poi.Coordinate),
	}
	logger := srv.log(ctx).With(slog.String("poi_id", poi.ID))

	// Lookups never fail the group, so neither cancels the other.
	var group errgroup.Group
	group.Go(func() error {
		route, err := srv.Route(ctx, origin, poi.Coordinate)
		if err != nil {
			logger.Warn("Route lookup failed", slog.Any("error", err))

			return nil
		}
		selection.Route = route

		return nil
	})
	group.Go(func() error {
		details, err := srv.Details(ctx, poi.Coordinate)
		if err != nil {
			logger.Warn("Details lookup failed", slog.Any("error", err))

			return nil
		}
		selection.Details = details

		return nil
	})
	_ = group.Wait()

	return selection
}

func (srv *mapService) Route(ctx context.Context, from, to entity.Coordinate) (*entity.RouteGeometry, error) {
	if !from.IsValid() || !to.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("route endpoints out of range")
	}

	return srv.routes.Route(ctx, from, to)
}

func (srv *mapService) Details(ctx context.Context, at entity.Coordinate) (*entity.CentreDetails, error) {
	if !at.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("coordinate out of range")
	}

	return srv.details.Details(ctx, at)
}

// DirectionsURL links to external driving directions from origin to dest.
func (srv *mapService) DirectionsURL(origin, dest entity.Coordinate) string {
	return fmt.Sprintf("%s?api=1&origin=%s&destination=%s&travelmode=driving",
		directionsBaseURL, latLon(origin), latLon(dest))
}

func (srv *mapService) DirectionsQR(origin, dest entity.Coordinate) ([]byte, error) {
	return srv.qrcodes.GenerateDirectionsQR(srv.DirectionsURL(origin, dest))
}

func (srv *mapService) Tile(ctx context.Context, tileset string, z, x, y int, ext string) (*entity.Tile, error) {
	if srv.tiles == nil {
		return nil, domainerrors.ErrNotFound.WithDetails("tile serving is disabled")
	}

	return srv.tiles.Tile(ctx, tileset, z, x, y, ext)
}

func toPoint(c entity.Coordinate) orb.Point {
	return orb.Point{c.Lon, c.Lat}
}

// padBound grows every side by ratio of the bound's span.
func padBound(bound orb.Bound, ratio float64) orb.Bound {
	dLon := (bound.Max.Lon() - bound.Min.Lon()) * ratio
	dLat := (bound.Max.Lat() - bound.Min.Lat()) * ratio

	return orb.Bound{
		Min: orb.Point{bound.Min.Lon() - dLon, math.Max(bound.Min.Lat()-dLat, -maxMercatorLat)},
		Max: orb.Point{bound.Max.Lon() + dLon, math.Min(bound.Max.Lat()+dLat, maxMercatorLat)},
	}
}

// fitZoom returns the deepest zoom at which bound fits into viewport pixels.
func fitZoom(bound orb.Bound, viewport entity.Viewport) int {
	if viewport.Width <= 0 || viewport.Height <= 0 {
		viewport = defaultViewport
	}

	for z := maxFitZoom; z > 0; z-- {
		northWest := maptile.Fraction(orb.Point{bound.Min.Lon(), bound.Max.Lat()}, maptile.Zoom(z))
		southEast := maptile.Fraction(orb.Point{bound.Max.Lon(), bound.Min.Lat()}, maptile.Zoom(z))

		width := (southEast.X() - northWest.X()) * tilePixels
		height := (southEast.Y() - northWest.Y()) * tilePixels
		if width <= float64(viewport.Width) && height <= float64(viewport.Height) {
			return z
		}
	}

	return 0
}

// distanceLabel renders meters as kilometres with at most two decimals.
func distanceLabel(meters float64) string {
	if meters <= 0 {
		return ""
	}

	km := math.Round(meters/1000*100) / 100

	return strconv.FormatFloat(km, 'f', -1, 64) + " km"
}

func latLon(c entity.Coordinate) string {
	return formatDegrees(c.Lat) + "," + formatDegrees(c.Lon)
}

package usecase

import (
	"context"

	"servicelocator/internal/domain/entity"
)

// MapUsecase presents discovery results on a map and resolves selections.
// Handle-taking operations mutate the handle in place.
type MapUsecase interface {
	Init(origin entity.Coordinate, viewport entity.Viewport) *entity.MapHandle
	FitResults(handle *entity.MapHandle, origin entity.Coordinate, pois []entity.POI)
	Recenter(handle *entity.MapHandle, coord entity.Coordinate, zoom int)
	Render(handle *entity.MapHandle, origin entity.Coordinate, pois []entity.POI, selection *entity.Selection) *entity.MapView

	// Select fetches route and details concurrently. It never fails; a failed lookup leaves its field nil.
	Select(ctx context.Context, origin entity.Coordinate, poi entity.POI) *entity.Selection

	Route(ctx context.Context, from, to entity.Coordinate) (*entity.RouteGeometry, error)
	Details(ctx context.Context, at entity.Coordinate) (*entity.CentreDetails, error)

	DirectionsURL(origin, dest entity.Coordinate) string
	DirectionsQR(origin, dest entity.Coordinate) ([]byte, error)

	// Tile serves one base-map tile.
	Tile(ctx context.Context, tileset string, z, x, y int, ext string) (*entity.Tile, error)
}

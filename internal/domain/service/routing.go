package service

import (
	"context"

	"servicelocator/internal/domain/entity"
)

// RouteProvider computes a driving route between two coordinates.
type RouteProvider interface {
	Route(ctx context.Context, from, to entity.Coordinate) (*entity.RouteGeometry, error)
}

// PlaceDetailsProvider looks up descriptive details of the place at a coordinate.
type PlaceDetailsProvider interface {
	Details(ctx context.Context, at entity.Coordinate) (*entity.CentreDetails, error)
}

// TileServer serves encoded base-map tiles.
type TileServer interface {
	// Tile returns the tile at z/x/y of tileset, or errors.ErrNotFound.
	Tile(ctx context.Context, tileset string, z, x, y int, ext string) (*entity.Tile, error)

	// URLTemplate is the client tile template served by this server.
	URLTemplate() string

	// Close stops background work.
	Close() error
}

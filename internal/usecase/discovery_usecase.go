package usecase

import (
	"context"

	"servicelocator/internal/domain/entity"
)

// DiscoveryResult is a sorted POI list and where it came from.
type DiscoveryResult struct {
	POIs      []entity.POI `json:"pois"`
	Radius    int          `json:"radius"`
	FromCache bool         `json:"from_cache"`
	Endpoint  string       `json:"endpoint,omitempty"`
	CacheKey  string       `json:"cache_key"`
}

// DiscoveryUsecase searches for service centres of a brand around an origin.
type DiscoveryUsecase interface {
	// Discover returns POIs sorted ascending by distance, or ErrEmptyBrand / ErrDiscoveryExhausted.
	Discover(ctx context.Context, origin entity.Coordinate, brand string) (*DiscoveryResult, error)
}

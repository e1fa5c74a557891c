package usecase

import (
	"context"

	"servicelocator/internal/domain/entity"
)

// NearestCentreUsecase lists the closest repair shops regardless of brand.
type NearestCentreUsecase interface {
	// Nearest returns at most the configured number of centres within radius meters; zero radius uses the default.
	Nearest(ctx context.Context, at entity.Coordinate, radius int) ([]entity.NearbyCentre, error)
}

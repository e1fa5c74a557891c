package usecase

import (
	"context"

	"servicelocator/internal/domain/entity"
	"servicelocator/internal/domain/service"
)

// LocateInput describes where a position should come from.
// A reported fix wins over an IP lookup of ClientIP.
type LocateInput struct {
	Reported *entity.ReportedPosition
	ClientIP string
	Options  *service.PositionOptions // Nil uses the configured defaults.
}

// GeolocationUsecase obtains the user's position once per discovery session.
type GeolocationUsecase interface {
	// Acquire asks source for a single fix and maps its failure to the geolocation error taxonomy.
	Acquire(ctx context.Context, source service.PositionSource, opts service.PositionOptions) (*entity.Position, error)

	// Locate picks the source for input and acquires a fix from it.
	Locate(ctx context.Context, input *LocateInput) (*entity.Position, error)

	// DefaultOptions returns the configured position options.
	DefaultOptions() service.PositionOptions
}

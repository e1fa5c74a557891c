package service

import (
	"context"
	"time"

	"servicelocator/internal/domain/entity"
)

// PositionOptions tunes a single position request.
type PositionOptions struct {
	HighAccuracy bool
	Timeout      time.Duration
	MaximumAge   time.Duration // Zero forbids reusing a previous fix.
}

// PositionSource produces the device position. Failures are reported as
// *entity.PositionError carrying a platform code.
type PositionSource interface {
	CurrentPosition(ctx context.Context, opts PositionOptions) (*entity.Position, error)
}

// PositionSourceFactory builds the position sources available to a request.
type PositionSourceFactory interface {
	// Reported wraps a fix or failure already obtained by the client.
	Reported(reported entity.ReportedPosition) PositionSource

	// ForClient resolves the client's address with an IP geolocation lookup.
	// It returns nil when no lookup provider is configured.
	ForClient(clientIP string) PositionSource
}

// Package geolocation provides position sources for the geolocation acquirer.
package geolocation

import (
	"context"
	"time"

	"servicelocator/internal/domain/entity"
	"servicelocator/internal/domain/service"
)

// reportedSource replays a fix or failure the client already obtained from its
// own Geolocation API.
type reportedSource struct {
	reported entity.ReportedPosition
	now      func() time.Time
}

// NewReportedSource wraps a client-reported position.
func NewReportedSource(reported entity.ReportedPosition) service.PositionSource {
	return &reportedSource{reported: reported, now: time.Now}
}

func (s *reportedSource) CurrentPosition(ctx context.Context, _ service.PositionOptions) (*entity.Position, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if s.reported.ErrorCode != 0 {
		return nil, &entity.PositionError{Code: s.reported.ErrorCode, Message: s.reported.ErrorMessage}
	}

	if s.reported.Lat == nil || s.reported.Lon == nil {
		return nil, &entity.PositionError{
			Code:    entity.GeolocationCodePositionUnavailable,
			Message: "no coordinates reported",
		}
	}

	coord := entity.Coordinate{Lat: *s.reported.Lat, Lon: *s.reported.Lon}
	if !coord.IsValid() {
		return nil, &entity.PositionError{
			Code:    entity.GeolocationCodePositionUnavailable,
			Message: "reported coordinates are out of range",
		}
	}

	return &entity.Position{
		Coordinate: coord,
		Accuracy:   s.reported.Accuracy,
		Timestamp:  s.now(),
	}, nil
}

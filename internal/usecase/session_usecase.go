// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"servicelocator/internal/domain/entity"

	"github.com/google/uuid"
)

// StartSessionInput starts a discovery session.
type StartSessionInput struct {
	LocateInput
	Viewport entity.Viewport
}

// SessionView is a snapshot of a discovery session.
type SessionView struct {
	ID        uuid.UUID         `json:"id"`
	Origin    entity.Position   `json:"origin"`
	Brand     string            `json:"brand,omitempty"`
	POIs      []entity.POI      `json:"pois"`
	Radius    int               `json:"radius,omitempty"`
	FromCache bool              `json:"from_cache"`
	Selection *entity.Selection `json:"selection,omitempty"`
	Map       *entity.MapView   `json:"map"`
	Sequence  uint64            `json:"sequence"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// SearchOutcome reports whether a search was applied. A search superseded by a
// newer one on the same session is discarded with Applied=false.
type SearchOutcome struct {
	Session  *SessionView `json:"session"`
	Sequence uint64       `json:"sequence"`
	Applied  bool         `json:"applied"`
}

// SessionUsecase keeps per-user discovery state between requests.
type SessionUsecase interface {
	Start(ctx context.Context, input *StartSessionInput) (*SessionView, error)
	Get(ctx context.Context, id uuid.UUID) (*SessionView, error)
	Search(ctx context.Context, id uuid.UUID, brand string) (*SearchOutcome, error)
	Select(ctx context.Context, id uuid.UUID, index int) (*SessionView, error)
	DirectionsURL(ctx context.Context, id uuid.UUID) (string, error)
	DirectionsQR(ctx context.Context, id uuid.UUID) ([]byte, error)

	// EvictIdle drops sessions idle since before now minus the idle TTL.
	EvictIdle(now time.Time) int
}

package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"servicelocator/config"
	deliverycontext "servicelocator/internal/delivery/context"
	"servicelocator/internal/domain/entity"
	domainerrors "servicelocator/internal/domain/errors"
	"servicelocator/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// discoverySession is the server-side state of one user's map page.
type discoverySession struct {
	id        uuid.UUID
	origin    entity.Position
	handle    *entity.MapHandle
	brand     entity.BrandFilter
	pois      []entity.POI
	radius    int
	fromCache bool
	selection *entity.Selection
	issued    uint64 // Sequence number of the latest search started on this session.
	updatedAt time.Time
}

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	geolocation usecase.GeolocationUsecase
	discovery   usecase.DiscoveryUsecase
	maps        usecase.MapUsecase
	idleTTL     time.Duration
	now         func() time.Time
	logger      *slog.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*discoverySession
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Geolocation usecase.GeolocationUsecase
	Discovery   usecase.DiscoveryUsecase
	Maps        usecase.MapUsecase
	Config      *config.Config
	Logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	idleTTL := config.DefaultSessionConfig().IdleTTL
	if params.Config.Session != nil && params.Config.Session.IdleTTL > 0 {
		idleTTL = params.Config.Session.IdleTTL
	}

	return &sessionService{
		geolocation: params.Geolocation,
		discovery:   params.Discovery,
		maps:        params.Maps,
		idleTTL:     idleTTL,
		now:         time.Now,
		logger:      params.Logger,
		sessions:    make(map[uuid.UUID]*discoverySession),
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Start acquires the user's position and opens a session around it.
func (srv *sessionService) Start(ctx context.Context, input *usecase.StartSessionInput) (*usecase.SessionView, error) {
	position, err := srv.geolocation.Locate(ctx, &input.LocateInput)
	if err != nil {
		return nil, err
	}

	now := srv.now()
	session := &discoverySession{
		id:        uuid.New(),
		origin:    *position,
		handle:    srv.maps.Init(position.Coordinate, input.Viewport),
		updatedAt: now,
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.evictLocked(now)
	srv.sessions[session.id] = session

	srv.log(ctx).Info("Discovery session started",
		slog.String("session_id", session.id.String()),
		slog.Int("active_sessions", len(srv.sessions)),
	)

	return srv.viewLocked(session), nil
}

func (srv *sessionService) Get(ctx context.Context, id uuid.UUID) (*usecase.SessionView, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	session, err := srv.lookupLocked(id)
	if err != nil {
		return nil, err
	}

	return srv.viewLocked(session), nil
}

// Search runs discovery for brand. Only the most recently issued search of a
// session is applied; an older one finishing later is discarded.
func (srv *sessionService) Search(ctx context.Context, id uuid.UUID, brand string) (*usecase.SearchOutcome, error) {
	srv.mu.Lock()
	session, err := srv.lookupLocked(id)
	if err != nil {
		srv.mu.Unlock()

		return nil, err
	}
	session.issued++
	sequence := session.issued
	origin := session.origin.Coordinate
	srv.mu.Unlock()

	filter := entity.NewBrandFilter(brand)

	var result *usecase.DiscoveryResult
	if !filter.IsEmpty() {
		result, err = srv.discovery.Discover(ctx, origin, filter.String())
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if sequence != session.issued {
		srv.log(ctx).Debug("Discarding superseded search",
			slog.String("session_id", id.String()),
			slog.Uint64("sequence", sequence),
			slog.Uint64("latest", session.issued),
		)

		return &usecase.SearchOutcome{Session: srv.viewLocked(session), Sequence: sequence}, nil
	}
	if err != nil {
		return nil, err
	}

	session.brand = filter
	session.selection = nil
	session.updatedAt = srv.now()

	if result == nil {
		session.pois = nil
		session.radius = 0
		session.fromCache = false
	} else {
		session.pois = result.POIs
		session.radius = result.Radius
		session.fromCache = result.FromCache
		srv.maps.FitResults(session.handle, origin, session.pois)
	}

	return &usecase.SearchOutcome{Session: srv.viewLocked(session), Sequence: sequence, Applied: true}, nil
}

// Select picks the POI at index of the current results and recentres on it.
func (srv *sessionService) Select(ctx context.Context, id uuid.UUID, index int) (*usecase.SessionView, error) {
	srv.mu.Lock()
	session, err := srv.lookupLocked(id)
	if err != nil {
		srv.mu.Unlock()

		return nil, err
	}
	if index < 0 || index >= len(session.pois) {
		srv.mu.Unlock()

		return nil, domainerrors.ErrInvalidSelection
	}
	poi := session.pois[index]
	sequence := session.issued
	origin := session.origin.Coordinate
	srv.mu.Unlock()

	selection := srv.maps.Select(ctx, origin, poi)

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if sequence != session.issued {
		return nil, domainerrors.ErrInvalidSelection.WithDetails("results changed while the selection was loading")
	}

	session.selection = selection
	session.updatedAt = srv.now()
	srv.maps.Recenter(session.handle, poi.Coordinate, selectedZoom)

	return srv.viewLocked(session), nil
}

func (srv *sessionService) DirectionsURL(ctx context.Context, id uuid.UUID) (string, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	session, err := srv.lookupLocked(id)
	if err != nil {
		return "", err
	}
	if session.selection == nil {
		return "", domainerrors.ErrNoSelection
	}

	return session.selection.DirectionsURL, nil
}

func (srv *sessionService) DirectionsQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	srv.mu.Lock()
	session, err := srv.lookupLocked(id)
	if err != nil {
		srv.mu.Unlock()

		return nil, err
	}
	if session.selection == nil {
		srv.mu.Unlock()

		return nil, domainerrors.ErrNoSelection
	}
	origin := session.origin.Coordinate
	dest := session.selection.Centre.Coordinate
	srv.mu.Unlock()

	return srv.maps.DirectionsQR(origin, dest)
}

func (srv *sessionService) EvictIdle(now time.Time) int {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.evictLocked(now)
}

func (srv *sessionService) evictLocked(now time.Time) int {
	evicted := 0
	for id, session := range srv.sessions {
		if srv.idle(session, now) {
			delete(srv.sessions, id)
			evicted++
		}
	}

	return evicted
}

func (srv *sessionService) idle(session *discoverySession, now time.Time) bool {
	return now.Sub(session.updatedAt) > srv.idleTTL
}

// lookupLocked returns a live session and marks it used.
func (srv *sessionService) lookupLocked(id uuid.UUID) (*discoverySession, error) {
	session, ok := srv.sessions[id]
	if !ok {
		return nil, domainerrors.ErrSessionNotFound
	}

	now := srv.now()
	if srv.idle(session, now) {
		delete(srv.sessions, id)

		return nil, domainerrors.ErrSessionNotFound
	}
	session.updatedAt = now

	return session, nil
}

func (srv *sessionService) viewLocked(session *discoverySession) *usecase.SessionView {
	pois := make([]entity.POI, len(session.pois))
	copy(pois, session.pois)
	handle := *session.handle

	return &usecase.SessionView{
		ID:        session.id,
		Origin:    session.origin,
		Brand:     session.brand.String(),
		POIs:      pois,
		Radius:    session.radius,
		FromCache: session.fromCache,
		Selection: session.selection,
		Map:       srv.maps.Render(&handle, session.origin.Coordinate, pois, session.selection),
		Sequence:  session.issued,
		UpdatedAt: session.updatedAt,
	}
}

package geolocation

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"servicelocator/internal/domain/entity"
	"servicelocator/internal/domain/service"

	"github.com/pkg/errors"
)

// ipLookupResponse is the ip-api.com response shape.
type ipLookupResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// lastFix remembers the latest successful lookup per client address so
// MaximumAge can be honoured.
type lastFix struct {
	mu    sync.Mutex
	fixes map[string]entity.Position
}

func (f *lastFix) get(ip string, maxAge time.Duration, now time.Time) (*entity.Position, bool) {
	if maxAge <= 0 {
		return nil, false
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	pos, ok := f.fixes[ip]
	if !ok || now.Sub(pos.Timestamp) > maxAge {
		return nil, false
	}

	return &pos, true
}

func (f *lastFix) put(ip string, pos entity.Position) {
	f.mu.Lock()
	f.fixes[ip] = pos
	f.mu.Unlock()
}

// ipSource resolves a client address to a coarse position.
type ipSource struct {
	clientIP   string
	urlPattern string
	accuracy   float64
	httpClient *http.Client
	cache      *lastFix
	logger     *slog.Logger
	now        func() time.Time
}

func (s *ipSource) CurrentPosition(ctx context.Context, opts service.PositionOptions) (*entity.Position, error) {
	now := s.now()
	if pos, ok := s.cache.get(s.clientIP, opts.MaximumAge, now); ok {
		return pos, nil
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	lookupURL := strings.ReplaceAll(s.urlPattern, "{ip}", url.PathEscape(lookupAddress(s.clientIP)))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build ip lookup request")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, &entity.PositionError{Code: entity.GeolocationCodeTimeout, Message: "ip lookup timed out"}
		}

		return nil, &entity.PositionError{Code: entity.GeolocationCodePositionUnavailable, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &entity.PositionError{
			Code:    entity.GeolocationCodePositionUnavailable,
			Message: "ip lookup returned " + resp.Status,
		}
	}

	var decoded ipLookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, &entity.PositionError{Code: entity.GeolocationCodePositionUnavailable, Message: "invalid ip lookup response"}
	}
	if decoded.Status != "" && decoded.Status != "success" {
		return nil, &entity.PositionError{Code: entity.GeolocationCodePositionUnavailable, Message: decoded.Message}
	}

	coord := entity.Coordinate{Lat: decoded.Lat, Lon: decoded.Lon}
	if !coord.IsValid() {
		return nil, &entity.PositionError{Code: entity.GeolocationCodePositionUnavailable, Message: "ip lookup returned invalid coordinates"}
	}

	accuracy := s.accuracy
	pos := entity.Position{Coordinate: coord, Accuracy: &accuracy, Timestamp: now}
	s.cache.put(s.clientIP, pos)

	s.logger.Debug("Resolved position from client address",
		slog.Float64("lat", coord.Lat),
		slog.Float64("lon", coord.Lon),
	)

	return &pos, nil
}

// lookupAddress leaves loopback and private addresses empty so the provider
// falls back to the caller's public address.
func lookupAddress(clientIP string) string {
	ip := net.ParseIP(clientIP)
	if ip == nil || ip.IsLoopback() || ip.IsPrivate() {
		return ""
	}

	return ip.String()
}

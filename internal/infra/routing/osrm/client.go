// Package osrm implements the route provider on top of an OSRM HTTP server.
package osrm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"servicelocator/internal/domain/entity"
	"servicelocator/internal/domain/service"

	"github.com/pkg/errors"
	"googlemaps.github.io/maps"
)

type routeResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Geometry string  `json:"geometry"`
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

type routeProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewRouteProvider creates an OSRM-backed RouteProvider.
func NewRouteProvider(baseURL string, timeout time.Duration, httpClient *http.Client) service.RouteProvider {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	return &routeProvider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Route requests the full driving overview and decodes its polyline.
func (p *routeProvider) Route(ctx context.Context, from, to entity.Coordinate) (*entity.RouteGeometry, error) {
	routeURL := fmt.Sprintf("%s/route/v1/driving/%s,%s;%s,%s?overview=full&geometries=polyline",
		p.baseURL,
		formatDegrees(from.Lon), formatDegrees(from.Lat),
		formatDegrees(to.Lon), formatDegrees(to.Lat),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, routeURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build OSRM request")
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "OSRM request failed")
	}
	defer resp.Body.Close()

	var decoded routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, errors.Wrapf(err, "failed to decode OSRM response (status %d)", resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK || decoded.Code != "Ok" {
		return nil, errors.Errorf("OSRM returned status %d code %q: %s", resp.StatusCode, decoded.Code, decoded.Message)
	}
	if len(decoded.Routes) == 0 {
		return nil, errors.New("OSRM returned no routes")
	}

	best := decoded.Routes[0]
	latLngs, err := maps.DecodePolyline(best.Geometry)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode route polyline")
	}

	points := make([]entity.Coordinate, 0, len(latLngs))
	for _, ll := range latLngs {
		points = append(points, entity.Coordinate{Lat: ll.Lat, Lon: ll.Lng})
	}

	return &entity.RouteGeometry{
		Points:   points,
		Distance: best.Distance,
		Duration: best.Duration,
	}, nil
}

func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

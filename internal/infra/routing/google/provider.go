// Package google implements the route provider with the Google Maps Directions API.
package google

import (
	"context"
	"fmt"

	"servicelocator/internal/domain/entity"
	"servicelocator/internal/domain/service"

	"github.com/pkg/errors"
	"googlemaps.github.io/maps"
)

type directionsProvider struct {
	client *maps.Client
}

// NewRouteProvider creates a Directions-backed RouteProvider.
// Extra client options (such as a base URL) are applied after the API key.
func NewRouteProvider(apiKey string, opts ...maps.ClientOption) (service.RouteProvider, error) {
	if apiKey == "" {
		return nil, errors.New("google maps API key is required")
	}

	client, err := maps.NewClient(append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, errors.Wrap(err, "maps.NewClient")
	}

	return &directionsProvider{client: client}, nil
}

// Route asks for a driving route and decodes the overview polyline.
func (p *directionsProvider) Route(ctx context.Context, from, to entity.Coordinate) (*entity.RouteGeometry, error) {
	routes, _, err := p.client.Directions(ctx, &maps.DirectionsRequest{
		Origin:      latLngString(from),
		Destination: latLngString(to),
		Mode:        maps.TravelModeDriving,
	})
	if err != nil {
		return nil, errors.Wrap(err, "directions request failed")
	}
	if len(routes) == 0 {
		return nil, errors.New("directions returned no routes")
	}

	best := routes[0]
	latLngs, err := best.OverviewPolyline.Decode()
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode overview polyline")
	}

	geometry := &entity.RouteGeometry{Points: make([]entity.Coordinate, 0, len(latLngs))}
	for _, ll := range latLngs {
		geometry.Points = append(geometry.Points, entity.Coordinate{Lat: ll.Lat, Lon: ll.Lng})
	}
	for _, leg := range best.Legs {
		geometry.Distance += float64(leg.Distance.Meters)
		geometry.Duration += leg.Duration.Seconds()
	}

	return geometry, nil
}

func latLngString(c entity.Coordinate) string {
	return fmt.Sprintf("%f,%f", c.Lat, c.Lon)
}

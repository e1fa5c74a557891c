package service

import (
	"context"

	"servicelocator/internal/domain/entity"
)

// GeodataClient runs Overpass QL queries against one interpreter endpoint.
//
// A non-success HTTP status is returned as an error matching
// errors.ErrUpstreamError; any other error is a transport or decoding failure.
type GeodataClient interface {
	Interpret(ctx context.Context, endpoint, query string) ([]entity.GeoElement, error)
}

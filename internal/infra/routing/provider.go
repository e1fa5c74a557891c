// Package routing selects the route-geometry provider.
package routing

import (
	"log/slog"
	"net/http"

	"servicelocator/config"
	"servicelocator/internal/domain/constants"
	"servicelocator/internal/domain/service"
	"servicelocator/internal/infra/routing/google"
	"servicelocator/internal/infra/routing/osrm"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProviderParams holds dependencies for RouteProvider, injected by Fx
type ProviderParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	HTTPClient *http.Client `optional:"true"`
}

// NewRouteProvider creates the RouteProvider named by routing.provider
func NewRouteProvider(params ProviderParams) (service.RouteProvider, error) {
	cfg := params.Config.Routing
	if cfg == nil {
		cfg = config.DefaultRoutingConfig()
	}

	switch cfg.Provider {
	case "", constants.RoutingProviderOSRM:
		params.Logger.Info("Using OSRM route provider", slog.String("base_url", cfg.OSRMURL))

		return osrm.NewRouteProvider(cfg.OSRMURL, cfg.Timeout, params.HTTPClient), nil

	case constants.RoutingProviderGoogle:
		params.Logger.Info("Using Google Directions route provider")

		return google.NewRouteProvider(cfg.GoogleAPIKey)

	default:
		return nil, errors.Errorf("unknown routing provider: %s", cfg.Provider)
	}
}

package handler

import (
	"log/slog"
	"net/http"

	"servicelocator/internal/delivery/api/response"
	"servicelocator/internal/domain/entity"
	"servicelocator/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DiscoveryHandlerParams holds dependencies for DiscoveryHandler, injected by Fx.
type DiscoveryHandlerParams struct {
	fx.In

	DiscoveryUC usecase.DiscoveryUsecase
	Logger      *slog.Logger
}

// DiscoveryHandler serves stateless discovery requests
type DiscoveryHandler struct {
	discoveryUC usecase.DiscoveryUsecase
	logger      *slog.Logger
}

// NewDiscoveryHandler is the constructor for DiscoveryHandler
func NewDiscoveryHandler(params DiscoveryHandlerParams) *DiscoveryHandler {
	return &DiscoveryHandler{
		discoveryUC: params.DiscoveryUC,
		logger:      params.Logger,
	}
}

// DiscoverRequest is the query of GET /api/v1/discover
type DiscoverRequest struct {
	Lat   float64 `query:"lat" validate:"min=-90,max=90"`
	Lon   float64 `query:"lon" validate:"min=-180,max=180"`
	Brand string  `query:"brand" validate:"max=100"`
}

// Discover runs the multi-radius search around lat/lon for brand
func (h *DiscoveryHandler) Discover(c echo.Context) error {
	var req DiscoverRequest
	err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &req.Lat).
		MustFloat64("lon", &req.Lon).
		String("brand", &req.Brand).
		BindError()
	if err != nil {
		return response.BindingError(c, "lat and lon are required numbers")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	origin := entity.Coordinate{Lat: req.Lat, Lon: req.Lon}

	result, err := h.discoveryUC.Discover(c.Request().Context(), origin, req.Brand)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

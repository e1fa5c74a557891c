package handler

import (
	"log/slog"
	"net/http"

	"servicelocator/internal/delivery/api/validator"
	deliverycontext "servicelocator/internal/delivery/context"
	"servicelocator/internal/domain/entity"
	domainerrors "servicelocator/internal/domain/errors"
	"servicelocator/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProxyHandlerParams holds dependencies for ProxyHandler, injected by Fx.
type ProxyHandlerParams struct {
	fx.In

	NearestUC usecase.NearestCentreUsecase
	MapUC     usecase.MapUsecase
	DamageUC  usecase.DamageUsecase
	Logger    *slog.Logger
}

// ProxyHandler serves the unversioned endpoints whose bodies are plain
// JSON objects rather than the API envelope.
type ProxyHandler struct {
	nearestUC usecase.NearestCentreUsecase
	mapUC     usecase.MapUsecase
	damageUC  usecase.DamageUsecase
	logger    *slog.Logger
}

// NewProxyHandler is the constructor for ProxyHandler
func NewProxyHandler(params ProxyHandlerParams) *ProxyHandler {
	return &ProxyHandler{
		nearestUC: params.NearestUC,
		mapUC:     params.MapUC,
		damageUC:  params.DamageUC,
		logger:    params.Logger,
	}
}

// NearestCentresRequest is the query of GET /nearest-centres
type NearestCentresRequest struct {
	Lat    float64 `query:"lat" validate:"min=-90,max=90"`
	Lon    float64 `query:"lon" validate:"min=-180,max=180"`
	Radius int     `query:"radius" validate:"min=0,max=50000"`
}

// RouteRequest is the query of GET /route
type RouteRequest struct {
	StartLat float64 `query:"start_lat" validate:"min=-90,max=90"`
	StartLon float64 `query:"start_lon" validate:"min=-180,max=180"`
	EndLat   float64 `query:"end_lat" validate:"min=-90,max=90"`
	EndLon   float64 `query:"end_lon" validate:"min=-180,max=180"`
}

// CentreDetailsRequest is the query of GET /centre-details
type CentreDetailsRequest struct {
	Lat float64 `query:"lat" validate:"min=-90,max=90"`
	Lon float64 `query:"lon" validate:"min=-180,max=180"`
}

// NearestCentresResponse lists the closest repair shops
type NearestCentresResponse struct {
	Centres []entity.NearbyCentre `json:"centres"`
}

// RouteResponse is a route as [lat, lon] pairs
type RouteResponse struct {
	Polyline [][2]float64 `json:"polyline"`
}

// PredictResponse lists detected damage regions
type PredictResponse struct {
	Predictions []entity.DamagePrediction `json:"predictions"`
}

// proxyError is the error body of proxy endpoints
type proxyError struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

// NearestCentres lists repair shops around lat/lon regardless of brand
func (h *ProxyHandler) NearestCentres(c echo.Context) error {
	var req NearestCentresRequest
	bindErr := echo.QueryParamsBinder(c).
		MustFloat64("lat", &req.Lat).
		MustFloat64("lon", &req.Lon).
		Int("radius", &req.Radius).
		BindError()
	if ok, err := h.validate(c, bindErr, &req); !ok {
		return err
	}

	centres, err := h.nearestUC.Nearest(c.Request().Context(), entity.Coordinate{Lat: req.Lat, Lon: req.Lon}, req.Radius)
	if err != nil {
		return h.fail(c, err, "Overpass API error")
	}

	return c.JSON(http.StatusOK, NearestCentresResponse{Centres: centres})
}

// Route returns the driving route between two coordinates
func (h *ProxyHandler) Route(c echo.Context) error {
	var req RouteRequest
	bindErr := echo.QueryParamsBinder(c).
		MustFloat64("start_lat", &req.StartLat).
		MustFloat64("start_lon", &req.StartLon).
		MustFloat64("end_lat", &req.EndLat).
		MustFloat64("end_lon", &req.EndLon).
		BindError()
	if ok, err := h.validate(c, bindErr, &req); !ok {
		return err
	}

	from := entity.Coordinate{Lat: req.StartLat, Lon: req.StartLon}
	to := entity.Coordinate{Lat: req.EndLat, Lon: req.EndLon}

	route, err := h.mapUC.Route(c.Request().Context(), from, to)
	if err != nil {
		return h.fail(c, err, "No route found")
	}

	polyline := make([][2]float64, 0, len(route.Points))
	for _, point := range route.Points {
		polyline = append(polyline, [2]float64{point.Lat, point.Lon})
	}

	return c.JSON(http.StatusOK, RouteResponse{Polyline: polyline})
}

// CentreDetails returns descriptive fields of the place at lat/lon; absent fields are omitted
func (h *ProxyHandler) CentreDetails(c echo.Context) error {
	var req CentreDetailsRequest
	bindErr := echo.QueryParamsBinder(c).
		MustFloat64("lat", &req.Lat).
		MustFloat64("lon", &req.Lon).
		BindError()
	if ok, err := h.validate(c, bindErr, &req); !ok {
		return err
	}

	details, err := h.mapUC.Details(c.Request().Context(), entity.Coordinate{Lat: req.Lat, Lon: req.Lon})
	if err != nil {
		return h.fail(c, err, "Details lookup failed")
	}

	return c.JSON(http.StatusOK, details)
}

// Predict forwards the multipart "file" to the detection backend
func (h *ProxyHandler) Predict(c echo.Context) error {
	upload, err := readUpload(c)
	if err != nil {
		return h.fail(c, err, "Failed to process image")
	}

	predictions, err := h.damageUC.Predict(c.Request().Context(), upload)
	if err != nil {
		return h.fail(c, err, "Failed to process image")
	}
	if predictions == nil {
		predictions = []entity.DamagePrediction{}
	}

	return c.JSON(http.StatusOK, PredictResponse{Predictions: predictions})
}

// validate rejects a failed query binding or an invalid request. When ok is
// false the rejection has already been written.
func (h *ProxyHandler) validate(c echo.Context, bindErr error, req any) (bool, error) {
	if bindErr != nil {
		return false, c.JSON(http.StatusBadRequest, proxyError{Error: "Invalid query parameters"})
	}

	if err := c.Validate(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, proxyError{
			Error:   domainerrors.ErrValidationFailed.Message(),
			Details: validator.FieldErrors(err),
		})
	}

	return true, nil
}

// fail writes {"error": message} with the status of a domain error, or 502.
func (h *ProxyHandler) fail(c echo.Context, err error, message string) error {
	status := http.StatusBadGateway

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		status = appErr.HTTPCode()
		if status < http.StatusInternalServerError {
			message = appErr.Message()
		}
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Warn("Proxy request failed",
		slog.String("path", c.Path()),
		slog.Int("status", status),
		slog.Any("error", err),
	)

	return c.JSON(status, proxyError{Error: message})
}

package handler

import (
	"log/slog"
	"net/http"
	"time"

	"servicelocator/internal/delivery/api/response"
	deliverycontext "servicelocator/internal/delivery/context"
	"servicelocator/internal/domain/entity"
	"servicelocator/internal/domain/service"
	"servicelocator/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const formatQR = "qr"

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC     usecase.SessionUsecase
	GeolocationUC usecase.GeolocationUsecase
	Logger        *slog.Logger
}

// SessionHandler serves the discovery session lifecycle
type SessionHandler struct {
	sessionUC     usecase.SessionUsecase
	geolocationUC usecase.GeolocationUsecase
	logger        *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC:     params.SessionUC,
		geolocationUC: params.GeolocationUC,
		logger:        params.Logger,
	}
}

// ReportedPositionRequest is the result of the browser's Geolocation API call
type ReportedPositionRequest struct {
	Lat          *float64 `json:"lat" validate:"omitempty,min=-90,max=90"`
	Lon          *float64 `json:"lon" validate:"omitempty,min=-180,max=180"`
	Accuracy     *float64 `json:"accuracy" validate:"omitempty,min=0"`
	ErrorCode    int      `json:"error_code" validate:"omitempty,min=1"`
	ErrorMessage string   `json:"error_message" validate:"max=500"`
}

// PositionOptionsRequest overrides the configured position options
type PositionOptionsRequest struct {
	HighAccuracy *bool `json:"high_accuracy"`
	TimeoutMs    *int  `json:"timeout_ms" validate:"omitempty,min=0,max=120000"`
	MaximumAgeMs *int  `json:"maximum_age_ms" validate:"omitempty,min=0"`
}

// ViewportRequest is the pixel size of the client map
type ViewportRequest struct {
	Width  int `json:"width" validate:"min=0,max=10000"`
	Height int `json:"height" validate:"min=0,max=10000"`
}

// StartSessionRequest represents the request body of POST /api/v1/sessions.
// Without a position the server falls back to an IP lookup of the caller.
type StartSessionRequest struct {
	Position *ReportedPositionRequest `json:"position"`
	Options  *PositionOptionsRequest  `json:"options"`
	Viewport *ViewportRequest         `json:"viewport"`
}

// SearchRequest represents the request body of a session search
type SearchRequest struct {
	Brand string `json:"brand" validate:"max=100"`
}

// SelectRequest represents the request body of a session selection
type SelectRequest struct {
	Index *int `json:"index" validate:"required,min=0"`
}

// DirectionsResponse carries the external directions link
type DirectionsResponse struct {
	URL string `json:"url"`
}

// StartSession acquires the caller's position and opens a session
func (h *SessionHandler) StartSession(c echo.Context) error {
	var req StartSessionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid session input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	input := &usecase.StartSessionInput{
		LocateInput: usecase.LocateInput{
			ClientIP: c.RealIP(),
			Options:  h.positionOptions(req.Options),
		},
	}
	if req.Position != nil {
		input.Reported = &entity.ReportedPosition{
			Lat:          req.Position.Lat,
			Lon:          req.Position.Lon,
			Accuracy:     req.Position.Accuracy,
			ErrorCode:    req.Position.ErrorCode,
			ErrorMessage: req.Position.ErrorMessage,
		}
	}
	if req.Viewport != nil {
		input.Viewport = entity.Viewport{Width: req.Viewport.Width, Height: req.Viewport.Height}
	}

	view, err := h.sessionUC.Start(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, view)
}

// GetSession returns the current map view of a session
func (h *SessionHandler) GetSession(c echo.Context) error {
	sessionID, err := h.sessionID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID")
	}

	view, err := h.sessionUC.Get(c.Request().Context(), sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// Search runs discovery for a brand within a session
func (h *SessionHandler) Search(c echo.Context) error {
	sessionID, err := h.sessionID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID")
	}

	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid search input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	outcome, err := h.sessionUC.Search(c.Request().Context(), sessionID, req.Brand)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, outcome)
}

// Select picks one of the current results and loads its route and details
func (h *SessionHandler) Select(c echo.Context) error {
	sessionID, err := h.sessionID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID")
	}

	var req SelectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid selection input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	view, err := h.sessionUC.Select(c.Request().Context(), sessionID, *req.Index)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// Directions returns the directions link of the selection, or its QR code with ?format=qr
func (h *SessionHandler) Directions(c echo.Context) error {
	sessionID, err := h.sessionID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID")
	}
	ctx := c.Request().Context()

	if c.QueryParam("format") == formatQR {
		png, err := h.sessionUC.DirectionsQR(ctx, sessionID)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.PNG(c, png)
	}

	url, err := h.sessionUC.DirectionsURL(ctx, sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, DirectionsResponse{URL: url})
}

// sessionID parses the :id path parameter and tags the request context with it.
func (h *SessionHandler) sessionID(c echo.Context) (uuid.UUID, error) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, err
	}

	ctx := deliverycontext.WithSessionID(c.Request().Context(), sessionID.String())
	if logger := deliverycontext.GetLogger(ctx); logger != nil {
		ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("session_id", sessionID.String())))
	}
	c.SetRequest(c.Request().WithContext(ctx))

	return sessionID, nil
}

func (h *SessionHandler) positionOptions(req *PositionOptionsRequest) *service.PositionOptions {
	if req == nil {
		return nil
	}

	opts := h.geolocationUC.DefaultOptions()
	if req.HighAccuracy != nil {
		opts.HighAccuracy = *req.HighAccuracy
	}
	if req.TimeoutMs != nil {
		opts.Timeout = time.Duration(*req.TimeoutMs) * time.Millisecond
	}
	if req.MaximumAgeMs != nil {
		opts.MaximumAge = time.Duration(*req.MaximumAgeMs) * time.Millisecond
	}

	return &opts
}

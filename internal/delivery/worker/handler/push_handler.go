package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"servicelocator/config"
	deliverycontext "servicelocator/internal/delivery/context"
	"servicelocator/internal/domain/constants"
	"servicelocator/internal/domain/entity"
	domainerrors "servicelocator/internal/domain/errors"
	"servicelocator/internal/domain/service"
	"servicelocator/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage is the body of a Pub/Sub push request.
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// tokenVerifier checks the bearer token of a push request.
type tokenVerifier func(req *http.Request) error

// PushHandler consumes discovery events and pre-warms the nearest-centres
// cache around each searched origin.
type PushHandler struct {
	verify    tokenVerifier
	logger    *slog.Logger
	nearestUC usecase.NearestCentreUsecase
}

type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	NearestUC usecase.NearestCentreUsecase
}

func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		logger:    params.Logger,
		nearestUC: params.NearestUC,
	}
	if requiresPushToken(params.Config) {
		h.verify = verifyPubSubToken
	}

	return h
}

// requiresPushToken is true for Google push subscriptions outside local and develop.
func requiresPushToken(cfg *config.Config) bool {
	if cfg.PubSub == nil || cfg.PubSub.Provider != constants.PubSubProviderGoogle {
		return false
	}

	return cfg.Env.Env != constants.EnvLocal && cfg.Env.Env != constants.EnvDevelop
}

// HandlePush acknowledges with 200, asks for redelivery with 503 and rejects
// undecodable pushes with 400 so they go to the dead-letter topic.
func (h *PushHandler) HandlePush(c echo.Context) error {
	if h.verify != nil {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("Rejected push with invalid token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	msg, event, err := decodePush(c)
	if err != nil {
		h.logger.Error("Malformed push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	ctx := c.Request().Context()
	requestID := pushRequestID(ctx, msg, event)
	logger := h.logger.With(slog.String("request_id", requestID), slog.String("event_id", event.EventID))
	ctx = deliverycontext.WithLogger(deliverycontext.WithRequestID(ctx, requestID), logger)

	logger.Info("Discovery event received",
		slog.String("brand", event.Brand),
		slog.Int("result_count", event.ResultCount),
		slog.Bool("from_cache", event.FromCache),
	)

	err = h.warmNearestCentres(ctx, event)
	switch {
	case err == nil:
		return c.NoContent(http.StatusOK)
	case errors.Is(err, domainerrors.ErrUpstreamError):
		logger.Warn("Nearest-centres warm-up failed, requesting redelivery", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	default:
		// redelivering cannot fix these
		logger.Error("Discovery event dropped", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}
}

func decodePush(c echo.Context) (*PubSubMessage, *service.DiscoveryEvent, error) {
	var msg PubSubMessage
	if err := c.Bind(&msg); err != nil {
		return nil, nil, errors.Wrap(err, "push envelope")
	}

	data, err := base64.StdEncoding.DecodeString(msg.Message.Data)
	if err != nil {
		return nil, nil, errors.Wrap(err, "message data")
	}

	var event service.DiscoveryEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, nil, errors.Wrap(err, "discovery event")
	}

	return &msg, &event, nil
}

// pushRequestID prefers the message attribute, then the event, then ctx, so the
// API request that triggered the event and this push share one ID.
func pushRequestID(ctx context.Context, msg *PubSubMessage, event *service.DiscoveryEvent) string {
	for _, id := range []string{
		msg.Message.Attributes["request_id"],
		event.RequestID,
		deliverycontext.GetRequestIDFromContext(ctx),
	} {
		if id != "" {
			return id
		}
	}

	return uuid.NewString()
}

// warmNearestCentres runs the default nearest-centres lookup for the event origin
// so the follow-up request from the same client is a cache hit.
func (h *PushHandler) warmNearestCentres(ctx context.Context, event *service.DiscoveryEvent) error {
	if event.ResultCount == 0 {
		return nil
	}

	origin := entity.Coordinate{Lat: event.Latitude, Lon: event.Longitude}
	if !origin.IsValid() {
		return errors.Errorf("invalid origin %.4f,%.4f", origin.Lat, origin.Lon)
	}

	centres, err := h.nearestUC.Nearest(ctx, origin, 0)
	if err != nil {
		return err
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Debug("Nearest centres cached", slog.Int("centre_count", len(centres)))

	return nil
}

// verifyPubSubToken validates the OIDC token Google attaches to authenticated push requests.
// The audience is this endpoint's public URL; TLS usually ends at the load balancer.
func verifyPubSubToken(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	scheme := req.Header.Get(echo.HeaderXForwardedProto)
	switch {
	case scheme != "":
	case req.TLS != nil:
		scheme = "https"
	default:
		scheme = "http"
	}

	payload, err := idtoken.Validate(req.Context(), token, scheme+"://"+req.Host+req.URL.Path)
	if err != nil {
		return errors.Wrap(err, "validate push token")
	}
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("unexpected issuer %q", payload.Issuer)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.New("service account email not verified")
	}

	return nil
}

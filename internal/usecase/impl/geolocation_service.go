package impl

import (
	"context"
	"log/slog"

	"servicelocator/config"
	deliverycontext "servicelocator/internal/delivery/context"
	"servicelocator/internal/domain/entity"
	domainerrors "servicelocator/internal/domain/errors"
	"servicelocator/internal/domain/service"
	"servicelocator/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// geolocationService implements the GeolocationUsecase interface.
type geolocationService struct {
	sources  service.PositionSourceFactory
	defaults service.PositionOptions
	logger   *slog.Logger
}

// GeolocationServiceParams holds dependencies for GeolocationService, injected by Fx.
type GeolocationServiceParams struct {
	fx.In

	Sources service.PositionSourceFactory
	Config  *config.Config
	Logger  *slog.Logger
}

// NewGeolocationService is the constructor for geolocationService.
func NewGeolocationService(params GeolocationServiceParams) usecase.GeolocationUsecase {
	cfg := params.Config.Geolocation
	if cfg == nil {
		cfg = config.DefaultGeolocationConfig()
	}

	return &geolocationService{
		sources: params.Sources,
		defaults: service.PositionOptions{
			HighAccuracy: cfg.HighAccuracy,
			Timeout:      cfg.Timeout,
			MaximumAge:   cfg.MaximumAge,
		},
		logger: params.Logger,
	}
}

func (srv *geolocationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *geolocationService) DefaultOptions() service.PositionOptions {
	return srv.defaults
}

// Locate prefers the client-reported fix and falls back to an IP lookup.
func (srv *geolocationService) Locate(ctx context.Context, input *usecase.LocateInput) (*entity.Position, error) {
	opts := srv.defaults
	if input.Options != nil {
		opts = *input.Options
	}

	var source service.PositionSource
	switch {
	case input.Reported != nil:
		source = srv.sources.Reported(*input.Reported)
	default:
		source = srv.sources.ForClient(input.ClientIP)
	}

	return srv.Acquire(ctx, source, opts)
}

// Acquire requests a single fix from source within opts.Timeout.
func (srv *geolocationService) Acquire(ctx context.Context, source service.PositionSource, opts service.PositionOptions) (*entity.Position, error) {
	if source == nil {
		return nil, domainerrors.ErrGeolocationUnsupported
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	position, err := source.CurrentPosition(ctx, opts)
	if err != nil {
		mapped := classifyPositionError(err)
		srv.log(ctx).Info("Position acquisition failed",
			slog.String("reason", mapped.ErrorCode()),
			slog.Any("error", err),
		)

		return nil, mapped
	}

	if !position.IsValid() {
		return nil, domainerrors.ErrPositionUnavailable.WithDetails("coordinate out of range")
	}

	srv.log(ctx).Debug("Position acquired",
		slog.Float64("lat", position.Lat),
		slog.Float64("lon", position.Lon),
	)

	return position, nil
}

// classifyPositionError maps platform codes onto the geolocation taxonomy.
func classifyPositionError(err error) *domainerrors.BaseError {
	var positionErr *entity.PositionError
	if errors.As(err, &positionErr) {
		switch positionErr.Code {
		case entity.GeolocationCodePermissionDenied:
			return domainerrors.ErrPermissionDenied
		case entity.GeolocationCodePositionUnavailable:
			return domainerrors.ErrPositionUnavailable
		case entity.GeolocationCodeTimeout:
			return domainerrors.ErrGeolocationTimeout
		default:
			return domainerrors.ErrGeolocationUnknown.WithDetails(positionErr.Message)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return domainerrors.ErrGeolocationTimeout
	}

	return domainerrors.ErrGeolocationUnknown.WithDetails(err.Error())
}

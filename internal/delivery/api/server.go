package api

import (
	"context"
	"log/slog"
	"strings"

	"servicelocator/config"
	"servicelocator/internal/delivery"
	apimiddleware "servicelocator/internal/delivery/api/middleware"
	"servicelocator/internal/delivery/api/router"
	"servicelocator/internal/delivery/api/validator"
	"servicelocator/internal/domain/constants"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	echo   *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := delivery.NewEcho(params.Cfg, params.Logger)

	e.Use(
		echomiddleware.CORS(),
		echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize),
		echomiddleware.GzipWithConfig(echomiddleware.GzipConfig{
			// tile archives store pre-compressed payloads
			Skipper: func(c echo.Context) bool {
				return strings.HasPrefix(c.Request().URL.Path, constants.TileRoutePrefix+"/")
			},
		}),
	)
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		echo:   e,
	}
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			srv.logger.Info("Shutting down service locator API server")

			return delivery.Shutdown(ctx, srv.echo)
		},
	})

	return srv, nil
}

// Serve speaks h2c so the API can sit behind proxies that forward HTTP/2 in cleartext.
func (s *apiServer) Serve(ctx context.Context) error {
	s.logger.Info("Starting service locator API server", slog.Int("port", s.cfg.HTTP.Port))

	return delivery.Listen(s.echo, s.cfg.HTTP.Port, &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	})
}

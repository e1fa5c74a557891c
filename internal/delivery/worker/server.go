package worker

import (
	"context"
	"log/slog"
	"net/http"

	"servicelocator/config"
	"servicelocator/internal/delivery"
	"servicelocator/internal/delivery/worker/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

const (
	healthPath = "/health"
	pushPath   = "/push"
)

type workerServer struct {
	cfg    *config.Config
	logger *slog.Logger
	echo   *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer exposes the push subscription endpoint and a liveness probe.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := delivery.NewEcho(params.Cfg, params.Logger)
	e.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	e.GET(healthPath, func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST(pushPath, params.PushHandler.HandlePush)

	srv := &workerServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		echo:   e,
	}
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			srv.logger.Info("Shutting down discovery worker")

			return delivery.Shutdown(ctx, srv.echo)
		},
	})

	return srv, nil
}

func (s *workerServer) Serve(ctx context.Context) error {
	port := s.cfg.Worker.Port
	s.logger.Info("Starting discovery worker", slog.Int("port", port), slog.String("push_path", pushPath))

	return delivery.Listen(s.echo, port, nil)
}

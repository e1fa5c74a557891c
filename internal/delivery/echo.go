package delivery

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"servicelocator/config"
	"servicelocator/internal/delivery/middleware"
	"servicelocator/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"golang.org/x/net/http2"
)

// NewEcho builds the echo instance both binaries share: configured timeouts,
// then panic recovery, request IDs and access logging, in that order.
func NewEcho(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	timeouts := cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	// request IDs are assigned before the access log so every line carries one
	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(logger).Process,
		middleware.NewLoggerMiddleware(logger, cfg).Handle,
	)

	return e
}

// Listen blocks serving e on every interface at port.
// A non-nil h2 enables cleartext HTTP/2. A graceful shutdown is not an error.
func Listen(e *echo.Echo, port int, h2 *http2.Server) error {
	addr := net.JoinHostPort("0.0.0.0", strconv.Itoa(port))

	var err error
	if h2 != nil {
		err = e.StartH2CServer(addr, h2)
	} else {
		err = e.Start(addr)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return errors.WithStack(err)
}

// Shutdown drains in-flight requests, giving up after lifecycle.DefaultTimeout.
func Shutdown(ctx context.Context, e *echo.Echo) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	return errors.WithStack(e.Shutdown(ctx))
}

// Package middleware holds echo middleware specific to the API server.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"servicelocator/internal/delivery/api/response"
	deliverycontext "servicelocator/internal/delivery/context"
	domainerrors "servicelocator/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	internalErrorMessage = "Internal server error, please try again later"

	// statusClientClosedRequest is nginx's status for a request the client abandoned.
	statusClientClosedRequest = 499
)

// ErrorMiddleware is the API's echo HTTPErrorHandler.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// failure is an error reduced to what the envelope shows.
type failure struct {
	status  int
	code    string
	message string
	details any
}

// classify maps domain errors by their code and echo errors by status.
// Anything else is an internal error.
func classify(err error) (failure, bool) {
	if errors.Is(err, context.Canceled) {
		return failure{statusClientClosedRequest, "CLIENT_CLOSED_REQUEST", "Request was cancelled by the client", nil}, true
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return failure{appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details()}, true
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		}
		code := strings.ToUpper(strings.ReplaceAll(http.StatusText(httpErr.Code), " ", "_"))
		if code == "" {
			code = "HTTP_ERROR"
		}

		return failure{httpErr.Code, code, message, nil}, true
	}

	return failure{http.StatusInternalServerError, domainerrors.ErrInternalError.ErrorCode(), internalErrorMessage, nil}, false
}

// HandleHTTPError writes the error envelope unless a response is already committed.
// Server-side failures are logged with the request-scoped logger.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	f, known := classify(err)
	if !known || f.status >= http.StatusInternalServerError {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Request failed",
			slog.String("code", f.code),
			slog.String("method", c.Request().Method),
			slog.String("path", c.Request().URL.Path),
			slog.Any("error", err),
		)
	}

	_ = response.Error(c, f.status, f.code, f.message, f.details)
}

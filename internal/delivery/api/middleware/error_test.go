package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"servicelocator/internal/delivery/api/response"
	domainerrors "servicelocator/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handle(t *testing.T, err error) (*httptest.ResponseRecorder, response.ErrorResponse, string) {
	t.Helper()

	var logs bytes.Buffer
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(&logs, nil)))

	e := echo.New()
	rec := httptest.NewRecorder()
	m.HandleHTTPError(err, e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/discover", nil), rec))

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return rec, body, logs.String()
}

func TestHandleHTTPError_DomainError(t *testing.T) {
	rec, body, logs := handle(t, errors.Wrap(domainerrors.ErrSessionNotFound.WithDetails("expired"), "lookup"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "SESSION_NOT_FOUND", body.Error.Code)
	assert.Equal(t, "expired", body.Error.Details)
	assert.Empty(t, logs)
}

func TestHandleHTTPError_EchoError(t *testing.T) {
	rec, body, _ := handle(t, echo.ErrMethodNotAllowed)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "METHOD_NOT_ALLOWED", body.Error.Code)

	rec, body, _ = handle(t, echo.NewHTTPError(http.StatusRequestEntityTooLarge))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "REQUEST_ENTITY_TOO_LARGE", body.Error.Code)
}

func TestHandleHTTPError_Unknown(t *testing.T) {
	rec, body, logs := handle(t, errors.New("pq: connection reset"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.Equal(t, internalErrorMessage, body.Error.Message)
	assert.Nil(t, body.Error.Details)
	assert.Contains(t, logs, "pq: connection reset")
}

func TestHandleHTTPError_ClientCancelled(t *testing.T) {
	rec, body, logs := handle(t, errors.WithStack(context.Canceled))

	assert.Equal(t, statusClientClosedRequest, rec.Code)
	assert.Equal(t, "CLIENT_CLOSED_REQUEST", body.Error.Code)
	assert.Empty(t, logs, "abandoned requests are not server failures")
}

package worker

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"servicelocator/config"
	"servicelocator/internal/delivery/worker/handler"
	mockUsecase "servicelocator/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestWorker(t *testing.T) *workerServer {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{
		Config:    cfg,
		Logger:    logger,
		NearestUC: mockUsecase.NewMockNearestCentreUsecase(t),
	})

	srv, err := NewServer(ServerParams{
		Lc:          fxtest.NewLifecycle(t),
		Cfg:         cfg,
		Logger:      logger,
		PushHandler: pushHandler,
	})
	require.NoError(t, err)

	return srv.(*workerServer)
}

func TestWorkerServer_Health(t *testing.T) {
	srv := newTestWorker(t)

	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, healthPath, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestWorkerServer_Push(t *testing.T) {
	srv := newTestWorker(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, pushPath, strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	srv.echo.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, pushPath, strings.NewReader(strings.Repeat("x", 2048)))
	req.Header.Set("Content-Type", "application/json")
	srv.echo.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

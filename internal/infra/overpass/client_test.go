package overpass

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"servicelocator/config"
	domainerrors "servicelocator/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient() *client {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "servicelocator-test"

	return NewClient(ClientParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}).(*client)
}

func TestClient_Interpret_Success(t *testing.T) {
	var gotBody, gotContentType, gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotContentType = r.Header.Get("Content-Type")
		gotUA = r.Header.Get("User-Agent")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"elements":[
			{"type":"node","id":1,"lat":12.97,"lon":77.59,"tags":{"name":"Toyota Service"}},
			{"type":"way","id":2,"center":{"lat":12.98,"lon":77.60},"tags":{"brand":"Toyota"}}
		]}`))
	}))
	defer server.Close()

	elements, err := newTestClient().Interpret(context.Background(), server.URL, "[out:json];node;out;")
	require.NoError(t, err)
	require.Len(t, elements, 2)

	assert.Equal(t, "[out:json];node;out;", gotBody)
	assert.Contains(t, gotContentType, "text/plain")
	assert.Equal(t, "servicelocator-test", gotUA)

	first, ok := elements[0].Location()
	require.True(t, ok)
	assert.InDelta(t, 12.97, first.Lat, 1e-9)

	second, ok := elements[1].Location()
	require.True(t, ok)
	assert.InDelta(t, 77.60, second.Lon, 1e-9)
	assert.Equal(t, "Toyota", elements[1].Tags["brand"])
}

func TestClient_Interpret_MissingElements(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"version":0.6}`))
	}))
	defer server.Close()

	elements, err := newTestClient().Interpret(context.Background(), server.URL, "q")
	require.NoError(t, err)
	assert.NotNil(t, elements)
	assert.Empty(t, elements)
}

func TestClient_Interpret_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("rate limited"))
	}))
	defer server.Close()

	_, err := newTestClient().Interpret(context.Background(), server.URL, "q")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUpstreamError))
	assert.Contains(t, err.Error(), "429")
}

func TestClient_Interpret_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>busy</html>`))
	}))
	defer server.Close()

	_, err := newTestClient().Interpret(context.Background(), server.URL, "q")
	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrUpstreamError))
}

func TestClient_Interpret_ContextDeadline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newTestClient().Interpret(ctx, server.URL, "q")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.False(t, errors.Is(err, domainerrors.ErrUpstreamError))
}

package geolocation

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"servicelocator/config"
	"servicelocator/internal/domain/entity"
	"servicelocator/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float64Ptr(v float64) *float64 {
	return &v
}

func newTestFactory(ipURL string) service.PositionSourceFactory {
	cfg := &config.Config{
		Geolocation: &config.GeolocationConfig{
			IPProviderURL: ipURL,
			IPAccuracy:    5000,
		},
	}

	return NewSourceFactory(FactoryParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestReportedSource(t *testing.T) {
	tests := []struct {
		name     string
		reported entity.ReportedPosition
		wantCode int
		wantLat  float64
	}{
		{
			name:     "fix",
			reported: entity.ReportedPosition{Lat: float64Ptr(12.9716), Lon: float64Ptr(77.5946), Accuracy: float64Ptr(15)},
			wantLat:  12.9716,
		},
		{
			name:     "permission denied",
			reported: entity.ReportedPosition{ErrorCode: 1, ErrorMessage: "User denied Geolocation"},
			wantCode: entity.GeolocationCodePermissionDenied,
		},
		{
			name:     "missing coordinates",
			reported: entity.ReportedPosition{Lat: float64Ptr(10)},
			wantCode: entity.GeolocationCodePositionUnavailable,
		},
		{
			name:     "out of range",
			reported: entity.ReportedPosition{Lat: float64Ptr(91), Lon: float64Ptr(0)},
			wantCode: entity.GeolocationCodePositionUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := NewReportedSource(tt.reported).CurrentPosition(context.Background(), service.PositionOptions{})
			if tt.wantCode != 0 {
				var posErr *entity.PositionError
				require.True(t, errors.As(err, &posErr))
				assert.Equal(t, tt.wantCode, posErr.Code)
				assert.Nil(t, pos)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantLat, pos.Lat)
			require.NotNil(t, pos.Accuracy)
			assert.Equal(t, 15.0, *pos.Accuracy)
		})
	}
}

func TestSourceFactory_ForClientDisabled(t *testing.T) {
	factory := newTestFactory("")

	assert.Nil(t, factory.ForClient("203.0.113.7"))
}

func TestIPSource_Success(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"status":"success","lat":12.9716,"lon":77.5946}`))
	}))
	defer server.Close()

	source := newTestFactory(server.URL + "/json/{ip}").ForClient("203.0.113.7")
	require.NotNil(t, source)

	pos, err := source.CurrentPosition(context.Background(), service.PositionOptions{Timeout: time.Second})
	require.NoError(t, err)
	assert.Equal(t, "/json/203.0.113.7", gotPath)
	assert.Equal(t, 77.5946, pos.Lon)
	require.NotNil(t, pos.Accuracy)
	assert.Equal(t, 5000.0, *pos.Accuracy)
}

func TestIPSource_PrivateAddressUsesProviderDefault(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"status":"success","lat":1,"lon":2}`))
	}))
	defer server.Close()

	_, err := newTestFactory(server.URL+"/json/{ip}").ForClient("127.0.0.1").
		CurrentPosition(context.Background(), service.PositionOptions{})
	require.NoError(t, err)
	assert.Equal(t, "/json/", gotPath)
}

func TestIPSource_ProviderFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"fail","message":"reserved range"}`))
	}))
	defer server.Close()

	_, err := newTestFactory(server.URL+"/{ip}").ForClient("203.0.113.7").
		CurrentPosition(context.Background(), service.PositionOptions{})

	var posErr *entity.PositionError
	require.True(t, errors.As(err, &posErr))
	assert.Equal(t, entity.GeolocationCodePositionUnavailable, posErr.Code)
	assert.Equal(t, "reserved range", posErr.Message)
}

func TestIPSource_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	_, err := newTestFactory(server.URL+"/{ip}").ForClient("203.0.113.7").
		CurrentPosition(context.Background(), service.PositionOptions{Timeout: 50 * time.Millisecond})

	var posErr *entity.PositionError
	require.True(t, errors.As(err, &posErr))
	assert.Equal(t, entity.GeolocationCodeTimeout, posErr.Code)
}

func TestIPSource_MaximumAgeReusesFix(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"status":"success","lat":1,"lon":2}`))
	}))
	defer server.Close()

	factory := newTestFactory(server.URL + "/{ip}")
	ctx := context.Background()

	_, err := factory.ForClient("203.0.113.7").CurrentPosition(ctx, service.PositionOptions{})
	require.NoError(t, err)
	_, err = factory.ForClient("203.0.113.7").CurrentPosition(ctx, service.PositionOptions{MaximumAge: time.Minute})
	require.NoError(t, err)
	_, err = factory.ForClient("203.0.113.7").CurrentPosition(ctx, service.PositionOptions{})
	require.NoError(t, err)

	assert.Equal(t, int32(2), calls.Load())
}

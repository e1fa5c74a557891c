package nominatim

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"servicelocator/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailsProvider_Details(t *testing.T) {
	var gotUA string
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		gotUA = r.Header.Get("User-Agent")
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{
			"display_name": "Toyota Service, MG Road, Bengaluru",
			"extratags": {"phone": "+91 80 1234 5678", "opening_hours": "Mo-Sa 09:00-18:00"}
		}`))
	}))
	defer server.Close()

	provider := NewDetailsProvider(server.URL, "servicelocator-test", time.Second, nil)
	details, err := provider.Details(context.Background(), entity.Coordinate{Lat: 12.9716, Lon: 77.5946})
	require.NoError(t, err)

	assert.Equal(t, "servicelocator-test", gotUA)
	assert.Equal(t, "12.9716", gotQuery["lat"][0])
	assert.Equal(t, "1", gotQuery["extratags"][0])

	require.NotNil(t, details.Address)
	assert.Equal(t, "Toyota Service, MG Road, Bengaluru", *details.Address)
	require.NotNil(t, details.Phone)
	assert.Equal(t, "+91 80 1234 5678", *details.Phone)
	require.NotNil(t, details.OpeningHours)
	assert.Nil(t, details.Website)
	assert.Nil(t, details.Rating)
}

func TestDetailsProvider_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "unable to geocode", status: http.StatusOK, body: `{"error":"Unable to geocode"}`},
		{name: "rate limited", status: http.StatusTooManyRequests, body: ``},
		{name: "invalid json", status: http.StatusOK, body: `<html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			details, err := NewDetailsProvider(server.URL, "ua", time.Second, nil).
				Details(context.Background(), entity.Coordinate{})
			assert.Error(t, err)
			assert.Nil(t, details)
		})
	}
}

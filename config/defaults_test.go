package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, DefaultCacheConfig(), cfg.Cache)
	assert.Equal(t, DefaultDiscoveryConfig(), cfg.Discovery)
	assert.Equal(t, DefaultGeolocationConfig(), cfg.Geolocation)
	assert.Equal(t, DefaultRoutingConfig(), cfg.Routing)
	assert.Equal(t, DefaultDetailsConfig(), cfg.Details)
	assert.Equal(t, DefaultNearestConfig(), cfg.Nearest)
	assert.Equal(t, DefaultDetectionConfig(), cfg.Detection)
	assert.Equal(t, time.Hour, cfg.Session.IdleTTL)
	assert.Equal(t, 256, cfg.QRCode.Size)
	assert.Nil(t, cfg.PMTiles, "tile serving stays off unless configured")
	assert.Nil(t, cfg.PubSub)
	assert.Equal(t, 8081, cfg.Worker.Port)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Discovery: &DiscoveryConfig{Radii: []int{2000}, MaxAttempts: 3},
		Nearest:   &NearestConfig{Radius: 1500},
		Routing:   &RoutingConfig{Provider: "google"},
		QRCode:    &QRCodeConfig{ErrorCorrectionLevel: "H"},
		PMTiles:   &PMTilesConfig{Enabled: true, Bucket: "file:///srv/tiles"},
	}
	cfg.ApplyDefaults()

	assert.Equal(t, []int{2000}, cfg.Discovery.Radii)
	assert.Equal(t, 3, cfg.Discovery.MaxAttempts)
	assert.Equal(t, DefaultDiscoveryConfig().Endpoints, cfg.Discovery.Endpoints)
	assert.Equal(t, 30*time.Second, cfg.Discovery.AttemptTimeout)

	assert.Equal(t, 1500, cfg.Nearest.Radius)
	assert.Equal(t, 5, cfg.Nearest.Limit)

	assert.Equal(t, "google", cfg.Routing.Provider)
	assert.Equal(t, "http://router.project-osrm.org", cfg.Routing.OSRMURL)

	assert.Equal(t, "H", cfg.QRCode.ErrorCorrectionLevel)
	assert.Equal(t, 256, cfg.QRCode.Size)

	require.NotNil(t, cfg.PMTiles)
	assert.Equal(t, "mvt", cfg.PMTiles.Extension)
	assert.Equal(t, 64, cfg.PMTiles.CacheSize)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"discovery": map[string]any{"maxAttempts": 2, "attemptTimeout": "30s"},
		"detection": map[string]any{"predictUrl": ""},
		"pmtiles":   map[string]any{"cacheSize": 64},
		"pubsub":    map[string]any{"topicId": ""},
		"postgres": map[string]any{
			"master": map[string]any{"userName": "locator"},
		},
	}

	tests := map[string]string{
		"DISCOVERY_MAXATTEMPTS":    "discovery.maxAttempts",
		"DISCOVERY_ATTEMPTTIMEOUT": "discovery.attemptTimeout",
		"DETECTION_PREDICTURL":     "detection.predictUrl",
		"PMTILES_CACHESIZE":        "pmtiles.cacheSize",
		"PUBSUB_TOPICID":           "pubsub.topicId",
		"POSTGRES_MASTER_USERNAME": "postgres.master.userName",
		"SESSION__IDLETTL":         "session.idlettl",
	}

	for envKey, want := range tests {
		t.Run(envKey, func(t *testing.T) {
			assert.Equal(t, want, canonicalizeEnvKey(envKey, existing))
		})
	}
}

const testYAML = `
env:
  env: test
  serviceName: servicelocator
discovery:
  maxAttempts: 2
  attemptTimeout: 30s
pubsub:
  provider: local
  localEndpoint: http://localhost:8081/push
`

func TestLoadWithEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(testYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("DISCOVERY_MAXATTEMPTS", "4")
	t.Setenv("DISCOVERY_ATTEMPTTIMEOUT", "45s")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "servicelocator", cfg.Env.ServiceName)
	require.NotNil(t, cfg.Discovery)
	assert.Equal(t, 4, cfg.Discovery.MaxAttempts)
	assert.Equal(t, 45*time.Second, cfg.Discovery.AttemptTimeout)
	require.NotNil(t, cfg.PubSub)
	assert.Equal(t, "http://localhost:8081/push", cfg.PubSub.LocalEndpoint)
	assert.Nil(t, cfg.Detection)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("staging")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "staging.yaml not found")
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-a")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5432")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-b")

	replicas := buildReplicasFromEnv()

	// the second replica has no port and ends the scan
	require.Len(t, replicas, 1)
	assert.Equal(t, "replica-a", replicas[0].Host)
	assert.Equal(t, "reader", replicas[0].UserName)
}

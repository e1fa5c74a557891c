package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "10MB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Postgres is only required when the cache provider is "postgres"
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Cache configuration for the geoquery result cache
	Cache *CacheConfig `json:"cache" yaml:"cache"`

	// Discovery configuration for the multi-radius POI search
	Discovery *DiscoveryConfig `json:"discovery" yaml:"discovery"`

	// Geolocation configuration for position acquisition
	Geolocation *GeolocationConfig `json:"geolocation" yaml:"geolocation"`

	// Routing configuration for the route provider
	Routing *RoutingConfig `json:"routing" yaml:"routing"`

	// Details configuration for the reverse-geocoding details provider
	Details *DetailsConfig `json:"details" yaml:"details"`

	// Nearest configuration for the nearest-centres proxy
	Nearest *NearestConfig `json:"nearest" yaml:"nearest"`

	// Detection configuration for damage assessment
	Detection *DetectionConfig `json:"detection" yaml:"detection"`

	// Session configuration for discovery sessions
	Session *SessionConfig `json:"session" yaml:"session"`

	// QRCode configuration for directions QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// PMTiles configuration for base-map tiles
	PMTiles *PMTilesConfig `json:"pmtiles" yaml:"pmtiles"`

	// Worker configuration for the discovery event push worker
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// CacheConfig defines the geoquery cache backend
type CacheConfig struct {
	// Provider type: "memory" or "postgres"
	Provider string `json:"provider" yaml:"provider"`

	// Entries older than TTL are ignored and eventually purged
	TTL time.Duration `json:"ttl" yaml:"ttl"`

	// Interval between purges of expired entries (0 disables purging)
	PurgeInterval time.Duration `json:"purgeInterval" yaml:"purgeInterval"`
}

// DiscoveryConfig defines the multi-radius, multi-endpoint search schedule
type DiscoveryConfig struct {
	// Search radii in meters, tried largest first
	Radii []int `json:"radii" yaml:"radii"`

	// Overpass interpreter endpoints, tried in order
	Endpoints []string `json:"endpoints" yaml:"endpoints"`

	// Attempts per endpoint for each radius
	MaxAttempts int `json:"maxAttempts" yaml:"maxAttempts"`

	// Attempt n gets AttemptTimeout + n*AttemptTimeoutStep
	AttemptTimeout     time.Duration `json:"attemptTimeout" yaml:"attemptTimeout"`
	AttemptTimeoutStep time.Duration `json:"attemptTimeoutStep" yaml:"attemptTimeoutStep"`

	// Failed attempt n waits BackoffBase + n*BackoffStep before the next task
	BackoffBase time.Duration `json:"backoffBase" yaml:"backoffBase"`
	BackoffStep time.Duration `json:"backoffStep" yaml:"backoffStep"`
}

// GeolocationConfig defines position acquisition defaults
type GeolocationConfig struct {
	HighAccuracy bool          `json:"highAccuracy" yaml:"highAccuracy"`
	Timeout      time.Duration `json:"timeout" yaml:"timeout"`
	MaximumAge   time.Duration `json:"maximumAge" yaml:"maximumAge"`

	// IP lookup URL template; "{ip}" is replaced by the client address. Empty disables IP lookups.
	IPProviderURL string `json:"ipProviderUrl" yaml:"ipProviderUrl"`

	// Accuracy radius in meters reported for IP-derived fixes
	IPAccuracy float64 `json:"ipAccuracy" yaml:"ipAccuracy"`
}

// RoutingConfig defines the route provider
type RoutingConfig struct {
	// Provider type: "osrm" or "google"
	Provider string `json:"provider" yaml:"provider"`

	// OSRM base URL
	OSRMURL string `json:"osrmUrl" yaml:"osrmUrl"`

	// Google Maps API key (for google provider)
	GoogleAPIKey string `json:"googleApiKey" yaml:"googleApiKey"`

	// Per-request timeout
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// DetailsConfig defines the Nominatim reverse-lookup provider
type DetailsConfig struct {
	NominatimURL string        `json:"nominatimUrl" yaml:"nominatimUrl"`
	UserAgent    string        `json:"userAgent" yaml:"userAgent"`
	Timeout      time.Duration `json:"timeout" yaml:"timeout"`
}

// NearestConfig defines the nearest-centres proxy
type NearestConfig struct {
	Endpoint string        `json:"endpoint" yaml:"endpoint"`
	Radius   int           `json:"radius" yaml:"radius"`
	Limit    int           `json:"limit" yaml:"limit"`
	TTL      time.Duration `json:"ttl" yaml:"ttl"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

// DetectionConfig defines the damage detection backend and photo archive
type DetectionConfig struct {
	// Detection backend predict URL
	PredictURL string `json:"predictUrl" yaml:"predictUrl"`

	// Width in pixels the client displays images at
	DisplayWidth int `json:"displayWidth" yaml:"displayWidth"`

	// gocloud.dev blob bucket URL (file:///path or mem://). Empty disables archiving.
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// SessionConfig defines discovery session retention
type SessionConfig struct {
	IdleTTL time.Duration `json:"idleTTL" yaml:"idleTTL"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// WorkerConfig defines the push worker listener. It shares the http timeouts and body limit.
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`
}

// PMTilesConfig defines base-map tile serving
type PMTilesConfig struct {
	// Enable PMTiles tile serving; the OpenStreetMap tile template is used otherwise
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Bucket holding {tileset}.pmtiles archives (local directory, HTTP URL, or cloud bucket URL)
	Bucket string `json:"bucket" yaml:"bucket"`

	// Default tileset name used in the client tile template
	Tileset string `json:"tileset" yaml:"tileset"`

	// Tile extension in the client template, e.g. "mvt" or "png"
	Extension string `json:"extension" yaml:"extension"`

	// Number of directories kept in memory
	CacheSize int `json:"cacheSize" yaml:"cacheSize"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	cfg.ApplyDefaults()

	return cfg, nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}

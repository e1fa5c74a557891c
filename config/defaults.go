package config

import "time"

const defaultWorkerPort = 8081

// OpenStreetMap tile template used when no PMTiles archive is served.
const (
	DefaultTileURL     = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	DefaultAttribution = "&copy; OpenStreetMap contributors"
)

// DefaultCacheConfig keeps results in process memory for 15 minutes.
func DefaultCacheConfig() *CacheConfig {
	return &CacheConfig{
		Provider:      "memory",
		TTL:           15 * time.Minute,
		PurgeInterval: 10 * time.Minute,
	}
}

// DefaultDiscoveryConfig returns the public Overpass mirrors and the standard retry schedule.
func DefaultDiscoveryConfig() *DiscoveryConfig {
	return &DiscoveryConfig{
		Radii: []int{15000, 10000, 5000},
		Endpoints: []string{
			"https://overpass-api.de/api/interpreter",
			"https://overpass.kumi.systems/api/interpreter",
			"https://overpass.openstreetmap.fr/api/interpreter",
		},
		MaxAttempts:        2,
		AttemptTimeout:     30 * time.Second,
		AttemptTimeoutStep: 15 * time.Second,
		BackoffBase:        time.Second,
		BackoffStep:        time.Second,
	}
}

func DefaultGeolocationConfig() *GeolocationConfig {
	return &GeolocationConfig{
		HighAccuracy:  true,
		Timeout:       10 * time.Second,
		MaximumAge:    0,
		IPProviderURL: "http://ip-api.com/json/{ip}?fields=status,message,lat,lon",
		IPAccuracy:    5000,
	}
}

func DefaultRoutingConfig() *RoutingConfig {
	return &RoutingConfig{
		Provider: "osrm",
		OSRMURL:  "http://router.project-osrm.org",
		Timeout:  10 * time.Second,
	}
}

func DefaultDetailsConfig() *DetailsConfig {
	return &DetailsConfig{
		NominatimURL: "https://nominatim.openstreetmap.org",
		UserAgent:    "servicelocator/1.0",
		Timeout:      10 * time.Second,
	}
}

func DefaultNearestConfig() *NearestConfig {
	return &NearestConfig{
		Endpoint: "https://overpass-api.de/api/interpreter",
		Radius:   5000,
		Limit:    5,
		TTL:      5 * time.Minute,
		Timeout:  25 * time.Second,
	}
}

func DefaultDetectionConfig() *DetectionConfig {
	return &DetectionConfig{
		PredictURL:   "http://localhost:8000/predict",
		DisplayWidth: 900,
		Timeout:      60 * time.Second,
	}
}

func DefaultSessionConfig() *SessionConfig {
	return &SessionConfig{IdleTTL: time.Hour}
}

func DefaultQRCodeConfig() *QRCodeConfig {
	return &QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}
}

// ApplyDefaults fills missing sections and zero values of present sections.
func (c *Config) ApplyDefaults() {
	c.Cache = mergeCache(c.Cache)
	c.Discovery = mergeDiscovery(c.Discovery)
	c.Geolocation = mergeGeolocation(c.Geolocation)
	c.Routing = mergeRouting(c.Routing)
	c.Details = mergeDetails(c.Details)
	c.Nearest = mergeNearest(c.Nearest)
	c.Detection = mergeDetection(c.Detection)

	if c.Session == nil || c.Session.IdleTTL <= 0 {
		c.Session = DefaultSessionConfig()
	}
	if c.QRCode == nil {
		c.QRCode = DefaultQRCodeConfig()
	}
	if c.QRCode.Size <= 0 {
		c.QRCode.Size = DefaultQRCodeConfig().Size
	}
	if c.Worker == nil || c.Worker.Port <= 0 {
		c.Worker = &WorkerConfig{Port: defaultWorkerPort}
	}
	if c.PMTiles != nil {
		if c.PMTiles.Extension == "" {
			c.PMTiles.Extension = "mvt"
		}
		if c.PMTiles.CacheSize <= 0 {
			c.PMTiles.CacheSize = 64
		}
	}
}

func mergeCache(c *CacheConfig) *CacheConfig {
	def := DefaultCacheConfig()
	if c == nil {
		return def
	}
	if c.Provider == "" {
		c.Provider = def.Provider
	}
	if c.TTL <= 0 {
		c.TTL = def.TTL
	}

	return c
}

func mergeDiscovery(c *DiscoveryConfig) *DiscoveryConfig {
	def := DefaultDiscoveryConfig()
	if c == nil {
		return def
	}
	if len(c.Radii) == 0 {
		c.Radii = def.Radii
	}
	if len(c.Endpoints) == 0 {
		c.Endpoints = def.Endpoints
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = def.MaxAttempts
	}
	if c.AttemptTimeout <= 0 {
		c.AttemptTimeout = def.AttemptTimeout
	}

	return c
}

func mergeGeolocation(c *GeolocationConfig) *GeolocationConfig {
	if c == nil {
		return DefaultGeolocationConfig()
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultGeolocationConfig().Timeout
	}

	return c
}

func mergeRouting(c *RoutingConfig) *RoutingConfig {
	def := DefaultRoutingConfig()
	if c == nil {
		return def
	}
	if c.Provider == "" {
		c.Provider = def.Provider
	}
	if c.OSRMURL == "" {
		c.OSRMURL = def.OSRMURL
	}
	if c.Timeout <= 0 {
		c.Timeout = def.Timeout
	}

	return c
}

func mergeDetails(c *DetailsConfig) *DetailsConfig {
	def := DefaultDetailsConfig()
	if c == nil {
		return def
	}
	if c.NominatimURL == "" {
		c.NominatimURL = def.NominatimURL
	}
	if c.UserAgent == "" {
		c.UserAgent = def.UserAgent
	}
	if c.Timeout <= 0 {
		c.Timeout = def.Timeout
	}

	return c
}

func mergeNearest(c *NearestConfig) *NearestConfig {
	def := DefaultNearestConfig()
	if c == nil {
		return def
	}
	if c.Endpoint == "" {
		c.Endpoint = def.Endpoint
	}
	if c.Radius <= 0 {
		c.Radius = def.Radius
	}
	if c.Limit <= 0 {
		c.Limit = def.Limit
	}
	if c.TTL <= 0 {
		c.TTL = def.TTL
	}
	if c.Timeout <= 0 {
		c.Timeout = def.Timeout
	}

	return c
}

func mergeDetection(c *DetectionConfig) *DetectionConfig {
	def := DefaultDetectionConfig()
	if c == nil {
		return def
	}
	if c.PredictURL == "" {
		c.PredictURL = def.PredictURL
	}
	if c.DisplayWidth <= 0 {
		c.DisplayWidth = def.DisplayWidth
	}
	if c.Timeout <= 0 {
		c.Timeout = def.Timeout
	}

	return c
}

package constants

// Deployment environments
const (
	EnvLocal   = "local"
	EnvDevelop = "develop"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Geoquery cache providers
const (
	CacheProviderMemory   = "memory"
	CacheProviderPostgres = "postgres"
)

// Route providers
const (
	RoutingProviderOSRM   = "osrm"
	RoutingProviderGoogle = "google"
)

// Storage keys and topics
const (
	AssessmentImagePrefix = "assessments/"
	DiscoveryEventType    = "discovery.completed"
)

// TileRoutePrefix is where the HTTP layer mounts tile requests.
const TileRoutePrefix = "/tiles"

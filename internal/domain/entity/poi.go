package entity

import (
	"strings"
	"time"
)

// Well-known OSM tag keys read from discovered places.
const (
	TagName        = "name"
	TagBrand       = "brand"
	TagStreet      = "addr:street"
	TagHouseNumber = "addr:housenumber"
	TagPhone       = "phone"
)

// POI is a discovered service-centre candidate.
type POI struct {
	ID         string            `json:"id"`             // Provider id, or the positional index when absent.
	Type       string            `json:"type,omitempty"` // node, way or relation.
	Coordinate                   // Direct lat/lon, or the centre of a way/relation.
	Tags       map[string]string `json:"tags,omitempty"`
	Distance   float64           `json:"distance"` // Great-circle distance from the session origin, in meters.
}

// Label returns the display name of the place: name, then brand, then the fallback.
func (p POI) Label(fallback string) string {
	if name := p.Tags[TagName]; name != "" {
		return name
	}
	if brand := p.Tags[TagBrand]; brand != "" {
		return brand
	}

	return fallback
}

// StreetAddress joins the street and house number tags.
func (p POI) StreetAddress() string {
	return strings.TrimSpace(p.Tags[TagStreet] + " " + p.Tags[TagHouseNumber])
}

// CacheEntry is a stored discovery result for one (origin, brand, radius) key.
// Entries are replaced as a whole, never mutated in place.
type CacheEntry struct {
	Key      string
	StoredAt time.Time
	POIs     []POI
}

// IsFresh reports whether the entry is younger than ttl at now.
func (e *CacheEntry) IsFresh(now time.Time, ttl time.Duration) bool {
	return e != nil && now.Sub(e.StoredAt) < ttl
}

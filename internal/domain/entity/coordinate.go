// Package entity contains the core business objects of the project.
package entity

import (
	"math"
	"time"
)

// Coordinate is a WGS84 position in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// IsValid reports whether the coordinate lies within Earth bounds and is finite.
func (c Coordinate) IsValid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lon) ||
		math.IsInf(c.Lat, 0) || math.IsInf(c.Lon, 0) {
		return false
	}

	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// Position is a single fix produced by the geolocation acquirer.
// It is immutable once a discovery session has been started with it.
type Position struct {
	Coordinate
	Accuracy  *float64  `json:"accuracy,omitempty"` // Accuracy radius in meters, when known.
	Timestamp time.Time `json:"timestamp"`
}

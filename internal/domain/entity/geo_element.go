package entity

// GeoElement is one raw element of an Overpass interpreter response.
// Nodes carry Lat/Lon directly; ways and relations queried with "out center"
// carry Center instead.
type GeoElement struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat,omitempty"`
	Lon    *float64          `json:"lon,omitempty"`
	Center *GeoCenter        `json:"center,omitempty"`
	Tags   map[string]string `json:"tags,omitempty"`
}

// GeoCenter is the computed centre of a way or relation.
type GeoCenter struct {
	Lat *float64 `json:"lat,omitempty"`
	Lon *float64 `json:"lon,omitempty"`
}

// Location returns the direct coordinate when both parts are present,
// otherwise the centre. ok is false when neither is complete.
func (e GeoElement) Location() (Coordinate, bool) {
	if e.Lat != nil && e.Lon != nil {
		return Coordinate{Lat: *e.Lat, Lon: *e.Lon}, true
	}
	if e.Center != nil && e.Center.Lat != nil && e.Center.Lon != nil {
		return Coordinate{Lat: *e.Center.Lat, Lon: *e.Center.Lon}, true
	}

	return Coordinate{}, false
}

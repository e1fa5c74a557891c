package entity

// RouteGeometry is the polyline of a driving route between two coordinates.
type RouteGeometry struct {
	Points   []Coordinate `json:"points"`
	Distance float64      `json:"distance,omitempty"` // Meters, when the provider reports it.
	Duration float64      `json:"duration,omitempty"` // Seconds, when the provider reports it.
}

// CentreDetails holds optional descriptive fields of a selected centre.
// A nil field was absent upstream and is simply not displayed.
type CentreDetails struct {
	Address      *string `json:"address,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	OpeningHours *string `json:"opening_hours,omitempty"`
	Website      *string `json:"website,omitempty"`
	Rating       *string `json:"rating,omitempty"`
}

// Selection is the result of a user picking one POI.
// Route and Details are nil when their lookup failed.
type Selection struct {
	Centre        POI            `json:"centre"`
	Route         *RouteGeometry `json:"route,omitempty"`
	Details       *CentreDetails `json:"details,omitempty"`
	DirectionsURL string         `json:"directions_url"`
}

// NearbyCentre is a compact nearest-centre record with distance in kilometers.
type NearbyCentre struct {
	Name       string  `json:"name"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	Phone      string  `json:"phone,omitempty"`
	DistanceKm float64 `json:"distance_km"`
}

package entity

// Viewport is the pixel size of the client map container.
type Viewport struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Bounds is a lat/lon rectangle.
type Bounds struct {
	SouthWest Coordinate `json:"south_west"`
	NorthEast Coordinate `json:"north_east"`
}

// MapHandle is the explicit state of one map view. It is owned by a single
// discovery session and passed to every presenter operation.
type MapHandle struct {
	Center   Coordinate `json:"center"`
	Zoom     int        `json:"zoom"`
	Bounds   *Bounds    `json:"bounds,omitempty"` // Set after the view was fitted to results.
	Viewport Viewport   `json:"viewport"`
}

// Marker is one labelled pin on the map.
type Marker struct {
	Index         int        `json:"index"`
	ID            string     `json:"id"`
	Position      Coordinate `json:"position"`
	Label         string     `json:"label"`
	Address       string     `json:"address,omitempty"`
	Distance      float64    `json:"distance"`
	DistanceLabel string     `json:"distance_label"`
	Selected      bool       `json:"selected"`
}

// Circle highlights an area around a coordinate, radius in meters.
type Circle struct {
	Center Coordinate `json:"center"`
	Radius float64    `json:"radius"`
}

// MapView is everything a client needs to draw the current map state.
type MapView struct {
	TileURL     string       `json:"tile_url"`
	Attribution string       `json:"attribution"`
	Center      Coordinate   `json:"center"`
	Zoom        int          `json:"zoom"`
	Bounds      *Bounds      `json:"bounds,omitempty"`
	User        Marker       `json:"user"`
	Markers     []Marker     `json:"markers"`
	Highlight   *Circle      `json:"highlight,omitempty"`
	Route       []Coordinate `json:"route,omitempty"`
}

// Tile is an encoded map tile with its response headers.
type Tile struct {
	Data    []byte
	Headers map[string]string
}

package entity

// Platform error codes reported by a browser Geolocation API.
const (
	GeolocationCodePermissionDenied    = 1
	GeolocationCodePositionUnavailable = 2
	GeolocationCodeTimeout             = 3
)

// PositionError is a failure reported by a position source.
type PositionError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *PositionError) Error() string {
	return e.Message
}

// ReportedPosition is what a browser client reports after calling its
// Geolocation API: either a fix or an error code with a message.
type ReportedPosition struct {
	Lat          *float64 `json:"lat,omitempty"`
	Lon          *float64 `json:"lon,omitempty"`
	Accuracy     *float64 `json:"accuracy,omitempty"`
	ErrorCode    int      `json:"error_code,omitempty"`
	ErrorMessage string   `json:"error_message,omitempty"`
}

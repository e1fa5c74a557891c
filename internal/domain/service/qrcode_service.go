package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateDirectionsQR encodes a driving-directions link as a PNG QR code
	GenerateDirectionsQR(directionsURL string) ([]byte, error)

	// ParseDirectionsQR validates scanned QR content and returns the directions link
	ParseDirectionsQR(qrData string) (string, error)
}

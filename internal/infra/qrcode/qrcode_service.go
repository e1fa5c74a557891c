package qrcode

import (
	"encoding/json"
	"net/url"

	"servicelocator/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const directionsType = "directions"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData is the JSON payload encoded in a directions QR code
type QRCodeData struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateDirectionsQR renders the directions link as a PNG so it can be scanned onto a phone
func (s *qrcodeService) GenerateDirectionsQR(directionsURL string) ([]byte, error) {
	if err := validateDirectionsURL(directionsURL); err != nil {
		return nil, err
	}

	jsonData, err := json.Marshal(QRCodeData{Type: directionsType, URL: directionsURL})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseDirectionsQR parses scanned QR content and returns the directions link
func (s *qrcodeService) ParseDirectionsQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != directionsType {
		return "", errors.Errorf("invalid QR code type: %s", data.Type)
	}

	if err := validateDirectionsURL(data.URL); err != nil {
		return "", err
	}

	return data.URL, nil
}

func validateDirectionsURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return errors.Wrap(err, "invalid directions URL")
	}
	if parsed.Scheme != "https" && parsed.Scheme != "http" {
		return errors.Errorf("invalid directions URL scheme: %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return errors.New("directions URL has no host")
	}

	return nil
}

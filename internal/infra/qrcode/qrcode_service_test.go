package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDirectionsURL = "https://www.google.com/maps/dir/?api=1&destination=12.9716,77.5946"

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateDirectionsQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateDirectionsQR(testDirectionsURL)
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateDirectionsQR_InvalidURL(t *testing.T) {
	service := NewQRCodeService(256, "M")

	for _, raw := range []string{"", "maps/dir", "javascript:alert(1)", "https://"} {
		_, err := service.GenerateDirectionsQR(raw)
		assert.Error(t, err, raw)
	}
}

func TestQRCodeService_ParseDirectionsQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	valid, err := json.Marshal(QRCodeData{Type: "directions", URL: testDirectionsURL})
	require.NoError(t, err)
	wrongType, err := json.Marshal(QRCodeData{Type: "subscription", URL: testDirectionsURL})
	require.NoError(t, err)
	badURL, err := json.Marshal(QRCodeData{Type: "directions", URL: "ftp://example.com"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		qrData  string
		want    string
		wantErr bool
	}{
		{name: "valid", qrData: string(valid), want: testDirectionsURL},
		{name: "wrong type", qrData: string(wrongType), wantErr: true},
		{name: "bad url", qrData: string(badURL), wantErr: true},
		{name: "not json", qrData: "invalid json", wantErr: true},
		{name: "empty", qrData: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ParseDirectionsQR(tt.qrData)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, got)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

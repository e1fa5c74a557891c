package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type coordinateQuery struct {
	Lat   *float64 `query:"lat" validate:"required,min=-90,max=90"`
	Lon   *float64 `query:"lon" validate:"required,min=-180,max=180"`
	Brand string   `json:"brand" validate:"max=64"`
}

func TestValidator_FieldErrors(t *testing.T) {
	lat := 91.0
	err := New().Validate(&coordinateQuery{Lat: &lat})
	require.Error(t, err)

	assert.Equal(t, map[string]string{
		"lat": "max=90",
		"lon": "required",
	}, FieldErrors(err))
}

func TestValidator_Valid(t *testing.T) {
	lat, lon := 12.97, 77.59

	assert.NoError(t, New().Validate(&coordinateQuery{Lat: &lat, Lon: &lon, Brand: "Toyota"}))
	assert.Nil(t, FieldErrors(nil))
}

package detection

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"servicelocator/internal/domain/entity"
	domainerrors "servicelocator/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Predict(t *testing.T) {
	var gotFilename, gotData, gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)

			return
		}
		defer file.Close()
		data, _ := io.ReadAll(file)
		gotFilename = header.Filename
		gotContentType = header.Header.Get("Content-Type")
		gotData = string(data)

		_, _ = w.Write([]byte(`{"predictions":[
			{"part":"front_bumper","damage_type":"Dent","severity":"moderate","x1":10,"y1":20,"x2":110,"y2":220},
			{"cls":"headlamp","damage_type":"lamp broken","severity":"severe","x1":1,"y1":2,"x2":3,"y2":4}
		]}`))
	}))
	defer server.Close()

	detector := NewClient(server.URL, time.Second, nil)
	predictions, err := detector.Predict(context.Background(), &entity.ImageUpload{
		Filename:    "car.jpg",
		ContentType: "image/jpeg",
		Data:        []byte("jpeg-bytes"),
	})
	require.NoError(t, err)

	assert.Equal(t, "car.jpg", gotFilename)
	assert.Equal(t, "image/jpeg", gotContentType)
	assert.Equal(t, "jpeg-bytes", gotData)

	require.Len(t, predictions, 2)
	assert.Equal(t, entity.DamagePrediction{
		X1: 10, Y1: 20, X2: 110, Y2: 220,
		Part: "front_bumper", DamageType: "Dent", Severity: entity.SeverityModerate,
	}, predictions[0])
	assert.Equal(t, "headlamp", predictions[1].Part)
}

func TestClient_Predict_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `oops`},
		{name: "error payload", status: http.StatusOK, body: `{"error":"model not loaded"}`},
		{name: "invalid json", status: http.StatusOK, body: `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := NewClient(server.URL, time.Second, nil).
				Predict(context.Background(), &entity.ImageUpload{Data: []byte("x")})
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrDetectionFailed))
		})
	}
}

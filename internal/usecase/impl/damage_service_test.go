package impl

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"testing"

	"servicelocator/config"
	"servicelocator/internal/domain/entity"
	domainerrors "servicelocator/internal/domain/errors"
	mockService "servicelocator/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pngUpload(t *testing.T, width, height int) *entity.ImageUpload {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))))

	return &entity.ImageUpload{Filename: "car.png", ContentType: "image/png", Data: buf.Bytes()}
}

func newDamageService(t *testing.T, withStore bool) (*damageService, *mockService.MockDamageDetector, *mockService.MockImageStore) {
	t.Helper()

	detector := mockService.NewMockDamageDetector(t)
	params := DamageServiceParams{
		Detector: detector,
		Config:   &config.Config{},
		Logger:   testLogger(),
	}

	var store *mockService.MockImageStore
	if withStore {
		store = mockService.NewMockImageStore(t)
		params.Images = store
	}

	return NewDamageService(params).(*damageService), detector, store
}

func TestDamageService_Assess(t *testing.T) {
	svc, detector, store := newDamageService(t, true)
	upload := pngUpload(t, 1800, 1200)

	predictions := []entity.DamagePrediction{
		{X1: 100, Y1: 200, X2: 500, Y2: 600, Part: "front_bumper", DamageType: "dent", Severity: "moderate"},
		{X1: 0, Y1: 0, X2: 10, Y2: 10},
	}

	store.EXPECT().Put(mock.Anything, mock.MatchedBy(func(key string) bool {
		return len(key) > len("assessments/")
	}), upload).Return(nil).Once()
	detector.EXPECT().Predict(mock.Anything, upload).Return(predictions, nil).Once()

	assessment, err := svc.Assess(context.Background(), upload, 0)
	require.NoError(t, err)

	assert.Equal(t, "assessments/"+assessment.ID.String(), assessment.ImageKey)
	assert.Equal(t, 1800, assessment.ImageWidth)
	assert.Equal(t, 1200, assessment.ImageHeight)
	assert.Equal(t, 900, assessment.DisplayWidth)
	assert.Equal(t, predictions, assessment.Predictions)

	require.Len(t, assessment.Overlay, 2)
	assert.Equal(t, entity.OverlayBox{
		Index:      1,
		Left:       50,
		Top:        100,
		Width:      200,
		Height:     200,
		Color:      "#2979FF",
		Label:      "#1",
		Severity:   "moderate",
		DamageType: "dent",
	}, assessment.Overlay[0])
	assert.Equal(t, "#00E5FF", assessment.Overlay[1].Color)

	assert.Equal(t, []string{
		"1. front_bumper - dent (moderate)",
		"2. Unknown Part - Unknown Type (Unknown Severity)",
	}, assessment.Summary)
	assert.Contains(t, assessment.Report, "sustained 2 damage(s). 1. front_bumper - dent (moderate); 2. Unknown Part")
}

func TestDamageService_Assess_ArchiveFailureIsLogged(t *testing.T) {
	svc, detector, store := newDamageService(t, true)
	upload := pngUpload(t, 300, 200)

	store.EXPECT().Put(mock.Anything, mock.Anything, upload).Return(errors.New("bucket unavailable")).Once()
	detector.EXPECT().Predict(mock.Anything, upload).Return(nil, nil).Once()

	assessment, err := svc.Assess(context.Background(), upload, 600)
	require.NoError(t, err)

	assert.Empty(t, assessment.ImageKey)
	assert.Equal(t, 600, assessment.DisplayWidth)
	assert.Empty(t, assessment.Overlay)
	assert.Empty(t, assessment.Report)
}

func TestDamageService_Assess_InvalidImage(t *testing.T) {
	svc, _, _ := newDamageService(t, false)

	_, err := svc.Assess(context.Background(), &entity.ImageUpload{Data: []byte("not an image")}, 0)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidImage)

	_, err = svc.Assess(context.Background(), &entity.ImageUpload{}, 0)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidImage)
}

func TestDamageService_Assess_DetectionFailure(t *testing.T) {
	svc, detector, _ := newDamageService(t, false)
	upload := pngUpload(t, 64, 64)

	detector.EXPECT().Predict(mock.Anything, upload).Return(nil, domainerrors.ErrDetectionFailed.WithDetails("status 500")).Once()

	assessment, err := svc.Assess(context.Background(), upload, 0)
	assert.Nil(t, assessment)
	assert.ErrorIs(t, err, domainerrors.ErrDetectionFailed)
}

func TestDamageService_Predict(t *testing.T) {
	svc, detector, _ := newDamageService(t, false)
	upload := &entity.ImageUpload{Filename: "car.jpg", Data: []byte{0xff, 0xd8}}
	predictions := []entity.DamagePrediction{{X1: 1, Y1: 2, X2: 3, Y2: 4, Part: "door"}}

	detector.EXPECT().Predict(mock.Anything, upload).Return(predictions, nil).Once()

	got, err := svc.Predict(context.Background(), upload)
	require.NoError(t, err)
	assert.Equal(t, predictions, got)

	_, err = svc.Predict(context.Background(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidImage)
}

func TestScaleOverlay_PaletteWraps(t *testing.T) {
	predictions := make([]entity.DamagePrediction, 7)

	boxes := scaleOverlay(predictions, 1)
	require.Len(t, boxes, 7)
	assert.Equal(t, "#66BB6A", boxes[5].Color)
	assert.Equal(t, "#2979FF", boxes[6].Color)
	assert.Equal(t, 7, boxes[6].Index)
}

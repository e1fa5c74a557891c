package usecase

import (
	"context"

	"servicelocator/internal/domain/entity"
)

// DamageUsecase runs damage detection on vehicle photos.
type DamageUsecase interface {
	// Predict forwards the image to the detection backend.
	Predict(ctx context.Context, upload *entity.ImageUpload) ([]entity.DamagePrediction, error)

	// Assess archives the image, detects damage and scales the boxes to displayWidth.
	// A non-positive displayWidth uses the configured default.
	Assess(ctx context.Context, upload *entity.ImageUpload, displayWidth int) (*entity.DamageAssessment, error)
}

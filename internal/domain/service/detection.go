package service

import (
	"context"

	"servicelocator/internal/domain/entity"
)

// DamageDetector runs damage detection on a vehicle photo.
type DamageDetector interface {
	Predict(ctx context.Context, upload *entity.ImageUpload) ([]entity.DamagePrediction, error)
}

// ImageStore archives uploaded photos.
type ImageStore interface {
	Put(ctx context.Context, key string, upload *entity.ImageUpload) error
	Close() error
}

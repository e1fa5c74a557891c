package entity

import (
	"time"

	"github.com/google/uuid"
)

// Severity levels produced by the severity classifier.
const (
	SeverityMild     = "mild"
	SeverityModerate = "moderate"
	SeveritySevere   = "severe"
)

// DamagePrediction is one detected damage region in natural image pixels.
type DamagePrediction struct {
	X1         int    `json:"x1"`
	Y1         int    `json:"y1"`
	X2         int    `json:"x2"`
	Y2         int    `json:"y2"`
	Part       string `json:"part"`
	DamageType string `json:"damage_type"`
	Severity   string `json:"severity"`
}

// OverlayBox is a prediction scaled to the displayed image size.
type OverlayBox struct {
	Index      int     `json:"index"` // 1-based, as shown on the image.
	Left       float64 `json:"left"`
	Top        float64 `json:"top"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Color      string  `json:"color"`
	Label      string  `json:"label"`
	Severity   string  `json:"severity"`
	DamageType string  `json:"damage_type"`
}

// ImageUpload is a photo submitted for damage detection.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// DamageAssessment is a stored upload with its predictions and display overlay.
type DamageAssessment struct {
	ID           uuid.UUID          `json:"id"`
	ImageKey     string             `json:"image_key,omitempty"`
	ImageWidth   int                `json:"image_width"`
	ImageHeight  int                `json:"image_height"`
	DisplayWidth int                `json:"display_width"`
	Predictions  []DamagePrediction `json:"predictions"`
	Overlay      []OverlayBox       `json:"overlay"`
	Summary      []string           `json:"summary"`
	Report       string             `json:"report"` // Copyable one-paragraph form of Summary.
	CreatedAt    time.Time          `json:"created_at"`
}

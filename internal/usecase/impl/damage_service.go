package impl

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"  // GIF uploads
	_ "image/jpeg" // JPEG uploads
	_ "image/png"  // PNG uploads
	"log/slog"
	"strings"
	"time"

	"servicelocator/config"
	deliverycontext "servicelocator/internal/delivery/context"
	"servicelocator/internal/domain/constants"
	"servicelocator/internal/domain/entity"
	domainerrors "servicelocator/internal/domain/errors"
	"servicelocator/internal/domain/service"
	"servicelocator/internal/usecase"
	"servicelocator/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// overlayPalette colours boxes by their position in the prediction list.
var overlayPalette = []string{"#2979FF", "#00E5FF", "#7C4DFF", "#FF6B9D", "#FFA726", "#66BB6A"}

const (
	unknownPart     = "Unknown Part"
	unknownType     = "Unknown Type"
	unknownSeverity = "Unknown Severity"
)

// damageService implements the DamageUsecase interface.
type damageService struct {
	detector     service.DamageDetector
	images       service.ImageStore
	displayWidth int
	now          func() time.Time
	logger       *slog.Logger
}

// DamageServiceParams holds dependencies for DamageService, injected by Fx.
type DamageServiceParams struct {
	fx.In

	Detector service.DamageDetector
	Images   service.ImageStore `optional:"true"`
	Config   *config.Config
	Logger   *slog.Logger
}

// NewDamageService is the constructor for damageService.
func NewDamageService(params DamageServiceParams) usecase.DamageUsecase {
	displayWidth := config.DefaultDetectionConfig().DisplayWidth
	if params.Config.Detection != nil && params.Config.Detection.DisplayWidth > 0 {
		displayWidth = params.Config.Detection.DisplayWidth
	}

	return &damageService{
		detector:     params.Detector,
		images:       params.Images,
		displayWidth: displayWidth,
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *damageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *damageService) Predict(ctx context.Context, upload *entity.ImageUpload) ([]entity.DamagePrediction, error) {
	if upload == nil || len(upload.Data) == 0 {
		return nil, domainerrors.ErrInvalidImage.WithDetails("no file uploaded")
	}

	predictions, err := srv.detector.Predict(ctx, upload)
	if err != nil {
		srv.log(ctx).Error("Damage detection failed", slog.String("filename", upload.Filename), slog.Any("error", err))

		return nil, err
	}

	return predictions, nil
}

func (srv *damageService) Assess(ctx context.Context, upload *entity.ImageUpload, displayWidth int) (*entity.DamageAssessment, error) {
	if upload == nil || len(upload.Data) == 0 {
		return nil, domainerrors.ErrInvalidImage.WithDetails("no file uploaded")
	}

	imageConfig, format, err := image.DecodeConfig(bytes.NewReader(upload.Data))
	if err != nil {
		return nil, domainerrors.ErrInvalidImage.WithDetails(err.Error())
	}
	if imageConfig.Width <= 0 || imageConfig.Height <= 0 {
		return nil, domainerrors.ErrInvalidImage.WithDetails("image has no pixels")
	}

	if displayWidth <= 0 {
		displayWidth = srv.displayWidth
	}

	assessment := &entity.DamageAssessment{
		ID:           uuid.New(),
		ImageWidth:   imageConfig.Width,
		ImageHeight:  imageConfig.Height,
		DisplayWidth: displayWidth,
		CreatedAt:    srv.now().UTC(),
	}
	logger := srv.log(ctx).With(slog.String("assessment_id", assessment.ID.String()))

	if srv.images != nil {
		key := constants.AssessmentImagePrefix + assessment.ID.String()
		if err := srv.images.Put(ctx, key, upload); err != nil {
			logger.Warn("Failed to archive assessment image", slog.String("key", key), slog.Any("error", err))
		} else {
			assessment.ImageKey = key
		}
	}

	predictions, err := srv.Predict(ctx, upload)
	if err != nil {
		return nil, err
	}

	assessment.Predictions = predictions
	assessment.Overlay = scaleOverlay(predictions, float64(displayWidth)/float64(imageConfig.Width))
	assessment.Summary = summarize(predictions)
	assessment.Report = damageReport(assessment.Summary)

	logger.Info("Damage assessed",
		slog.String("format", format),
		util.Size("size", len(upload.Data)),
		slog.Int("image_width", imageConfig.Width),
		slog.Int("predictions", len(predictions)),
	)

	return assessment, nil
}

// scaleOverlay maps natural-pixel boxes to the display size.
func scaleOverlay(predictions []entity.DamagePrediction, scale float64) []entity.OverlayBox {
	boxes := make([]entity.OverlayBox, 0, len(predictions))
	for idx, p := range predictions {
		boxes = append(boxes, entity.OverlayBox{
			Index:      idx + 1,
			Left:       float64(p.X1) * scale,
			Top:        float64(p.Y1) * scale,
			Width:      float64(p.X2-p.X1) * scale,
			Height:     float64(p.Y2-p.Y1) * scale,
			Color:      overlayPalette[idx%len(overlayPalette)],
			Label:      fmt.Sprintf("#%d", idx+1),
			Severity:   p.Severity,
			DamageType: p.DamageType,
		})
	}

	return boxes
}

func summarize(predictions []entity.DamagePrediction) []string {
	lines := make([]string, 0, len(predictions))
	for idx, p := range predictions {
		lines = append(lines, fmt.Sprintf("%d. %s - %s (%s)",
			idx+1, orDefault(p.Part, unknownPart), orDefault(p.DamageType, unknownType), orDefault(p.Severity, unknownSeverity)))
	}

	return lines
}

func damageReport(summary []string) string {
	if len(summary) == 0 {
		return ""
	}

	return fmt.Sprintf("Vehicle Damage Assessment Report: The vehicle has sustained %d damage(s). %s. "+
		"Please review the detailed damage information for repair cost estimation and recommendations.",
		len(summary), strings.Join(summary, "; "))
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}

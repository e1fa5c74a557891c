package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"servicelocator/internal/delivery/api/response"
	"servicelocator/internal/domain/entity"
	domainerrors "servicelocator/internal/domain/errors"
	"servicelocator/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	formFieldFile         = "file"
	formFieldDisplayWidth = "display_width"
	maxDisplayWidth       = 10000
)

// AssessmentHandlerParams holds dependencies for AssessmentHandler, injected by Fx.
type AssessmentHandlerParams struct {
	fx.In

	DamageUC usecase.DamageUsecase
	Logger   *slog.Logger
}

// AssessmentHandler serves damage assessments of uploaded photos
type AssessmentHandler struct {
	damageUC usecase.DamageUsecase
	logger   *slog.Logger
}

// NewAssessmentHandler is the constructor for AssessmentHandler
func NewAssessmentHandler(params AssessmentHandlerParams) *AssessmentHandler {
	return &AssessmentHandler{
		damageUC: params.DamageUC,
		logger:   params.Logger,
	}
}

// CreateAssessment detects damage on the multipart "file" and scales the
// overlay to the optional "display_width" form value
func (h *AssessmentHandler) CreateAssessment(c echo.Context) error {
	upload, err := readUpload(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	displayWidth := 0
	if raw := c.FormValue(formFieldDisplayWidth); raw != "" {
		displayWidth, err = strconv.Atoi(raw)
		if err != nil || displayWidth < 0 || displayWidth > maxDisplayWidth {
			return response.Error(c, http.StatusBadRequest, domainerrors.ErrValidationFailed.ErrorCode(),
				domainerrors.ErrValidationFailed.Message(), map[string]string{formFieldDisplayWidth: "min=0,max=10000"})
		}
	}

	assessment, err := h.damageUC.Assess(c.Request().Context(), upload, displayWidth)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, assessment)
}

// readUpload loads the multipart "file" field into memory.
func readUpload(c echo.Context) (*entity.ImageUpload, error) {
	fileHeader, err := c.FormFile(formFieldFile)
	if err != nil {
		return nil, domainerrors.ErrInvalidImage.WithDetails("multipart field \"file\" is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read uploaded file")
	}

	return &entity.ImageUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Data:        data,
	}, nil
}

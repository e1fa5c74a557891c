package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"servicelocator/internal/delivery/api/response"
	domainerrors "servicelocator/internal/domain/errors"
	"servicelocator/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TileHandlerParams holds dependencies for TileHandler, injected by Fx.
type TileHandlerParams struct {
	fx.In

	MapUC  usecase.MapUsecase
	Logger *slog.Logger
}

// TileHandler serves base-map tiles
type TileHandler struct {
	mapUC  usecase.MapUsecase
	logger *slog.Logger
}

// NewTileHandler is the constructor for TileHandler
func NewTileHandler(params TileHandlerParams) *TileHandler {
	return &TileHandler{
		mapUC:  params.MapUC,
		logger: params.Logger,
	}
}

// GetTile serves /tiles/:tileset/:z/:x/:y where y may carry an extension, as in 5.mvt
func (h *TileHandler) GetTile(c echo.Context) error {
	y, ext, _ := strings.Cut(c.Param("y"), ".")

	coords := make([]int, 0, 3)
	for _, raw := range []string{c.Param("z"), c.Param("x"), y} {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("tile coordinates must be integers"))
		}
		coords = append(coords, value)
	}

	tile, err := h.mapUC.Tile(c.Request().Context(), c.Param("tileset"), coords[0], coords[1], coords[2], ext)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	for key, value := range tile.Headers {
		c.Response().Header().Set(key, value)
	}
	if len(tile.Data) == 0 {
		return c.NoContent(http.StatusNoContent)
	}

	contentType := c.Response().Header().Get(echo.HeaderContentType)
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	return c.Blob(http.StatusOK, contentType, tile.Data)
}

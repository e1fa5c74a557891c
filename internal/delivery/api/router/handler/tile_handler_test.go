package handler

import (
	"net/http"
	"testing"

	"servicelocator/internal/domain/entity"
	domainerrors "servicelocator/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTileHandler_GetTile(t *testing.T) {
	e, mocks := newTestServer(t)

	mocks.maps.EXPECT().Tile(mock.Anything, "basemap", 14, 11720, 7580, "mvt").
		Return(&entity.Tile{
			Data: []byte{0x1a, 0x02},
			Headers: map[string]string{
				"Content-Type":     "application/vnd.mapbox-vector-tile",
				"Content-Encoding": "gzip",
			},
		}, nil).Once()

	rec := serve(e, http.MethodGet, "/tiles/basemap/14/11720/7580.mvt", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.mapbox-vector-tile", rec.Header().Get("Content-Type"))
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Equal(t, []byte{0x1a, 0x02}, rec.Body.Bytes())
}

func TestTileHandler_GetTile_Empty(t *testing.T) {
	e, mocks := newTestServer(t)

	mocks.maps.EXPECT().Tile(mock.Anything, "basemap", 3, 1, 2, "").
		Return(&entity.Tile{Headers: map[string]string{}}, nil).Once()

	rec := serve(e, http.MethodGet, "/tiles/basemap/3/1/2", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestTileHandler_GetTile_Errors(t *testing.T) {
	e, mocks := newTestServer(t)

	rec := serve(e, http.MethodGet, "/tiles/basemap/3/one/2.mvt", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	mocks.maps.EXPECT().Tile(mock.Anything, "missing", 3, 1, 2, "mvt").
		Return(nil, domainerrors.ErrNotFound.WithDetails("tileset missing")).Once()

	rec = serve(e, http.MethodGet, "/tiles/missing/3/1/2.mvt", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	if assert.NotNil(t, env.Error) {
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
	}
}

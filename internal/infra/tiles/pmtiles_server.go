package tiles

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"servicelocator/config"
	"servicelocator/internal/domain/constants"
	"servicelocator/internal/domain/entity"
	domainerrors "servicelocator/internal/domain/errors"
	"servicelocator/internal/domain/service"

	"github.com/paulmach/orb/maptile"
	"github.com/pkg/errors"
	"github.com/protomaps/go-pmtiles/pmtiles"
	"go.uber.org/fx"
)

// pmtilesServer serves tiles out of {tileset}.pmtiles archives in a bucket
type pmtilesServer struct {
	server    *pmtiles.Server
	tileset   string
	extension string
	logger    *slog.Logger
}

// osmTileServer points clients at the public OpenStreetMap tiles
type osmTileServer struct{}

// TileServerParams holds dependencies for the tile server, injected by Fx
type TileServerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewTileServer creates a PMTiles-backed tile server, or the OpenStreetMap fallback when disabled
func NewTileServer(params TileServerParams) (service.TileServer, error) {
	cfg := params.Config.PMTiles
	logger := params.Logger.With(slog.String("component", "tiles"))

	if cfg == nil || !cfg.Enabled {
		logger.Info("PMTiles disabled, using OpenStreetMap tile template")

		return osmTileServer{}, nil
	}

	srv, err := NewPMTilesServer(cfg, logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return srv.Close()
		},
	})

	return srv, nil
}

// NewPMTilesServer opens the archive bucket and starts the pmtiles directory cache
func NewPMTilesServer(cfg *config.PMTilesConfig, logger *slog.Logger) (service.TileServer, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("PMTiles bucket is required when enabled")
	}

	bucketURL, tileset := parseSourcePath(cfg.Bucket)
	if cfg.Tileset != "" {
		tileset = cfg.Tileset
	}
	if tileset == "" {
		return nil, errors.New("PMTiles tileset is required when the bucket is a directory")
	}

	extension := strings.TrimPrefix(cfg.Extension, ".")
	if extension == "" {
		extension = "mvt"
	}

	cacheSize := cfg.CacheSize
	if cacheSize <= 0 {
		cacheSize = 64
	}

	// pmtiles only accepts a *log.Logger
	server, err := pmtiles.NewServer(bucketURL, "", log.New(io.Discard, "", 0), cacheSize, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PMTiles server")
	}
	server.Start()

	logger.Info("PMTiles tile server initialized",
		slog.String("bucket", bucketURL),
		slog.String("tileset", tileset),
		slog.String("extension", extension),
		slog.Int("cache_size", cacheSize),
	)

	return &pmtilesServer{
		server:    server,
		tileset:   tileset,
		extension: extension,
		logger:    logger,
	}, nil
}

// parseSourcePath splits an archive location into the bucket and tileset name.
// A location without the .pmtiles suffix is treated as a bucket directory.
//   - "file:///data/basemap.pmtiles" -> ("file:///data", "basemap")
//   - "/data/basemap.pmtiles" -> ("file:///data", "basemap")
//   - "https://cdn.example.com/tiles/basemap.pmtiles" -> ("https://cdn.example.com/tiles", "basemap")
//   - "/data" -> ("file:///data", "")
func parseSourcePath(source string) (bucketURL, tileset string) {
	if !strings.HasSuffix(source, ".pmtiles") {
		if strings.Contains(source, "://") {
			return strings.TrimSuffix(source, "/"), ""
		}

		return "file://" + filepath.Clean(source), ""
	}

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		lastSlash := strings.LastIndex(source, "/")

		return source[:lastSlash], strings.TrimSuffix(source[lastSlash+1:], ".pmtiles")
	}

	path := strings.TrimPrefix(source, "file://")
	tileset = strings.TrimSuffix(filepath.Base(path), ".pmtiles")

	return "file://" + filepath.Dir(path), tileset
}

// Tile fetches one tile. An address inside the archive bounds with no data yields an empty tile.
func (s *pmtilesServer) Tile(ctx context.Context, tileset string, z, x, y int, ext string) (*entity.Tile, error) {
	if err := validateTile(z, x, y); err != nil {
		return nil, err
	}
	if tileset == "" {
		tileset = s.tileset
	}
	if ext == "" {
		ext = s.extension
	}

	status, headers, data := s.server.Get(ctx, fmt.Sprintf("/%s/%d/%d/%d.%s", tileset, z, x, y, ext))

	switch status {
	case http.StatusOK:
		return &entity.Tile{Data: data, Headers: headers}, nil
	case http.StatusNoContent:
		return &entity.Tile{Headers: headers}, nil
	case http.StatusNotFound:
		return nil, domainerrors.ErrNotFound.WithDetails(fmt.Sprintf("tile %s/%d/%d/%d not found", tileset, z, x, y))
	case http.StatusBadRequest:
		return nil, domainerrors.ErrValidationFailed.WithDetails(strings.TrimSpace(string(data)))
	default:
		s.logger.Warn("Unexpected PMTiles status",
			slog.Int("status", status),
			slog.String("tileset", tileset),
		)

		return nil, domainerrors.ErrUpstreamError.WithDetails(fmt.Sprintf("tile server returned status %d", status))
	}
}

// URLTemplate is the Leaflet-style template for the default tileset
func (s *pmtilesServer) URLTemplate() string {
	return fmt.Sprintf("%s/%s/{z}/{x}/{y}.%s", constants.TileRoutePrefix, s.tileset, s.extension)
}

func (s *pmtilesServer) Close() error {
	return nil
}

func (osmTileServer) Tile(ctx context.Context, tileset string, z, x, y int, ext string) (*entity.Tile, error) {
	return nil, domainerrors.ErrNotFound.WithDetails("tile serving is disabled")
}

func (osmTileServer) URLTemplate() string {
	return config.DefaultTileURL
}

func (osmTileServer) Close() error {
	return nil
}

// maxZoom is the deepest level any archive we serve is built to
const maxZoom = 22

// validateTile rejects addresses outside the z/x/y grid
func validateTile(z, x, y int) error {
	if z < 0 || z > maxZoom {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("zoom %d out of range", z))
	}
	if x < 0 || y < 0 || !maptile.New(uint32(x), uint32(y), maptile.Zoom(z)).Valid() {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("tile %d/%d/%d out of range", z, x, y))
	}

	return nil
}

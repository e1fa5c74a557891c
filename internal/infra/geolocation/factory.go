package geolocation

import (
	"log/slog"
	"net/http"
	"time"

	"servicelocator/config"
	"servicelocator/internal/domain/entity"
	"servicelocator/internal/domain/service"

	"go.uber.org/fx"
)

type sourceFactory struct {
	cfg        *config.GeolocationConfig
	httpClient *http.Client
	fixes      *lastFix
	logger     *slog.Logger
}

// FactoryParams holds dependencies for the position source factory, injected by Fx
type FactoryParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	HTTPClient *http.Client `optional:"true"`
}

// NewSourceFactory creates the PositionSourceFactory.
func NewSourceFactory(params FactoryParams) service.PositionSourceFactory {
	cfg := params.Config.Geolocation
	if cfg == nil {
		cfg = config.DefaultGeolocationConfig()
	}

	httpClient := params.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &sourceFactory{
		cfg:        cfg,
		httpClient: httpClient,
		fixes:      &lastFix{fixes: make(map[string]entity.Position)},
		logger:     params.Logger,
	}
}

func (f *sourceFactory) Reported(reported entity.ReportedPosition) service.PositionSource {
	return NewReportedSource(reported)
}

func (f *sourceFactory) ForClient(clientIP string) service.PositionSource {
	if f.cfg.IPProviderURL == "" {
		return nil
	}

	return &ipSource{
		clientIP:   clientIP,
		urlPattern: f.cfg.IPProviderURL,
		accuracy:   f.cfg.IPAccuracy,
		httpClient: f.httpClient,
		cache:      f.fixes,
		logger:     f.logger,
		now:        time.Now,
	}
}

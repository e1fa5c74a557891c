package main

import (
	"context"
	"log/slog"
	"os"

	"servicelocator/config"
	"servicelocator/internal/delivery"
	"servicelocator/internal/delivery/api"
	"servicelocator/internal/delivery/api/router/handler"
	"servicelocator/internal/domain/service"
	"servicelocator/internal/infra/detection"
	"servicelocator/internal/infra/geolocation"
	logs "servicelocator/internal/infra/log"
	"servicelocator/internal/infra/nominatim"
	"servicelocator/internal/infra/overpass"
	"servicelocator/internal/infra/persistence"
	"servicelocator/internal/infra/pubsub"
	"servicelocator/internal/infra/qrcode"
	"servicelocator/internal/infra/routing"
	"servicelocator/internal/infra/storage"
	"servicelocator/internal/infra/tiles"
	"servicelocator/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.NewGeoQueryCacheRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			overpass.NewClient,
			geolocation.NewSourceFactory,
			routing.NewRouteProvider,
			newDetailsProvider,
			newDamageDetector,
			newQRCodeService,
			storage.NewImageStore,
			pubsub.NewEventPublisher,
			tiles.NewTileServer,
		),
	)
}

// newDetailsProvider creates the Nominatim reverse-lookup client
func newDetailsProvider(cfg *config.Config) service.PlaceDetailsProvider {
	details := cfg.Details
	if details == nil {
		details = config.DefaultDetailsConfig()
	}

	return nominatim.NewDetailsProvider(details.NominatimURL, details.UserAgent, details.Timeout, nil)
}

// newDamageDetector creates the detection backend client
func newDamageDetector(cfg *config.Config) service.DamageDetector {
	detectionCfg := cfg.Detection
	if detectionCfg == nil {
		detectionCfg = config.DefaultDetectionConfig()
	}

	return detection.NewClient(detectionCfg.PredictURL, detectionCfg.Timeout, nil)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(config.DefaultQRCodeConfig().Size, config.DefaultQRCodeConfig().ErrorCorrectionLevel)
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewGeolocationService,
			impl.NewDiscoveryService,
			impl.NewMapService,
			impl.NewSessionService,
			impl.NewNearestCentreService,
			impl.NewDamageService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDiscoveryHandler,
			handler.NewSessionHandler,
			handler.NewAssessmentHandler,
			handler.NewProxyHandler,
			handler.NewTileHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}

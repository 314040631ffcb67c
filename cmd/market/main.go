package main

import (
	"context"
	"log/slog"
	"os"

	"harvest/config"
	"harvest/internal/delivery"
	"harvest/internal/delivery/api"
	"harvest/internal/delivery/api/middleware"
	"harvest/internal/delivery/api/realtime"
	"harvest/internal/delivery/api/router/handler"
	"harvest/internal/domain/service"
	"harvest/internal/infra/auth"
	"harvest/internal/infra/cache"
	"harvest/internal/infra/confirmation"
	"harvest/internal/infra/geocode"
	logs "harvest/internal/infra/log"
	"harvest/internal/infra/metrics"
	"harvest/internal/infra/notification"
	"harvest/internal/infra/payment"
	"harvest/internal/infra/persistence/postgres"
	"harvest/internal/infra/presence"
	"harvest/internal/infra/pubsub"
	"harvest/internal/infra/qrcode"
	"harvest/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
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
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
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
		postgres.New,
		cache.NewRedisClient,
		metrics.New,
		func(m *metrics.Metrics) service.MarketMetrics { return m },
		fx.Annotate(
			presence.New,
			fx.As(new(service.PresenceRegistry)),
		),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewListingRepository,
			postgres.NewDemandRepository,
			postgres.NewMatchRepository,
			postgres.NewOrderRepository,
			postgres.NewAddressRepository,
			postgres.NewDeviceRepository,
			postgres.NewNotificationRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			confirmation.NewCodeGenerator,
			newPushService,
			newPaymentGateway,
			newGeocoder,
			newQRCodeService,
		),
		pubsub.Module,
	)
}

// newPushService falls back to a no-op sender when Firebase is not configured
func newPushService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.PushService, error) {
	if cfg.Firebase == nil {
		logger.Info("Firebase not configured, push notifications disabled")

		return notification.NewNoopPushService(), nil
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath, cfg.Firebase.SendTimeout)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase service")
	}

	return svc, nil
}

// newPaymentGateway rejects every charge when no gateway is configured
func newPaymentGateway(cfg *config.Config, logger *slog.Logger) service.PaymentGateway {
	if cfg.Payment == nil || cfg.Payment.SecretKey == "" {
		logger.Warn("Payment gateway not configured, orders will be rejected")

		return payment.NewUnavailableGateway()
	}

	return payment.NewOmiseGateway(cfg.Payment, logger)
}

// newGeocoder wraps the Google geocoder with the Redis cache when both are configured
func newGeocoder(cfg *config.Config, redisClient *redis.Client, logger *slog.Logger) (service.Geocoder, error) {
	if cfg.Geocoding == nil || cfg.Geocoding.APIKey == "" {
		logger.Info("Geocoding not configured, address lookups disabled")

		return geocode.NewNoopGeocoder(), nil
	}

	geocoder, err := geocode.NewGoogleGeocoder(cfg.Geocoding.APIKey, cfg.Geocoding.Region, cfg.Geocoding.Timeout, logger)
	if err != nil {
		return nil, err
	}
	if redisClient == nil {
		return geocoder, nil
	}

	return geocode.NewCachedGeocoder(geocoder, redisClient, cfg.Geocoding.CacheTTL, cfg.Geocoding.NegativeTTL, logger), nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDispatcherService,
			impl.NewMatchingService,
			impl.NewListingService,
			impl.NewDemandService,
			impl.NewOrderService,
			impl.NewNotificationService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewListingHandler,
			handler.NewDemandHandler,
			handler.NewOrderHandler,
			handler.NewNotificationHandler,
			handler.NewDeviceHandler,
			realtime.NewHandler,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}

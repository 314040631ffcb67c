// Package pubsub publishes payment reconciliation events to the configured broker.
package pubsub

import (
	"context"
	"log/slog"

	"harvest/config"
	"harvest/internal/domain/constants"
	"harvest/internal/domain/entity"
	"harvest/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher only logs; charges it receives still need manual follow-up.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishReconciliationEvent(ctx context.Context, event *entity.PaymentReconciliationEvent) error {
	p.logger.WarnContext(ctx, "[NoopPubSub] Reconciliation publishing disabled, charge needs manual refund",
		slog.String("charge_id", event.ChargeID),
		slog.Int64("amount_minor", event.AmountMinor),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	var publisher service.EventPublisher
	var err error

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	case constants.PubSubProviderNATS:
		if cfg.NatsURL == "" || cfg.TopicID == "" {
			return nil, errors.New("nats url and topic ID are required for nats provider")
		}
		logger.Info("Using NATS publisher",
			slog.String("url", cfg.NatsURL),
			slog.String("subject", cfg.TopicID),
		)

		publisher, err = NewNATSPublisher(cfg.NatsURL, cfg.TopicID, params.Config.Env.ServiceName, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// eventAttributes are copied onto broker message metadata for filtering.
func eventAttributes(event *entity.PaymentReconciliationEvent) map[string]string {
	attributes := map[string]string{
		"charge_id":  event.ChargeID,
		"buyer_id":   event.BuyerID.String(),
		"listing_id": event.ListingID.String(),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)

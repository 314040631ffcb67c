package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"harvest/config"
	"harvest/internal/delivery"
	deliverycontext "harvest/internal/delivery/context"
	"harvest/internal/domain/constants"
	"harvest/internal/domain/entity"
	"harvest/internal/infra/pubsub"
	"harvest/internal/usecase"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	reconcilerQueue = "reconciler"

	// Core NATS never redelivers, so failed refunds are retried in process.
	reconcileAttempts    = 5
	reconcileBackoffBase = time.Second
)

type natsSubscriber struct {
	cfg            *config.PubSubConfig
	clientName     string
	logger         *slog.Logger
	reconciliation usecase.ReconciliationUsecase

	conn *nats.Conn
	// backoff is replaced in tests.
	backoff func(attempt int) time.Duration
}

// SubscriberParams holds dependencies for the NATS subscriber
type SubscriberParams struct {
	fx.In

	Lc             fx.Lifecycle
	Cfg            *config.Config
	Logger         *slog.Logger
	Reconciliation usecase.ReconciliationUsecase
}

// NewNATSSubscriber consumes reconciliation events from the configured NATS
// subject. It stays idle unless the nats provider is selected.
func NewNATSSubscriber(params SubscriberParams) (delivery.Delivery, error) {
	s := &natsSubscriber{
		cfg:            params.Cfg.PubSub,
		clientName:     params.Cfg.Env.ServiceName,
		logger:         params.Logger,
		reconciliation: params.Reconciliation,
		backoff: func(attempt int) time.Duration {
			return reconcileBackoffBase << attempt
		},
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Serve subscribes and returns; messages are handled on the NATS client goroutine.
func (s *natsSubscriber) Serve(ctx context.Context) error {
	if s.cfg == nil || s.cfg.Provider != constants.PubSubProviderNATS {
		s.logger.Info("NATS provider not selected, subscriber idle")

		return nil
	}

	conn, err := pubsub.Connect(s.cfg.NatsURL, s.clientName, s.logger)
	if err != nil {
		return err
	}

	_, err = conn.QueueSubscribe(s.cfg.TopicID, reconcilerQueue, func(msg *nats.Msg) {
		s.handle(ctx, msg)
	})
	if err != nil {
		conn.Close()

		return errors.Wrapf(err, "failed to subscribe to %s", s.cfg.TopicID)
	}

	s.conn = conn
	s.logger.Info("Subscribed to reconciliation events",
		slog.String("subject", s.cfg.TopicID),
		slog.String("queue", reconcilerQueue),
	)

	return nil
}

func (s *natsSubscriber) handle(ctx context.Context, msg *nats.Msg) {
	var event entity.PaymentReconciliationEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		s.logger.Error("[Reconciler] Dropping malformed NATS message", slog.Any("error", err))

		return
	}

	requestID := msg.Header.Get("request_id")
	if requestID == "" {
		requestID = event.RequestID
	}
	ctx, logger := deliverycontext.Scope(ctx, s.logger, requestID)

	s.reconcile(ctx, logger, &event)
}

func (s *natsSubscriber) reconcile(ctx context.Context, logger *slog.Logger, event *entity.PaymentReconciliationEvent) {
	for attempt := range reconcileAttempts {
		err := s.reconciliation.Reconcile(ctx, event)
		if err == nil {
			return
		}

		logger.Warn("[Reconciler] Refund attempt failed",
			slog.String("charge_id", event.ChargeID),
			slog.Int("attempt", attempt+1),
			slog.Any("error", err),
		)
		if attempt == reconcileAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(s.backoff(attempt)):
		}
	}

	logger.Error("[Reconciler] Refund retries exhausted, charge needs manual refund",
		slog.String("charge_id", event.ChargeID),
		slog.Int64("amount_minor", event.AmountMinor),
		slog.String("buyer_id", event.BuyerID.String()),
	)
}

func (s *natsSubscriber) stop(_ context.Context) error {
	if s.conn == nil {
		return nil
	}
	s.logger.Info("Draining NATS subscription")

	return errors.WithStack(s.conn.Drain())
}

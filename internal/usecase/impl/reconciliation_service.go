package impl

import (
	"context"
	"log/slog"
	"time"

	"harvest/config"
	deliverycontext "harvest/internal/delivery/context"
	"harvest/internal/domain/entity"
	"harvest/internal/domain/service"
	"harvest/internal/errors"
	"harvest/internal/usecase"

	"go.uber.org/fx"
)

type reconciliationService struct {
	payment        service.PaymentGateway
	metrics        service.MarketMetrics
	paymentTimeout time.Duration
	logger         *slog.Logger
}

// ReconciliationServiceParams holds dependencies for the reconciler, injected by Fx.
type ReconciliationServiceParams struct {
	fx.In

	Payment service.PaymentGateway
	Metrics service.MarketMetrics `optional:"true"`
	Config  *config.Config
	Logger  *slog.Logger
}

// NewReconciliationService creates the refund worker for orphaned charges.
func NewReconciliationService(params ReconciliationServiceParams) usecase.ReconciliationUsecase {
	timeout := defaultPaymentTimeout
	if params.Config != nil && params.Config.Payment != nil && params.Config.Payment.Timeout > 0 {
		timeout = params.Config.Payment.Timeout
	}

	return &reconciliationService{
		payment:        params.Payment,
		metrics:        metricsOrNoop(params.Metrics),
		paymentTimeout: timeout,
		logger:         params.Logger,
	}
}

// Reconcile refunds the orphaned charge. Malformed events are dropped since
// redelivering them cannot succeed.
func (s *reconciliationService) Reconcile(ctx context.Context, event *entity.PaymentReconciliationEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	if event == nil || event.ChargeID == "" || event.AmountMinor <= 0 {
		logger.Error("Dropping malformed reconciliation event", slog.Any("event", event))

		return nil
	}

	logger = logger.With(
		slog.String("chargeID", event.ChargeID),
		slog.Int64("amountMinor", event.AmountMinor),
		slog.String("buyerID", event.BuyerID.String()))

	refundCtx, cancel := context.WithTimeout(ctx, s.paymentTimeout)
	defer cancel()

	if err := s.payment.Refund(refundCtx, event.ChargeID, event.AmountMinor); err != nil {
		s.metrics.ObserveRefund(false)
		logger.Warn("Reconciliation refund failed", slog.Any("error", err))

		return errors.Wrap(err, "failed to refund orphaned charge")
	}

	s.metrics.ObserveRefund(true)
	logger.Info("Orphaned charge refunded", slog.String("reason", event.Reason))

	return nil
}

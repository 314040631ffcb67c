package usecase

import (
	"context"

	"harvest/internal/domain/entity"
)

// ReconciliationUsecase settles charges that were captured without an order.
type ReconciliationUsecase interface {
	// Reconcile refunds the charge in event. A returned error asks the
	// transport to redeliver the event.
	Reconcile(ctx context.Context, event *entity.PaymentReconciliationEvent) error
}

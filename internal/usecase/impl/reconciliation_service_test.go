package impl

import (
	"context"
	"testing"

	"harvest/internal/domain/entity"
	mockSvc "harvest/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReconciliationService_Reconcile(t *testing.T) {
	event := &entity.PaymentReconciliationEvent{
		ChargeID:    "chrg_orphan",
		AmountMinor: 4500,
		Currency:    "thb",
		BuyerID:     uuid.New(),
		ListingID:   uuid.New(),
		Reason:      "commit failed",
	}

	t.Run("refunds the charge", func(t *testing.T) {
		payment := mockSvc.NewMockPaymentGateway(t)
		metrics := newRecordingMetrics()
		payment.EXPECT().Refund(mock.Anything, "chrg_orphan", int64(4500)).Return(nil).Once()

		srv := NewReconciliationService(ReconciliationServiceParams{Payment: payment, Metrics: metrics, Logger: newDiscardLogger()})

		assert.NoError(t, srv.Reconcile(context.Background(), event))
		assert.Equal(t, 1, metrics.refunds[true])
	})

	t.Run("failed refund is returned for redelivery", func(t *testing.T) {
		payment := mockSvc.NewMockPaymentGateway(t)
		metrics := newRecordingMetrics()
		payment.EXPECT().Refund(mock.Anything, "chrg_orphan", int64(4500)).Return(errors.New("503 from gateway")).Once()

		srv := NewReconciliationService(ReconciliationServiceParams{Payment: payment, Metrics: metrics, Logger: newDiscardLogger()})

		err := srv.Reconcile(context.Background(), event)
		assert.ErrorContains(t, err, "503 from gateway")
		assert.Equal(t, 1, metrics.refunds[false])
	})

	t.Run("malformed events are dropped", func(t *testing.T) {
		payment := mockSvc.NewMockPaymentGateway(t)
		srv := NewReconciliationService(ReconciliationServiceParams{Payment: payment, Logger: newDiscardLogger()})

		assert.NoError(t, srv.Reconcile(context.Background(), nil))
		assert.NoError(t, srv.Reconcile(context.Background(), &entity.PaymentReconciliationEvent{AmountMinor: 100}))
		assert.NoError(t, srv.Reconcile(context.Background(), &entity.PaymentReconciliationEvent{ChargeID: "chrg_x"}))
	})
}

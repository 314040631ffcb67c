package worker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"harvest/config"
	deliverycontext "harvest/internal/delivery/context"
	"harvest/internal/domain/entity"
	mockUsecase "harvest/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSubscriber(t *testing.T) (*natsSubscriber, *mockUsecase.MockReconciliationUsecase) {
	reconciliation := mockUsecase.NewMockReconciliationUsecase(t)

	return &natsSubscriber{
		cfg:            &config.PubSubConfig{},
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		reconciliation: reconciliation,
		backoff:        func(int) time.Duration { return 0 },
	}, reconciliation
}

func eventMsg(t *testing.T, event *entity.PaymentReconciliationEvent) *nats.Msg {
	data, err := json.Marshal(event)
	require.NoError(t, err)

	msg := nats.NewMsg("harvest.reconciliation")
	msg.Data = data

	return msg
}

func TestNATSSubscriber_Handle(t *testing.T) {
	event := &entity.PaymentReconciliationEvent{
		RequestID:   "req-7",
		ChargeID:    "chrg_9",
		AmountMinor: 900,
		BuyerID:     uuid.New(),
	}

	t.Run("reconciles once on success with the event request id", func(t *testing.T) {
		s, reconciliation := newTestSubscriber(t)
		reconciliation.EXPECT().
			Reconcile(mock.Anything, mock.Anything).
			Run(func(ctx context.Context, e *entity.PaymentReconciliationEvent) {
				assert.Equal(t, "chrg_9", e.ChargeID)
				assert.Equal(t, "req-7", deliverycontext.GetRequestIDFromContext(ctx))
			}).
			Return(nil).
			Once()

		s.handle(context.Background(), eventMsg(t, event))
	})

	t.Run("header request id wins over the event", func(t *testing.T) {
		s, reconciliation := newTestSubscriber(t)
		msg := eventMsg(t, event)
		msg.Header.Set("request_id", "req-header")
		reconciliation.EXPECT().
			Reconcile(mock.Anything, mock.Anything).
			Run(func(ctx context.Context, _ *entity.PaymentReconciliationEvent) {
				assert.Equal(t, "req-header", deliverycontext.GetRequestIDFromContext(ctx))
			}).
			Return(nil).
			Once()

		s.handle(context.Background(), msg)
	})

	t.Run("retries failed refunds until one succeeds", func(t *testing.T) {
		s, reconciliation := newTestSubscriber(t)
		reconciliation.EXPECT().Reconcile(mock.Anything, mock.Anything).Return(errors.New("gateway down")).Twice()
		reconciliation.EXPECT().Reconcile(mock.Anything, mock.Anything).Return(nil).Once()

		s.handle(context.Background(), eventMsg(t, event))
	})

	t.Run("gives up after the attempt budget", func(t *testing.T) {
		s, reconciliation := newTestSubscriber(t)
		reconciliation.EXPECT().Reconcile(mock.Anything, mock.Anything).Return(errors.New("gateway down")).Times(reconcileAttempts)

		s.handle(context.Background(), eventMsg(t, event))
	})

	t.Run("drops malformed payloads", func(t *testing.T) {
		s, _ := newTestSubscriber(t)
		msg := nats.NewMsg("harvest.reconciliation")
		msg.Data = []byte("not json")

		s.handle(context.Background(), msg)
	})
}

func TestNATSSubscriber_ServeIdleWithoutNATSProvider(t *testing.T) {
	s, _ := newTestSubscriber(t)

	require.NoError(t, s.Serve(context.Background()))
	require.NoError(t, s.stop(context.Background()))
}

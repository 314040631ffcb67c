package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"harvest/config"
	deliverycontext "harvest/internal/delivery/context"
	"harvest/internal/domain/entity"
	mockUsecase "harvest/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pushBody(t *testing.T, event *entity.PaymentReconciliationEvent, attributes map[string]string) string {
	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = attributes
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func newTestPushHandler(t *testing.T) (*PushHandler, *mockUsecase.MockReconciliationUsecase) {
	reconciliation := mockUsecase.NewMockReconciliationUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:         &config.Config{},
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		Reconciliation: reconciliation,
	})

	return h, reconciliation
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := &entity.PaymentReconciliationEvent{
		ChargeID:    "chrg_1",
		AmountMinor: 1500,
		BuyerID:     uuid.New(),
		ListingID:   uuid.New(),
	}

	t.Run("acknowledges a refunded charge and carries the request id", func(t *testing.T) {
		h, reconciliation := newTestPushHandler(t)
		reconciliation.EXPECT().
			Reconcile(mock.Anything, mock.MatchedBy(func(e *entity.PaymentReconciliationEvent) bool {
				return e.ChargeID == "chrg_1" && e.AmountMinor == 1500
			})).
			Run(func(ctx context.Context, _ *entity.PaymentReconciliationEvent) {
				assert.Equal(t, "req-42", deliverycontext.GetRequestIDFromContext(ctx))
			}).
			Return(nil).
			Once()

		rec := servePush(h, pushBody(t, event, map[string]string{"request_id": "req-42"}))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("asks for redelivery when the refund fails", func(t *testing.T) {
		h, reconciliation := newTestPushHandler(t)
		reconciliation.EXPECT().Reconcile(mock.Anything, mock.Anything).Return(errors.New("gateway down")).Once()

		rec := servePush(h, pushBody(t, event, nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("rejects undecodable data", func(t *testing.T) {
		h, _ := newTestPushHandler(t)

		rec := servePush(h, `{"message":{"data":"***"}}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("verifies push tokens when configured", func(t *testing.T) {
		h, _ := newTestPushHandler(t)
		h.verify = func(*http.Request) error { return errors.New("bad audience") }

		rec := servePush(h, pushBody(t, event, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

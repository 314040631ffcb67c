package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"harvest/internal/delivery/api/middleware"
	"harvest/internal/delivery/api/response"
	"harvest/internal/delivery/api/validator"
	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/service"
	mockSvc "harvest/internal/mocks/service"
	mockUsecase "harvest/internal/mocks/usecase"
	"harvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderHandlerFixture struct {
	e       *echo.Echo
	orderUC *mockUsecase.MockOrderUsecase
	tokens  *mockSvc.MockTokenService
}

func newOrderHandlerFixture(t *testing.T) *orderHandlerFixture {
	f := &orderHandlerFixture{
		e:       echo.New(),
		orderUC: mockUsecase.NewMockOrderUsecase(t),
		tokens:  mockSvc.NewMockTokenService(t),
	}
	f.e.Validator = validator.New()

	h := NewOrderHandler(OrderHandlerParams{
		OrderUC: f.orderUC,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	auth := middleware.NewAuthMiddleware(f.tokens)

	g := f.e.Group("/orders", auth.Authenticate)
	g.POST("", h.CreateOrder)
	g.POST("/:id/confirm", h.ConfirmPickup)
	g.GET("/:id/qrcode", h.PickupQRCode)

	return f
}

func (f *orderHandlerFixture) as(userID uuid.UUID, role entity.Role) string {
	token := "token-" + userID.String()
	f.tokens.EXPECT().ValidateToken(token).Return(&service.Claims{UserID: userID, Roles: []string{role.String()}}, nil).Maybe()

	return token
}

func (f *orderHandlerFixture) do(method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	return rec
}

func decodeOrder(t *testing.T, rec *httptest.ResponseRecorder) OrderResponse {
	var body struct {
		Data OrderResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Data
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorInfo {
	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return *body.Error
}

func sampleOrder(buyerID, sellerID uuid.UUID) *entity.Order {
	return &entity.Order{
		ID:               uuid.New(),
		ListingID:        uuid.New(),
		BuyerID:          buyerID,
		SellerID:         sellerID,
		QuantityOrdered:  decimal.NewFromFloat(2.5),
		TotalPrice:       decimal.NewFromInt(100),
		Status:           entity.OrderStatusProcessing,
		ConfirmationCode: "123456",
		PickupSlot:       "08:00-10:00",
	}
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	buyerID, sellerID := uuid.New(), uuid.New()

	t.Run("returns the order with the buyer's confirmation code", func(t *testing.T) {
		f := newOrderHandlerFixture(t)
		order := sampleOrder(buyerID, sellerID)
		f.orderUC.EXPECT().
			CreateOrder(mock.Anything, buyerID, mock.MatchedBy(func(in *usecase.CreateOrderInput) bool {
				return in.ListingID == order.ListingID && in.Quantity.Equal(decimal.NewFromFloat(2.5)) && in.PaymentToken == "tokn_1"
			})).
			Return(order, nil).
			Once()

		body := `{"listing_id":"` + order.ListingID.String() + `","quantity":2.5,"pickup_slot":"08:00-10:00","payment_token":"tokn_1"}`
		rec := f.do(http.MethodPost, "/orders", f.as(buyerID, entity.RoleBuyer), body)

		require.Equal(t, http.StatusCreated, rec.Code)
		got := decodeOrder(t, rec)
		assert.Equal(t, order.ID, got.ID)
		assert.Equal(t, "123456", got.ConfirmationCode)
	})

	t.Run("rejects a non-positive quantity before charging", func(t *testing.T) {
		f := newOrderHandlerFixture(t)

		body := `{"listing_id":"` + uuid.NewString() + `","quantity":0,"pickup_slot":"08:00","payment_token":"tokn_1"}`
		rec := f.do(http.MethodPost, "/orders", f.as(buyerID, entity.RoleBuyer), body)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), decodeError(t, rec).Code)
	})

	t.Run("maps domain errors to their status", func(t *testing.T) {
		f := newOrderHandlerFixture(t)
		f.orderUC.EXPECT().CreateOrder(mock.Anything, buyerID, mock.Anything).Return(nil, domainerrors.ErrInsufficientStock).Once()

		body := `{"listing_id":"` + uuid.NewString() + `","quantity":1,"pickup_slot":"08:00","payment_token":"tokn_1"}`
		rec := f.do(http.MethodPost, "/orders", f.as(buyerID, entity.RoleBuyer), body)

		assert.Equal(t, domainerrors.ErrInsufficientStock.HTTPCode(), rec.Code)
		assert.Equal(t, domainerrors.ErrInsufficientStock.ErrorCode(), decodeError(t, rec).Code)
	})

	t.Run("requires a bearer token", func(t *testing.T) {
		f := newOrderHandlerFixture(t)

		rec := f.do(http.MethodPost, "/orders", "", `{}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestOrderHandler_ConfirmPickup(t *testing.T) {
	buyerID, sellerID := uuid.New(), uuid.New()

	t.Run("hides the confirmation code from the seller", func(t *testing.T) {
		f := newOrderHandlerFixture(t)
		order := sampleOrder(buyerID, sellerID)
		order.Status = entity.OrderStatusCompleted
		f.orderUC.EXPECT().ConfirmPickup(mock.Anything, order.ID, sellerID, "123456").Return(order, nil).Once()

		rec := f.do(http.MethodPost, "/orders/"+order.ID.String()+"/confirm", f.as(sellerID, entity.RoleSeller), `{"confirmation_code":"123456"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		got := decodeOrder(t, rec)
		assert.Equal(t, entity.OrderStatusCompleted, got.Status)
		assert.Empty(t, got.ConfirmationCode)
	})

	t.Run("reports a wrong code", func(t *testing.T) {
		f := newOrderHandlerFixture(t)
		orderID := uuid.New()
		f.orderUC.EXPECT().ConfirmPickup(mock.Anything, orderID, sellerID, "000000").Return(nil, domainerrors.ErrCodeMismatch).Once()

		rec := f.do(http.MethodPost, "/orders/"+orderID.String()+"/confirm", f.as(sellerID, entity.RoleSeller), `{"confirmation_code":"000000"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, domainerrors.ErrCodeMismatch.ErrorCode(), decodeError(t, rec).Code)
	})

	t.Run("rejects a malformed order id", func(t *testing.T) {
		f := newOrderHandlerFixture(t)

		rec := f.do(http.MethodPost, "/orders/not-a-uuid/confirm", f.as(sellerID, entity.RoleSeller), `{"confirmation_code":"123456"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", decodeError(t, rec).Code)
	})
}

func TestOrderHandler_PickupQRCode(t *testing.T) {
	f := newOrderHandlerFixture(t)
	buyerID, orderID := uuid.New(), uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}
	f.orderUC.EXPECT().GetPickupQRCode(mock.Anything, orderID, buyerID).Return(png, nil).Once()

	rec := f.do(http.MethodGet, "/orders/"+orderID.String()+"/qrcode", f.as(buyerID, entity.RoleBuyer), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "no-store", rec.Header().Get(echo.HeaderCacheControl))
	assert.Equal(t, png, rec.Body.Bytes())
}

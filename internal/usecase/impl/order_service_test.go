package impl

import (
	"context"
	"sync"
	"testing"

	"harvest/config"
	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/service"
	mockSvc "harvest/internal/mocks/service"
	mockUsecase "harvest/internal/mocks/usecase"
	"harvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

type orderFixtures struct {
	service    usecase.OrderUsecase
	store      *memStore
	payment    service.PaymentGateway
	codes      service.CodeGenerator
	qrcode     *mockSvc.MockQRCodeService
	publisher  *mockSvc.MockEventPublisher
	dispatcher *mockUsecase.MockDispatcherUsecase
	metrics    *recordingMetrics
}

type orderOption func(fx *orderFixtures)

func withPayment(p service.PaymentGateway) orderOption {
	return func(fx *orderFixtures) { fx.payment = p }
}

func withCodes(c service.CodeGenerator) orderOption {
	return func(fx *orderFixtures) { fx.codes = c }
}

func createTestOrderService(t *testing.T, opts ...orderOption) *orderFixtures {
	fx := &orderFixtures{
		store:      newMemStore(),
		payment:    newFakeGateway(),
		codes:      &uniqueCodes{},
		qrcode:     mockSvc.NewMockQRCodeService(t),
		publisher:  mockSvc.NewMockEventPublisher(t),
		dispatcher: mockUsecase.NewMockDispatcherUsecase(t),
		metrics:    newRecordingMetrics(),
	}
	for _, opt := range opts {
		opt(fx)
	}

	cfg := &config.Config{}
	cfg.Orders.CodeAttempts = 3

	fx.service = NewOrderService(OrderServiceParams{
		TxManager:   fx.store,
		ListingRepo: fx.store.listingRepo(),
		OrderRepo:   fx.store.orderRepo(),
		Payment:     fx.payment,
		Codes:       fx.codes,
		QRCode:      fx.qrcode,
		Publisher:   fx.publisher,
		Dispatcher:  fx.dispatcher,
		Metrics:     fx.metrics,
		Config:      cfg,
		Logger:      newDiscardLogger(),
	})

	return fx
}

func (fx *orderFixtures) allowDispatch() {
	fx.dispatcher.EXPECT().
		DeliverToUser(mock.Anything, mock.AnythingOfType("entity.Delivery")).
		Return(entity.DeliveryUndelivered).
		Maybe()
}

func orderInput(listingID uuid.UUID, qty int64) *usecase.CreateOrderInput {
	return &usecase.CreateOrderInput{
		ListingID:    listingID,
		Quantity:     decimal.NewFromInt(qty),
		PickupSlot:   "Sat 08:00-10:00",
		PaymentToken: "tokn_test_5x",
	}
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	gateway := newFakeGateway()
	fx := createTestOrderService(t, withPayment(gateway))

	sellerID := uuid.New()
	buyerID := uuid.New()
	listing := newAvailableListing(sellerID, 10, "25.50")
	fx.store.putListing(listing)

	var delivered entity.Delivery
	fx.dispatcher.EXPECT().
		DeliverToUser(mock.Anything, mock.AnythingOfType("entity.Delivery")).
		Run(func(_ context.Context, d entity.Delivery) { delivered = d }).
		Return(entity.DeliveryRealtime).
		Once()

	order, err := fx.service.CreateOrder(context.Background(), buyerID, orderInput(listing.ID, 3))
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusProcessing, order.Status)
	assert.Equal(t, buyerID, order.BuyerID)
	assert.Equal(t, sellerID, order.SellerID)
	assert.True(t, order.TotalPrice.Equal(decimal.RequireFromString("76.5")))
	assert.Regexp(t, `^[A-Z0-9]{6}$`, order.ConfirmationCode)
	assert.NotEmpty(t, order.ChargeID)

	require.Len(t, gateway.charges, 1)
	charge := gateway.charges[0]
	assert.Equal(t, int64(7650), charge.AmountMinor)
	assert.Equal(t, "thb", charge.Currency)
	assert.Equal(t, "tokn_test_5x", charge.Token)
	assert.Equal(t, "Order for listing "+listing.ID.String()+" by buyer "+buyerID.String(), charge.Description)

	stored := fx.store.listing(listing.ID)
	assert.True(t, stored.QuantityAvailable.Equal(decimal.NewFromInt(7)))
	assert.Equal(t, entity.ListingStatusAvailable, stored.Status)

	notifications := fx.store.allNotifications()
	require.Len(t, notifications, 1)
	assert.Equal(t, sellerID, notifications[0].UserID)
	assert.Equal(t, entity.NotificationTypeSale, notifications[0].Type)
	assert.Equal(t, order.ID, *notifications[0].RelatedID)

	assert.Equal(t, sellerID, delivered.UserID)
	assert.Equal(t, order.ID.String(), delivered.Data["order_id"])
	assert.Equal(t, 1, fx.metrics.orders[service.OrderResultCreated])
}

func TestOrderService_CreateOrder_LastUnitsSellOut(t *testing.T) {
	fx := createTestOrderService(t)
	fx.allowDispatch()

	listing := newAvailableListing(uuid.New(), 4, "10")
	fx.store.putListing(listing)

	_, err := fx.service.CreateOrder(context.Background(), uuid.New(), orderInput(listing.ID, 4))
	require.NoError(t, err)

	stored := fx.store.listing(listing.ID)
	assert.True(t, stored.QuantityAvailable.IsZero())
	assert.Equal(t, entity.ListingStatusSoldOut, stored.Status)
}

func TestOrderService_CreateOrder_PrecheckFailuresNeverCharge(t *testing.T) {
	soldOut := newAvailableListing(uuid.New(), 0, "10")
	soldOut.Status = entity.ListingStatusSoldOut
	lowStock := newAvailableListing(uuid.New(), 2, "10")

	tests := []struct {
		name    string
		input   *usecase.CreateOrderInput
		wantErr error
	}{
		{name: "missing listing", input: orderInput(uuid.New(), 1), wantErr: domainerrors.ErrNotFound},
		{name: "sold out", input: orderInput(soldOut.ID, 1), wantErr: domainerrors.ErrAlreadySold},
		{name: "not enough stock", input: orderInput(lowStock.ID, 3), wantErr: domainerrors.ErrInsufficientStock},
		{name: "zero quantity", input: orderInput(lowStock.ID, 0), wantErr: domainerrors.ErrInvalidInput},
		{
			name:    "missing payment token",
			input:   &usecase.CreateOrderInput{ListingID: lowStock.ID, Quantity: decimal.NewFromInt(1), PickupSlot: "now"},
			wantErr: domainerrors.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := newFakeGateway()
			fx := createTestOrderService(t, withPayment(gateway))
			fx.store.putListing(soldOut)
			fx.store.putListing(lowStock)

			order, err := fx.service.CreateOrder(context.Background(), uuid.New(), tt.input)
			assert.Nil(t, order)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, gateway.chargeCount())
			assert.Empty(t, fx.store.allOrders())
		})
	}
}

func TestOrderService_CreateOrder_PaymentFailureChangesNothing(t *testing.T) {
	tests := []struct {
		name  string
		setup func(p *mockSvc.MockPaymentGateway)
	}{
		{
			name: "declined",
			setup: func(p *mockSvc.MockPaymentGateway) {
				p.EXPECT().Charge(mock.Anything, mock.AnythingOfType("entity.ChargeRequest")).
					Return(&entity.ChargeResult{ChargeID: "chrg_1", Status: "failed", FailureMessage: "insufficient funds"}, nil)
			},
		},
		{
			name: "pending is not captured",
			setup: func(p *mockSvc.MockPaymentGateway) {
				p.EXPECT().Charge(mock.Anything, mock.AnythingOfType("entity.ChargeRequest")).
					Return(&entity.ChargeResult{ChargeID: "chrg_2", Status: "pending"}, nil)
			},
		},
		{
			name: "timeout",
			setup: func(p *mockSvc.MockPaymentGateway) {
				p.EXPECT().Charge(mock.Anything, mock.AnythingOfType("entity.ChargeRequest")).
					Return(nil, context.DeadlineExceeded)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payment := mockSvc.NewMockPaymentGateway(t)
			tt.setup(payment)
			fx := createTestOrderService(t, withPayment(payment))

			listing := newAvailableListing(uuid.New(), 5, "10")
			fx.store.putListing(listing)

			order, err := fx.service.CreateOrder(context.Background(), uuid.New(), orderInput(listing.ID, 2))
			assert.Nil(t, order)
			assert.ErrorIs(t, err, domainerrors.ErrPaymentFailed)

			assert.True(t, fx.store.listing(listing.ID).QuantityAvailable.Equal(decimal.NewFromInt(5)))
			assert.Empty(t, fx.store.allOrders())
			assert.Empty(t, fx.store.allNotifications())
			assert.Equal(t, 1, fx.metrics.orders[service.OrderResultPaymentFailed])
		})
	}
}

func TestOrderService_CreateOrder_StockLostAfterPaymentIsRefunded(t *testing.T) {
	payment := mockSvc.NewMockPaymentGateway(t)
	fx := createTestOrderService(t, withPayment(payment))

	listing := newAvailableListing(uuid.New(), 5, "10")
	fx.store.putListing(listing)

	// Another buyer takes most of the stock while this charge is in flight.
	payment.EXPECT().
		Charge(mock.Anything, mock.AnythingOfType("entity.ChargeRequest")).
		RunAndReturn(func(context.Context, entity.ChargeRequest) (*entity.ChargeResult, error) {
			raced := fx.store.listing(listing.ID)
			raced.Reserve(decimal.NewFromInt(4))
			fx.store.putListing(&raced)

			return &entity.ChargeResult{ChargeID: "chrg_race", Status: entity.ChargeStatusSuccessful}, nil
		})
	payment.EXPECT().Refund(mock.Anything, "chrg_race", int64(3000)).Return(nil).Once()

	order, err := fx.service.CreateOrder(context.Background(), uuid.New(), orderInput(listing.ID, 3))
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)

	assert.True(t, fx.store.listing(listing.ID).QuantityAvailable.Equal(decimal.NewFromInt(1)))
	assert.Empty(t, fx.store.allOrders())
	assert.Equal(t, 1, fx.metrics.refunds[true])
}

func TestOrderService_CreateOrder_FailedRefundIsPublishedForReconciliation(t *testing.T) {
	payment := mockSvc.NewMockPaymentGateway(t)
	fx := createTestOrderService(t, withPayment(payment))

	buyerID := uuid.New()
	listing := newAvailableListing(uuid.New(), 5, "10")
	fx.store.putListing(listing)
	fx.store.failCommits = reserveAttempts

	payment.EXPECT().
		Charge(mock.Anything, mock.AnythingOfType("entity.ChargeRequest")).
		Return(&entity.ChargeResult{ChargeID: "chrg_orphan", Status: entity.ChargeStatusSuccessful}, nil).
		Once()
	payment.EXPECT().Refund(mock.Anything, "chrg_orphan", int64(2000)).Return(errors.New("gateway unavailable")).Once()

	var published *entity.PaymentReconciliationEvent
	fx.publisher.EXPECT().
		PublishReconciliationEvent(mock.Anything, mock.AnythingOfType("*entity.PaymentReconciliationEvent")).
		Run(func(_ context.Context, event *entity.PaymentReconciliationEvent) { published = event }).
		Return(nil).
		Once()

	order, err := fx.service.CreateOrder(context.Background(), buyerID, orderInput(listing.ID, 2))
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentCapturedOrderFailed)
	assert.Contains(t, err.Error(), "pending reconciliation")

	require.NotNil(t, published)
	assert.Equal(t, "chrg_orphan", published.ChargeID)
	assert.Equal(t, int64(2000), published.AmountMinor)
	assert.Equal(t, buyerID, published.BuyerID)
	assert.Equal(t, listing.ID, published.ListingID)
	assert.True(t, fx.store.listing(listing.ID).QuantityAvailable.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, 1, fx.metrics.refunds[false])
}

func TestOrderService_CreateOrder_StorageFailureRetriedOnceWithoutRecharge(t *testing.T) {
	gateway := newFakeGateway()
	fx := createTestOrderService(t, withPayment(gateway))
	fx.allowDispatch()

	listing := newAvailableListing(uuid.New(), 5, "10")
	fx.store.putListing(listing)
	fx.store.failCommits = 1

	order, err := fx.service.CreateOrder(context.Background(), uuid.New(), orderInput(listing.ID, 2))
	require.NoError(t, err)

	assert.Equal(t, 1, gateway.chargeCount())
	assert.Zero(t, gateway.refundCount())
	assert.Equal(t, order.ID, fx.store.order(order.ID).ID)
	assert.True(t, fx.store.listing(listing.ID).QuantityAvailable.Equal(decimal.NewFromInt(3)))
}

func TestOrderService_CreateOrder_ConfirmationCodeCollisionResampled(t *testing.T) {
	codes := mockSvc.NewMockCodeGenerator(t)
	fx := createTestOrderService(t, withCodes(codes))
	fx.allowDispatch()

	listing := newAvailableListing(uuid.New(), 5, "10")
	fx.store.putListing(listing)
	fx.store.putOrder(&entity.Order{ID: uuid.New(), ListingID: listing.ID, ConfirmationCode: "TAKEN1", Status: entity.OrderStatusProcessing})

	codes.EXPECT().Generate().Return("TAKEN1", nil).Once()
	codes.EXPECT().Generate().Return("FRESH2", nil).Once()

	order, err := fx.service.CreateOrder(context.Background(), uuid.New(), orderInput(listing.ID, 1))
	require.NoError(t, err)
	assert.Equal(t, "FRESH2", order.ConfirmationCode)
}

func TestOrderService_CreateOrder_CodeSpaceExhausted(t *testing.T) {
	codes := mockSvc.NewMockCodeGenerator(t)
	gateway := newFakeGateway()
	fx := createTestOrderService(t, withCodes(codes), withPayment(gateway))

	listing := newAvailableListing(uuid.New(), 5, "10")
	fx.store.putListing(listing)
	fx.store.putOrder(&entity.Order{ID: uuid.New(), ConfirmationCode: "TAKEN1"})

	codes.EXPECT().Generate().Return("TAKEN1", nil).Times(3)

	order, err := fx.service.CreateOrder(context.Background(), uuid.New(), orderInput(listing.ID, 1))
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentCapturedOrderFailed)
	assert.NotErrorIs(t, err, domainerrors.ErrCodeSpaceExhausted)
	assert.Contains(t, err.Error(), "refunded")
	assert.Equal(t, 1, gateway.refundCount())
	assert.True(t, fx.store.listing(listing.ID).QuantityAvailable.Equal(decimal.NewFromInt(5)))
}

func TestOrderService_CreateOrder_CodeSpaceExhaustedWithFailedRefund(t *testing.T) {
	codes := mockSvc.NewMockCodeGenerator(t)
	payment := mockSvc.NewMockPaymentGateway(t)
	fx := createTestOrderService(t, withCodes(codes), withPayment(payment))

	listing := newAvailableListing(uuid.New(), 5, "10")
	fx.store.putListing(listing)
	fx.store.putOrder(&entity.Order{ID: uuid.New(), ConfirmationCode: "TAKEN1"})

	codes.EXPECT().Generate().Return("TAKEN1", nil).Times(3)
	payment.EXPECT().
		Charge(mock.Anything, mock.AnythingOfType("entity.ChargeRequest")).
		Return(&entity.ChargeResult{ChargeID: "chrg_nocode", Status: entity.ChargeStatusSuccessful}, nil).
		Once()
	payment.EXPECT().Refund(mock.Anything, "chrg_nocode", int64(1000)).Return(errors.New("gateway unavailable")).Once()
	fx.publisher.EXPECT().
		PublishReconciliationEvent(mock.Anything, mock.AnythingOfType("*entity.PaymentReconciliationEvent")).
		Return(nil).
		Once()

	order, err := fx.service.CreateOrder(context.Background(), uuid.New(), orderInput(listing.ID, 1))
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentCapturedOrderFailed)
	assert.Contains(t, err.Error(), "chrg_nocode")
	assert.Contains(t, err.Error(), "pending reconciliation")
}

// Two buyers race for 3 of 5 units: exactly one order wins.
func TestOrderService_CreateOrder_ConcurrentBuyersNeverOversell(t *testing.T) {
	gateway := newFakeGateway()
	fx := createTestOrderService(t, withPayment(gateway))
	fx.allowDispatch()

	listing := newAvailableListing(uuid.New(), 5, "10")
	fx.store.putListing(listing)

	var (
		wg   sync.WaitGroup
		errs = make([]error, 2)
	)
	start := make(chan struct{})
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, errs[i] = fx.service.CreateOrder(context.Background(), uuid.New(), orderInput(listing.ID, 3))
		}()
	}
	close(start)
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++

			continue
		}
		assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	}
	assert.Equal(t, 1, succeeded)

	stored := fx.store.listing(listing.ID)
	assert.True(t, stored.QuantityAvailable.Equal(decimal.NewFromInt(2)))
	assert.Equal(t, entity.ListingStatusAvailable, stored.Status)
	assert.Len(t, fx.store.allOrders(), 1)
}

func TestOrderService_CreateOrder_StockConservedProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		fx := createTestOrderService(t)
		fx.allowDispatch()

		stock := rapid.Int64Range(0, 20).Draw(rt, "stock")
		listing := newAvailableListing(uuid.New(), stock, "3")
		if stock == 0 {
			listing.Status = entity.ListingStatusSoldOut
		}
		fx.store.putListing(listing)

		sold := decimal.Zero
		for _, qty := range rapid.SliceOfN(rapid.Int64Range(-1, 8), 1, 10).Draw(rt, "quantities") {
			order, err := fx.service.CreateOrder(context.Background(), uuid.New(), orderInput(listing.ID, qty))
			if err == nil {
				sold = sold.Add(order.QuantityOrdered)
			}
		}

		stored := fx.store.listing(listing.ID)
		if stored.QuantityAvailable.IsNegative() {
			rt.Fatalf("oversold: available %s", stored.QuantityAvailable)
		}
		if !sold.Add(stored.QuantityAvailable).Equal(decimal.NewFromInt(stock)) {
			rt.Fatalf("sold %s + available %s != stock %d", sold, stored.QuantityAvailable, stock)
		}
		wantStatus := entity.ListingStatusAvailable
		if stored.QuantityAvailable.IsZero() {
			wantStatus = entity.ListingStatusSoldOut
		}
		if stored.Status != wantStatus {
			rt.Fatalf("status %s with %s available", stored.Status, stored.QuantityAvailable)
		}
	})
}

func newProcessingOrder(fx *orderFixtures) *entity.Order {
	order := &entity.Order{
		ID:               uuid.New(),
		ListingID:        uuid.New(),
		BuyerID:          uuid.New(),
		SellerID:         uuid.New(),
		QuantityOrdered:  decimal.NewFromInt(2),
		TotalPrice:       decimal.NewFromInt(20),
		Status:           entity.OrderStatusProcessing,
		ConfirmationCode: "AB12CD",
	}
	fx.store.putOrder(order)

	return order
}

func TestOrderService_ConfirmPickup_CodeIsCaseAndSpaceInsensitive(t *testing.T) {
	fx := createTestOrderService(t)
	order := newProcessingOrder(fx)

	var delivered entity.Delivery
	fx.dispatcher.EXPECT().
		DeliverToUser(mock.Anything, mock.AnythingOfType("entity.Delivery")).
		Run(func(_ context.Context, d entity.Delivery) { delivered = d }).
		Return(entity.DeliveryPushed).
		Once()

	completed, err := fx.service.ConfirmPickup(context.Background(), order.ID, order.SellerID, "  ab12cd ")
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusCompleted, completed.Status)
	assert.Equal(t, entity.OrderStatusCompleted, fx.store.order(order.ID).Status)
	assert.Equal(t, order.BuyerID, delivered.UserID)

	notifications := fx.store.allNotifications()
	require.Len(t, notifications, 1)
	assert.Equal(t, order.BuyerID, notifications[0].UserID)
	assert.Equal(t, entity.NotificationTypeOrderCompleted, notifications[0].Type)
}

func TestOrderService_ConfirmPickup_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(o *entity.Order)
		orderID func(o *entity.Order) uuid.UUID
		seller  func(o *entity.Order) uuid.UUID
		code    string
		wantErr error
	}{
		{
			name:    "unknown order",
			orderID: func(*entity.Order) uuid.UUID { return uuid.New() },
			code:    "AB12CD",
			wantErr: domainerrors.ErrNotFound,
		},
		{
			name:    "other seller",
			seller:  func(*entity.Order) uuid.UUID { return uuid.New() },
			code:    "AB12CD",
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name:    "already completed",
			mutate:  func(o *entity.Order) { o.Status = entity.OrderStatusCompleted },
			code:    "AB12CD",
			wantErr: domainerrors.ErrInvalidState,
		},
		{
			name:    "cancelled",
			mutate:  func(o *entity.Order) { o.Status = entity.OrderStatusCancelled },
			code:    "AB12CD",
			wantErr: domainerrors.ErrInvalidState,
		},
		{name: "wrong code", code: "AB12CE", wantErr: domainerrors.ErrCodeMismatch},
		{name: "empty code", code: "   ", wantErr: domainerrors.ErrCodeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			order := newProcessingOrder(fx)
			if tt.mutate != nil {
				tt.mutate(order)
				fx.store.putOrder(order)
			}

			orderID, sellerID := order.ID, order.SellerID
			if tt.orderID != nil {
				orderID = tt.orderID(order)
			}
			if tt.seller != nil {
				sellerID = tt.seller(order)
			}

			completed, err := fx.service.ConfirmPickup(context.Background(), orderID, sellerID, tt.code)
			assert.Nil(t, completed)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, order.Status, fx.store.order(order.ID).Status)
			assert.Empty(t, fx.store.allNotifications())
		})
	}
}

func TestOrderService_GetPickupQRCode(t *testing.T) {
	fx := createTestOrderService(t)
	order := newProcessingOrder(fx)

	fx.qrcode.EXPECT().GeneratePickupQR(order.ID, "AB12CD").Return([]byte("png"), nil).Once()

	png, err := fx.service.GetPickupQRCode(context.Background(), order.ID, order.BuyerID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)

	_, err = fx.service.GetPickupQRCode(context.Background(), order.ID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"harvest/config"
	deliverycontext "harvest/internal/delivery/context"
	"harvest/internal/domain/constants"
	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	"harvest/internal/domain/service"
	"harvest/internal/errors"
	"harvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	defaultCurrency       = "thb"
	defaultPaymentTimeout = 10 * time.Second
	defaultCodeAttempts   = 10

	// reserveAttempts is one try plus one retry after a storage failure.
	reserveAttempts = 2
)

var minorUnitsPerMajor = decimal.NewFromInt(100)

type orderService struct {
	txManager      repository.TransactionManager
	listingRepo    repository.ListingRepository
	orderRepo      repository.OrderRepository
	payment        service.PaymentGateway
	codes          service.CodeGenerator
	qrcode         service.QRCodeService
	publisher      service.EventPublisher
	dispatcher     usecase.DispatcherUsecase
	metrics        service.MarketMetrics
	currency       string
	paymentTimeout time.Duration
	txTimeout      time.Duration
	codeAttempts   int
	logger         *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ListingRepo repository.ListingRepository
	OrderRepo   repository.OrderRepository
	Payment     service.PaymentGateway
	Codes       service.CodeGenerator
	QRCode      service.QRCodeService  `optional:"true"`
	Publisher   service.EventPublisher `optional:"true"`
	Dispatcher  usecase.DispatcherUsecase
	Metrics     service.MarketMetrics `optional:"true"`
	Config      *config.Config
	Logger      *slog.Logger
}

// NewOrderService creates the order fulfillment engine.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	srv := &orderService{
		txManager:      params.TxManager,
		listingRepo:    params.ListingRepo,
		orderRepo:      params.OrderRepo,
		payment:        params.Payment,
		codes:          params.Codes,
		qrcode:         params.QRCode,
		publisher:      params.Publisher,
		dispatcher:     params.Dispatcher,
		metrics:        metricsOrNoop(params.Metrics),
		currency:       defaultCurrency,
		paymentTimeout: defaultPaymentTimeout,
		txTimeout:      txTimeoutFrom(params.Config),
		codeAttempts:   defaultCodeAttempts,
		logger:         params.Logger,
	}

	if cfg := params.Config; cfg != nil {
		if cfg.Payment != nil {
			if cfg.Payment.Currency != "" {
				srv.currency = cfg.Payment.Currency
			}
			if cfg.Payment.Timeout > 0 {
				srv.paymentTimeout = cfg.Payment.Timeout
			}
		}
		if cfg.Orders.CodeAttempts > 0 {
			srv.codeAttempts = cfg.Orders.CodeAttempts
		}
	}

	return srv
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder runs the purchase in two phases: an unlocked stock check and
// payment capture, then a locked re-check that reserves stock and records
// the order. The row lock is never held across the payment call.
func (srv *orderService) CreateOrder(ctx context.Context, buyerID uuid.UUID, input *usecase.CreateOrderInput) (*entity.Order, error) {
	start := time.Now()

	order, err := srv.createOrder(ctx, buyerID, input)
	srv.metrics.ObserveOrder(orderResult(err), time.Since(start))

	return order, err
}

func (srv *orderService) createOrder(ctx context.Context, buyerID uuid.UUID, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if err := validateOrderInput(input); err != nil {
		return nil, err
	}

	listing, err := srv.listingRepo.FindListingByID(ctx, input.ListingID)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("listing not found")
		}

		return nil, errors.Wrap(err, "failed to find listing")
	}

	if err := checkStock(listing, input.Quantity); err != nil {
		return nil, err
	}

	total := listing.PricePerUnit.Mul(input.Quantity)
	amountMinor := total.Mul(minorUnitsPerMajor).Round(0).IntPart()

	charge, err := srv.capture(ctx, buyerID, listing, amountMinor, input.PaymentToken)
	if err != nil {
		return nil, err
	}

	var order *entity.Order
	for attempt := 1; attempt <= reserveAttempts; attempt++ {
		order, err = srv.reserveAndRecord(ctx, buyerID, listing, input, total, charge.ChargeID)
		if err == nil || !domainerrors.IsStorageFailure(err) {
			break
		}

		srv.log(ctx).Warn("Order transaction failed after payment capture",
			slog.String("listingID", listing.ID.String()),
			slog.String("chargeID", charge.ChargeID),
			slog.Int("attempt", attempt),
			slog.Any("error", err))
	}
	if err != nil {
		return nil, srv.compensate(ctx, buyerID, listing.ID, charge.ChargeID, amountMinor, err)
	}

	srv.log(ctx).Info("Order created",
		slog.String("orderID", order.ID.String()),
		slog.String("listingID", listing.ID.String()),
		slog.String("buyerID", buyerID.String()))

	srv.notifySeller(ctx, order, listing)

	return order, nil
}

func validateOrderInput(input *usecase.CreateOrderInput) error {
	switch {
	case input == nil:
		return domainerrors.ErrInvalidInput.WithDetails("order request is required")
	case input.ListingID == uuid.Nil:
		return domainerrors.ErrInvalidInput.WithDetails("listing id is required")
	case !input.Quantity.IsPositive():
		return domainerrors.ErrInvalidInput.WithDetails("quantity must be positive")
	case strings.TrimSpace(input.PickupSlot) == "":
		return domainerrors.ErrInvalidInput.WithDetails("pickup slot is required")
	case strings.TrimSpace(input.PaymentToken) == "":
		return domainerrors.ErrInvalidInput.WithDetails("payment token is required")
	}

	return nil
}

func checkStock(listing *entity.Listing, quantity decimal.Decimal) error {
	if listing.Status != entity.ListingStatusAvailable {
		return domainerrors.ErrAlreadySold
	}
	if listing.QuantityAvailable.LessThan(quantity) {
		return domainerrors.ErrInsufficientStock.WithDetails(
			fmt.Sprintf("%s available", listing.QuantityAvailable.String()))
	}

	return nil
}

// capture charges the buyer once. A timeout or any non-successful status is
// a payment failure with nothing to undo.
func (srv *orderService) capture(ctx context.Context, buyerID uuid.UUID, listing *entity.Listing, amountMinor int64, token string) (*entity.ChargeResult, error) {
	payCtx, cancel := context.WithTimeout(ctx, srv.paymentTimeout)
	defer cancel()

	charge, err := srv.payment.Charge(payCtx, entity.ChargeRequest{
		AmountMinor: amountMinor,
		Currency:    srv.currency,
		Token:       token,
		Description: fmt.Sprintf("Order for listing %s by buyer %s", listing.ID, buyerID),
	})
	if err != nil {
		srv.log(ctx).Warn("Payment capture failed", slog.String("listingID", listing.ID.String()), slog.Any("error", err))

		return nil, domainerrors.ErrPaymentFailed.WithDetails(err.Error())
	}
	if !charge.Captured() {
		reason := charge.FailureMessage
		if reason == "" {
			reason = "charge status " + charge.Status
		}

		return nil, domainerrors.ErrPaymentFailed.WithDetails(reason)
	}

	return charge, nil
}

// reserveAndRecord locks the listing row, re-checks and decrements stock,
// and writes the order with its seller notification in one transaction.
func (srv *orderService) reserveAndRecord(
	ctx context.Context,
	buyerID uuid.UUID,
	listing *entity.Listing,
	input *usecase.CreateOrderInput,
	total decimal.Decimal,
	chargeID string,
) (*entity.Order, error) {
	txCtx, cancel := context.WithTimeout(ctx, srv.txTimeout)
	defer cancel()

	var order *entity.Order
	err := srv.txManager.Execute(txCtx, func(repoFactory repository.RepositoryFactory) error {
		listingRepo := repoFactory.NewListingRepository()
		orderRepo := repoFactory.NewOrderRepository()

		locked, err := listingRepo.FindListingByIDForUpdate(txCtx, listing.ID)
		if err != nil {
			if errors.Is(err, repository.ErrListingNotFound) {
				return domainerrors.ErrNotFound.WithDetails("listing not found")
			}

			return errors.Wrap(err, "failed to lock listing")
		}

		if locked.QuantityAvailable.LessThan(input.Quantity) {
			return domainerrors.ErrInsufficientStock.WithDetails(
				fmt.Sprintf("%s available", locked.QuantityAvailable.String()))
		}
		locked.Reserve(input.Quantity)
		locked.UpdatedAt = time.Now()

		code, err := srv.allocateCode(txCtx, orderRepo)
		if err != nil {
			return err
		}

		if err := listingRepo.UpdateListing(txCtx, locked); err != nil {
			return errors.Wrap(err, "failed to update listing stock")
		}

		now := time.Now()
		candidate := &entity.Order{
			ID:               uuid.New(),
			ListingID:        locked.ID,
			BuyerID:          buyerID,
			SellerID:         locked.SellerID,
			QuantityOrdered:  input.Quantity,
			TotalPrice:       total,
			Status:           entity.OrderStatusProcessing,
			ConfirmationCode: code,
			PickupSlot:       strings.TrimSpace(input.PickupSlot),
			ChargeID:         chargeID,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := orderRepo.CreateOrder(txCtx, candidate); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		notification := &entity.Notification{
			ID:     uuid.New(),
			UserID: locked.SellerID,
			Type:   entity.NotificationTypeSale,
			Message: fmt.Sprintf("New order: %s x %s (code %s)",
				locked.ProductName, input.Quantity.String(), code),
			RelatedID:   &candidate.ID,
			DeliveredAt: now,
		}
		if err := repoFactory.NewNotificationRepository().CreateNotification(txCtx, notification); err != nil {
			return errors.Wrap(err, "failed to create sale notification")
		}

		order = candidate

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// allocateCode samples codes until one is unused. The unique index on the
// column still rejects a code taken by a concurrent transaction.
func (srv *orderService) allocateCode(ctx context.Context, orderRepo repository.OrderRepository) (string, error) {
	for range srv.codeAttempts {
		code, err := srv.codes.Generate()
		if err != nil {
			return "", errors.Wrap(err, "failed to generate confirmation code")
		}

		exists, err := orderRepo.ConfirmationCodeExists(ctx, code)
		if err != nil {
			return "", errors.Wrap(err, "failed to check confirmation code")
		}
		if !exists {
			return code, nil
		}
	}

	return "", domainerrors.ErrCodeSpaceExhausted
}

// compensate handles a captured charge whose order could not be recorded.
// It refunds once and hands the charge to the reconciler if that fails.
func (srv *orderService) compensate(ctx context.Context, buyerID, listingID uuid.UUID, chargeID string, amountMinor int64, cause error) error {
	logger := srv.log(ctx).With(
		slog.String("chargeID", chargeID),
		slog.String("listingID", listingID.String()),
		slog.String("buyerID", buyerID.String()))

	// The request context may already be done; the refund must still go out.
	refundCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), srv.paymentTimeout)
	defer cancel()

	refundState := "refunded"
	if err := srv.payment.Refund(refundCtx, chargeID, amountMinor); err != nil {
		srv.metrics.ObserveRefund(false)
		refundState = "pending reconciliation"
		logger.Error("Compensating refund failed", slog.Any("cause", cause), slog.Any("error", err))
		srv.publishReconciliation(refundCtx, logger, &entity.PaymentReconciliationEvent{
			RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
			ChargeID:    chargeID,
			AmountMinor: amountMinor,
			Currency:    srv.currency,
			BuyerID:     buyerID,
			ListingID:   listingID,
			Reason:      cause.Error(),
			OccurredAt:  time.Now(),
		})
	} else {
		srv.metrics.ObserveRefund(true)
		logger.Warn("Captured charge refunded after order failure", slog.Any("cause", cause))
	}

	// Lost stock reaches the buyer as is. Anything else leaves a captured
	// charge without an order and must be reported with its refund state.
	if errors.Is(cause, domainerrors.ErrInsufficientStock) || errors.Is(cause, domainerrors.ErrNotFound) {
		return cause
	}

	return domainerrors.ErrPaymentCapturedOrderFailed.WithDetails(
		fmt.Sprintf("charge %s %s", chargeID, refundState))
}

func (srv *orderService) publishReconciliation(ctx context.Context, logger *slog.Logger, event *entity.PaymentReconciliationEvent) {
	if srv.publisher == nil {
		logger.Error("No event publisher configured; charge needs manual reconciliation")

		return
	}

	if err := srv.publisher.PublishReconciliationEvent(ctx, event); err != nil {
		logger.Error("Failed to publish reconciliation event; charge needs manual reconciliation", slog.Any("error", err))
	}
}

func (srv *orderService) notifySeller(ctx context.Context, order *entity.Order, listing *entity.Listing) {
	message := fmt.Sprintf("New order: %s x %s (code %s)",
		listing.ProductName, order.QuantityOrdered.String(), order.ConfirmationCode)

	srv.dispatcher.DeliverToUser(ctx, entity.Delivery{
		UserID: order.SellerID,
		Event:  constants.EventNotification,
		Payload: map[string]any{
			"type":     entity.NotificationTypeSale,
			"message":  message,
			"order_id": order.ID,
		},
		Title: "You made a sale",
		Body:  message,
		Data: map[string]string{
			"type":     "order",
			"order_id": order.ID.String(),
		},
	})
}

// ConfirmPickup completes a Processing order when the seller submits the
// buyer's code. The order row stays locked until the transition commits.
func (srv *orderService) ConfirmPickup(ctx context.Context, orderID, sellerID uuid.UUID, code string) (*entity.Order, error) {
	submitted := strings.ToUpper(strings.TrimSpace(code))

	txCtx, cancel := context.WithTimeout(ctx, srv.txTimeout)
	defer cancel()

	var (
		order        *entity.Order
		notification *entity.Notification
	)
	err := srv.txManager.Execute(txCtx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		found, err := orderRepo.FindOrderByIDForUpdate(txCtx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrNotFound.WithDetails("order not found")
			}

			return errors.Wrap(err, "failed to lock order")
		}

		switch {
		case found.SellerID != sellerID:
			return domainerrors.ErrForbidden.WithDetails("order belongs to another seller")
		case !found.Status.CanTransitionTo(entity.OrderStatusCompleted):
			return domainerrors.ErrInvalidState.WithDetails(fmt.Sprintf("order is %s", found.Status))
		case submitted == "" || found.ConfirmationCode != submitted:
			return domainerrors.ErrCodeMismatch
		}

		if err := orderRepo.UpdateOrderStatus(txCtx, found.ID, entity.OrderStatusCompleted); err != nil {
			return errors.Wrap(err, "failed to complete order")
		}
		found.Status = entity.OrderStatusCompleted
		found.UpdatedAt = time.Now()

		notification = &entity.Notification{
			ID:          uuid.New(),
			UserID:      found.BuyerID,
			Type:        entity.NotificationTypeOrderCompleted,
			Message:     fmt.Sprintf("Pickup of order %s completed", found.ConfirmationCode),
			RelatedID:   &found.ID,
			DeliveredAt: found.UpdatedAt,
		}
		if err := repoFactory.NewNotificationRepository().CreateNotification(txCtx, notification); err != nil {
			return errors.Wrap(err, "failed to create pickup notification")
		}

		order = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Pickup confirmed", slog.String("orderID", order.ID.String()))

	srv.dispatcher.DeliverToUser(ctx, entity.Delivery{
		UserID: order.BuyerID,
		Event:  constants.EventNotification,
		Payload: map[string]any{
			"id":       notification.ID,
			"type":     notification.Type,
			"message":  notification.Message,
			"order_id": order.ID,
		},
		Title: "Pickup completed",
		Body:  notification.Message,
		Data: map[string]string{
			"type":     string(entity.NotificationTypeOrderCompleted),
			"order_id": order.ID.String(),
		},
	})

	return order, nil
}

// GetPurchaseHistory lists the buyer's orders.
func (srv *orderService) GetPurchaseHistory(ctx context.Context, buyerID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindOrdersByBuyer(ctx, buyerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by buyer")
	}

	return orders, nil
}

// GetSalesHistory lists the seller's orders.
func (srv *orderService) GetSalesHistory(ctx context.Context, sellerID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindOrdersBySeller(ctx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by seller")
	}

	return orders, nil
}

// GetPickupQRCode renders the code the seller scans at pickup. Only the
// buyer of a Processing order can fetch it.
func (srv *orderService) GetPickupQRCode(ctx context.Context, orderID, buyerID uuid.UUID) ([]byte, error) {
	if srv.qrcode == nil {
		return nil, domainerrors.ErrInternalError.WithDetails("qr code generation is not configured")
	}

	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("order not found")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if order.BuyerID != buyerID {
		return nil, domainerrors.ErrForbidden.WithDetails("order belongs to another buyer")
	}
	if order.Status != entity.OrderStatusProcessing {
		return nil, domainerrors.ErrInvalidState.WithDetails(fmt.Sprintf("order is %s", order.Status))
	}

	png, err := srv.qrcode.GeneratePickupQR(order.ID, order.ConfirmationCode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pickup qr code")
	}

	return png, nil
}

func orderResult(err error) string {
	switch {
	case err == nil:
		return service.OrderResultCreated
	case errors.Is(err, domainerrors.ErrInvalidInput):
		return service.OrderResultInvalidInput
	case errors.Is(err, domainerrors.ErrNotFound):
		return service.OrderResultNotFound
	case errors.Is(err, domainerrors.ErrAlreadySold):
		return service.OrderResultAlreadySold
	case errors.Is(err, domainerrors.ErrInsufficientStock):
		return service.OrderResultInsufficientStock
	case errors.Is(err, domainerrors.ErrPaymentFailed):
		return service.OrderResultPaymentFailed
	default:
		return service.OrderResultStorageFailure
	}
}

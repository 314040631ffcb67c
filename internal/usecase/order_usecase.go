package usecase

import (
	"context"

	"harvest/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateOrderInput is a buyer's purchase request.
type CreateOrderInput struct {
	ListingID    uuid.UUID
	Quantity     decimal.Decimal
	PickupSlot   string
	PaymentToken string
}

// OrderUsecase defines purchase and pickup use cases.
type OrderUsecase interface {
	// CreateOrder charges the buyer and reserves stock for the order.
	CreateOrder(ctx context.Context, buyerID uuid.UUID, input *CreateOrderInput) (*entity.Order, error)

	// ConfirmPickup completes an order once the seller enters the buyer's code.
	ConfirmPickup(ctx context.Context, orderID, sellerID uuid.UUID, code string) (*entity.Order, error)

	// GetPurchaseHistory lists a buyer's orders, newest first.
	GetPurchaseHistory(ctx context.Context, buyerID uuid.UUID) ([]*entity.Order, error)

	// GetSalesHistory lists a seller's orders, newest first.
	GetSalesHistory(ctx context.Context, sellerID uuid.UUID) ([]*entity.Order, error)

	// GetPickupQRCode renders the pickup QR code of a buyer's order as PNG.
	GetPickupQRCode(ctx context.Context, orderID, buyerID uuid.UUID) ([]byte, error)
}

package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusCompleted  OrderStatus = "Completed"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// CanTransitionTo reports whether the order may move to next.
// Completed and Cancelled are terminal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s != OrderStatusProcessing {
		return false
	}

	return next == OrderStatusCompleted || next == OrderStatusCancelled
}

// Order is a committed purchase of part of a listing.
type Order struct {
	ID               uuid.UUID
	ListingID        uuid.UUID
	BuyerID          uuid.UUID
	SellerID         uuid.UUID
	QuantityOrdered  decimal.Decimal
	TotalPrice       decimal.Decimal
	Status           OrderStatus
	ConfirmationCode string
	PickupSlot       string
	ChargeID         string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

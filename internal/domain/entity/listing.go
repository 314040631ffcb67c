package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/shopspring/decimal"
)

// ListingStatus is the sale state of a listing.
type ListingStatus string

const (
	ListingStatusAvailable ListingStatus = "available"
	ListingStatusSoldOut   ListingStatus = "sold_out"
)

// Listing is a seller's offer of a quantity of a product at a unit price.
type Listing struct {
	ID                uuid.UUID
	SellerID          uuid.UUID
	ProductName       string
	Grade             *string
	Description       *string
	QuantityTotal     decimal.Decimal
	QuantityAvailable decimal.Decimal
	PricePerUnit      decimal.Decimal
	PickupDate        time.Time
	Status            ListingStatus
	Location          *orb.Point
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Reserve takes qty out of the available stock and flips the listing to
// sold_out once nothing is left. The caller must hold the row lock.
func (l *Listing) Reserve(qty decimal.Decimal) {
	l.QuantityAvailable = l.QuantityAvailable.Sub(qty)
	l.syncStatus()
}

// Restock applies a change of the total quantity. Available moves by the
// same delta and never drops below zero.
func (l *Listing) Restock(newTotal decimal.Decimal) {
	delta := newTotal.Sub(l.QuantityTotal)
	l.QuantityTotal = newTotal
	l.QuantityAvailable = decimal.Max(l.QuantityAvailable.Add(delta), decimal.Zero)
	if l.QuantityAvailable.GreaterThan(l.QuantityTotal) {
		l.QuantityAvailable = l.QuantityTotal
	}
	l.syncStatus()
}

func (l *Listing) syncStatus() {
	if l.QuantityAvailable.LessThanOrEqual(decimal.Zero) {
		l.Status = ListingStatusSoldOut
	} else {
		l.Status = ListingStatusAvailable
	}
}

// ListingFilter narrows listing queries. Empty fields match everything.
type ListingFilter struct {
	ProductName string
	Status      ListingStatus
	SellerID    *uuid.UUID
}

// PriceSuggestion summarizes recent unit prices of a product.
type PriceSuggestion struct {
	ProductName string
	Days        int
	Count       int
	Average     *decimal.Decimal
	Low         *decimal.Decimal
	High        *decimal.Decimal
}

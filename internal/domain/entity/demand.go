package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/shopspring/decimal"
)

// DemandStatus is the lifecycle state of a demand.
type DemandStatus string

const (
	DemandStatusOpen   DemandStatus = "open"
	DemandStatusClosed DemandStatus = "closed"
)

// Demand is a buyer's standing request for a quantity of a product.
type Demand struct {
	ID              uuid.UUID
	BuyerID         uuid.UUID
	ProductName     string
	DesiredQuantity decimal.Decimal
	Unit            string
	DesiredPrice    *decimal.Decimal
	Location        *orb.Point
	Status          DemandStatus
	CreatedAt       time.Time
}

package usecase

import (
	"context"

	"harvest/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateDemandInput holds the fields of a new demand. Without coordinates
// the buyer's primary address is used.
type CreateDemandInput struct {
	ProductName     string
	DesiredQuantity decimal.Decimal
	Unit            string
	DesiredPrice    *decimal.Decimal
	Latitude        *float64
	Longitude       *float64
}

// DemandResult is a created demand and the listings it was matched against.
type DemandResult struct {
	Demand  *entity.Demand
	Matches []entity.RankedListing
}

// DemandUsecase defines the buyer-facing demand use cases.
type DemandUsecase interface {
	CreateDemand(ctx context.Context, buyerID uuid.UUID, input *CreateDemandInput) (*DemandResult, error)
	ListBuyerDemands(ctx context.Context, buyerID uuid.UUID) ([]*entity.Demand, error)
	DeleteDemand(ctx context.Context, buyerID, demandID uuid.UUID) error

	// ProductOptions lists the products that currently have stock.
	ProductOptions(ctx context.Context) ([]string, error)
}

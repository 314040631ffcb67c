package repository

import (
	"context"

	"harvest/internal/domain/entity"
	"harvest/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrDemandNotFound is returned when a demand is not found.
	ErrDemandNotFound = errors.New("demand not found")
)

// DemandRepository defines demand persistence operations.
type DemandRepository interface {
	CreateDemand(ctx context.Context, demand *entity.Demand) error
	FindDemandByID(ctx context.Context, id uuid.UUID) (*entity.Demand, error)
	FindDemandsByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Demand, error)

	// FindOpenDemands returns open demands of the product whose desired
	// quantity does not exceed maxQuantity, oldest first.
	FindOpenDemands(ctx context.Context, productName string, maxQuantity decimal.Decimal) ([]*entity.Demand, error)

	DeleteDemand(ctx context.Context, id uuid.UUID) error
}

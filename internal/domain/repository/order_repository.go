package repository

import (
	"context"

	"harvest/internal/domain/entity"
	"harvest/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrDuplicateConfirmationCode is returned when the unique code index rejects an insert.
	ErrDuplicateConfirmationCode = errors.New("confirmation code already in use")
)

// OrderRepository defines order persistence operations.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *entity.Order) error
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrderByIDForUpdate reads an order holding its row lock.
	FindOrderByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	ConfirmationCodeExists(ctx context.Context, code string) (bool, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// FindOrdersByBuyer and FindOrdersBySeller return newest first.
	FindOrdersByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Order, error)
	FindOrdersBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Order, error)
}

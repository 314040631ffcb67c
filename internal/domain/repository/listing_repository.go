package repository

import (
	"context"
	"time"

	"harvest/internal/domain/entity"
	"harvest/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrListingNotFound is returned when a listing is not found.
	ErrListingNotFound = errors.New("listing not found")
)

// ListingRepository defines listing persistence operations.
type ListingRepository interface {
	CreateListing(ctx context.Context, listing *entity.Listing) error

	// FindListingByID reads a listing without locking.
	FindListingByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error)

	// FindListingByIDForUpdate reads a listing and holds its row lock until
	// the surrounding transaction ends.
	FindListingByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Listing, error)

	// FindMatchingListings returns available listings of the product with at
	// least minAvailable in stock, oldest first.
	FindMatchingListings(ctx context.Context, productName string, minAvailable decimal.Decimal) ([]*entity.Listing, error)

	ListListings(ctx context.Context, filter entity.ListingFilter) ([]*entity.Listing, error)

	// UpdateListing writes every mutable column including stock and status.
	UpdateListing(ctx context.Context, listing *entity.Listing) error

	DeleteListing(ctx context.Context, id uuid.UUID) error

	// FindPricesSince returns unit prices of listings of the product created at or after since.
	FindPricesSince(ctx context.Context, productName string, since time.Time) ([]decimal.Decimal, error)

	// DistinctAvailableProducts lists product names with at least one available listing.
	DistinctAvailableProducts(ctx context.Context) ([]string, error)
}

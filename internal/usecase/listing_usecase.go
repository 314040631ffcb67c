package usecase

import (
	"context"
	"time"

	"harvest/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateListingInput holds the fields of a new listing.
type CreateListingInput struct {
	ProductName  string
	Grade        *string
	Description  *string
	Quantity     decimal.Decimal
	PricePerUnit decimal.Decimal
	PickupDate   time.Time
	Latitude     *float64
	Longitude    *float64
}

// UpdateListingInput holds optional listing changes. A new QuantityTotal
// restocks the listing.
type UpdateListingInput struct {
	Grade         *string
	Description   *string
	QuantityTotal *decimal.Decimal
	PricePerUnit  *decimal.Decimal
	PickupDate    *time.Time
}

// ListingUsecase defines the seller-facing listing use cases.
type ListingUsecase interface {
	CreateListing(ctx context.Context, sellerID uuid.UUID, input *CreateListingInput) (*entity.Listing, error)
	UpdateListing(ctx context.Context, sellerID, listingID uuid.UUID, input *UpdateListingInput) (*entity.Listing, error)
	DeleteListing(ctx context.Context, sellerID, listingID uuid.UUID) error
	GetListing(ctx context.Context, listingID uuid.UUID) (*entity.Listing, error)
	ListListings(ctx context.Context, filter entity.ListingFilter) ([]*entity.Listing, error)
	ListSellerListings(ctx context.Context, sellerID uuid.UUID) ([]*entity.Listing, error)

	// SuggestPrice summarizes recent unit prices of a product.
	SuggestPrice(ctx context.Context, productName string) (*entity.PriceSuggestion, error)
}

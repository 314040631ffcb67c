package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"harvest/config"
	deliverycontext "harvest/internal/delivery/context"
	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/geo"
	"harvest/internal/domain/repository"
	"harvest/internal/domain/service"
	"harvest/internal/errors"
	"harvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const defaultPriceWindowDays = 7

type listingService struct {
	txManager   repository.TransactionManager
	listingRepo repository.ListingRepository
	locations   *locationResolver
	matching    usecase.MatchingUsecase
	priceWindow int
	txTimeout   time.Duration
	logger      *slog.Logger
}

// ListingServiceParams holds dependencies for ListingService, injected by Fx.
type ListingServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ListingRepo repository.ListingRepository
	AddressRepo repository.AddressRepository
	Geocoder    service.Geocoder `optional:"true"`
	Matching    usecase.MatchingUsecase
	Config      *config.Config
	Logger      *slog.Logger
}

// NewListingService creates a new listing service instance.
func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	priceWindow := defaultPriceWindowDays
	if params.Config != nil && params.Config.Market.PriceWindowDays > 0 {
		priceWindow = params.Config.Market.PriceWindowDays
	}

	return &listingService{
		txManager:   params.TxManager,
		listingRepo: params.ListingRepo,
		locations:   newLocationResolver(params.AddressRepo, params.Geocoder, params.Logger),
		matching:    params.Matching,
		priceWindow: priceWindow,
		txTimeout:   txTimeoutFrom(params.Config),
		logger:      params.Logger,
	}
}

func (s *listingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateListing stores a new listing and tells buyers with matching demands.
func (s *listingService) CreateListing(ctx context.Context, sellerID uuid.UUID, input *usecase.CreateListingInput) (*entity.Listing, error) {
	if err := validateListingInput(input); err != nil {
		return nil, err
	}

	location, err := pointFromInput(input.Latitude, input.Longitude)
	if err != nil {
		return nil, err
	}
	if location == nil {
		location = s.locations.Resolve(ctx, sellerID)
	}

	now := time.Now()
	listing := &entity.Listing{
		ID:                uuid.New(),
		SellerID:          sellerID,
		ProductName:       strings.TrimSpace(input.ProductName),
		Grade:             input.Grade,
		Description:       input.Description,
		QuantityTotal:     input.Quantity,
		QuantityAvailable: input.Quantity,
		PricePerUnit:      input.PricePerUnit,
		PickupDate:        input.PickupDate,
		Status:            entity.ListingStatusAvailable,
		Location:          location,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.listingRepo.CreateListing(ctx, listing); err != nil {
		return nil, errors.Wrap(err, "failed to create listing")
	}

	s.log(ctx).Info("Listing created",
		slog.String("listingID", listing.ID.String()),
		slog.String("sellerID", sellerID.String()),
		slog.String("product", listing.ProductName))

	if _, err := s.matching.OnNewListing(ctx, listing); err != nil {
		s.log(ctx).Error("Failed to match listing against demands", slog.String("listingID", listing.ID.String()), slog.Any("error", err))
	}

	return listing, nil
}

func validateListingInput(input *usecase.CreateListingInput) error {
	switch {
	case input == nil:
		return domainerrors.ErrInvalidInput.WithDetails("listing is required")
	case strings.TrimSpace(input.ProductName) == "":
		return domainerrors.ErrInvalidInput.WithDetails("product name is required")
	case !input.Quantity.IsPositive():
		return domainerrors.ErrInvalidInput.WithDetails("quantity must be positive")
	case !input.PricePerUnit.IsPositive():
		return domainerrors.ErrInvalidInput.WithDetails("price per unit must be positive")
	case input.PickupDate.IsZero():
		return domainerrors.ErrInvalidInput.WithDetails("pickup date is required")
	}

	return nil
}

// pointFromInput accepts both coordinates or neither.
func pointFromInput(lat, lng *float64) (*orb.Point, error) {
	if lat == nil && lng == nil {
		return nil, nil
	}
	if lat == nil || lng == nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("latitude and longitude must be given together")
	}

	point := geo.Point(*lat, *lng)
	if !geo.IsValid(point) {
		return nil, domainerrors.ErrInvalidInput.WithDetails("coordinate out of range")
	}

	return point, nil
}

// UpdateListing edits a listing under its row lock so a concurrent purchase
// cannot interleave with a restock.
func (s *listingService) UpdateListing(ctx context.Context, sellerID, listingID uuid.UUID, input *usecase.UpdateListingInput) (*entity.Listing, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("listing update is required")
	}
	if input.QuantityTotal != nil && !input.QuantityTotal.IsPositive() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("quantity must be positive")
	}
	if input.PricePerUnit != nil && !input.PricePerUnit.IsPositive() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("price per unit must be positive")
	}

	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	var updated *entity.Listing
	err := s.txManager.Execute(txCtx, func(repoFactory repository.RepositoryFactory) error {
		listingRepo := repoFactory.NewListingRepository()

		listing, err := listingRepo.FindListingByIDForUpdate(txCtx, listingID)
		if err != nil {
			if errors.Is(err, repository.ErrListingNotFound) {
				return domainerrors.ErrNotFound.WithDetails("listing not found")
			}

			return errors.Wrap(err, "failed to find listing")
		}
		if listing.SellerID != sellerID {
			return domainerrors.ErrForbidden.WithDetails("listing belongs to another seller")
		}

		applyListingUpdate(listing, input)
		listing.UpdatedAt = time.Now()

		if err := listingRepo.UpdateListing(txCtx, listing); err != nil {
			return errors.Wrap(err, "failed to update listing")
		}
		updated = listing

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func applyListingUpdate(listing *entity.Listing, input *usecase.UpdateListingInput) {
	if input.Grade != nil {
		listing.Grade = input.Grade
	}
	if input.Description != nil {
		listing.Description = input.Description
	}
	if input.PricePerUnit != nil {
		listing.PricePerUnit = *input.PricePerUnit
	}
	if input.PickupDate != nil {
		listing.PickupDate = *input.PickupDate
	}
	if input.QuantityTotal != nil && !input.QuantityTotal.Equal(listing.QuantityTotal) {
		listing.Restock(*input.QuantityTotal)
	}
}

// DeleteListing removes a listing owned by the seller.
func (s *listingService) DeleteListing(ctx context.Context, sellerID, listingID uuid.UUID) error {
	listing, err := s.GetListing(ctx, listingID)
	if err != nil {
		return err
	}
	if listing.SellerID != sellerID {
		return domainerrors.ErrForbidden.WithDetails("listing belongs to another seller")
	}

	if err := s.listingRepo.DeleteListing(ctx, listingID); err != nil {
		return errors.Wrap(err, "failed to delete listing")
	}

	return nil
}

// GetListing returns one listing.
func (s *listingService) GetListing(ctx context.Context, listingID uuid.UUID) (*entity.Listing, error) {
	listing, err := s.listingRepo.FindListingByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("listing not found")
		}

		return nil, errors.Wrap(err, "failed to find listing")
	}

	return listing, nil
}

func (s *listingService) ListListings(ctx context.Context, filter entity.ListingFilter) ([]*entity.Listing, error) {
	listings, err := s.listingRepo.ListListings(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list listings")
	}

	return listings, nil
}

func (s *listingService) ListSellerListings(ctx context.Context, sellerID uuid.UUID) ([]*entity.Listing, error) {
	return s.ListListings(ctx, entity.ListingFilter{SellerID: &sellerID})
}

// SuggestPrice reports count, average, low and high unit price of the
// product over the configured window.
func (s *listingService) SuggestPrice(ctx context.Context, productName string) (*entity.PriceSuggestion, error) {
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("product name is required")
	}

	since := time.Now().AddDate(0, 0, -s.priceWindow)
	prices, err := s.listingRepo.FindPricesSince(ctx, productName, since)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find recent prices")
	}

	return summarizePrices(productName, s.priceWindow, prices), nil
}

func summarizePrices(productName string, days int, prices []decimal.Decimal) *entity.PriceSuggestion {
	suggestion := &entity.PriceSuggestion{
		ProductName: productName,
		Days:        days,
		Count:       len(prices),
	}
	if len(prices) == 0 {
		return suggestion
	}

	low, high := prices[0], prices[0]
	for _, price := range prices[1:] {
		low = decimal.Min(low, price)
		high = decimal.Max(high, price)
	}
	avg := decimal.Avg(prices[0], prices[1:]...).Round(2)

	suggestion.Average = &avg
	suggestion.Low = &low
	suggestion.High = &high

	return suggestion
}

package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "harvest/internal/delivery/context"
	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	"harvest/internal/domain/service"
	"harvest/internal/errors"
	"harvest/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type demandService struct {
	demandRepo  repository.DemandRepository
	listingRepo repository.ListingRepository
	locations   *locationResolver
	matching    usecase.MatchingUsecase
	logger      *slog.Logger
}

// DemandServiceParams holds dependencies for DemandService, injected by Fx.
type DemandServiceParams struct {
	fx.In

	DemandRepo  repository.DemandRepository
	ListingRepo repository.ListingRepository
	AddressRepo repository.AddressRepository
	Geocoder    service.Geocoder `optional:"true"`
	Matching    usecase.MatchingUsecase
	Logger      *slog.Logger
}

// NewDemandService creates a new demand service instance.
func NewDemandService(params DemandServiceParams) usecase.DemandUsecase {
	return &demandService{
		demandRepo:  params.DemandRepo,
		listingRepo: params.ListingRepo,
		locations:   newLocationResolver(params.AddressRepo, params.Geocoder, params.Logger),
		matching:    params.Matching,
		logger:      params.Logger,
	}
}

func (s *demandService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateDemand stores the demand and runs a matching pass for it. A failed
// pass is logged; the demand itself is kept.
func (s *demandService) CreateDemand(ctx context.Context, buyerID uuid.UUID, input *usecase.CreateDemandInput) (*usecase.DemandResult, error) {
	switch {
	case input == nil:
		return nil, domainerrors.ErrInvalidInput.WithDetails("demand is required")
	case strings.TrimSpace(input.ProductName) == "":
		return nil, domainerrors.ErrInvalidInput.WithDetails("product name is required")
	case !input.DesiredQuantity.IsPositive():
		return nil, domainerrors.ErrInvalidInput.WithDetails("desired quantity must be positive")
	case strings.TrimSpace(input.Unit) == "":
		return nil, domainerrors.ErrInvalidInput.WithDetails("unit is required")
	case input.DesiredPrice != nil && input.DesiredPrice.IsNegative():
		return nil, domainerrors.ErrInvalidInput.WithDetails("desired price must not be negative")
	}

	location, err := pointFromInput(input.Latitude, input.Longitude)
	if err != nil {
		return nil, err
	}
	if location == nil {
		location = s.locations.Resolve(ctx, buyerID)
	}

	demand := &entity.Demand{
		ID:              uuid.New(),
		BuyerID:         buyerID,
		ProductName:     strings.TrimSpace(input.ProductName),
		DesiredQuantity: input.DesiredQuantity,
		Unit:            strings.TrimSpace(input.Unit),
		DesiredPrice:    input.DesiredPrice,
		Location:        location,
		Status:          entity.DemandStatusOpen,
		CreatedAt:       time.Now(),
	}

	if err := s.demandRepo.CreateDemand(ctx, demand); err != nil {
		return nil, errors.Wrap(err, "failed to create demand")
	}

	matches, err := s.matching.OnNewDemand(ctx, demand)
	if err != nil {
		s.log(ctx).Error("Failed to match demand against listings", slog.String("demandID", demand.ID.String()), slog.Any("error", err))
	}

	return &usecase.DemandResult{Demand: demand, Matches: matches}, nil
}

func (s *demandService) ListBuyerDemands(ctx context.Context, buyerID uuid.UUID) ([]*entity.Demand, error) {
	demands, err := s.demandRepo.FindDemandsByBuyer(ctx, buyerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find demands by buyer")
	}

	return demands, nil
}

// DeleteDemand removes a demand owned by the buyer.
func (s *demandService) DeleteDemand(ctx context.Context, buyerID, demandID uuid.UUID) error {
	demand, err := s.demandRepo.FindDemandByID(ctx, demandID)
	if err != nil {
		if errors.Is(err, repository.ErrDemandNotFound) {
			return domainerrors.ErrNotFound.WithDetails("demand not found")
		}

		return errors.Wrap(err, "failed to find demand")
	}
	if demand.BuyerID != buyerID {
		return domainerrors.ErrForbidden.WithDetails("demand belongs to another buyer")
	}

	if err := s.demandRepo.DeleteDemand(ctx, demandID); err != nil {
		return errors.Wrap(err, "failed to delete demand")
	}

	return nil
}

func (s *demandService) ProductOptions(ctx context.Context) ([]string, error) {
	products, err := s.listingRepo.DistinctAvailableProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list available products")
	}

	return products, nil
}

package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"harvest/config"
	deliverycontext "harvest/internal/delivery/context"
	"harvest/internal/domain/constants"
	"harvest/internal/domain/entity"
	"harvest/internal/domain/geo"
	"harvest/internal/domain/repository"
	"harvest/internal/domain/service"
	"harvest/internal/errors"
	"harvest/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type matchingService struct {
	txManager   repository.TransactionManager
	listingRepo repository.ListingRepository
	demandRepo  repository.DemandRepository
	locations   *locationResolver
	dispatcher  usecase.DispatcherUsecase
	metrics     service.MarketMetrics
	txTimeout   time.Duration
	logger      *slog.Logger
}

// MatchingServiceParams holds dependencies for the matching engine, injected by Fx.
type MatchingServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ListingRepo repository.ListingRepository
	DemandRepo  repository.DemandRepository
	AddressRepo repository.AddressRepository
	Geocoder    service.Geocoder `optional:"true"`
	Dispatcher  usecase.DispatcherUsecase
	Metrics     service.MarketMetrics `optional:"true"`
	Config      *config.Config        `optional:"true"`
	Logger      *slog.Logger
}

// NewMatchingService creates the matching engine.
func NewMatchingService(params MatchingServiceParams) usecase.MatchingUsecase {
	return &matchingService{
		txManager:   params.TxManager,
		listingRepo: params.ListingRepo,
		demandRepo:  params.DemandRepo,
		locations:   newLocationResolver(params.AddressRepo, params.Geocoder, params.Logger),
		dispatcher:  params.Dispatcher,
		metrics:     metricsOrNoop(params.Metrics),
		txTimeout:   txTimeoutFrom(params.Config),
		logger:      params.Logger,
	}
}

func (s *matchingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// OnNewDemand ranks candidate listings nearest first and notifies their
// sellers in that order. A failure on one candidate is logged and skipped.
func (s *matchingService) OnNewDemand(ctx context.Context, demand *entity.Demand) ([]entity.RankedListing, error) {
	listings, err := s.listingRepo.FindMatchingListings(ctx, demand.ProductName, demand.DesiredQuantity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find matching listings")
	}

	ranked := s.rank(ctx, demand, listings)

	for _, candidate := range ranked {
		if err := s.matchListing(ctx, demand, candidate); err != nil {
			s.log(ctx).Error("Failed to record match",
				slog.String("demandID", demand.ID.String()),
				slog.String("listingID", candidate.Listing.ID.String()),
				slog.Any("error", err))
		}
	}

	s.log(ctx).Info("Demand matched",
		slog.String("demandID", demand.ID.String()),
		slog.Int("candidates", len(ranked)))

	return ranked, nil
}

// rank drops repeated listings and orders the rest by distance to the demand.
// Listings without a coordinate fall back to the seller's primary address.
func (s *matchingService) rank(ctx context.Context, demand *entity.Demand, listings []*entity.Listing) []entity.RankedListing {
	sellerLocations := s.locations.memo()
	seen := make(map[uuid.UUID]struct{}, len(listings))
	ranked := make([]entity.RankedListing, 0, len(listings))

	for _, listing := range listings {
		if _, dup := seen[listing.ID]; dup {
			continue
		}
		seen[listing.ID] = struct{}{}

		location := listing.Location
		if location == nil {
			location = sellerLocations.Resolve(ctx, listing.SellerID)
		}

		ranked = append(ranked, entity.RankedListing{
			Listing:    listing,
			DistanceKm: geo.DistanceKm(demand.Location, location),
		})
	}

	geo.SortByDistance(ranked, func(r entity.RankedListing) *float64 { return r.DistanceKm })

	return ranked
}

func (s *matchingService) matchListing(ctx context.Context, demand *entity.Demand, candidate entity.RankedListing) error {
	listing := candidate.Listing
	now := time.Now()

	match := &entity.Match{
		ID:           uuid.New(),
		ListingID:    listing.ID,
		DemandID:     demand.ID,
		DistanceKm:   candidate.DistanceKm,
		MatchedPrice: listing.PricePerUnit,
		Status:       entity.MatchStatusPending,
		CreatedAt:    now,
	}
	notification := &entity.Notification{
		ID:          uuid.New(),
		UserID:      listing.SellerID,
		Type:        entity.NotificationTypeMatch,
		Message:     fmt.Sprintf("A buyer wants %s %s of %s", demand.DesiredQuantity.String(), demand.Unit, demand.ProductName),
		RelatedID:   &demand.ID,
		DeliveredAt: now,
	}

	if err := s.persistMatch(ctx, match, notification); err != nil {
		return err
	}

	s.dispatcher.DeliverToUser(ctx, entity.Delivery{
		UserID: listing.SellerID,
		Event:  constants.EventNotification,
		Payload: map[string]any{
			"id":          notification.ID,
			"type":        notification.Type,
			"message":     notification.Message,
			"demand_id":   demand.ID,
			"listing_id":  listing.ID,
			"distance_km": candidate.DistanceKm,
		},
		Title: "New buyer match",
		Body:  notification.Message,
		Data: map[string]string{
			"type":            string(entity.NotificationTypeMatch),
			"notification_id": notification.ID.String(),
			"demand_id":       demand.ID.String(),
		},
	})

	return nil
}

// persistMatch stores a match and the notification announcing it together.
func (s *matchingService) persistMatch(ctx context.Context, match *entity.Match, notification *entity.Notification) error {
	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	err := s.txManager.Execute(txCtx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewMatchRepository().CreateMatch(txCtx, match); err != nil {
			return errors.Wrap(err, "failed to create match")
		}
		if err := repoFactory.NewNotificationRepository().CreateNotification(txCtx, notification); err != nil {
			return errors.Wrap(err, "failed to create notification")
		}

		return nil
	})
	if err != nil {
		return err
	}
	s.metrics.ObserveMatch()

	return nil
}

// OnNewListing tells every buyer with an open demand the listing can fill.
func (s *matchingService) OnNewListing(ctx context.Context, listing *entity.Listing) (int, error) {
	demands, err := s.demandRepo.FindOpenDemands(ctx, listing.ProductName, listing.QuantityAvailable)
	if err != nil {
		return 0, errors.Wrap(err, "failed to find open demands")
	}

	matched := 0
	for _, demand := range demands {
		if err := s.notifyBuyer(ctx, listing, demand); err != nil {
			s.log(ctx).Error("Failed to notify buyer of listing",
				slog.String("listingID", listing.ID.String()),
				slog.String("demandID", demand.ID.String()),
				slog.Any("error", err))

			continue
		}
		matched++
	}

	return matched, nil
}

func (s *matchingService) notifyBuyer(ctx context.Context, listing *entity.Listing, demand *entity.Demand) error {
	now := time.Now()
	match := &entity.Match{
		ID:           uuid.New(),
		ListingID:    listing.ID,
		DemandID:     demand.ID,
		DistanceKm:   geo.DistanceKm(demand.Location, listing.Location),
		MatchedPrice: listing.PricePerUnit,
		Status:       entity.MatchStatusPending,
		CreatedAt:    now,
	}
	notification := &entity.Notification{
		ID:          uuid.New(),
		UserID:      demand.BuyerID,
		Type:        entity.NotificationTypeMatch,
		Message:     fmt.Sprintf("A listing matches what you are looking for: %s", listing.ProductName),
		RelatedID:   &listing.ID,
		DeliveredAt: now,
	}

	if err := s.persistMatch(ctx, match, notification); err != nil {
		return err
	}

	s.dispatcher.DeliverToUser(ctx, entity.Delivery{
		UserID: demand.BuyerID,
		Event:  constants.EventNotification,
		Payload: map[string]any{
			"id":         notification.ID,
			"type":       notification.Type,
			"message":    notification.Message,
			"listing_id": listing.ID,
			"demand_id":  demand.ID,
		},
		Title: "New listing match",
		Body:  notification.Message,
		Data: map[string]string{
			"type":            string(entity.NotificationTypeMatch),
			"notification_id": notification.ID.String(),
			"listing_id":      listing.ID.String(),
		},
	})

	return nil
}

package usecase

import (
	"context"

	"harvest/internal/domain/entity"
)

// MatchingUsecase pairs new demands with listings and new listings with demands.
type MatchingUsecase interface {
	// OnNewDemand ranks compatible listings by distance to the demand, records
	// a pending match for each and notifies the sellers in ranked order.
	OnNewDemand(ctx context.Context, demand *entity.Demand) ([]entity.RankedListing, error)

	// OnNewListing notifies the buyers of open demands the listing can satisfy.
	// It returns the number of demands that were matched.
	OnNewListing(ctx context.Context, listing *entity.Listing) (int, error)
}

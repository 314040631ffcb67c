package impl

import (
	"context"
	"log/slog"

	deliverycontext "harvest/internal/delivery/context"
	"harvest/internal/domain/repository"
	"harvest/internal/domain/service"
	"harvest/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// locationResolver finds the coordinate of a user's primary address.
// Lookups never fail: anything that goes wrong yields an unknown location.
type locationResolver struct {
	addressRepo repository.AddressRepository
	geocoder    service.Geocoder
	logger      *slog.Logger
}

func newLocationResolver(addressRepo repository.AddressRepository, geocoder service.Geocoder, logger *slog.Logger) *locationResolver {
	return &locationResolver{
		addressRepo: addressRepo,
		geocoder:    geocoder,
		logger:      logger,
	}
}

// Resolve returns the stored coordinate of the primary address, geocoding
// and saving it on first use. Nil means unknown.
func (r *locationResolver) Resolve(ctx context.Context, userID uuid.UUID) *orb.Point {
	logger := deliverycontext.GetLoggerOrDefault(ctx, r.logger)
	if r.addressRepo == nil {
		return nil
	}

	address, err := r.addressRepo.FindPrimaryAddressByOwner(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrAddressNotFound) {
			logger.Warn("Failed to load primary address", slog.String("userID", userID.String()), slog.Any("error", err))
		}

		return nil
	}

	if address.Location != nil {
		return address.Location
	}
	if r.geocoder == nil || address.FullAddress == "" {
		return nil
	}

	point, err := r.geocoder.Resolve(ctx, address.FullAddress)
	if err != nil {
		logger.Warn("Geocoding failed", slog.String("userID", userID.String()), slog.Any("error", err))

		return nil
	}
	if point == nil {
		return nil
	}

	if err := r.addressRepo.UpdateLocation(ctx, address.ID, *point); err != nil {
		logger.Warn("Failed to store resolved location", slog.String("addressID", address.ID.String()), slog.Any("error", err))
	}

	return point
}

// locationMemo caches resolved user locations, unknowns included, for the
// duration of one matching pass.
type locationMemo struct {
	resolver *locationResolver
	seen     map[uuid.UUID]*orb.Point
}

func (r *locationResolver) memo() *locationMemo {
	return &locationMemo{resolver: r, seen: make(map[uuid.UUID]*orb.Point)}
}

func (m *locationMemo) Resolve(ctx context.Context, userID uuid.UUID) *orb.Point {
	if point, ok := m.seen[userID]; ok {
		return point
	}

	point := m.resolver.Resolve(ctx, userID)
	m.seen[userID] = point

	return point
}

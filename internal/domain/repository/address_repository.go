// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"harvest/internal/domain/entity"
	"harvest/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Domain-specific errors for address persistence.
var (
	// ErrAddressNotFound is returned when an address is not found.
	ErrAddressNotFound = errors.New("address not found")
)

// AddressRepository reads the stored addresses of buyers and sellers.
type AddressRepository interface {
	// FindPrimaryAddressByOwner retrieves the primary address for a user.
	// Returns ErrAddressNotFound if no primary address exists.
	FindPrimaryAddressByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Address, error)

	// UpdateLocation stores a resolved coordinate on an address.
	UpdateLocation(ctx context.Context, id uuid.UUID, location orb.Point) error
}

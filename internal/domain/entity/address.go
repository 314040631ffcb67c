// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Address is a stored address of a buyer or seller. The primary address is
// used as the fallback location for listings and demands.
type Address struct {
	ID          uuid.UUID  // The Global Unique Identifier (GUID) for the address.
	OwnerID     uuid.UUID  // The ID of the user that owns this address.
	Label       string     // A user-defined label, e.g., "Farm", "Home".
	FullAddress string     // The full, human-readable street address.
	Location    *orb.Point // Resolved coordinate, nil until geocoded.
	IsPrimary   bool       // Indicates if this is the primary address for the owner.
	CreatedAt   time.Time  // Timestamp of when this address was created.
	UpdatedAt   time.Time  // Timestamp of the last modification.
}

package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MatchStatus tracks a buyer's reaction to a match. Only pending is produced
// by the matching engine.
type MatchStatus string

const (
	MatchStatusPending  MatchStatus = "pending"
	MatchStatusAccepted MatchStatus = "accepted"
	MatchStatusDeclined MatchStatus = "declined"
)

// Match links a listing and a demand that satisfy each other.
type Match struct {
	ID           uuid.UUID
	ListingID    uuid.UUID
	DemandID     uuid.UUID
	DistanceKm   *float64
	MatchedPrice decimal.Decimal
	Status       MatchStatus
	CreatedAt    time.Time
}

// RankedListing is a candidate listing for a demand with its distance.
// A nil distance means the distance is unknown.
type RankedListing struct {
	Listing    *Listing
	DistanceKm *float64
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChargeStatusSuccessful is the only gateway status treated as captured.
const ChargeStatusSuccessful = "successful"

// ChargeRequest asks the gateway to capture an amount in minor units.
type ChargeRequest struct {
	AmountMinor int64
	Currency    string
	Token       string
	Description string
}

// ChargeResult is the gateway's answer to a charge.
type ChargeResult struct {
	ChargeID       string
	Status         string
	FailureMessage string
}

// Captured reports whether the charge moved money.
func (r *ChargeResult) Captured() bool {
	return r != nil && r.Status == ChargeStatusSuccessful
}

// PaymentReconciliationEvent is published when a buyer was charged but no
// order could be recorded and the immediate refund did not go through.
type PaymentReconciliationEvent struct {
	RequestID   string    `json:"request_id,omitempty"`
	ChargeID    string    `json:"charge_id"`
	AmountMinor int64     `json:"amount_minor"`
	Currency    string    `json:"currency"`
	BuyerID     uuid.UUID `json:"buyer_id"`
	ListingID   uuid.UUID `json:"listing_id"`
	Reason      string    `json:"reason"`
	OccurredAt  time.Time `json:"occurred_at"`
}

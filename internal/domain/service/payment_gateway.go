package service

import (
	"context"

	"harvest/internal/domain/entity"
)

// PaymentGateway captures and refunds card charges.
type PaymentGateway interface {
	// Charge attempts a capture. Only a result with status "successful" moved money.
	Charge(ctx context.Context, req entity.ChargeRequest) (*entity.ChargeResult, error)

	// Refund returns amountMinor of a captured charge.
	Refund(ctx context.Context, chargeID string, amountMinor int64) error
}

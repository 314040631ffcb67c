package service

import (
	"time"

	"harvest/internal/domain/entity"
)

// MarketMetrics records business outcomes of the marketplace engines.
type MarketMetrics interface {
	ObserveDelivery(outcome entity.DeliveryOutcome)
	ObserveOrder(result string, elapsed time.Duration)
	ObserveMatch()
	ObserveRefund(ok bool)
}

// Order results recorded by ObserveOrder.
const (
	OrderResultCreated           = "created"
	OrderResultInvalidInput      = "invalid_input"
	OrderResultNotFound          = "not_found"
	OrderResultAlreadySold       = "already_sold"
	OrderResultInsufficientStock = "insufficient_stock"
	OrderResultPaymentFailed     = "payment_failed"
	OrderResultStorageFailure    = "storage_failure"
)

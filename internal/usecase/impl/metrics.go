package impl

import (
	"time"

	"harvest/internal/domain/entity"
	"harvest/internal/domain/service"
)

type noopMetrics struct{}

func (noopMetrics) ObserveDelivery(entity.DeliveryOutcome) {}
func (noopMetrics) ObserveOrder(string, time.Duration)     {}
func (noopMetrics) ObserveMatch()                          {}
func (noopMetrics) ObserveRefund(bool)                     {}

func metricsOrNoop(m service.MarketMetrics) service.MarketMetrics {
	if m == nil {
		return noopMetrics{}
	}

	return m
}

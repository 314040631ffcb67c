package service

import (
	"context"

	"harvest/internal/domain/entity"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishReconciliationEvent hands a captured-but-unrecorded charge to the reconciler
	PublishReconciliationEvent(ctx context.Context, event *entity.PaymentReconciliationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

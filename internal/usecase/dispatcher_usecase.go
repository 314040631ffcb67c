// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"harvest/internal/domain/entity"
)

// DispatcherUsecase delivers notifications realtime first and falls back to push.
type DispatcherUsecase interface {
	// Deliver sends d to every live connection of d.UserID. When none is
	// reachable and d.DeviceToken is set, it pushes instead. It never fails;
	// the outcome reports what happened.
	Deliver(ctx context.Context, d entity.Delivery) entity.DeliveryOutcome

	// DeliverToUser fills in the user's most recent active device token
	// before calling Deliver.
	DeliverToUser(ctx context.Context, d entity.Delivery) entity.DeliveryOutcome
}

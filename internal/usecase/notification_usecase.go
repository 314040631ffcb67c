package usecase

import (
	"context"

	"harvest/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase defines the interface for notification inbox use cases
type NotificationUsecase interface {
	// ListNotifications returns a user's notifications with pagination, newest first
	ListNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error)
}

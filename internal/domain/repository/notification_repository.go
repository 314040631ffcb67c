// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"harvest/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationRepository persists user notifications.
type NotificationRepository interface {
	// CreateNotification persists a new notification.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationsByUser lists a user's notifications, newest first.
	FindNotificationsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error)
}

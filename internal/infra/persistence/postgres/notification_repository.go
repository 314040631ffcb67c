package postgres

import (
	"context"
	"time"

	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	"harvest/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

// CreateNotification persists a new notification.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	if notification.DeliveredAt.IsZero() {
		notification.DeliveredAt = time.Now()
	}

	notificationM := &model.NotificationModel{
		ID:          notification.ID,
		UserID:      notification.UserID,
		Type:        string(notification.Type),
		Message:     notification.Message,
		RelatedID:   notification.RelatedID,
		DeliveredAt: notification.DeliveredAt,
	}

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.ID = notificationM.ID

	return nil
}

// FindNotificationsByUser lists a user's notifications, newest first.
func (repo *notificationRepository) FindNotificationsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("delivered_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notificationModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find notifications by user")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, m := range notificationModels {
		notifications = append(notifications, &entity.Notification{
			ID:          m.ID,
			UserID:      m.UserID,
			Type:        entity.NotificationType(m.Type),
			Message:     m.Message,
			RelatedID:   m.RelatedID,
			DeliveredAt: m.DeliveredAt,
		})
	}

	return notifications, nil
}

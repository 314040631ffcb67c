package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
type NotificationModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_notifications_user_time"`
	Type        string     `gorm:"type:varchar(30);not null"`
	Message     string     `gorm:"type:text;not null"`
	RelatedID   *uuid.UUID `gorm:"type:uuid"`
	DeliveredAt time.Time  `gorm:"not null;index:idx_notifications_user_time"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceModel is the GORM-specific struct for the 'user_devices' table.
// Rows are never deleted; deactivation clears IsActive.
type DeviceModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_devices_installation"`
	InstallationID string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_user_devices_installation"`
	PushToken      string    `gorm:"type:varchar(512);not null;index"`
	Platform       string    `gorm:"type:varchar(16);not null"`
	IsActive       bool      `gorm:"not null;default:true;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "user_devices"
}

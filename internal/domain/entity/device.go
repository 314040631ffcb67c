package entity

import (
	"time"

	"github.com/google/uuid"
)

// DevicePlatform is the OS a push token was issued for.
type DevicePlatform string

const (
	PlatformIOS     DevicePlatform = "ios"
	PlatformAndroid DevicePlatform = "android"
	PlatformWeb     DevicePlatform = "web"
)

func (p DevicePlatform) IsValid() bool {
	switch p {
	case PlatformIOS, PlatformAndroid, PlatformWeb:
		return true
	}

	return false
}

// Device is one app installation that can receive pushes for a user.
// InstallationID is chosen by the client and is unique per user.
type Device struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	InstallationID string
	PushToken      string
	Platform       DevicePlatform
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Reachable reports whether a push may be sent to the device.
func (d *Device) Reachable() bool {
	return d != nil && d.IsActive && d.PushToken != ""
}

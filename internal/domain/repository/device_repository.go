package repository

import (
	"context"

	"harvest/internal/domain/entity"
	"harvest/internal/errors"

	"github.com/google/uuid"
)

// ErrDeviceNotFound is returned when a device is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository persists push endpoints.
type DeviceRepository interface {
	// UpsertDevice inserts the device or, when the user already registered the
	// same installation, replaces its token and platform and reactivates it.
	// The stored row is written back into device.
	UpsertDevice(ctx context.Context, device *entity.Device) error

	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.Device, error)

	// FindActiveDevicesByUser returns active devices, most recently refreshed first.
	FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error)

	UpdatePushToken(ctx context.Context, id uuid.UUID, pushToken string) error

	SetActive(ctx context.Context, id uuid.UUID, active bool) error

	// DeactivatePushToken turns off every device carrying pushToken and
	// returns how many were changed.
	DeactivatePushToken(ctx context.Context, pushToken string) (int64, error)
}

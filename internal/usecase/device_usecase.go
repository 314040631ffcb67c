package usecase

import (
	"context"

	"harvest/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterDeviceInput identifies an app installation and its push token.
type RegisterDeviceInput struct {
	InstallationID string
	PushToken      string
	Platform       entity.DevicePlatform
}

// DeviceUsecase manages the push endpoints the dispatcher falls back to.
type DeviceUsecase interface {
	// RegisterDevice stores the installation's token, reusing the row when the
	// installation was registered before.
	RegisterDevice(ctx context.Context, userID uuid.UUID, input *RegisterDeviceInput) (*entity.Device, error)

	// RefreshPushToken replaces the token of one of the user's devices.
	RefreshPushToken(ctx context.Context, userID, deviceID uuid.UUID, pushToken string) (*entity.Device, error)

	// ListDevices returns the user's active devices, most recently refreshed first.
	ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error)

	// DeactivateDevice stops pushes to one of the user's devices.
	DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}

package impl

import (
	"context"
	"strings"

	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	"harvest/internal/errors"
	"harvest/internal/usecase"

	"github.com/google/uuid"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, input *usecase.RegisterDeviceInput) (*entity.Device, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("device is required")
	}

	installationID := strings.TrimSpace(input.InstallationID)
	pushToken := strings.TrimSpace(input.PushToken)
	if installationID == "" || pushToken == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("installation id and push token are required")
	}
	if !input.Platform.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("unsupported platform")
	}

	device := &entity.Device{
		UserID:         userID,
		InstallationID: installationID,
		PushToken:      pushToken,
		Platform:       input.Platform,
		IsActive:       true,
	}
	if err := s.deviceRepo.UpsertDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to upsert device")
	}

	return device, nil
}

func (s *deviceService) RefreshPushToken(ctx context.Context, userID, deviceID uuid.UUID, pushToken string) (*entity.Device, error) {
	pushToken = strings.TrimSpace(pushToken)
	if pushToken == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("push token is required")
	}

	device, err := s.ownedDevice(ctx, userID, deviceID)
	if err != nil {
		return nil, err
	}

	if err := s.deviceRepo.UpdatePushToken(ctx, deviceID, pushToken); err != nil {
		return nil, errors.Wrap(err, "failed to update push token")
	}
	device.PushToken = pushToken
	device.IsActive = true

	return device, nil
}

func (s *deviceService) ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by user")
	}

	return devices, nil
}

// DeactivateDevice is idempotent for devices that are already inactive.
func (s *deviceService) DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	device, err := s.ownedDevice(ctx, userID, deviceID)
	if err != nil {
		return err
	}
	if !device.IsActive {
		return nil
	}

	if err := s.deviceRepo.SetActive(ctx, deviceID, false); err != nil {
		return errors.Wrap(err, "failed to deactivate device")
	}

	return nil
}

func (s *deviceService) ownedDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.Device, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	// Another user's device is reported as missing.
	if device.UserID != userID {
		return nil, domainerrors.ErrDeviceNotFound
	}

	return device, nil
}

package impl

import (
	"context"
	"testing"

	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	mockRepo "harvest/internal/mocks/repository"
	"harvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	return deviceServiceFixtures{
		service:    NewDeviceService(deviceRepo),
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice(t *testing.T) {
	userID := uuid.New()

	t.Run("upserts a trimmed active device and returns the stored row", func(t *testing.T) {
		fx := createTestDeviceService(t)
		storedID := uuid.New()

		fx.deviceRepo.EXPECT().
			UpsertDevice(mock.Anything, mock.MatchedBy(func(d *entity.Device) bool {
				return d.UserID == userID && d.InstallationID == "pixel-8" && d.PushToken == "fcm-token" && d.IsActive
			})).
			Run(func(_ context.Context, d *entity.Device) { d.ID = storedID }).
			Return(nil).
			Once()

		device, err := fx.service.RegisterDevice(context.Background(), userID, &usecase.RegisterDeviceInput{
			InstallationID: " pixel-8 ",
			PushToken:      "fcm-token\n",
			Platform:       entity.PlatformAndroid,
		})

		require.NoError(t, err)
		assert.Equal(t, storedID, device.ID)
		assert.Equal(t, entity.PlatformAndroid, device.Platform)
	})

	tests := []struct {
		name  string
		input *usecase.RegisterDeviceInput
	}{
		{name: "missing input", input: nil},
		{name: "blank token", input: &usecase.RegisterDeviceInput{InstallationID: "a", PushToken: "  ", Platform: entity.PlatformIOS}},
		{name: "blank installation", input: &usecase.RegisterDeviceInput{PushToken: "t", Platform: entity.PlatformIOS}},
		{name: "unknown platform", input: &usecase.RegisterDeviceInput{InstallationID: "a", PushToken: "t", Platform: "symbian"}},
	}
	for _, tt := range tests {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)

			_, err := fx.service.RegisterDevice(context.Background(), userID, tt.input)

			assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
		})
	}

	t.Run("wraps storage failures", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().UpsertDevice(mock.Anything, mock.Anything).Return(errors.New("connection reset"))

		_, err := fx.service.RegisterDevice(context.Background(), userID, &usecase.RegisterDeviceInput{
			InstallationID: "a", PushToken: "t", Platform: entity.PlatformWeb,
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to upsert device")
	})
}

func TestDeviceService_RefreshPushToken(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	tests := []struct {
		name      string
		setupMock func(fx deviceServiceFixtures)
		wantErr   error
	}{
		{
			name: "owner refreshes token",
			setupMock: func(fx deviceServiceFixtures) {
				fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).
					Return(&entity.Device{ID: deviceID, UserID: userID, PushToken: "old"}, nil)
				fx.deviceRepo.EXPECT().UpdatePushToken(ctx, deviceID, "fresh").Return(nil)
			},
		},
		{
			name: "unknown device",
			setupMock: func(fx deviceServiceFixtures) {
				fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(nil, repository.ErrDeviceNotFound)
			},
			wantErr: domainerrors.ErrDeviceNotFound,
		},
		{
			name: "someone else's device looks missing",
			setupMock: func(fx deviceServiceFixtures) {
				fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).
					Return(&entity.Device{ID: deviceID, UserID: uuid.New()}, nil)
			},
			wantErr: domainerrors.ErrDeviceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)
			tt.setupMock(fx)

			device, err := fx.service.RefreshPushToken(ctx, userID, deviceID, "fresh")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, "fresh", device.PushToken)
			assert.True(t, device.Reachable())
		})
	}
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	t.Run("turns off an active device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).
			Return(&entity.Device{ID: deviceID, UserID: userID, IsActive: true}, nil)
		fx.deviceRepo.EXPECT().SetActive(ctx, deviceID, false).Return(nil).Once()

		require.NoError(t, fx.service.DeactivateDevice(ctx, userID, deviceID))
	})

	t.Run("is a no-op for an inactive device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).
			Return(&entity.Device{ID: deviceID, UserID: userID, IsActive: false}, nil)

		require.NoError(t, fx.service.DeactivateDevice(ctx, userID, deviceID))
	})
}

func TestDeviceService_ListDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	devices := []*entity.Device{{ID: uuid.New(), UserID: userID, PushToken: "t", IsActive: true}}

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(devices, nil)

	got, err := fx.service.ListDevices(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, devices, got)
}

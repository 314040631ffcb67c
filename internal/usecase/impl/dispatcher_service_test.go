package impl

import (
	"context"
	"testing"

	"harvest/config"
	"harvest/internal/domain/entity"
	"harvest/internal/domain/service"
	"harvest/internal/errors"
	mockRepo "harvest/internal/mocks/repository"
	mockSvc "harvest/internal/mocks/service"
	"harvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type dispatcherFixtures struct {
	dispatcher usecase.DispatcherUsecase
	presence   *mockSvc.MockPresenceRegistry
	push       *mockSvc.MockPushService
	deviceRepo *mockRepo.MockDeviceRepository
	metrics    *recordingMetrics
}

func createTestDispatcher(t *testing.T) dispatcherFixtures {
	fx := dispatcherFixtures{
		presence:   mockSvc.NewMockPresenceRegistry(t),
		push:       mockSvc.NewMockPushService(t),
		deviceRepo: mockRepo.NewMockDeviceRepository(t),
		metrics:    newRecordingMetrics(),
	}
	fx.dispatcher = NewDispatcherService(DispatcherServiceParams{
		Presence:   fx.presence,
		Push:       fx.push,
		DeviceRepo: fx.deviceRepo,
		Metrics:    fx.metrics,
		Config:     &config.Config{},
		Logger:     newDiscardLogger(),
	})

	return fx
}

func TestDispatcher_Deliver_OnlineUserGetsRealtimeAndNoPush(t *testing.T) {
	fx := createTestDispatcher(t)

	ctx := context.Background()
	userID := uuid.New()
	phone := mockSvc.NewMockConnection(t)
	laptop := mockSvc.NewMockConnection(t)

	fx.presence.EXPECT().IsOnline(userID).Return(true)
	fx.presence.EXPECT().ConnectionsFor(userID).Return([]service.Connection{phone, laptop})
	phone.EXPECT().Send(ctx, "notification", "hello").Return(nil)
	laptop.EXPECT().Send(ctx, "notification", "hello").Return(nil)

	outcome := fx.dispatcher.Deliver(ctx, entity.Delivery{
		UserID:      userID,
		Event:       "notification",
		Payload:     "hello",
		DeviceToken: "token-that-must-not-be-used",
	})

	assert.Equal(t, entity.DeliveryRealtime, outcome)
	fx.push.AssertNotCalled(t, "SendSingleNotification", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, 1, fx.metrics.deliveries[entity.DeliveryRealtime])
}

func TestDispatcher_Deliver_OfflineWithTokenIsPushed(t *testing.T) {
	fx := createTestDispatcher(t)

	ctx := context.Background()
	userID := uuid.New()
	data := map[string]string{"order_id": "o-1"}

	fx.presence.EXPECT().IsOnline(userID).Return(false)
	fx.push.EXPECT().
		SendSingleNotification(mock.Anything, "device-token", "You made a sale", "durian x 3", data).
		Return(nil)

	outcome := fx.dispatcher.Deliver(ctx, entity.Delivery{
		UserID:      userID,
		Event:       "notification",
		DeviceToken: "device-token",
		Title:       "You made a sale",
		Body:        "durian x 3",
		Data:        data,
	})

	assert.Equal(t, entity.DeliveryPushed, outcome)
}

func TestDispatcher_Deliver_Undelivered(t *testing.T) {
	tests := []struct {
		name  string
		token string
		setup func(fx dispatcherFixtures)
	}{
		{
			name:  "offline without token",
			token: "",
		},
		{
			name:  "push gateway error",
			token: "device-token",
			setup: func(fx dispatcherFixtures) {
				fx.push.EXPECT().
					SendSingleNotification(mock.Anything, "device-token", mock.Anything, mock.Anything, mock.Anything).
					Return(errors.New("unregistered token"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDispatcher(t)
			userID := uuid.New()

			fx.presence.EXPECT().IsOnline(userID).Return(false)
			if tt.setup != nil {
				tt.setup(fx)
			}

			assert.NotPanics(t, func() {
				outcome := fx.dispatcher.Deliver(context.Background(), entity.Delivery{
					UserID:      userID,
					Event:       "notification",
					DeviceToken: tt.token,
				})
				assert.Equal(t, entity.DeliveryUndelivered, outcome)
			})
			assert.Equal(t, 1, fx.metrics.deliveries[entity.DeliveryUndelivered])
		})
	}
}

func TestDispatcher_Deliver_FailedRealtimeFallsBackToPush(t *testing.T) {
	fx := createTestDispatcher(t)

	userID := uuid.New()
	stale := mockSvc.NewMockConnection(t)

	fx.presence.EXPECT().IsOnline(userID).Return(true)
	fx.presence.EXPECT().ConnectionsFor(userID).Return([]service.Connection{stale})
	stale.EXPECT().Send(mock.Anything, "notification", mock.Anything).Return(errors.New("broken pipe"))
	stale.EXPECT().ID().Return("conn-1")
	fx.push.EXPECT().
		SendSingleNotification(mock.Anything, "device-token", mock.Anything, mock.Anything, mock.Anything).
		Return(nil)

	outcome := fx.dispatcher.Deliver(context.Background(), entity.Delivery{
		UserID:      userID,
		Event:       "notification",
		DeviceToken: "device-token",
	})

	assert.Equal(t, entity.DeliveryPushed, outcome)
}

func TestDispatcher_DeliverToUser_UsesMostRecentActiveDevice(t *testing.T) {
	fx := createTestDispatcher(t)

	userID := uuid.New()
	devices := []*entity.Device{
		{ID: uuid.New(), UserID: userID, PushToken: "", IsActive: true},
		{ID: uuid.New(), UserID: userID, PushToken: "newest", IsActive: true},
		{ID: uuid.New(), UserID: userID, PushToken: "older", IsActive: true},
	}

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(mock.Anything, userID).Return(devices, nil)
	fx.presence.EXPECT().IsOnline(userID).Return(false)
	fx.push.EXPECT().
		SendSingleNotification(mock.Anything, "newest", mock.Anything, mock.Anything, mock.Anything).
		Return(nil)

	outcome := fx.dispatcher.DeliverToUser(context.Background(), entity.Delivery{UserID: userID, Event: "notification"})

	assert.Equal(t, entity.DeliveryPushed, outcome)
}

func TestDispatcher_DeliverToUser_DeviceLookupFailureIsUndelivered(t *testing.T) {
	fx := createTestDispatcher(t)

	userID := uuid.New()

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(mock.Anything, userID).Return(nil, errors.New("database error"))
	fx.presence.EXPECT().IsOnline(userID).Return(false)

	outcome := fx.dispatcher.DeliverToUser(context.Background(), entity.Delivery{UserID: userID, Event: "notification"})

	assert.Equal(t, entity.DeliveryUndelivered, outcome)
}

func TestDispatcher_RejectedTokenDeactivatesDevices(t *testing.T) {
	fx := createTestDispatcher(t)

	userID := uuid.New()

	fx.presence.EXPECT().IsOnline(userID).Return(false)
	fx.push.EXPECT().
		SendSingleNotification(mock.Anything, "stale-token", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.Join(service.ErrPushTokenRejected, errors.New("registration-token-not-registered")))
	fx.deviceRepo.EXPECT().DeactivatePushToken(mock.Anything, "stale-token").Return(int64(1), nil).Once()

	outcome := fx.dispatcher.Deliver(context.Background(), entity.Delivery{
		UserID:      userID,
		Event:       "notification",
		DeviceToken: "stale-token",
	})

	assert.Equal(t, entity.DeliveryUndelivered, outcome)
}

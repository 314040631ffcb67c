package impl

import (
	"context"
	"testing"

	"harvest/internal/domain/entity"
	mockRepo "harvest/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_ListNotifications_ClampsPage(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults", limit: 0, offset: 0, wantLimit: 20, wantOffset: 0},
		{name: "within bounds", limit: 50, offset: 10, wantLimit: 50, wantOffset: 10},
		{name: "over max", limit: 500, offset: 0, wantLimit: 100, wantOffset: 0},
		{name: "negative offset", limit: 5, offset: -3, wantLimit: 5, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mockRepo.NewMockNotificationRepository(t)
			userID := uuid.New()
			want := []*entity.Notification{{ID: uuid.New(), UserID: userID, Type: entity.NotificationTypeMatch}}

			repo.EXPECT().
				FindNotificationsByUser(mock.Anything, userID, tt.wantLimit, tt.wantOffset).
				Return(want, nil).
				Once()

			got, err := NewNotificationService(repo).ListNotifications(context.Background(), userID, tt.limit, tt.offset)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestNotificationService_ListNotifications_RepositoryError(t *testing.T) {
	repo := mockRepo.NewMockNotificationRepository(t)
	repo.EXPECT().
		FindNotificationsByUser(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused")).
		Once()

	got, err := NewNotificationService(repo).ListNotifications(context.Background(), uuid.New(), 10, 0)
	assert.Nil(t, got)
	assert.ErrorContains(t, err, "failed to find notifications")
}

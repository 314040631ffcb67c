// Package notification implements push delivery through Firebase Cloud Messaging.
package notification

import (
	"context"
	"time"

	"harvest/internal/domain/service"
	"harvest/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// ErrPushUnavailable is returned when no push gateway is configured.
var ErrPushUnavailable = errors.New("push gateway not configured")

type firebaseService struct {
	client      *messaging.Client
	sendTimeout time.Duration
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, projectID, credentialsPath string, sendTimeout time.Duration) (service.PushService, error) {
	var appCfg *firebase.Config
	if projectID != "" {
		appCfg = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client:      client,
		sendTimeout: sendTimeout,
	}, nil
}

// SendSingleNotification sends a push notification to a single device token
func (s *firebaseService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	if s.sendTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.sendTimeout)
		defer cancel()
	}

	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		if messaging.IsInvalidArgument(err) || messaging.IsUnregistered(err) {
			return errors.Join(service.ErrPushTokenRejected, err)
		}

		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

type noopPushService struct{}

// NewNoopPushService returns a sender that always fails so deliveries fall
// through to undelivered when Firebase is not configured.
func NewNoopPushService() service.PushService {
	return noopPushService{}
}

func (noopPushService) SendSingleNotification(context.Context, string, string, string, map[string]string) error {
	return ErrPushUnavailable
}

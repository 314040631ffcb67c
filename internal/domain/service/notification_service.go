package service

import (
	"context"

	"harvest/internal/errors"
)

// ErrPushTokenRejected marks a device token the push gateway no longer
// accepts. Devices carrying it should stop receiving pushes.
var ErrPushTokenRejected = errors.New("device token rejected by push gateway")

// PushService defines the interface for push notification gateways
type PushService interface {
	// SendSingleNotification sends a push notification to a single device token
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}

// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType categorizes persisted notifications.
type NotificationType string

const (
	NotificationTypeMatch          NotificationType = "match"
	NotificationTypeSale           NotificationType = "sale"
	NotificationTypeOrderCompleted NotificationType = "order_completed"
)

// Notification is a persisted message addressed to a single user.
type Notification struct {
	ID          uuid.UUID        `json:"id"`           // The Global Unique Identifier (GUID) for the notification.
	UserID      uuid.UUID        `json:"user_id"`      // Recipient.
	Type        NotificationType `json:"type"`         // match, sale or order_completed.
	Message     string           `json:"message"`      // Human readable text.
	RelatedID   *uuid.UUID       `json:"related_id"`   // Demand, listing or order the message refers to.
	DeliveredAt time.Time        `json:"delivered_at"` // Timestamp of creation.
}

// DeliveryOutcome records how a notification reached its recipient.
type DeliveryOutcome string

const (
	DeliveryRealtime    DeliveryOutcome = "realtime"
	DeliveryPushed      DeliveryOutcome = "pushed"
	DeliveryUndelivered DeliveryOutcome = "undelivered"
)

// Delivery is one notification handed to the dispatcher.
type Delivery struct {
	UserID  uuid.UUID
	Event   string
	Payload any
	// DeviceToken is the push fallback target; empty disables push.
	DeviceToken string
	Title       string
	Body        string
	Data        map[string]string
}

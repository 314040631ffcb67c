package service

import (
	"context"

	"github.com/google/uuid"
)

// Connection is one live realtime session of a user.
type Connection interface {
	ID() string
	Send(ctx context.Context, event string, payload any) error
	Close() error
}

// PresenceRegistry tracks which users have live realtime connections.
type PresenceRegistry interface {
	Register(userID uuid.UUID, conn Connection)
	Unregister(userID uuid.UUID, conn Connection)
	IsOnline(userID uuid.UUID) bool
	ConnectionsFor(userID uuid.UUID) []Connection
}

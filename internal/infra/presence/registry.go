// Package presence tracks live realtime connections per user.
package presence

import (
	"context"
	"log/slog"
	"sync"

	"harvest/internal/domain/service"
	"harvest/internal/infra/metrics"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Registry maps a user to the set of live connection handles. All mutations
// are serialized by one lock; a user disappears once their last handle goes.
type Registry struct {
	mu      sync.RWMutex
	users   map[uuid.UUID]map[string]service.Connection
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// New creates an empty registry and closes every handle on shutdown.
func New(params Params) *Registry {
	r := NewRegistry(params.Logger, params.Metrics)

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			r.Close()

			return nil
		},
	})

	return r
}

// NewRegistry creates an empty registry without lifecycle wiring.
func NewRegistry(logger *slog.Logger, m *metrics.Metrics) *Registry {
	return &Registry{
		users:   make(map[uuid.UUID]map[string]service.Connection),
		metrics: m,
		logger:  logger,
	}
}

// Register adds conn to the user's set. Registering the same handle twice is a no-op.
func (r *Registry) Register(userID uuid.UUID, conn service.Connection) {
	r.mu.Lock()
	defer r.mu.Unlock()

	conns, ok := r.users[userID]
	if !ok {
		conns = make(map[string]service.Connection)
		r.users[userID] = conns
	}
	if _, exists := conns[conn.ID()]; exists {
		return
	}
	conns[conn.ID()] = conn

	if r.metrics != nil {
		r.metrics.ConnectionOpened()
	}
}

// Unregister removes conn; unknown users or handles are ignored.
func (r *Registry) Unregister(userID uuid.UUID, conn service.Connection) {
	r.mu.Lock()
	defer r.mu.Unlock()

	conns, ok := r.users[userID]
	if !ok {
		return
	}
	if _, exists := conns[conn.ID()]; !exists {
		return
	}
	delete(conns, conn.ID())
	if len(conns) == 0 {
		delete(r.users, userID)
	}

	if r.metrics != nil {
		r.metrics.ConnectionClosed()
	}
}

// IsOnline reports whether the user has at least one live handle.
func (r *Registry) IsOnline(userID uuid.UUID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.users[userID]) > 0
}

// ConnectionsFor returns a snapshot of the user's handles.
func (r *Registry) ConnectionsFor(userID uuid.UUID) []service.Connection {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conns := r.users[userID]
	out := make([]service.Connection, 0, len(conns))
	for _, c := range conns {
		out = append(out, c)
	}

	return out
}

// Close closes and forgets every handle.
func (r *Registry) Close() {
	r.mu.Lock()
	users := r.users
	r.users = make(map[uuid.UUID]map[string]service.Connection)
	r.mu.Unlock()

	for userID, conns := range users {
		for _, c := range conns {
			if err := c.Close(); err != nil && r.logger != nil {
				r.logger.Debug("Closing realtime connection failed",
					slog.String("user_id", userID.String()),
					slog.String("error", err.Error()),
				)
			}
			if r.metrics != nil {
				r.metrics.ConnectionClosed()
			}
		}
	}
}

var _ service.PresenceRegistry = (*Registry)(nil)

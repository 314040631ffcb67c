package presence

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeConn struct {
	id     string
	closed atomic.Bool
}

func (c *fakeConn) ID() string                              { return c.id }
func (c *fakeConn) Send(context.Context, string, any) error { return nil }
func (c *fakeConn) Close() error                            { c.closed.Store(true); return nil }

func newTestRegistry() *Registry {
	return NewRegistry(slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
}

func TestRegistry_RegisterUnregister(t *testing.T) {
	r := newTestRegistry()
	user := uuid.New()
	a, b := &fakeConn{id: "a"}, &fakeConn{id: "b"}

	assert.False(t, r.IsOnline(user))

	r.Register(user, a)
	r.Register(user, b)
	r.Register(user, a)
	assert.True(t, r.IsOnline(user))
	assert.Len(t, r.ConnectionsFor(user), 2)

	r.Unregister(user, a)
	assert.True(t, r.IsOnline(user))
	assert.Len(t, r.ConnectionsFor(user), 1)

	r.Unregister(user, b)
	assert.False(t, r.IsOnline(user))
	assert.Empty(t, r.ConnectionsFor(user))
	assert.NotContains(t, r.users, user)

	// Unknown user and handle are ignored.
	r.Unregister(uuid.New(), a)
	r.Unregister(user, b)
}

func TestRegistry_Close(t *testing.T) {
	r := newTestRegistry()
	conns := []*fakeConn{{id: "1"}, {id: "2"}, {id: "3"}}
	r.Register(uuid.New(), conns[0])
	user := uuid.New()
	r.Register(user, conns[1])
	r.Register(user, conns[2])

	r.Close()

	for _, c := range conns {
		assert.True(t, c.closed.Load(), "connection %s not closed", c.id)
	}
	assert.False(t, r.IsOnline(user))
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := newTestRegistry()
	users := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	var wg sync.WaitGroup
	for i := range 60 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := users[i%len(users)]
			c := &fakeConn{id: fmt.Sprintf("c-%d", i)}
			r.Register(user, c)
			_ = r.IsOnline(user)
			_ = r.ConnectionsFor(user)
			r.Unregister(user, c)
		}(i)
	}
	wg.Wait()

	for _, u := range users {
		assert.False(t, r.IsOnline(u))
	}
	assert.Empty(t, r.users)
}

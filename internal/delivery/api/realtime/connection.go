// Package realtime serves the websocket channel that carries live
// notifications to online users.
package realtime

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"harvest/internal/errors"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Frame is the envelope of every websocket message in both directions.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type outboundFrame struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// wsConn adapts a websocket to service.Connection. gorilla allows one
// concurrent writer, so every write goes through mu.
type wsConn struct {
	id           string
	ws           *websocket.Conn
	writeTimeout time.Duration

	mu        sync.Mutex
	closeOnce sync.Once
	closed    chan struct{}
}

func newConn(ws *websocket.Conn, writeTimeout time.Duration) *wsConn {
	return &wsConn{
		id:           uuid.New().String(),
		ws:           ws,
		writeTimeout: writeTimeout,
		closed:       make(chan struct{}),
	}
}

func (c *wsConn) ID() string {
	return c.id
}

// Send writes one event frame. The deadline is the earlier of the context
// deadline and the configured write timeout.
func (c *wsConn) Send(ctx context.Context, event string, payload any) error {
	msg, err := json.Marshal(outboundFrame{Event: event, Data: payload})
	if err != nil {
		return errors.Wrap(err, "failed to encode realtime frame")
	}

	return c.write(ctx, websocket.TextMessage, msg)
}

func (c *wsConn) ping() error {
	return c.write(context.Background(), websocket.PingMessage, nil)
}

func (c *wsConn) write(ctx context.Context, messageType int, data []byte) error {
	select {
	case <-c.closed:
		return websocket.ErrCloseSent
	default:
	}

	deadline := time.Now().Add(c.writeTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ws.SetWriteDeadline(deadline); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.ws.WriteMessage(messageType, data))
}

// Close sends a close frame once and tears down the socket.
func (c *wsConn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.closed)

		c.mu.Lock()
		_ = c.ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(c.writeTimeout))
		c.mu.Unlock()

		err = c.ws.Close()
	})

	return err
}

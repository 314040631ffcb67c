package realtime

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"harvest/config"
	"harvest/internal/domain/constants"
	"harvest/internal/domain/service"
	"harvest/internal/infra/presence"
	mockSvc "harvest/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type realtimeFixture struct {
	registry *presence.Registry
	tokens   *mockSvc.MockTokenService
	url      string
}

func newRealtimeFixture(t *testing.T) *realtimeFixture {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fx := &realtimeFixture{
		registry: presence.NewRegistry(logger, nil),
		tokens:   mockSvc.NewMockTokenService(t),
	}

	cfg := &config.Config{}
	cfg.Realtime.AuthTimeout = time.Second
	cfg.Realtime.PingInterval = time.Second

	h := NewHandler(HandlerParams{Presence: fx.registry, Tokens: fx.tokens, Config: cfg, Logger: logger})

	e := echo.New()
	e.GET("/ws", h.Serve)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	fx.url = "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"

	return fx
}

func (fx *realtimeFixture) dial(t *testing.T) *websocket.Conn {
	ws, _, err := websocket.DefaultDialer.Dial(fx.url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ws.Close() })

	return ws
}

func sendAuth(t *testing.T, ws *websocket.Conn, userID, token string) {
	data, err := json.Marshal(AuthData{UserID: userID, Token: token})
	require.NoError(t, err)
	require.NoError(t, ws.WriteJSON(Frame{Event: constants.EventAuth, Data: data}))
}

func readFrame(t *testing.T, ws *websocket.Conn) Frame {
	require.NoError(t, ws.SetReadDeadline(time.Now().Add(2*time.Second)))
	var frame Frame
	require.NoError(t, ws.ReadJSON(&frame))

	return frame
}

func TestHandler_AuthenticatedConnectionReceivesEvents(t *testing.T) {
	fx := newRealtimeFixture(t)
	userID := uuid.New()
	fx.tokens.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID}, nil).Once()

	ws := fx.dial(t)
	sendAuth(t, ws, userID.String(), "good")

	frame := readFrame(t, ws)
	assert.Equal(t, constants.EventAuthOK, frame.Event)
	require.Eventually(t, func() bool { return fx.registry.IsOnline(userID) }, time.Second, 10*time.Millisecond)

	conns := fx.registry.ConnectionsFor(userID)
	require.Len(t, conns, 1)
	require.NoError(t, conns[0].Send(context.Background(), constants.EventNotification, map[string]string{"message": "fresh durian"}))

	frame = readFrame(t, ws)
	assert.Equal(t, constants.EventNotification, frame.Event)
	assert.JSONEq(t, `{"message":"fresh durian"}`, string(frame.Data))

	require.NoError(t, ws.Close())
	assert.Eventually(t, func() bool { return !fx.registry.IsOnline(userID) }, 2*time.Second, 10*time.Millisecond)
}

func TestHandler_RejectsBadAuth(t *testing.T) {
	tests := []struct {
		name  string
		setup func(fx *realtimeFixture, userID uuid.UUID)
		send  func(t *testing.T, ws *websocket.Conn, userID uuid.UUID)
	}{
		{
			name: "invalid token",
			setup: func(fx *realtimeFixture, _ uuid.UUID) {
				fx.tokens.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired")).Once()
			},
			send: func(t *testing.T, ws *websocket.Conn, userID uuid.UUID) {
				sendAuth(t, ws, userID.String(), "expired")
			},
		},
		{
			name: "token of another user",
			setup: func(fx *realtimeFixture, _ uuid.UUID) {
				fx.tokens.EXPECT().ValidateToken("stolen").Return(&service.Claims{UserID: uuid.New()}, nil).Once()
			},
			send: func(t *testing.T, ws *websocket.Conn, userID uuid.UUID) {
				sendAuth(t, ws, userID.String(), "stolen")
			},
		},
		{
			name:  "first frame is not auth",
			setup: func(*realtimeFixture, uuid.UUID) {},
			send: func(t *testing.T, ws *websocket.Conn, _ uuid.UUID) {
				require.NoError(t, ws.WriteJSON(Frame{Event: "subscribe"}))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newRealtimeFixture(t)
			userID := uuid.New()
			tt.setup(fx, userID)

			ws := fx.dial(t)
			tt.send(t, ws, userID)

			frame := readFrame(t, ws)
			assert.Equal(t, constants.EventError, frame.Event)

			_, _, err := ws.ReadMessage()
			assert.Error(t, err, "server closes the socket")
			assert.False(t, fx.registry.IsOnline(userID))
		})
	}
}

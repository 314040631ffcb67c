package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"harvest/config"
	deliverycontext "harvest/internal/delivery/context"
	"harvest/internal/domain/constants"
	"harvest/internal/domain/service"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	defaultWriteTimeout = 10 * time.Second
	defaultPingInterval = 30 * time.Second
	defaultAuthTimeout  = 10 * time.Second
	maxFrameBytes       = 4 << 10
)

// AuthData is the payload of the first frame a client must send.
type AuthData struct {
	UserID string `json:"userId"`
	Token  string `json:"token"`
}

// HandlerParams holds dependencies for the websocket Handler, injected by Fx.
type HandlerParams struct {
	fx.In

	Presence service.PresenceRegistry
	Tokens   service.TokenService
	Config   *config.Config
	Logger   *slog.Logger
}

// Handler upgrades HTTP requests to websockets and binds each socket to
// the authenticated user in the presence registry.
type Handler struct {
	presence     service.PresenceRegistry
	tokens       service.TokenService
	upgrader     websocket.Upgrader
	writeTimeout time.Duration
	pingInterval time.Duration
	authTimeout  time.Duration
	logger       *slog.Logger
}

// NewHandler is the constructor for Handler.
func NewHandler(params HandlerParams) *Handler {
	cfg := params.Config.Realtime
	h := &Handler{
		presence:     params.Presence,
		tokens:       params.Tokens,
		writeTimeout: durationOr(cfg.WriteTimeout, defaultWriteTimeout),
		pingInterval: durationOr(cfg.PingInterval, defaultPingInterval),
		authTimeout:  durationOr(cfg.AuthTimeout, defaultAuthTimeout),
		logger:       params.Logger,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(cfg.AllowOrigins),
	}

	return h
}

func durationOr(v, fallback time.Duration) time.Duration {
	if v > 0 {
		return v
	}

	return fallback
}

// originChecker allows every origin when the list is empty or holds "*".
func originChecker(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 || slices.Contains(allowed, "*") {
		return func(*http.Request) bool { return true }
	}

	return func(r *http.Request) bool {
		return slices.Contains(allowed, r.Header.Get("Origin"))
	}
}

// Serve handles GET /ws. The connection stays registered until the client
// goes away or a write fails.
func (h *Handler) Serve(c echo.Context) error {
	ws, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		return nil
	}

	conn := newConn(ws, h.writeTimeout)
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
		With(slog.String("connection_id", conn.ID()))

	ws.SetReadLimit(maxFrameBytes)

	userID, err := h.authenticate(conn)
	if err != nil {
		logger.Info("Realtime authentication failed", slog.Any("error", err))
		_ = conn.Send(context.Background(), constants.EventError, map[string]string{"message": err.Error()})
		_ = conn.Close()

		return nil
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	h.presence.Register(userID, conn)
	defer func() {
		h.presence.Unregister(userID, conn)
		_ = conn.Close()
		logger.Debug("Realtime connection closed")
	}()

	if err := conn.Send(context.Background(), constants.EventAuthOK, map[string]string{"userId": userID.String()}); err != nil {
		return nil
	}
	logger.Debug("Realtime connection authenticated")

	go h.keepAlive(conn)
	h.readUntilClosed(conn)

	return nil
}

// authenticate waits for the auth frame. The token subject must be the
// claimed user.
func (h *Handler) authenticate(conn *wsConn) (uuid.UUID, error) {
	if err := conn.ws.SetReadDeadline(time.Now().Add(h.authTimeout)); err != nil {
		return uuid.Nil, err
	}

	var frame Frame
	if err := conn.ws.ReadJSON(&frame); err != nil {
		return uuid.Nil, errAuthRequired
	}
	if frame.Event != constants.EventAuth {
		return uuid.Nil, errAuthRequired
	}

	var data AuthData
	if err := json.Unmarshal(frame.Data, &data); err != nil || data.Token == "" {
		return uuid.Nil, errAuthInvalid
	}

	claimed, err := uuid.Parse(data.UserID)
	if err != nil {
		return uuid.Nil, errAuthInvalid
	}

	claims, err := h.tokens.ValidateToken(data.Token)
	if err != nil || claims.UserID != claimed {
		return uuid.Nil, errAuthInvalid
	}

	return claimed, nil
}

// readUntilClosed drains client frames so pongs and close frames are
// processed. Clients have nothing else to say after auth.
func (h *Handler) readUntilClosed(conn *wsConn) {
	readWait := h.pingInterval * 2
	_ = conn.ws.SetReadDeadline(time.Now().Add(readWait))
	conn.ws.SetPongHandler(func(string) error {
		return conn.ws.SetReadDeadline(time.Now().Add(readWait))
	})

	for {
		if _, _, err := conn.ws.NextReader(); err != nil {
			return
		}
	}
}

func (h *Handler) keepAlive(conn *wsConn) {
	ticker := time.NewTicker(h.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-conn.closed:
			return
		case <-ticker.C:
			if err := conn.ping(); err != nil {
				_ = conn.Close()

				return
			}
		}
	}
}

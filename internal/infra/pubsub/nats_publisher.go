package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"harvest/internal/domain/entity"
	"harvest/internal/domain/service"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
)

const natsFlushTimeout = 5 * time.Second

// natsPublisher implements EventPublisher over a core NATS subject.
type natsPublisher struct {
	conn    *nats.Conn
	subject string
	logger  *slog.Logger
}

// NewNATSPublisher connects to url and publishes to subject.
func NewNATSPublisher(url, subject, clientName string, logger *slog.Logger) (service.EventPublisher, error) {
	conn, err := Connect(url, clientName, logger)
	if err != nil {
		return nil, err
	}

	return &natsPublisher{
		conn:    conn,
		subject: subject,
		logger:  logger,
	}, nil
}

// Connect opens a NATS connection that keeps reconnecting in the background.
func Connect(url, clientName string, logger *slog.Logger) (*nats.Conn, error) {
	conn, err := nats.Connect(url,
		nats.Name(clientName),
		nats.Timeout(10*time.Second),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", slog.String("error", err.Error()))
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("NATS reconnected", slog.String("url", c.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to NATS at %s", url)
	}

	return conn, nil
}

func (p *natsPublisher) PublishReconciliationEvent(ctx context.Context, event *entity.PaymentReconciliationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	msg := nats.NewMsg(p.subject)
	msg.Data = data
	for k, v := range eventAttributes(event) {
		msg.Header.Set(k, v)
	}

	if err := p.conn.PublishMsg(msg); err != nil {
		return errors.Wrap(err, "failed to publish to NATS")
	}

	flushTimeout := natsFlushTimeout
	if deadline, ok := ctx.Deadline(); ok {
		flushTimeout = time.Until(deadline)
	}
	if err := p.conn.FlushTimeout(flushTimeout); err != nil {
		return errors.Wrap(err, "failed to flush NATS connection")
	}

	p.logger.InfoContext(ctx, "[NATS] Reconciliation event published",
		slog.String("subject", p.subject),
		slog.String("charge_id", event.ChargeID),
	)

	return nil
}

func (p *natsPublisher) Close() error {
	if p.conn != nil {
		return errors.WithStack(p.conn.Drain())
	}

	return nil
}

package impl

import (
	"context"
	"log/slog"
	"time"

	"harvest/config"
	deliverycontext "harvest/internal/delivery/context"
	"harvest/internal/domain/entity"
	"harvest/internal/domain/repository"
	"harvest/internal/domain/service"
	"harvest/internal/errors"
	"harvest/internal/usecase"

	"go.uber.org/fx"
)

const defaultPushTimeout = 5 * time.Second

type dispatcherService struct {
	presence    service.PresenceRegistry
	push        service.PushService
	deviceRepo  repository.DeviceRepository
	metrics     service.MarketMetrics
	pushTimeout time.Duration
	logger      *slog.Logger
}

// DispatcherServiceParams holds dependencies for the dispatcher, injected by Fx.
type DispatcherServiceParams struct {
	fx.In

	Presence   service.PresenceRegistry
	Push       service.PushService
	DeviceRepo repository.DeviceRepository
	Metrics    service.MarketMetrics `optional:"true"`
	Config     *config.Config
	Logger     *slog.Logger
}

// NewDispatcherService creates the realtime-then-push notification dispatcher.
func NewDispatcherService(params DispatcherServiceParams) usecase.DispatcherUsecase {
	pushTimeout := defaultPushTimeout
	if params.Config != nil && params.Config.Firebase != nil && params.Config.Firebase.SendTimeout > 0 {
		pushTimeout = params.Config.Firebase.SendTimeout
	}

	return &dispatcherService{
		presence:    params.Presence,
		push:        params.Push,
		deviceRepo:  params.DeviceRepo,
		metrics:     metricsOrNoop(params.Metrics),
		pushTimeout: pushTimeout,
		logger:      params.Logger,
	}
}

func (s *dispatcherService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Deliver tries every live connection first and pushes only when none took the event.
func (s *dispatcherService) Deliver(ctx context.Context, d entity.Delivery) entity.DeliveryOutcome {
	outcome := s.deliver(ctx, d)
	s.metrics.ObserveDelivery(outcome)

	return outcome
}

func (s *dispatcherService) deliver(ctx context.Context, d entity.Delivery) entity.DeliveryOutcome {
	if s.sendRealtime(ctx, d) {
		return entity.DeliveryRealtime
	}

	if d.DeviceToken == "" || s.push == nil {
		s.log(ctx).Debug("Recipient offline without device token",
			slog.String("userID", d.UserID.String()),
			slog.String("event", d.Event))

		return entity.DeliveryUndelivered
	}

	pushCtx, cancel := context.WithTimeout(ctx, s.pushTimeout)
	defer cancel()

	if err := s.push.SendSingleNotification(pushCtx, d.DeviceToken, d.Title, d.Body, d.Data); err != nil {
		s.log(ctx).Warn("Push notification failed",
			slog.String("userID", d.UserID.String()),
			slog.String("event", d.Event),
			slog.Any("error", err))
		if errors.Is(err, service.ErrPushTokenRejected) {
			s.pruneToken(ctx, d.DeviceToken)
		}

		return entity.DeliveryUndelivered
	}

	return entity.DeliveryPushed
}

// sendRealtime reports whether at least one live connection accepted the event.
// A connection that fails to send counts as offline.
func (s *dispatcherService) sendRealtime(ctx context.Context, d entity.Delivery) bool {
	if s.presence == nil || !s.presence.IsOnline(d.UserID) {
		return false
	}

	delivered := false
	for _, conn := range s.presence.ConnectionsFor(d.UserID) {
		if err := conn.Send(ctx, d.Event, d.Payload); err != nil {
			s.log(ctx).Warn("Realtime send failed",
				slog.String("userID", d.UserID.String()),
				slog.String("connectionID", conn.ID()),
				slog.Any("error", err))

			continue
		}
		delivered = true
	}

	return delivered
}

// DeliverToUser resolves the push token from the user's active devices.
func (s *dispatcherService) DeliverToUser(ctx context.Context, d entity.Delivery) entity.DeliveryOutcome {
	if d.DeviceToken == "" && s.deviceRepo != nil {
		d.DeviceToken = s.lookupDeviceToken(ctx, d)
	}

	return s.Deliver(ctx, d)
}

func (s *dispatcherService) lookupDeviceToken(ctx context.Context, d entity.Delivery) string {
	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, d.UserID)
	if err != nil {
		s.log(ctx).Warn("Failed to look up device token",
			slog.String("userID", d.UserID.String()),
			slog.Any("error", err))

		return ""
	}

	for _, device := range devices {
		if device.Reachable() {
			return device.PushToken
		}
	}

	return ""
}

// pruneToken deactivates devices whose token the gateway rejected so later
// deliveries fall back to another device.
func (s *dispatcherService) pruneToken(ctx context.Context, token string) {
	if s.deviceRepo == nil {
		return
	}

	pruned, err := s.deviceRepo.DeactivatePushToken(ctx, token)
	if err != nil {
		s.log(ctx).Warn("Failed to deactivate rejected push token", slog.Any("error", err))

		return
	}
	s.log(ctx).Info("Deactivated devices with rejected push token", slog.Int64("devices", pruned))
}

package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"harvest/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingMetrics counts what the services report.
type recordingMetrics struct {
	mu         sync.Mutex
	deliveries map[entity.DeliveryOutcome]int
	orders     map[string]int
	matches    int
	refunds    map[bool]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{
		deliveries: make(map[entity.DeliveryOutcome]int),
		orders:     make(map[string]int),
		refunds:    make(map[bool]int),
	}
}

func (m *recordingMetrics) ObserveDelivery(outcome entity.DeliveryOutcome) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deliveries[outcome]++
}

func (m *recordingMetrics) ObserveOrder(result string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[result]++
}

func (m *recordingMetrics) ObserveMatch() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matches++
}

func (m *recordingMetrics) ObserveRefund(ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refunds[ok]++
}

// fakeGateway captures every charge and records refunds. It is safe for
// concurrent use.
type fakeGateway struct {
	mu      sync.Mutex
	charges []entity.ChargeRequest
	refunds map[string]int64
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{refunds: make(map[string]int64)}
}

func (g *fakeGateway) Charge(_ context.Context, req entity.ChargeRequest) (*entity.ChargeResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.charges = append(g.charges, req)

	return &entity.ChargeResult{ChargeID: "chrg_" + uuid.NewString(), Status: entity.ChargeStatusSuccessful}, nil
}

func (g *fakeGateway) Refund(_ context.Context, chargeID string, amountMinor int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.refunds[chargeID] += amountMinor

	return nil
}

func (g *fakeGateway) chargeCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.charges)
}

func (g *fakeGateway) refundCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.refunds)
}

// uniqueCodes hands out distinct codes from a counter.
type uniqueCodes struct {
	mu   sync.Mutex
	next int
}

func (c *uniqueCodes) Generate() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.next++

	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	code := make([]byte, 6)
	n := c.next
	for i := len(code) - 1; i >= 0; i-- {
		code[i] = alphabet[n%len(alphabet)]
		n /= len(alphabet)
	}

	return string(code), nil
}

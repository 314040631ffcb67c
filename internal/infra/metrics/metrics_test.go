package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"harvest/config"
	"harvest/internal/domain/entity"
	"harvest/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMetrics() *Metrics {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "harvest-test"

	return New(cfg)
}

func TestMetrics_Counters(t *testing.T) {
	m := newTestMetrics()

	m.ObserveDelivery(entity.DeliveryRealtime)
	m.ObserveDelivery(entity.DeliveryRealtime)
	m.ObserveDelivery(entity.DeliveryUndelivered)
	m.ObserveOrder(service.OrderResultCreated, 20*time.Millisecond)
	m.ObserveRefund(false)
	m.ConnectionOpened()
	m.ConnectionOpened()
	m.ConnectionClosed()
	m.AddDBPoolWaits(0)
	m.AddDBPoolWaits(3)

	assert.InDelta(t, 2, testutil.ToFloat64(m.deliveries.WithLabelValues("realtime")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.deliveries.WithLabelValues("undelivered")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.orders.WithLabelValues(service.OrderResultCreated)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.refunds.WithLabelValues("failed")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.onlineConnections), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(m.dbPoolWaits), 0)
}

func TestMetrics_Handler(t *testing.T) {
	m := newTestMetrics()
	m.ObserveMatch()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "harvest_test_matches_created_total 1")
}

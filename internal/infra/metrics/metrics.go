// Package metrics exposes the marketplace's Prometheus collectors.
package metrics

import (
	"net/http"
	"strings"
	"time"

	"harvest/config"
	"harvest/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service collectors on a private registry.
type Metrics struct {
	Registry *prometheus.Registry

	deliveries        *prometheus.CounterVec
	orders            *prometheus.CounterVec
	orderLatency      prometheus.Histogram
	matches           prometheus.Counter
	refunds           *prometheus.CounterVec
	onlineConnections prometheus.Gauge
	dbPoolWaits       prometheus.Counter
}

// New initializes and registers the collectors.
func New(cfg *config.Config) *Metrics {
	namespace := strings.ReplaceAll(cfg.Env.ServiceName, "-", "_")
	registry := prometheus.NewRegistry()

	m := &Metrics{
		Registry: registry,
		deliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "delivery_outcomes_total",
			Help:      "Notification deliveries by outcome.",
		}, []string{"outcome"}),
		orders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_total",
			Help:      "Order attempts by result.",
		}, []string{"result"}),
		orderLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "order_create_seconds",
			Help:      "Latency of order creation including payment capture.",
			Buckets:   prometheus.DefBuckets,
		}),
		matches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matches_created_total",
			Help:      "Matches persisted by the matching engine.",
		}),
		refunds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "compensating_refunds_total",
			Help:      "Refunds issued after a captured charge could not be recorded.",
		}, []string{"result"}),
		onlineConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "realtime_connections",
			Help:      "Live realtime connections.",
		}),
		dbPoolWaits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "db_pool_waits_total",
			Help:      "Connections that had to wait for the Postgres pool.",
		}),
	}

	registry.MustRegister(
		m.deliveries,
		m.orders,
		m.orderLatency,
		m.matches,
		m.refunds,
		m.onlineConnections,
		m.dbPoolWaits,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

func (m *Metrics) ObserveDelivery(outcome entity.DeliveryOutcome) {
	m.deliveries.WithLabelValues(string(outcome)).Inc()
}

func (m *Metrics) ObserveOrder(result string, elapsed time.Duration) {
	m.orders.WithLabelValues(result).Inc()
	m.orderLatency.Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveMatch() {
	m.matches.Inc()
}

func (m *Metrics) ObserveRefund(ok bool) {
	result := "failed"
	if ok {
		result = "refunded"
	}
	m.refunds.WithLabelValues(result).Inc()
}

func (m *Metrics) ConnectionOpened() {
	m.onlineConnections.Inc()
}

func (m *Metrics) ConnectionClosed() {
	m.onlineConnections.Dec()
}

// AddDBPoolWaits records pool waits observed since the previous sample.
func (m *Metrics) AddDBPoolWaits(n int64) {
	if n > 0 {
		m.dbPoolWaits.Add(float64(n))
	}
}

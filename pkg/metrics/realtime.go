package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// RealtimeMetrics records hub connection and delivery counters.
type RealtimeMetrics struct {
	connections prometheus.Gauge
	inbound     *prometheus.CounterVec
	delivered   *prometheus.CounterVec
	dropped     *prometheus.CounterVec
}

// NewRealtimeMetrics registers the hub metrics on the provided registerer.
func NewRealtimeMetrics(reg prometheus.Registerer) *RealtimeMetrics {
	if reg == nil {
		return &RealtimeMetrics{}
	}
	connections := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "realtime_connections",
		Help: "Currently registered websocket sessions.",
	})
	inbound := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "realtime_inbound_messages_total",
		Help: "Inbound socket messages by envelope type.",
	}, []string{"type"})
	delivered := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "realtime_delivered_events_total",
		Help: "Events handed to a connection's send queue by type.",
	}, []string{"type"})
	dropped := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "realtime_dropped_events_total",
		Help: "Events skipped because the target channel was closed or full.",
	}, []string{"type"})
	reg.MustRegister(connections, inbound, delivered, dropped)
	return &RealtimeMetrics{
		connections: connections,
		inbound:     inbound,
		delivered:   delivered,
		dropped:     dropped,
	}
}

// SetConnections records the current number of registered sessions.
func (m *RealtimeMetrics) SetConnections(n int) {
	if m == nil || m.connections == nil {
		return
	}
	m.connections.Set(float64(n))
}

// IncInbound counts one inbound message of the given envelope type.
func (m *RealtimeMetrics) IncInbound(eventType string) {
	if m == nil || m.inbound == nil {
		return
	}
	m.inbound.WithLabelValues(normalizeLabel(eventType)).Inc()
}

// IncDelivered counts one event enqueued for delivery.
func (m *RealtimeMetrics) IncDelivered(eventType string) {
	if m == nil || m.delivered == nil {
		return
	}
	m.delivered.WithLabelValues(normalizeLabel(eventType)).Inc()
}

// IncDropped counts one event that could not be enqueued.
func (m *RealtimeMetrics) IncDropped(eventType string) {
	if m == nil || m.dropped == nil {
		return
	}
	m.dropped.WithLabelValues(normalizeLabel(eventType)).Inc()
}

func normalizeLabel(value string) string {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return "unknown"
	}
	return value
}

package metrics

import (
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestRealtimeMetricsExportsCountersAndGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewRealtimeMetrics(reg)

	metrics.SetConnections(3)
	metrics.IncInbound("position_report")
	metrics.IncDelivered("position_updated")
	metrics.IncDelivered("position_updated")
	metrics.IncDropped("cart_sync")

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got := gaugeValue(mfs, "realtime_connections"); got != 3 {
		t.Fatalf("expected connections=3, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "realtime_inbound_messages_total", "type", "position_report"); err != nil {
		t.Fatalf("fetch inbound: %v", err)
	} else if got != 1 {
		t.Fatalf("expected inbound=1, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "realtime_delivered_events_total", "type", "position_updated"); err != nil {
		t.Fatalf("fetch delivered: %v", err)
	} else if got != 2 {
		t.Fatalf("expected delivered=2, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "realtime_dropped_events_total", "type", "cart_sync"); err != nil {
		t.Fatalf("fetch dropped: %v", err)
	} else if got != 1 {
		t.Fatalf("expected dropped=1, got %f", got)
	}
}

func TestRealtimeMetricsNilSafe(t *testing.T) {
	var metrics *RealtimeMetrics
	metrics.SetConnections(1)
	metrics.IncInbound("x")
	metrics.IncDelivered("x")
	metrics.IncDropped("x")

	empty := NewRealtimeMetrics(nil)
	empty.SetConnections(1)
	empty.IncInbound("")
}

func TestNormalizeLabel(t *testing.T) {
	if got := normalizeLabel("  Position_Report "); got != "position_report" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := normalizeLabel(""); got != "unknown" {
		t.Fatalf("unexpected label %q", got)
	}
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q missing label %s=%s", name, label, value)
}

func gaugeValue(mfs []*dto.MetricFamily, name string) float64 {
	mf := findMetricFamily(mfs, name)
	if mf == nil || len(mf.GetMetric()) == 0 {
		return -1
	}
	return mf.GetMetric()[0].GetGauge().GetValue()
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabel(labels []*dto.LabelPair, name, value string) bool {
	for _, label := range labels {
		if label.GetName() == name && label.GetValue() == value {
			return true
		}
	}
	return false
}

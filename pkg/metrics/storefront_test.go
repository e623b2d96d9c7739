package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestStorefrontMetricsCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewStorefrontMetrics(reg)

	m.IncCatalogLoad("demo")
	m.IncCatalogLoad("demo")
	m.IncCommand("add_to_cart")
	m.IncOrderCompleted()
	m.ObserveCommandDuration("add_to_cart", 50*time.Millisecond)

	if got := testutil.ToFloat64(m.catalogLoads.WithLabelValues("demo")); got != 2 {
		t.Fatalf("expected 2 demo loads, got %v", got)
	}
	if got := testutil.ToFloat64(m.commands.WithLabelValues("add_to_cart")); got != 1 {
		t.Fatalf("expected 1 command, got %v", got)
	}
	if got := testutil.ToFloat64(m.ordersCompleted); got != 1 {
		t.Fatalf("expected 1 completed order, got %v", got)
	}
}

func TestStorefrontMetricsNilSafe(t *testing.T) {
	var m *StorefrontMetrics
	m.IncCatalogLoad("upstream")
	m.IncCommand("navigate")
	m.IncOrderCompleted()
	m.ObserveCommandDuration("navigate", time.Millisecond)

	unregistered := NewStorefrontMetrics(nil)
	unregistered.IncCatalogLoad("")
	unregistered.IncCommand("")
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StorefrontMetrics records catalog, command, and order activity.
type StorefrontMetrics struct {
	catalogLoads    *prometheus.CounterVec
	commands        *prometheus.CounterVec
	commandDuration *prometheus.HistogramVec
	ordersCompleted prometheus.Counter
}

// NewStorefrontMetrics registers the storefront metrics on the provided registerer.
func NewStorefrontMetrics(reg prometheus.Registerer) *StorefrontMetrics {
	if reg == nil {
		return &StorefrontMetrics{}
	}
	catalogLoads := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_load_total",
		Help: "Catalog loads by source (upstream or demo fallback).",
	}, []string{"source"})
	commands := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_commands_total",
		Help: "Dispatched storefront commands by type.",
	}, []string{"command"})
	commandDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "storefront_command_duration_seconds",
		Help:    "Duration of storefront command dispatches in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"command"})
	ordersCompleted := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_completed_total",
		Help: "Orders completed through checkout.",
	})
	reg.MustRegister(catalogLoads, commands, commandDuration, ordersCompleted)
	return &StorefrontMetrics{
		catalogLoads:    catalogLoads,
		commands:        commands,
		commandDuration: commandDuration,
		ordersCompleted: ordersCompleted,
	}
}

// IncCatalogLoad counts a catalog load from the named source.
func (m *StorefrontMetrics) IncCatalogLoad(source string) {
	if m == nil || m.catalogLoads == nil {
		return
	}
	m.catalogLoads.WithLabelValues(normalizeLabel(source)).Inc()
}

// IncCommand counts a dispatched command.
func (m *StorefrontMetrics) IncCommand(command string) {
	if m == nil || m.commands == nil {
		return
	}
	m.commands.WithLabelValues(normalizeLabel(command)).Inc()
}

// ObserveCommandDuration records how long a dispatch took.
func (m *StorefrontMetrics) ObserveCommandDuration(command string, duration time.Duration) {
	if m == nil || m.commandDuration == nil {
		return
	}
	m.commandDuration.WithLabelValues(normalizeLabel(command)).Observe(duration.Seconds())
}

// IncOrderCompleted counts a completed order.
func (m *StorefrontMetrics) IncOrderCompleted() {
	if m == nil || m.ordersCompleted == nil {
		return
	}
	m.ordersCompleted.Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}

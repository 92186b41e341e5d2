package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// dataset loader.
type Metrics struct {
	RowsRead         prometheus.Counter
	ReadingsRetained prometheus.Counter
	RowsDropped      *prometheus.CounterVec // label: reason={timestamp,location}
	NullFields       *prometheus.CounterVec // label: field={temperature,pressure,motion_x,motion_y,motion_z}
	LoadFailures     prometheus.Counter
	LoadDuration     prometheus.Histogram
	SnapshotSize     prometheus.Gauge
	LoaderRunning    prometheus.Gauge
}

// NewMetrics creates and registers all loader metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RowsRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "forest_monitor",
			Name:      "rows_read_total",
			Help:      "Total CSV rows read from the source, before normalization.",
		}),
		ReadingsRetained: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "forest_monitor",
			Name:      "readings_retained_total",
			Help:      "Total rows that survived normalization.",
		}),
		RowsDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "forest_monitor",
			Name:      "rows_dropped_total",
			Help:      "Rows dropped during normalization by reason.",
		}, []string{"reason"}),
		NullFields: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "forest_monitor",
			Name:      "null_fields_total",
			Help:      "Numeric fields nulled during normalization by field name.",
		}, []string{"field"}),
		LoadFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "forest_monitor",
			Name:      "load_failures_total",
			Help:      "Fetch or parse failures that left the snapshot unchanged.",
		}),
		LoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "forest_monitor",
			Name:      "load_duration_seconds",
			Help:      "Duration of a complete fetch-normalize-publish cycle.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		SnapshotSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "forest_monitor",
			Name:      "snapshot_size",
			Help:      "Number of readings in the current snapshot.",
		}),
		LoaderRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "forest_monitor",
			Name:      "loader_running",
			Help:      "1 when the loader is active, 0 when shut down.",
		}),
	}

	prometheus.MustRegister(
		m.RowsRead,
		m.ReadingsRetained,
		m.RowsDropped,
		m.NullFields,
		m.LoadFailures,
		m.LoadDuration,
		m.SnapshotSize,
		m.LoaderRunning,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RowsRead:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "forest_monitor", Name: "rows_read_total"}),
		ReadingsRetained: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "forest_monitor", Name: "readings_retained_total"}),
		RowsDropped:      prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "forest_monitor", Name: "rows_dropped_total"}, []string{"reason"}),
		NullFields:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "forest_monitor", Name: "null_fields_total"}, []string{"field"}),
		LoadFailures:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "forest_monitor", Name: "load_failures_total"}),
		LoadDuration:     prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "forest_monitor", Name: "load_duration_seconds"}),
		SnapshotSize:     prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "forest_monitor", Name: "snapshot_size"}),
		LoaderRunning:    prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "forest_monitor", Name: "loader_running"}),
	}
}

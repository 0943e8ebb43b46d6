package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and gauges for the schema-build
// pipeline. A batch run increments them once; tests assert on them to pin
// down how many records took each path through cleaning.
type Metrics struct {
	RecordsRead    prometheus.Counter
	RecordsCleaned prometheus.Counter

	// FieldDefects counts raw values that were present but unparsable,
	// labelled by field. These recover silently into absent values.
	FieldDefects *prometheus.CounterVec

	// UnknownFallbacks counts categorical fields coalesced to "Unknown",
	// labelled by field.
	UnknownFallbacks *prometheus.CounterVec

	FactRows prometheus.Gauge
	DimRows  *prometheus.GaugeVec // labels: table={date,location,category,intake,status}

	ValidationFailures *prometheus.CounterVec // labels: check={grain,join_key,dim_key}

	RunDuration prometheus.Histogram
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.RecordsRead,
		m.RecordsCleaned,
		m.FieldDefects,
		m.UnknownFallbacks,
		m.FactRows,
		m.DimRows,
		m.ValidationFailures,
		m.RunDuration,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RecordsRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "dumping_etl",
			Name:      "records_read_total",
			Help:      "Total raw records read from the source CSV.",
		}),
		RecordsCleaned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "dumping_etl",
			Name:      "records_cleaned_total",
			Help:      "Total records carried through cleaning (never fewer than read; cleaning is field-level).",
		}),
		FieldDefects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dumping_etl",
			Name:      "field_defects_total",
			Help:      "Raw field values present but unparsable, recovered as absent.",
		}, []string{"field"}),
		UnknownFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dumping_etl",
			Name:      "unknown_fallbacks_total",
			Help:      "Categorical fields coalesced to the Unknown token.",
		}, []string{"field"}),
		FactRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "dumping_etl",
			Name:      "fact_rows",
			Help:      "Fact rows produced by the last build.",
		}),
		DimRows: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "dumping_etl",
			Name:      "dimension_rows",
			Help:      "Dimension rows produced by the last build, per table.",
		}, []string{"table"}),
		ValidationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dumping_etl",
			Name:      "validation_failures_total",
			Help:      "Integrity gate failures by check.",
		}, []string{"check"}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "dumping_etl",
			Name:      "run_duration_seconds",
			Help:      "Duration of a complete read-clean-model-validate-export run.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
	}
}

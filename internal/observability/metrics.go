package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "accelerogram"

// Metrics holds the Prometheus collectors for one analysis run.
type Metrics struct {
	SamplesLoaded    *prometheus.CounterVec   // labels: series={time,accel}
	StageDuration    *prometheus.HistogramVec // labels: stage={load,analyze,render,report,publish}
	StageFailures    *prometheus.CounterVec   // labels: stage
	ReportsPublished prometheus.Counter

	// Last analyzed record.
	PGA               prometheus.Gauge
	SamplingFrequency prometheus.Gauge
	UnitGuess         *prometheus.GaugeVec // labels: unit={g,m/s²,ambiguous-high}
	TriggerFired      prometheus.Gauge
	LastRunTimestamp  prometheus.Gauge

	gatherer prometheus.Gatherer
}

func newCollectors() *Metrics {
	return &Metrics{
		SamplesLoaded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "samples_loaded_total",
			Help:      "Samples parsed from the input files by series.",
		}, []string{"series"}),
		StageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of each pipeline stage.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5},
		}, []string{"stage"}),
		StageFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stage_failures_total",
			Help:      "Pipeline failures by stage.",
		}, []string{"stage"}),
		ReportsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_published_total",
			Help:      "Reports written to the Kafka report topic.",
		}),
		PGA: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "peak_ground_acceleration",
			Help:      "PGA of the last analyzed record, in the record's own unit.",
		}),
		SamplingFrequency: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sampling_frequency_hertz",
			Help:      "Sampling frequency of the last analyzed record.",
		}),
		UnitGuess: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "unit_guess",
			Help:      "1 for the unit guessed for the last analyzed record.",
		}, []string{"unit"}),
		TriggerFired: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "trigger_fired",
			Help:      "1 when the STA/LTA detector fired on the last analyzed record.",
		}),
		LastRunTimestamp: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time of the last completed analysis.",
		}),
	}
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.SamplesLoaded,
		m.StageDuration,
		m.StageFailures,
		m.ReportsPublished,
		m.PGA,
		m.SamplingFrequency,
		m.UnitGuess,
		m.TriggerFired,
		m.LastRunTimestamp,
	}
}

// NewMetrics creates and registers all analyzer metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newCollectors()
	prometheus.MustRegister(m.collectors()...)
	m.gatherer = prometheus.DefaultGatherer
	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	m := newCollectors()
	reg := prometheus.NewRegistry()
	reg.MustRegister(m.collectors()...)
	m.gatherer = reg
	return m
}

// WriteTextfile writes the current metric values in the Prometheus text
// exposition format, for pickup by the node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.gatherer); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

package relayer

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	"github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

const (
	// MetricsSubsystem is a subsystem shared by all metrics exposed by this
	// package.
	MetricsSubsystem = "relayer"
)

// Metrics contains metrics exposed by this package.
type Metrics struct {
	// Number of completed cycles.
	Cycles metrics.Counter
	// Submissions by action and outcome.
	Submissions metrics.Counter
	// Height of the last fetched header.
	SourceHeight metrics.Gauge
	// Height the destination client trusts.
	TrustedHeight metrics.Gauge
	// Time to complete one cycle, in seconds.
	CycleDuration metrics.Histogram
}

// PrometheusMetrics returns Metrics build using Prometheus client library.
// Optionally, labels can be provided along with their values ("foo",
// "fooValue").
func PrometheusMetrics(namespace string, labelsAndValues ...string) *Metrics {
	labels := []string{}
	for i := 0; i < len(labelsAndValues); i += 2 {
		labels = append(labels, labelsAndValues[i])
	}
	return &Metrics{
		Cycles: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "cycles",
			Help:      "Number of completed relay cycles.",
		}, labels).With(labelsAndValues...),
		Submissions: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "submissions",
			Help:      "Number of confirmed destination transactions, by action and outcome.",
		}, append(labels, "action", "outcome")).With(labelsAndValues...),
		SourceHeight: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "source_height",
			Help:      "Height of the last header fetched from the source chain.",
		}, labels).With(labelsAndValues...),
		TrustedHeight: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "trusted_height",
			Help:      "Height the destination light client trusts.",
		}, labels).With(labelsAndValues...),
		CycleDuration: prometheus.NewHistogramFrom(stdprometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "cycle_duration_seconds",
			Help:      "Time to fetch, submit and confirm one header.",
			Buckets:   stdprometheus.ExponentialBuckets(0.5, 2, 10),
		}, labels).With(labelsAndValues...),
	}
}

// NopMetrics returns no-op Metrics.
func NopMetrics() *Metrics {
	return &Metrics{
		Cycles:        discard.NewCounter(),
		Submissions:   discard.NewCounter(),
		SourceHeight:  discard.NewGauge(),
		TrustedHeight: discard.NewGauge(),
		CycleDuration: discard.NewHistogram(),
	}
}

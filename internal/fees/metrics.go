package fees

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	"github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

const (
	// MetricsSubsystem is a subsystem shared by all metrics exposed by this
	// package.
	MetricsSubsystem = "fees"
)

// Metrics contains metrics exposed by this package.
type Metrics struct {
	GasUsed metrics.Counter
	Native  metrics.Counter
	USD     metrics.Counter
	Dropped metrics.Counter
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
		GasUsed: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "gas_used",
			Help:      "Gas used by relay transactions, by action.",
		}, append(labels, "action")).With(labelsAndValues...),
		Native: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "native",
			Help:      "Fees paid in the destination's native token, by action.",
		}, append(labels, "action")).With(labelsAndValues...),
		USD: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "usd",
			Help:      "Fees paid converted to USD at the configured price, by action.",
		}, append(labels, "action")).With(labelsAndValues...),
		Dropped: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "dropped",
			Help:      "Receipts not reported because the queue was full.",
		}, labels).With(labelsAndValues...),
	}
}

// NopMetrics returns no-op Metrics.
func NopMetrics() *Metrics {
	return &Metrics{
		GasUsed: discard.NewCounter(),
		Native:  discard.NewCounter(),
		USD:     discard.NewCounter(),
		Dropped: discard.NewCounter(),
	}
}

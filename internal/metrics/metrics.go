// Package metrics holds the Prometheus collectors exported by the server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tripsplit"

// Metrics groups every collector so tests can register them on a private registry.
type Metrics struct {
	RequestsTotal      *prometheus.CounterVec
	RequestDuration    *prometheus.HistogramVec
	SettlementsTotal   *prometheus.CounterVec
	TransactionsPerRun prometheus.Histogram
	StatusTransitions  *prometheus.CounterVec
	ValidationFailures *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rpc_requests_total",
				Help:      "Total number of Connect RPC requests",
			},
			[]string{"procedure", "code"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "rpc_request_duration_seconds",
				Help:      "Duration of Connect RPC requests",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2, 5},
			},
			[]string{"procedure"},
		),
		SettlementsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "settlements_computed_total",
				Help:      "Settlement recomputations by outcome",
			},
			[]string{"outcome"},
		),
		TransactionsPerRun: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "settlement_transactions",
				Help:      "Consolidated transactions produced per recomputation",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
			},
		),
		StatusTransitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transaction_status_transitions_total",
				Help:      "Applied transaction status transitions",
			},
			[]string{"from", "to"},
		),
		ValidationFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "expense_validation_failures_total",
				Help:      "Rejected expenses by offending field",
			},
			[]string{"field"},
		),
	}
}

// NewNop returns collectors registered nowhere.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}

// ObserveSettlement records one recomputation.
func (m *Metrics) ObserveSettlement(transactions int, err error) {
	if err != nil {
		m.SettlementsTotal.WithLabelValues("rejected").Inc()
		return
	}
	m.SettlementsTotal.WithLabelValues("ok").Inc()
	m.TransactionsPerRun.Observe(float64(transactions))
}

// Package metrics exposes replica call metrics in the Prometheus format.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels of a dispatched call.
const (
	OutcomeReplied  = "replied"
	OutcomeRejected = "rejected"
)

// CallRecorder is what the dispatcher and the HTTP layer report to.
type CallRecorder interface {
	RecordCall(canisterKind, method, outcome string, duration time.Duration)
	RecordRateLimited()
	RecordArchived(count int64)
}

// Collector is the Prometheus implementation of [CallRecorder].
type Collector struct {
	calls       *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	rateLimited prometheus.Counter
	archived    prometheus.Counter
}

// NewCollector creates the collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "icrc7_replica_calls_total",
			Help: "Canister calls handled, by canister kind, method and outcome.",
		}, []string{"canister", "method", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "icrc7_replica_call_duration_seconds",
			Help:    "Canister call execution time.",
			Buckets: prometheus.DefBuckets,
		}, []string{"canister"}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "icrc7_replica_rate_limited_total",
			Help: "Requests refused by the per-caller rate limit.",
		}),
		archived: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "icrc7_replica_archived_transactions_total",
			Help: "Ledger transactions moved to the archive.",
		}),
	}

	reg.MustRegister(c.calls, c.latency, c.rateLimited, c.archived)
	return c
}

func (c *Collector) RecordCall(canisterKind, method, outcome string, duration time.Duration) {
	c.calls.WithLabelValues(canisterKind, method, outcome).Inc()
	c.latency.WithLabelValues(canisterKind).Observe(duration.Seconds())
}

func (c *Collector) RecordRateLimited() {
	c.rateLimited.Inc()
}

func (c *Collector) RecordArchived(count int64) {
	c.archived.Add(float64(count))
}

// Handler serves the metrics gathered by gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

type nop struct{}

// Nop returns a recorder that drops everything.
func Nop() CallRecorder { return nop{} }

func (nop) RecordCall(string, string, string, time.Duration) {}
func (nop) RecordRateLimited()                               {}
func (nop) RecordArchived(int64)                             {}

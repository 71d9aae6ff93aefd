package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcomes recorded for a unit of work.
const (
	OutcomeCommit   = "commit"
	OutcomeRollback = "rollback"
)

var (
	// UnitOfWorkTotal counts units of work by operation and outcome.
	UnitOfWorkTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "smapp_unit_of_work_total",
		Help: "Total number of units of work by operation and outcome",
	}, []string{"operation", "outcome"})

	// UnitOfWorkDuration records unit-of-work latency by operation.
	UnitOfWorkDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "smapp_unit_of_work_duration_seconds",
		Help:    "Unit of work latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	// CacheRequests counts cache lookups by result (hit, miss, error).
	CacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "smapp_cache_requests_total",
		Help: "Total number of cache lookups by result",
	}, []string{"result"})

	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "smapp_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})
)

// TrackUnitOfWork returns a function that records the outcome and latency
// of a unit of work when called (e.g. defer).
func TrackUnitOfWork(operation string) func(outcome string) {
	start := time.Now()
	return func(outcome string) {
		UnitOfWorkDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
		UnitOfWorkTotal.WithLabelValues(operation, outcome).Inc()
	}
}

package ledger

import "github.com/prometheus/client_golang/prometheus"

var (
	commitDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "axiom_token",
		Subsystem: "ledger",
		Name:      "commit_duration_second",
		Help:      "The total latency of flush finalised state into db",
		Buckets:   prometheus.ExponentialBuckets(0.001, 2, 10),
	})

	committedKeysCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "axiom_token",
		Subsystem: "ledger",
		Name:      "committed_keys_total",
		Help:      "The total number of state keys flushed into db",
	})

	stateReadDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "axiom_token",
		Subsystem: "ledger",
		Name:      "state_read_duration",
		Help:      "The total latency of read a state from db",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 2, 10),
	})
)

func init() {
	prometheus.MustRegister(commitDuration)
	prometheus.MustRegister(committedKeysCounter)
	prometheus.MustRegister(stateReadDuration)
}

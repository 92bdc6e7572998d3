package system

import "github.com/prometheus/client_golang/prometheus"

var (
	invocationCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "axiom_token",
		Subsystem: "vm",
		Name:      "invocation_total",
		Help:      "The total number of system contract invocations by outcome",
	}, []string{"contract", "status"})

	invocationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "axiom_token",
		Subsystem: "vm",
		Name:      "invocation_duration_second",
		Help:      "The total latency of a system contract invocation",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 10),
	})
)

func init() {
	prometheus.MustRegister(invocationCounter)
	prometheus.MustRegister(invocationDuration)
}

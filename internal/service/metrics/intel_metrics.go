package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	IntelLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tickergraph",
			Subsystem: "intel",
			Name:      "latency_seconds",
			Help:      "Latency of intel requests by mode",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"mode"},
	)

	IntelErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tickergraph",
			Subsystem: "intel",
			Name:      "errors_total",
			Help:      "Errors by intel mode",
		},
		[]string{"mode"},
	)

	ProviderRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tickergraph",
			Subsystem: "provider",
			Name:      "requests_total",
			Help:      "Market data provider calls by endpoint and result",
		},
		[]string{"endpoint", "result"},
	)

	BenchmarkRefresh = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tickergraph",
			Subsystem: "benchmarks",
			Name:      "refresh_total",
			Help:      "Benchmark matrix refresh attempts by result",
		},
		[]string{"result"},
	)

	ResponseCacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tickergraph",
			Subsystem: "cache",
			Name:      "response_hits_total",
			Help:      "Response cache lookups by outcome",
		},
		[]string{"outcome"},
	)
)

func Register() {
	once.Do(func() {
		prometheus.MustRegister(IntelLatency, IntelErrors, ProviderRequests, BenchmarkRefresh, ResponseCacheHits)
	})
}

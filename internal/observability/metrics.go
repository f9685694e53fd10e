package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PostMutations counts committed store mutations by operation.
	PostMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "socialmanager_posts_mutations_total",
		Help: "Total number of post store mutations by operation",
	}, []string{"operation"})

	// PostsStored tracks the number of records currently in the store.
	PostsStored = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "socialmanager_posts_stored",
		Help: "Number of posts currently held by the store",
	})

	// ComposerTransitions counts authoring dialog events.
	ComposerTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "socialmanager_composer_transitions_total",
		Help: "Total composer dialog events by type",
	}, []string{"event"})

	// StoreLatency records store call latency by operation and backend.
	StoreLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "socialmanager_store_latency_seconds",
		Help:    "Post store latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "backend"})

	// DashboardSockets tracks open post event websocket connections.
	DashboardSockets = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "socialmanager_dashboard_sockets",
		Help: "Number of open post event websocket connections",
	})

	// DashboardDrops counts events not delivered to a slow or closed socket.
	DashboardDrops = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "socialmanager_dashboard_dropped_events_total",
		Help: "Post events dropped for a websocket client by reason",
	}, []string{"reason"})

	// RedisErrors counts Redis errors by command.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "socialmanager_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})
)

// RecordMutation increments the mutation counter for operation.
func RecordMutation(operation string) {
	PostMutations.WithLabelValues(operation).Inc()
}

// RecordComposerEvent increments the composer transition counter.
func RecordComposerEvent(event string) {
	ComposerTransitions.WithLabelValues(event).Inc()
}

// TrackStore returns a function that records store latency when called (e.g. defer).
func TrackStore(operation, backend string) func() {
	start := time.Now()
	return func() {
		StoreLatency.WithLabelValues(operation, backend).Observe(time.Since(start).Seconds())
	}
}

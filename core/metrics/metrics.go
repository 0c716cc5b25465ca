// Package metrics declares the Prometheus instruments shared across
// features. Registration happens at init via promauto; the /metrics
// endpoint is wired in cmd/start.go.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheHits counts read-through cache hits.
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "content_cache_hits_total",
		Help: "Total number of read-through cache hits.",
	})

	// CacheMisses counts read-through cache misses.
	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "content_cache_misses_total",
		Help: "Total number of read-through cache misses.",
	})

	// SyncRuns counts reconciliation runs by direction and outcome.
	SyncRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "content_sync_runs_total",
		Help: "Total number of sync engine runs.",
	}, []string{"direction", "outcome"})

	// SyncEntitiesSkipped counts entities skipped during a sync run
	// because their metadata document was missing or malformed.
	SyncEntitiesSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "content_sync_entities_skipped_total",
		Help: "Total number of entities skipped during sync runs.",
	})

	// StreamingNotFound counts streaming requests rejected with 404,
	// by asset kind.
	StreamingNotFound = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "content_streaming_not_found_total",
		Help: "Total number of streaming requests that resolved to a missing asset.",
	}, []string{"asset"})
)

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Draft metrics
	DraftsPublished    *prometheus.CounterVec
	DependentsUnlinked *prometheus.CounterVec

	// Save metrics
	SavesTotal   *prometheus.CounterVec
	SaveDuration prometheus.Histogram
	SaveRequests *prometheus.CounterVec

	// Positions API client metrics
	APIRequests *prometheus.CounterVec
	APIRetries  *prometheus.CounterVec

	// Server metrics
	HTTPRequests     *prometheus.CounterVec
	HTTPDuration     *prometheus.HistogramVec
	EntitiesCreated  prometheus.Counter
	EntriesReplaced  *prometheus.CounterVec
	RedisOperations  *prometheus.CounterVec
	RedisErrors      *prometheus.CounterVec
	IdempotentReplay prometheus.Counter
}

// New creates all metrics and registers them with reg. A nil reg uses the
// default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Metrics{
		// Draft metrics
		DraftsPublished: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "positions_drafts_published_total",
				Help: "Total number of draft list publications by asset type",
			},
			[]string{"asset_type"},
		),
		DependentsUnlinked: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "positions_dependents_unlinked_total",
				Help: "Total number of dependent drafts unlinked by asset type",
			},
			[]string{"asset_type"},
		),

		// Save metrics
		SavesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "positions_saves_total",
				Help: "Total number of batched saves by result",
			},
			[]string{"result"},
		),
		SaveDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "positions_save_duration_seconds",
			Help:    "Duration of batched saves",
			Buckets: prometheus.DefBuckets,
		}),
		SaveRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "positions_save_requests_total",
				Help: "Total number of successful per-entity updates by asset type",
			},
			[]string{"asset_type"},
		),

		// Positions API client metrics
		APIRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "positions_api_requests_total",
				Help: "Total positions API requests",
			},
			[]string{"operation", "status"},
		),
		APIRetries: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "positions_api_retries_total",
				Help: "Total positions API retries",
			},
			[]string{"operation"},
		),

		// Server metrics
		HTTPRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "positions_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "positions_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		EntitiesCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "positions_entities_created_total",
			Help: "Total number of entities created by position updates",
		}),
		EntriesReplaced: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "positions_entries_replaced_total",
				Help: "Total number of manual entries written by product type",
			},
			[]string{"product_type"},
		),
		RedisOperations: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "positions_redis_operations_total",
				Help: "Total Redis operations",
			},
			[]string{"operation"},
		),
		RedisErrors: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "positions_redis_errors_total",
				Help: "Total Redis errors",
			},
			[]string{"operation"},
		),
		IdempotentReplay: f.NewCounter(prometheus.CounterOpts{
			Name: "positions_idempotent_replays_total",
			Help: "Total responses replayed from the idempotency store",
		}),
	}
}

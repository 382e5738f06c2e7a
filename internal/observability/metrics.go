package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts failed Redis commands by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devconnector_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// CacheLookups counts cache-aside lookups by key kind and result (hit or miss).
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devconnector_cache_lookups_total",
		Help: "Cache lookups by kind and result",
	}, []string{"kind", "result"})

	// AuthEvents counts register and login attempts by outcome.
	AuthEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devconnector_auth_events_total",
		Help: "Register and login attempts by outcome",
	}, []string{"event", "outcome"})

	// PostEvents counts feed mutations by type (post, like, unlike, comment, ...).
	PostEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devconnector_post_events_total",
		Help: "Feed mutations by type",
	}, []string{"type"})

	// FeedConnections is the number of open live feed sockets.
	FeedConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "devconnector_feed_connections",
		Help: "Number of open live feed WebSocket connections",
	})

	// FeedDrops counts feed events dropped because a client was too slow.
	FeedDrops = promauto.NewCounter(prometheus.CounterOpts{
		Name: "devconnector_feed_dropped_events_total",
		Help: "Live feed events dropped due to backpressure",
	})
)

// Package metrics defines the custom Prometheus metrics for the gateway. It
// is the single source of truth for metric names, labels, and help strings.
// Registration happens via promauto against the default registry at package
// load; the gateway exposes it on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gateway"

// AuthDecisionsTotal counts guard outcomes on protected routes.
// Label:
//   - outcome: "allowed", "no_token", "invalid_token", or "role_unresolved"
var AuthDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_decisions_total",
		Help:      "Total number of gateway guard decisions, by outcome.",
	},
	[]string{"outcome"},
)

// RoleLookupDuration measures the remote role resolution call the guard makes
// against the identity service.
// Label:
//   - outcome: "ok" or "error"
var RoleLookupDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "role_lookup_duration_seconds",
		Help:      "Duration of remote role resolution calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"outcome"},
)

// RoleCacheTotal counts role cache consultations when the cache is enabled.
// Label:
//   - result: "hit" or "miss"
var RoleCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_cache_total",
		Help:      "Total number of role cache lookups, by result.",
	},
	[]string{"result"},
)

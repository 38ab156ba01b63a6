// Package metrics defines and registers all custom Prometheus metrics for the
// bistro API. It is the single source of truth for metric names, labels, and
// help strings. Metrics self-register with the default registry via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bistro"

// AuthDenialsTotal counts requests rejected by the access gate.
// Label:
//   - reason: "missing_header", "invalid_header", "invalid_token", "forbidden"
var AuthDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_denials_total",
		Help:      "Total number of requests rejected by the auth or role middleware.",
	},
	[]string{"reason"},
)

// UsersRegisteredTotal counts registration outcomes.
// Label:
//   - result: "created" (new record) or "exists" (idempotent replay, no write)
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of user registration calls, by outcome.",
	},
	[]string{"result"},
)

// CatalogCacheTotal counts catalog cache lookups.
// Labels:
//   - collection: "menu" or "reviews"
//   - result: "hit" or "miss"
var CatalogCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_cache_total",
		Help:      "Total number of catalog cache lookups, by collection and result.",
	},
	[]string{"collection", "result"},
)

// Package metrics defines the custom Prometheus metrics of the character API.
// HTTP request metrics come from the echoprometheus middleware; the counters
// here cover domain activity. All metrics register with the default registry
// on package initialisation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "character_api"

// ── Character metrics ─────────────────────────────────────────────────────────

// CharacterOpsTotal counts successful character writes.
// Label:
//   - op: "create", "update" or "delete"
var CharacterOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "character_ops_total",
		Help:      "Total number of successful character writes, by operation.",
	},
	[]string{"op"},
)

// ── Merit metrics ─────────────────────────────────────────────────────────────

// MeritOpsTotal counts successful merit catalog writes.
// Label:
//   - op: "create", "replace" or "delete"
var MeritOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "merit_ops_total",
		Help:      "Total number of successful merit catalog writes, by operation.",
	},
	[]string{"op"},
)

// MeritCacheTotal counts merit catalog cache lookups.
// Label:
//   - result: "hit", "miss" or "error"
var MeritCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "merit_cache_total",
		Help:      "Total number of merit catalog cache lookups, labelled by result.",
	},
	[]string{"result"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// UsersRegisteredTotal counts accounts created.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of registered users.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ── Errors ────────────────────────────────────────────────────────────────────

// ErrorsTotal counts error responses produced by the central error handler.
// Label:
//   - kind: "validation", "not_found", "unauthorized", "conflict" or "internal"
var ErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "errors_total",
		Help:      "Total number of error responses, labelled by error kind.",
	},
	[]string{"kind"},
)

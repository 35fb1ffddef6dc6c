// Package metrics defines all custom Prometheus metrics for the inventory
// backend. It is the single source of truth for metric names, labels, and
// help strings; collectors register themselves with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "inventory"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts by outcome.
// Label:
//   - result: "created", "conflict", "invalid", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "not_found", "unauthorized", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionRejectionsTotal counts requests turned away by the session
// middleware before reaching a handler.
// Label:
//   - reason: "missing_token" or "invalid_token"
var SessionRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_rejections_total",
		Help:      "Total number of requests redirected to login by the session middleware.",
	},
	[]string{"reason"},
)

// ── Dashboard metrics ─────────────────────────────────────────────────────────

// DashboardDegradedTotal counts admin dashboard renders that fell back to
// zeroed stats because a backend read failed.
var DashboardDegradedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dashboard_degraded_total",
		Help:      "Total number of admin stat aggregations served in degraded (zeroed) mode.",
	},
)

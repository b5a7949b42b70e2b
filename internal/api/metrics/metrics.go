// Package metrics defines all custom Prometheus metrics for the tool portal.
// It is the single source of truth for metric names, labels, and help strings;
// promauto registers everything with the default registry at init time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "invalid"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// GuestSessionsStartedTotal counts anonymous sessions established.
var GuestSessionsStartedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guest_sessions_started_total",
		Help:      "Total number of guest sessions started.",
	},
)

// SelectionUpdatesTotal counts successful per-category selection replaces.
// Label:
//   - principal: "user" (durable) or "guest" (session-only)
var SelectionUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "selection_updates_total",
		Help:      "Total number of category selection reconciliations applied.",
	},
	[]string{"principal"},
)

// CatalogActionsTotal counts admin catalog mutations.
// Label:
//   - action: "create", "update" or "delete"
var CatalogActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_actions_total",
		Help:      "Total number of admin catalog mutations, by action.",
	},
	[]string{"action"},
)

// Package metrics defines and registers all custom Prometheus metrics for the
// siteforge API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register themselves with the default registry at
// package load via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "siteforge"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SignupsTotal counts successfully created accounts.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created.",
	},
)

// AuthRejectionsTotal counts requests rejected at the token validation stage.
// Label:
//   - reason: "missing", "malformed", "expired", "revoked", or "not_fresh"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected during token validation, by reason.",
	},
	[]string{"reason"},
)

// PermissionDenialsTotal counts requests that authenticated but lacked the
// required permission.
// Label:
//   - permission: the permission the route required (e.g. "create_site")
var PermissionDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "permission_denials_total",
		Help:      "Total number of authorization denials, by required permission.",
	},
	[]string{"permission"},
)

// PermissionFallbacksTotal counts resolutions that fell back to the hardcoded
// default table because the permission store was unreachable.
var PermissionFallbacksTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "permission_fallbacks_total",
		Help:      "Total number of permission resolutions served from the hardcoded defaults.",
	},
)

// ── Generation metrics ────────────────────────────────────────────────────────

// GenerationsTotal counts site generation attempts.
// Label:
//   - result: "success" or "failure"
var GenerationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "generations_total",
		Help:      "Total number of website generation attempts, by result.",
	},
	[]string{"result"},
)

// GenerationDuration measures the end-to-end latency of a generation call,
// including the external API round trip and persistence.
var GenerationDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "generation_duration_seconds",
		Help:      "Duration of website generation from request to persistence.",
		Buckets:   []float64{.25, .5, 1, 2.5, 5, 10, 20, 30, 60},
	},
)

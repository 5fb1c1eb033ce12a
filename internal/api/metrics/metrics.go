// Package metrics defines and registers all custom Prometheus metrics for
// the weather gateway. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "weathergate"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "ok", "duplicate", "invalid", "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok", "not_found", "wrong_password", "invalid", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenVerificationsTotal counts bearer token checks on protected routes.
// Label:
//   - result: "ok", "missing", "invalid"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token verifications, by result.",
	},
	[]string{"result"},
)

// ── Weather metrics ───────────────────────────────────────────────────────────

// WeatherLookupsTotal counts weather lookups reaching the service layer.
// Label:
//   - result: "ok", "missing_city", "upstream_error", "error"
var WeatherLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "weather_lookups_total",
		Help:      "Total number of weather lookups, by result.",
	},
	[]string{"result"},
)

// WeatherCacheTotal counts cache decisions for weather lookups.
// Label:
//   - result: "hit" (served from cache) or "miss" (fetched upstream)
var WeatherCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "weather_cache_total",
		Help:      "Total number of weather cache checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// WeatherUpstreamDuration measures the latency of external provider calls.
// Label:
//   - outcome: "ok" or "error"
var WeatherUpstreamDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "weather_upstream_duration_seconds",
		Help:      "Duration of calls to the external weather provider.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"outcome"},
)

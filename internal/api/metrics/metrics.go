// Package metrics defines and registers all custom Prometheus metrics for the
// onboarding flow service. It is the single source of truth for metric names,
// labels, and help strings.
//
// Collectors register with the default Prometheus registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "onboarding"

// ── Flow metrics ──────────────────────────────────────────────────────────────

// ActionsTotal counts dispatched user actions.
// Labels:
//   - action: the action name (e.g. "select_goal", "go_back")
//   - result: "applied" or "ignored" (precondition did not hold)
var ActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "actions_total",
		Help:      "Total number of onboarding actions, by action and result.",
	},
	[]string{"action", "result"},
)

// ScreenViewsTotal counts views served per screen.
var ScreenViewsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "screen_views_total",
		Help:      "Total number of screen views served, by screen.",
	},
	[]string{"screen"},
)

// LiveSessions is the number of flows currently held in memory.
var LiveSessions = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "live_sessions",
		Help:      "Number of onboarding sessions currently held in memory.",
	},
)

// ── Analytics forwarding ─────────────────────────────────────────────────────

// AnalyticsForwardedTotal counts forwarding outcomes.
// Label:
//   - result: "ok", "error" (repository rejected) or "dropped" (queue full)
var AnalyticsForwardedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analytics_forwarded_total",
		Help:      "Total number of analytics events handed to the forwarder, by result.",
	},
	[]string{"result"},
)

// AnalyticsQueueDepth tracks the events waiting in each forwarder worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AnalyticsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "analytics_queue_depth",
		Help:      "Current number of events pending in each forwarder worker channel.",
	},
	[]string{"worker_id"},
)

// AnalyticsForwardDuration measures one repository insert.
var AnalyticsForwardDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "analytics_forward_duration_seconds",
		Help:      "Duration of a single forwarded event insert.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)

// ── Storage ───────────────────────────────────────────────────────────────────

// StorageErrorsTotal counts failed storage calls, breaker rejections included.
// Labels:
//   - store: "durable" or "session"
//   - op: "get", "set" or "delete"
var StorageErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "storage_errors_total",
		Help:      "Total number of failed key-value storage calls.",
	},
	[]string{"store", "op"},
)

// ObserveStorageFailure matches resilience.FailureObserver.
func ObserveStorageFailure(store, op string) {
	StorageErrorsTotal.WithLabelValues(store, op).Inc()
}

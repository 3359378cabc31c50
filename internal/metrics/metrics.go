// Package metrics defines and registers all custom Prometheus metrics for the
// booking service. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "futsal"

// ── Identity metrics ──────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Labels:
//   - role: requested role ("regular", "owner", "administrator", or "unknown")
//   - result: "created" or the rejection reason (e.g. "duplicate_handle")
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "invalid_credentials" / "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Catalog and ledger metrics ────────────────────────────────────────────────

// FacilitiesAddedTotal counts facilities added to the catalog.
var FacilitiesAddedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "facilities_added_total",
		Help:      "Total number of facilities added to the catalog.",
	},
)

// ReservationsTotal counts reservation attempts.
// Label:
//   - result: "created", "slot_unavailable", "unknown_slot", "missing_field", ...
var ReservationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reservations_total",
		Help:      "Total number of reservation attempts, by result.",
	},
	[]string{"result"},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsTotal counts reservation notifications.
// Label:
//   - result: "delivered", "failed", or "dropped"
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of reservation notifications, by result.",
	},
	[]string{"result"},
)

// NotificationQueueDepth tracks the number of events waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var NotificationQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notification_queue_depth",
		Help:      "Current number of events pending in each notifier worker channel.",
	},
	[]string{"worker_id"},
)

// ── HTTP metrics ──────────────────────────────────────────────────────────────

// HTTPRequestDuration measures request handling time.
// Labels:
//   - method, route: the matched echo route (e.g. "/v1/facilities/:id")
//   - status: response status code
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests handled by the booking shell.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route", "status"},
)

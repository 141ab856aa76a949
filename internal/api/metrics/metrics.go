// Package metrics defines and registers all custom Prometheus metrics for
// the careers platform. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "careers"

// SignupsTotal counts successful end-user registrations.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of successful user signups.",
	},
)

// LoginsTotal counts successful logins.
// Label:
//   - kind: the principal kind ("user", "admin", "intern")
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of successful logins, by principal kind.",
	},
	[]string{"kind"},
)

// ApplicationsSubmittedTotal counts accepted job applications.
// Label:
//   - position: the position applied for
var ApplicationsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_submitted_total",
		Help:      "Total number of job applications submitted, by position.",
	},
	[]string{"position"},
)

// StatusUpdatesTotal counts admin status changes on applications.
// Label:
//   - status: the status that was applied
var StatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "application_status_updates_total",
		Help:      "Total number of application status updates, by new status.",
	},
	[]string{"status"},
)

// EmailsTotal counts notification outcomes.
// Label:
//   - outcome: "sent", "logged" (dispatch disabled), "dispatch_failed",
//     or "record_failed" (audit insert failed)
var EmailsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "emails_total",
		Help:      "Total number of notifications, by outcome.",
	},
	[]string{"outcome"},
)

// TaskSubmissionsTotal counts intern task submissions.
var TaskSubmissionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "task_submissions_total",
		Help:      "Total number of intern task submissions.",
	},
)

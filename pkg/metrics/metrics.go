package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Alert pass metrics
	PassRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sfbb_alert_pass_runs_total",
			Help: "Total number of alert passes started",
		},
		[]string{"trigger"}, // trigger: scheduler, manual, cron
	)

	PassDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sfbb_alert_pass_duration_seconds",
			Help:    "Time taken by a full alert pass",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	TenantsProcessedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sfbb_tenants_processed_total",
			Help: "Total number of tenants processed across all passes",
		},
	)

	TenantFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sfbb_tenant_failures_total",
			Help: "Total number of tenants skipped due to errors or panics",
		},
	)

	AlertsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sfbb_alerts_created_total",
			Help: "Total number of alerts persisted",
		},
		[]string{"type", "severity"},
	)

	AlertsSuppressedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sfbb_alerts_suppressed_total",
			Help: "Total number of candidate alerts suppressed by the dedupe window",
		},
	)

	CheckRoutineErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sfbb_check_routine_errors_total",
			Help: "Total number of per-routine store errors",
		},
		[]string{"routine"},
	)

	NotifyFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sfbb_notify_failures_total",
			Help: "Total number of failed critical-alert notifications",
		},
	)
)

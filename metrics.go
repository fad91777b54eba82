package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sweepsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "migban_alert_sweeps_total",
		Help: "Number of alert sweep passes started.",
	})

	alertsChecked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "migban_alerts_checked_total",
		Help: "Alerts that were due and had their criteria evaluated.",
	})

	alertsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "migban_alerts_skipped_total",
		Help: "Alerts skipped by the notification frequency throttle.",
	})

	alertsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "migban_alerts_failed_total",
		Help: "Alerts whose processing failed during a sweep.",
	})

	notificationsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "migban_notifications_sent_total",
		Help: "Push notifications accepted by the provider.",
	})

	pushFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "migban_push_failures_total",
		Help: "Push notifications rejected by the provider.",
	})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "migban_http_requests_total",
		Help: "HTTP requests by method and status code.",
	}, []string{"method", "code"})
)

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "petcare"

// Collector agrupa las métricas del servicio sobre un registry propio
// (evita colisiones con el registry global en tests).
type Collector struct {
	registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	RemindersGenerated   *prometheus.CounterVec
	ScheduleFailures     prometheus.Counter
	NotificationFailures prometheus.Counter
	StatusChanges        *prometheus.CounterVec
}

func New() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		registry: reg,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		RemindersGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminders_generated_total",
			Help:      "Reminders persisted by the scheduling engine, by type",
		}, []string{"type"}),
		ScheduleFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminder_schedule_failures_total",
			Help:      "Pet registrations whose reminders could not be persisted",
		}),
		NotificationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_failures_total",
			Help:      "Notification dispatches that failed (swallowed)",
		}),
		StatusChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminder_status_changes_total",
			Help:      "Effective reminder status transitions, by target status",
		}, []string{"status"}),
	}

	reg.MustRegister(
		c.HTTPRequests,
		c.HTTPDuration,
		c.RemindersGenerated,
		c.ScheduleFailures,
		c.NotificationFailures,
		c.StatusChanges,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return c
}

// Registry expone el registry (tests con testutil).
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler sirve /metrics.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	UsersRegistered prometheus.Counter
	LoginsSucceeded prometheus.Counter
	LoginsFailed    prometheus.Counter
	ProjectsCreated prometheus.Counter
	TasksCreated    prometheus.Counter
	RequestDuration *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return NewWithRegistry(nil)
}

// NewWithRegistry registers metrics against the given registerer. A nil
// registerer uses the default one; tests pass their own to avoid duplicate
// registration panics across cases.
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		UsersRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "taskdeck_users_registered_total",
			Help: "Total number of user accounts created.",
		}),
		LoginsSucceeded: factory.NewCounter(prometheus.CounterOpts{
			Name: "taskdeck_logins_succeeded_total",
			Help: "Total number of successful logins.",
		}),
		LoginsFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "taskdeck_logins_failed_total",
			Help: "Total number of rejected login attempts.",
		}),
		ProjectsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "taskdeck_projects_created_total",
			Help: "Total number of projects created.",
		}),
		TasksCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "taskdeck_tasks_created_total",
			Help: "Total number of tasks created.",
		}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "taskdeck_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

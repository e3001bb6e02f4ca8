// Package monitoring exposes policy and HTTP metrics.
package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MonitorInterface interface {
	QuotaDecision(check, outcome string)
	AuthorizationDecision(allowed bool)
	ReconcileRun(outcome string, d time.Duration)
	SubscriptionsExpired(n int64)
	HTTPRequest(method, route string, status int, d time.Duration)
}

// Monitor records metrics into its own prometheus registry.
type Monitor struct {
	registry      *prometheus.Registry
	quota         *prometheus.CounterVec
	authz         *prometheus.CounterVec
	reconcile     *prometheus.HistogramVec
	expired       prometheus.Counter
	httpDurations *prometheus.HistogramVec
}

func NewMonitor(service string) *Monitor {
	labels := prometheus.Labels{"service": service}
	m := &Monitor{
		registry: prometheus.NewRegistry(),
		quota: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "quota_decisions_total",
			Help:        "Quota checks by check and outcome.",
			ConstLabels: labels,
		}, []string{"check", "outcome"}),
		authz: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "authorization_decisions_total",
			Help:        "Role guard decisions.",
			ConstLabels: labels,
		}, []string{"allowed"}),
		reconcile: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "plan_reconcile_duration_seconds",
			Help:        "Duration of plan reconciliation runs per recruiter.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"outcome"}),
		expired: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "subscriptions_expired_total",
			Help:        "Subscriptions moved to expired by the sweep.",
			ConstLabels: labels,
		}),
		httpDurations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	m.registry.MustRegister(
		m.quota,
		m.authz,
		m.reconcile,
		m.expired,
		m.httpDurations,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Monitor) QuotaDecision(check, outcome string) {
	m.quota.WithLabelValues(check, outcome).Inc()
}

func (m *Monitor) AuthorizationDecision(allowed bool) {
	m.authz.WithLabelValues(strconv.FormatBool(allowed)).Inc()
}

func (m *Monitor) ReconcileRun(outcome string, d time.Duration) {
	m.reconcile.WithLabelValues(outcome).Observe(d.Seconds())
}

func (m *Monitor) SubscriptionsExpired(n int64) {
	m.expired.Add(float64(n))
}

func (m *Monitor) HTTPRequest(method, route string, status int, d time.Duration) {
	m.httpDurations.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

// Registry is exposed for tests.
func (m *Monitor) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Monitor) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Noop discards every metric.
type Noop struct{}

func (Noop) QuotaDecision(string, string)                   {}
func (Noop) AuthorizationDecision(bool)                     {}
func (Noop) ReconcileRun(string, time.Duration)             {}
func (Noop) SubscriptionsExpired(int64)                     {}
func (Noop) HTTPRequest(string, string, int, time.Duration) {}

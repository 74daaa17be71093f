package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns the application's Prometheus registry and metric vectors.
type Collector struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	StoreOperations     *prometheus.CounterVec
	StoreDuration       *prometheus.HistogramVec
	ViewEvents          *prometheus.CounterVec
}

func New(namespace string) *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		registry: reg,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "path", "status_code"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		StoreOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_operations_total",
			Help:      "Record store calls by operation and outcome",
		}, []string{"operation", "status"}),
		StoreDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "store_operation_duration_seconds",
			Help:      "Duration of record store calls in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		ViewEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "view_events_total",
			Help:      "Dispatched catalog view events by type",
		}, []string{"event"}),
	}

	reg.MustRegister(c.HTTPRequestsTotal, c.HTTPRequestDuration, c.StoreOperations, c.StoreDuration, c.ViewEvents)
	return c
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func (c *Collector) Registry() *prometheus.Registry { return c.registry }

func (c *Collector) RecordHTTPRequest(method, path string, statusCode int, d time.Duration) {
	c.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
	c.HTTPRequestDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

func (c *Collector) RecordStoreOperation(op, status string, d time.Duration) {
	c.StoreOperations.WithLabelValues(op, status).Inc()
	c.StoreDuration.WithLabelValues(op).Observe(d.Seconds())
}

func (c *Collector) RecordViewEvent(name string) {
	c.ViewEvents.WithLabelValues(name).Inc()
}

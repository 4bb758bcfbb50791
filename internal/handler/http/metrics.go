package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/hbnb-api/internal/registry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics holds the Prometheus collectors of one Handler. Every Handler
// owns a private registry, so several handlers can live in one process.
type metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	responseSize    *prometheus.HistogramVec

	mountedNamespaces prometheus.Gauge
}

func newMetrics(table *registry.MountTable) *metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	m := &metrics{
		registry: reg,

		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hbnb_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"namespace", "method", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hbnb_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"namespace", "method"},
		),
		responseSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hbnb_http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000},
			},
			[]string{"namespace", "method"},
		),

		mountedNamespaces: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "hbnb_mounted_namespaces",
				Help: "Number of namespaces in the mount table",
			},
		),
	}
	m.mountedNamespaces.Set(float64(table.Len()))

	return m
}

func (m *metrics) handler() http.Handler {
	// compression is left to withGZip
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{DisableCompression: true})
}

func (m *metrics) observe(namespace, method string, status, size int, duration time.Duration) {
	m.requestsTotal.WithLabelValues(namespace, method, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(namespace, method).Observe(duration.Seconds())
	m.responseSize.WithLabelValues(namespace, method).Observe(float64(size))
}

// withMetrics records every request under the namespace that owns its path.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := wrapResponseWriter(w)

		next.ServeHTTP(rw, r)

		h.metrics.observe(h.namespaceOf(r.URL.Path), r.Method, rw.statusCode(), rw.size, time.Since(start))
	})
}

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "riscos"

// Metrics - счётчики генерации и HTTP-запросов на собственном реестре
type Metrics struct {
	registry *prometheus.Registry

	GenerationRuns     *prometheus.CounterVec
	GenerationDuration prometheus.Histogram
	DatasetRows        prometheus.Gauge
	DatasetTotalCost   prometheus.Gauge
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
}

// New регистрирует коллекторы приложения и стандартные коллекторы процесса
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		GenerationRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_runs_total",
			Help:      "Dataset generation runs by outcome.",
		}, []string{"status"}),
		GenerationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Wall time of a full generation run.",
			Buckets:   prometheus.DefBuckets,
		}),
		DatasetRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_rows",
			Help:      "Incidents in the current dataset.",
		}),
		DatasetTotalCost: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_total_cost_brl",
			Help:      "Sum of incident costs in the current dataset.",
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.GenerationRuns,
		m.GenerationDuration,
		m.DatasetRows,
		m.DatasetTotalCost,
		m.HTTPRequests,
		m.HTTPDuration,
	)
	return m
}

// ObserveGeneration фиксирует итог запуска генерации
func (m *Metrics) ObserveGeneration(started time.Time, rows int, totalCost int64, err error) {
	m.GenerationDuration.Observe(time.Since(started).Seconds())
	if err != nil {
		m.GenerationRuns.WithLabelValues("error").Inc()
		return
	}
	m.GenerationRuns.WithLabelValues("success").Inc()
	m.DatasetRows.Set(float64(rows))
	m.DatasetTotalCost.Set(float64(totalCost))
}

// Handler отдаёт метрики в формате Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// GinMiddleware считает запросы по шаблону маршрута, а не по фактическому пути
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

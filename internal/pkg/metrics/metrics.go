package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics HTTP 与业务指标集合，前缀来自配置。
// 每个实例持有独立的 Registry，避免测试里重复注册冲突
type Metrics struct {
	Registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	ContactOperations   *prometheus.CounterVec
	LimitRejections     prometheus.Counter
}

func New(prefix string) *Metrics {
	if prefix == "" {
		prefix = "crm"
	}

	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		Registry: registry,
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		ContactOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_contact_operations_total",
				Help: "Total number of contact operations",
			},
			[]string{"operation"},
		),
		LimitRejections: factory.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + "_limit_rejections_total",
				Help: "Total number of creates rejected by the contact limit",
			},
		),
	}
}

// RecordContactOperation 记录一次联系人操作
func (m *Metrics) RecordContactOperation(operation string) {
	m.ContactOperations.WithLabelValues(operation).Inc()
}

// ObserveRequest 记录一次 HTTP 请求
func (m *Metrics) ObserveRequest(method, path, status string, start time.Time) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics concentra os contadores Prometheus do serviço. Todos os métodos
// aceitam receiver nulo para que componentes possam rodar sem métricas em
// testes.
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Upstream API metrics
	UpstreamCalls    *prometheus.CounterVec
	UpstreamDuration *prometheus.HistogramVec
	UpstreamFailures *prometheus.CounterVec
}

func New() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),

		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		UpstreamCalls: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "upstream_api_calls_total",
				Help: "Total number of upstream ads API calls",
			},
			[]string{"resource", "status"},
		),

		UpstreamDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "upstream_api_duration_seconds",
				Help:    "Upstream ads API call duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"resource"},
		),

		UpstreamFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "upstream_api_failures_total",
				Help: "Total number of upstream ads API failures",
			},
			[]string{"resource", "error_type"},
		),
	}
}

// RecordHTTPRequest registra uma requisição HTTP atendida.
func (m *Metrics) RecordHTTPRequest(method, path, statusCode string, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordUpstreamCall registra uma chamada concluída à API upstream.
func (m *Metrics) RecordUpstreamCall(resource, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.UpstreamCalls.WithLabelValues(resource, status).Inc()
	m.UpstreamDuration.WithLabelValues(resource).Observe(duration.Seconds())
}

// RecordUpstreamFailure registra uma falha antes ou durante a chamada.
func (m *Metrics) RecordUpstreamFailure(resource, errorType string) {
	if m == nil {
		return
	}
	m.UpstreamFailures.WithLabelValues(resource, errorType).Inc()
}

package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/ads-report-api/pkg/metrics"
)

// MetricsMiddleware registra contadores e latência de cada requisição HTTP.
func MetricsMiddleware(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			lrw := newLoggingResponseWriter(w)
			next.ServeHTTP(lrw, r)

			m.RecordHTTPRequest(
				r.Method,
				r.URL.Path,
				strconv.Itoa(lrw.statusCode),
				time.Since(start),
			)
		})
	}
}

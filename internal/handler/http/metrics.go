package http

import (
	"net/http"
	"strconv"
	"time"

	"datapulse/internal/handler/http/pathutil"
	"datapulse/internal/handler/http/responsewriter"
	appmetrics "datapulse/internal/observability/metrics"
	"datapulse/pkg/metrics"
)

// MetricsMiddleware records request metrics around every handler:
// the in-progress gauge is held for the duration of the request, and
// on completion the request counter and latency histogram are recorded
// with the method, normalized endpoint, and status labels. Paths are
// normalized (e.g. /data/123 to /data/:id) so label cardinality stays
// bounded.
func MetricsMiddleware(m *appmetrics.AppMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m.RequestStarted()
			defer m.RequestFinished()

			endpoint := pathutil.NormalizePath(r.URL.Path)
			wrapped := responsewriter.Wrap(w)

			start := time.Now()
			next.ServeHTTP(wrapped, r)
			elapsed := time.Since(start)

			status := strconv.Itoa(wrapped.Status())
			m.RecordHTTPRequest(r.Method, endpoint, status, elapsed)
		})
	}
}

// MetricsHandler serves the registry's current state in the Prometheus
// text exposition format.
func MetricsHandler(reg *metrics.Registry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", metrics.ContentType)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(reg.RenderBytes())
	})
}

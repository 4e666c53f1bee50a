package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/turtacn/MolCanvas/internal/infrastructure/monitoring/prometheus"
)

// HTTPMetrics returns middleware that records one Prometheus observation per
// completed request. The path label uses the chi route pattern
// ("/api/v1/sessions/{sessionID}/atoms") rather than the raw URL so that
// session IDs do not explode label cardinality.
func HTTPMetrics(metrics *prometheus.AppMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := newWrappedResponseWriter(w)

			next.ServeHTTP(wrapped, r)

			path := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					path = pattern
				}
			}

			reqSize := r.ContentLength
			if reqSize < 0 {
				reqSize = 0
			}

			prometheus.RecordHTTPRequest(
				metrics,
				r.Method,
				path,
				wrapped.statusCode,
				time.Since(start),
				reqSize,
				wrapped.bytesWritten,
			)
		})
	}
}

//Personal.AI order the ending

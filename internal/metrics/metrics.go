// Package metrics exposes Prometheus counters for the HTTP surface and
// the essay grading pipeline.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequests counts handled requests by path, method and status code.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eikenhub_http_requests_total",
			Help: "Total number of handled HTTP requests",
		},
		[]string{"path", "method", "code"},
	)

	// EssayGrades counts essay grading calls by outcome (graded or one of
	// the fallback variants).
	EssayGrades = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eikenhub_essay_grades_total",
			Help: "Total number of essay grading requests by outcome",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequests, EssayGrades)
}

// Middleware records a counter sample for every completed request. The
// path label is the chi route pattern, not the raw URL, so per-board
// and per-user paths stay bounded.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}
		HTTPRequests.WithLabelValues(path, r.Method, strconv.Itoa(ww.Status())).Inc()
	})
}

// Handler serves the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

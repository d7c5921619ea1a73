package middlewares

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	errorTypeClient      = "client_error"
	errorTypeServer      = "server_error"
	errorTypeRateLimited = "rate_limited"
	errorTypePanic       = "panic"

	metricsPath = "/metrics"
)

var durationBuckets = []float64{0.01, 0.05, 0.1, 0.2, 0.3, 0.4, 0.5, 0.75, 1, 2, 5}

// Metrics holds the HTTP collectors exposed on /metrics.
type Metrics struct {
	RequestDuration *prometheus.HistogramVec
	RequestsTotal   *prometheus.CounterVec
	ErrorsTotal     *prometheus.CounterVec
	HandlerDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with registerer.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: durationBuckets,
		}, []string{"method", "route", "code"}),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "route", "code"}),
		ErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_request_errors_total",
			Help: "Total number of HTTP request errors",
		}, []string{"method", "route", "code", "error_type"}),
		HandlerDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "api_handler_duration_seconds",
			Help:    "Duration of API handler execution in seconds",
			Buckets: durationBuckets,
		}, []string{"handler", "success"}),
	}
	registerer.MustRegister(metrics.RequestDuration, metrics.RequestsTotal, metrics.ErrorsTotal, metrics.HandlerDuration)
	return metrics
}

type errorTypeKey struct{}

// markErrorType tags the request with a specific error type for Instrument to record.
func markErrorType(r *http.Request, errorType string) {
	if slot, ok := r.Context().Value(errorTypeKey{}).(*string); ok {
		*slot = errorType
	}
}

// Instrument records duration and count per route pattern, and counts every response
// with status >= 400 once in ErrorsTotal.
func (m *Middlewares) Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.Metrics == nil || r.URL.Path == metricsPath {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		var errorType string
		r = r.WithContext(context.WithValue(r.Context(), errorTypeKey{}, &errorType))
		rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := r.URL.Path
		if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
			if pattern := routeCtx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		code := strconv.Itoa(rec.statusCode)
		m.Metrics.RequestDuration.WithLabelValues(r.Method, route, code).Observe(time.Since(start).Seconds())
		m.Metrics.RequestsTotal.WithLabelValues(r.Method, route, code).Inc()
		if rec.statusCode < http.StatusBadRequest {
			return
		}
		if errorType == "" {
			errorType = errorTypeClient
			if rec.statusCode >= http.StatusInternalServerError {
				errorType = errorTypeServer
			}
		}
		m.Metrics.ErrorsTotal.WithLabelValues(r.Method, route, code, errorType).Inc()
	})
}

// TimeHandler observes the execution time of fn under handler. A response with
// status >= 400 is recorded as unsuccessful.
func (m *Middlewares) TimeHandler(handler string, fn http.HandlerFunc) http.HandlerFunc {
	if m.Metrics == nil {
		return fn
	}
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		fn(rec, r)
		success := strconv.FormatBool(rec.statusCode < http.StatusBadRequest)
		m.Metrics.HandlerDuration.WithLabelValues(handler, success).Observe(time.Since(start).Seconds())
	}
}

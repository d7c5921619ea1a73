package middlewares

import (
	"academia-service/internal/app/config"
	"academia-service/internal/pkg/constvars"
	"academia-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestMiddlewares() *Middlewares {
	cfg := &config.InternalConfig{App: config.App{MaxRequests: 2, MaxTimeRequestsPerSeconds: 60}}
	return NewMiddlewares(zap.NewNop(), cfg, NewMetrics(prometheus.NewRegistry()))
}

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares()
	var seen string
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, strings.HasPrefix(seen, constvars.REQUEST_ID_PREFIX))
	assert.Equal(t, seen, rec.Header().Get(constvars.HeaderXRequestID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constvars.HeaderXRequestID, "client-id")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "client-id", seen)
}

func TestRequireSessionToken(t *testing.T) {
	m := newTestMiddlewares()
	var token string
	handler := m.RequireSessionToken(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token = utils.GetSessionToken(r)
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, token)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constvars.HeaderXCSRFToken, " session ")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "session", token)
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.Instrument(m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Metrics.ErrorsTotal.WithLabelValues(http.MethodGet, "/", "500", "panic")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.Metrics.ErrorsTotal))
}

func TestRateLimit(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.Instrument(m.RateLimit()(http.HandlerFunc(okHandler)))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Metrics.ErrorsTotal.WithLabelValues(http.MethodGet, "/", "429", "rate_limited")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.Metrics.ErrorsTotal))
}

func TestInstrumentUsesRoutePattern(t *testing.T) {
	m := newTestMiddlewares()
	router := chi.NewRouter()
	router.Use(m.Instrument)
	router.Get("/classes/{day}", okHandler)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/classes/today", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Metrics.RequestsTotal.WithLabelValues(http.MethodGet, "/classes/{day}", "200")))
	assert.Equal(t, 0, testutil.CollectAndCount(m.Metrics.ErrorsTotal))
}

func TestInstrumentClassifiesErrors(t *testing.T) {
	m := newTestMiddlewares()
	router := chi.NewRouter()
	router.Use(m.Instrument)
	router.Get("/bad", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusBadRequest) })
	router.Get("/down", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusBadGateway) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/bad", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/down", nil))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.Metrics.ErrorsTotal.WithLabelValues(http.MethodGet, "/bad", "400", "client_error")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Metrics.ErrorsTotal.WithLabelValues(http.MethodGet, "/down", "502", "server_error")))
}

func TestTimeHandler(t *testing.T) {
	m := newTestMiddlewares()
	ok := m.TimeHandler("timetable", okHandler)
	failing := m.TimeHandler("timetable", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	ok(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	ok(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	failing(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	// one series per success label
	assert.Equal(t, 2, testutil.CollectAndCount(m.Metrics.HandlerDuration))
}

func TestLoggingPassesThrough(t *testing.T) {
	m := newTestMiddlewares()
	rec := httptest.NewRecorder()
	m.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

package routers

import (
	"academia-service/internal/app/config"
	"academia-service/internal/app/contracts/mocks"
	"academia-service/internal/app/delivery/http/controllers"
	"academia-service/internal/app/delivery/http/middlewares"
	"academia-service/internal/app/models"
	"academia-service/internal/pkg/constvars"
	"academia-service/internal/pkg/dto/responses"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type routerFixture struct {
	router    *chi.Mux
	calendar  *mocks.CalendarUsecase
	courses   *mocks.CourseUsecase
	timetable *mocks.TimetableUsecase
	academic  *mocks.AcademicUsecase
}

func newRouterFixture() *routerFixture {
	logger := zap.NewNop()
	cfg := &config.InternalConfig{App: config.App{
		EndpointPrefix:            "/api",
		Version:                   "v1.0",
		Timezone:                  "UTC",
		AllowedOrigins:            []string{"*"},
		MaxRequests:               100,
		MaxTimeRequestsPerSeconds: 60,
	}}
	registry := prometheus.NewRegistry()

	f := &routerFixture{
		router:    chi.NewRouter(),
		calendar:  new(mocks.CalendarUsecase),
		courses:   new(mocks.CourseUsecase),
		timetable: new(mocks.TimetableUsecase),
		academic:  new(mocks.AcademicUsecase),
	}
	SetupRoutes(
		f.router,
		cfg,
		middlewares.NewMiddlewares(logger, cfg, middlewares.NewMetrics(registry)),
		&Controllers{
			Calendar:  controllers.NewCalendarController(logger, f.calendar, cfg),
			Course:    controllers.NewCourseController(logger, f.courses, cfg),
			Timetable: controllers.NewTimetableController(logger, f.timetable, cfg),
			Academic:  controllers.NewAcademicController(logger, f.academic, cfg),
			Health:    controllers.NewHealthController(cfg),
		},
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	)
	return f
}

func (f *routerFixture) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	f := newRouterFixture()

	assert.Equal(t, http.StatusOK, f.serve(httptest.NewRequest(http.MethodGet, "/health", nil)).Code)

	rec := f.serve(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}

func TestRouter_DayOrderIsPublic(t *testing.T) {
	f := newRouterFixture()
	f.calendar.On("GetDayOrder", mock.Anything, mock.Anything).Return(&models.DayOrderResolution{
		DayOrder: "3", Found: true, Status: constvars.StatusOK,
	}, nil)

	rec := f.serve(httptest.NewRequest(http.MethodGet, "/api/v1/dayorder/tomorrow", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(constvars.HeaderXRequestID))

	metrics := f.serve(httptest.NewRequest(http.MethodGet, "/metrics", nil)).Body.String()
	assert.Contains(t, metrics, `api_handler_duration_seconds_count{handler="dayorder_tomorrow",success="true"} 1`)
}

func TestRouter_SessionRoutesRequireToken(t *testing.T) {
	f := newRouterFixture()

	for _, target := range []string{"/api/v1/courses", "/api/v1/timetable", "/api/v1/classes/today", "/api/v1/all"} {
		rec := f.serve(httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
	}
	f.courses.AssertNotCalled(t, "GetCourses", mock.Anything, mock.Anything)

	metrics := f.serve(httptest.NewRequest(http.MethodGet, "/metrics", nil)).Body.String()
	assert.Contains(t, metrics, `http_request_errors_total{code="401",error_type="client_error",method="GET"`)
}

func TestRouter_TimetableWithToken(t *testing.T) {
	f := newRouterFixture()
	f.timetable.On("GenerateTimetable", mock.Anything, "session", "1").Return(&responses.Timetable{RegNumber: "RA01", Batch: "1"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/timetable?batch=1", nil)
	req.Header.Set(constvars.HeaderXCSRFToken, "session")
	rec := f.serve(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	f.timetable.AssertExpectations(t)
}

func TestRouter_ExportIsPost(t *testing.T) {
	f := newRouterFixture()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/timetable/export", nil)
	req.Header.Set(constvars.HeaderXCSRFToken, "session")
	assert.Equal(t, http.StatusMethodNotAllowed, f.serve(req).Code)
}

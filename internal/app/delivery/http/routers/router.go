package routers

import (
	"academia-service/internal/app/config"
	"academia-service/internal/app/delivery/http/controllers"
	"academia-service/internal/app/delivery/http/middlewares"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

const apiVersionPrefix = "/v1"

type Controllers struct {
	Calendar  *controllers.CalendarController
	Course    *controllers.CourseController
	Timetable *controllers.TimetableController
	Academic  *controllers.AcademicController
	Health    *controllers.HealthController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	controllers *Controllers,
	metricsHandler http.Handler,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.Instrument)
	router.Use(middlewares.ErrorHandler)

	router.Get("/health", controllers.Health.Health)
	if metricsHandler != nil {
		router.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	endpointPrefix := "/" + strings.Trim(internalConfig.App.EndpointPrefix, "/")

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(apiVersionPrefix, func(r chi.Router) {
			r.Use(middlewares.RateLimit())

			r.Route("/calendar", func(r chi.Router) {
				attachCalendarRoutes(r, middlewares, controllers.Calendar)
			})

			r.Route("/dayorder", func(r chi.Router) {
				attachDayOrderRoutes(r, middlewares, controllers.Calendar)
			})

			r.Group(func(r chi.Router) {
				r.Use(middlewares.RequireSessionToken)

				r.Route("/courses", func(r chi.Router) {
					attachCourseRoutes(r, middlewares, controllers.Course)
				})

				r.Route("/timetable", func(r chi.Router) {
					attachTimetableRoutes(r, middlewares, controllers.Timetable)
				})

				r.Route("/classes", func(r chi.Router) {
					attachClassRoutes(r, middlewares, controllers.Timetable)
				})

				r.Get("/all", middlewares.TimeHandler("all", controllers.Academic.GetAll))
			})
		})
	})
}

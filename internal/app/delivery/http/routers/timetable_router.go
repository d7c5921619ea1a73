package routers

import (
	"academia-service/internal/app/delivery/http/controllers"
	"academia-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachTimetableRoutes(router chi.Router, mw *middlewares.Middlewares, timetableController *controllers.TimetableController) {
	router.Get("/", mw.TimeHandler("timetable", timetableController.GetTimetable))
	router.Post("/export", mw.TimeHandler("timetable_export", timetableController.ExportTimetable))
}

func attachClassRoutes(router chi.Router, mw *middlewares.Middlewares, timetableController *controllers.TimetableController) {
	router.Get("/today", mw.TimeHandler("classes_today", timetableController.GetClassesToday))
	router.Get("/tomorrow", mw.TimeHandler("classes_tomorrow", timetableController.GetClassesTomorrow))
	router.Get("/day-after-tomorrow", mw.TimeHandler("classes_day_after_tomorrow", timetableController.GetClassesDayAfterTomorrow))
}

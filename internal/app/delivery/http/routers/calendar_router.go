package routers

import (
	"academia-service/internal/app/delivery/http/controllers"
	"academia-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachCalendarRoutes(router chi.Router, mw *middlewares.Middlewares, calendarController *controllers.CalendarController) {
	router.Get("/", mw.TimeHandler("calendar", calendarController.GetCalendar))
}

func attachDayOrderRoutes(router chi.Router, mw *middlewares.Middlewares, calendarController *controllers.CalendarController) {
	router.Get("/", mw.TimeHandler("dayorder_today", calendarController.GetDayOrderToday))
	router.Get("/tomorrow", mw.TimeHandler("dayorder_tomorrow", calendarController.GetDayOrderTomorrow))
	router.Get("/day-after-tomorrow", mw.TimeHandler("dayorder_day_after_tomorrow", calendarController.GetDayOrderDayAfterTomorrow))
}

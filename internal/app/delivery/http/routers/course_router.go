package routers

import (
	"academia-service/internal/app/delivery/http/controllers"
	"academia-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachCourseRoutes(router chi.Router, mw *middlewares.Middlewares, courseController *controllers.CourseController) {
	router.Get("/", mw.TimeHandler("courses", courseController.GetCourses))
}

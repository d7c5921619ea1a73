package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	GetCalendarSuccessMessage     = "calendar fetched successfully"
	GetDayOrderSuccessMessage     = "day order fetched successfully"
	GetCoursesSuccessMessage      = "courses fetched successfully"
	GetTimetableSuccessMessage    = "timetable fetched successfully"
	ExportTimetableSuccessMessage = "timetable exported successfully"
	GetDayClassesSuccessMessage   = "classes fetched successfully"
	GetAcademicDataSuccessMessage = "academic data fetched successfully"
	HealthCheckSuccessMessage     = "service is healthy"
)

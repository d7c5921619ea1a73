package constvars

type ContextKey string

const (
	ResourceCalendar  = "calendar"
	ResourceDayOrder  = "day order"
	ResourceCourses   = "courses"
	ResourceTimetable = "timetable"
	ResourceUser      = "user"
	ResourceClasses   = "today's classes"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_TOKEN_KEY        ContextKey = "session_token"
)

const (
	REQUEST_ID_PREFIX = "ACDM_SVC_"
)

const (
	AppEnvironmentProduction  = "production"
	AppEnvironmentDevelopment = "development"
)

const (
	DateLayoutISO = "2006-01-02"
)

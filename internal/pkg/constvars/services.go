package constvars

const (
	RedisKeyPlannerPrefix = "academia:planner:"
	RedisKeyCoursesPrefix = "academia:courses:"
	RedisKeyUserPrefix    = "academia:user:"
	RedisKeyPlannerLock   = "academia:planner-refresh:leader"
)

const (
	MongoCollectionPlannerSnapshots = "planner_snapshots"
)

const (
	EventTypeTimetableGenerated = "timetable.generated"
)

const (
	ExportObjectPrefix = "timetables"
	ExportQuotaGroup   = "export"
	FileExtensionJSON  = ".json"
)

// Academia upstream endpoints
const (
	AcademiaPathPlanner = "/planner"
	AcademiaPathCourses = "/courses"
	AcademiaPathUser    = "/user"
)

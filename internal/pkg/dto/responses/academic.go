package responses

// AcademicData carries every aggregate source. Each field holds either the source payload
// or a SourceError.
type AcademicData struct {
	User      interface{} `json:"user"`
	Courses   interface{} `json:"courses"`
	Calendar  interface{} `json:"calendar"`
	DayOrder  interface{} `json:"dayOrder"`
	Timetable interface{} `json:"timetable"`
	Classes   interface{} `json:"todayClasses"`
}

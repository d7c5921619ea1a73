package models

// ClassBlock is one row of a printed timetable. Times are 24-hour "HH:MM".
type ClassBlock struct {
	Code       string     `json:"code"`
	Title      string     `json:"name"`
	CourseType CourseType `json:"courseType"`
	Room       string     `json:"roomNo"`
	Online     bool       `json:"online"`
	Slot       string     `json:"slot"`
	StartTime  string     `json:"startTime"`
	EndTime    string     `json:"endTime"`
}

type DaySchedule struct {
	Day      int          `json:"day"`
	DayOrder string       `json:"dayOrder"`
	Table    []ClassBlock `json:"table"`
}

type TimetableResult struct {
	RegNumber string        `json:"regNumber"`
	Batch     string        `json:"batch"`
	Schedule  []DaySchedule `json:"schedule"`
}

type TimetableGeneratedEvent struct {
	EventID     string `json:"eventId"`
	EventType   string `json:"eventType"`
	RegNumber   string `json:"regNumber"`
	Batch       string `json:"batch"`
	DayCount    int    `json:"dayCount"`
	BlockCount  int    `json:"blockCount"`
	GeneratedAt string `json:"generatedAt"`
}

type TimetableExport struct {
	ObjectName string `json:"objectName"`
	URL        string `json:"url"`
	ExpiresAt  string `json:"expiresAt"`
}

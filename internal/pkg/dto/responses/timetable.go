package responses

import "academia-service/internal/app/models"

// TimetableBlock is a class block with its 12-hour display range, e.g. "8:00 AM-9:40 AM".
type TimetableBlock struct {
	models.ClassBlock
	TimeSlot string `json:"timeSlot"`
}

type TimetableDay struct {
	Day      int              `json:"day"`
	DayOrder string           `json:"dayOrder"`
	Table    []TimetableBlock `json:"table"`
}

type Timetable struct {
	RegNumber string         `json:"regNumber"`
	Batch     string         `json:"batch"`
	Schedule  []TimetableDay `json:"schedule"`
}

type DayClasses struct {
	Date     int              `json:"date"`
	Day      string           `json:"day"`
	DayOrder string           `json:"dayOrder"`
	Event    string           `json:"event,omitempty"`
	Holiday  bool             `json:"holiday"`
	Found    bool             `json:"found"`
	Classes  []TimetableBlock `json:"classes"`
}

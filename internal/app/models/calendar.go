package models

import "time"

// DayRecord is one planner cell: a calendar date, its weekday label, an optional event,
// and the day-order code ("1".."5", or "-" on holidays).
type DayRecord struct {
	Date     int    `json:"date" bson:"date"`
	Day      string `json:"day" bson:"day"`
	Event    string `json:"event" bson:"event"`
	DayOrder string `json:"dayOrder" bson:"day_order"`
}

// MonthBucket groups the day records found under one month header, e.g. "Jan'25".
type MonthBucket struct {
	Month string      `json:"month" bson:"month"`
	Days  []DayRecord `json:"days" bson:"days"`
}

type Calendar []MonthBucket

// PlannerTable is the tokenized academic planner as handed over by the document parser:
// the header labels and every row's trimmed cell text.
type PlannerTable struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// PlannerSnapshot is the last calendar successfully built for a planner document.
type PlannerSnapshot struct {
	PlannerName string    `json:"plannerName" bson:"planner_name"`
	Calendar    Calendar  `json:"calendar" bson:"calendar"`
	FetchedAt   time.Time `json:"fetchedAt" bson:"fetched_at"`
}

// DayWindow holds the entries for a reference date and the two days after it.
type DayWindow struct {
	Today            *DayRecord `json:"today"`
	Tomorrow         *DayRecord `json:"tomorrow"`
	DayAfterTomorrow *DayRecord `json:"dayAfterTomorrow"`
	MonthIndex       int        `json:"index"`
	WeakMatch        bool       `json:"weakMatch"`
}

type DayOrderResolution struct {
	Date     int    `json:"date"`
	Day      string `json:"day"`
	DayOrder string `json:"dayOrder"`
	Event    string `json:"event"`
	Found    bool   `json:"found"`
	Status   int    `json:"status"`
	Error    bool   `json:"error,omitempty"`
	Message  string `json:"message,omitempty"`

	// WeakMatch is set when the reference month is absent from the planner.
	WeakMatch bool `json:"weakMatch,omitempty"`
}

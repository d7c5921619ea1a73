package calendar

import (
	"academia-service/internal/app/models"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullMonth(label string, days int, firstOrder int) models.MonthBucket {
	bucket := models.MonthBucket{Month: label}
	for d := 1; d <= days; d++ {
		bucket.Days = append(bucket.Days, models.DayRecord{
			Date:     d,
			Day:      "Mon",
			Event:    fmt.Sprintf("%s/%d", label, d),
			DayOrder: fmt.Sprintf("%d", (firstOrder+d-2)%5+1),
		})
	}
	return bucket
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 9, 0, 0, 0, time.UTC)
}

func TestBuildCalendar(t *testing.T) {
	table := models.PlannerTable{
		Headers: []string{"Jan'25", "", "Feb'25", "Academic Planner"},
		Rows: [][]string{
			{"Dt", "Day", "Event", "DO", "", "Dt", "Day", "Event", "DO", ""},
			{"1", "Wed", "New Year", "-", "", "1", "Sat", "", "3", ""},
			{"2", "Thu", "", "1", "", "2", "Sun", "", "", ""},
			{" 3 ", "Fri", "", " 2 ", ""},
			{"", "Sat", "", "4", "", "x", "Mon", "", "4", ""},
		},
	}

	calendar := BuildCalendar(table)

	require.Len(t, calendar, 2)
	assert.Equal(t, "Jan'25", calendar[0].Month)
	assert.Equal(t, "Feb'25", calendar[1].Month)

	assert.Equal(t, []models.DayRecord{
		{Date: 1, Day: "Wed", Event: "New Year", DayOrder: "-"},
		{Date: 2, Day: "Thu", Event: "", DayOrder: "1"},
		{Date: 3, Day: "Fri", Event: "", DayOrder: "2"},
	}, calendar[0].Days)

	// empty day order, short row, and non-numeric date are all skipped
	assert.Equal(t, []models.DayRecord{
		{Date: 1, Day: "Sat", Event: "", DayOrder: "3"},
	}, calendar[1].Days)
}

func TestBuildCalendar_NoMonths(t *testing.T) {
	calendar := BuildCalendar(models.PlannerTable{Headers: []string{"Planner"}, Rows: [][]string{{"1", "Mon", "", "1"}}})
	assert.Empty(t, calendar)
}

func TestSortCalendar(t *testing.T) {
	input := models.Calendar{
		{Month: "Mar'25", Days: []models.DayRecord{{Date: 3}, {Date: 1}, {Date: 2}}},
		{Month: "Jan'25", Days: []models.DayRecord{{Date: 2, Event: "first"}, {Date: 1}, {Date: 2, Event: "second"}}},
		{Month: "Sept'25"},
		{Month: "Feb'25"},
	}

	sorted := SortCalendar(input)

	var labels []string
	for _, bucket := range sorted {
		labels = append(labels, bucket.Month)
	}
	assert.Equal(t, []string{"Jan'25", "Feb'25", "Mar'25", "Sept'25"}, labels)

	for _, bucket := range sorted {
		for i := 1; i < len(bucket.Days); i++ {
			assert.LessOrEqual(t, bucket.Days[i-1].Date, bucket.Days[i].Date)
		}
	}
	// duplicates keep scan order
	assert.Equal(t, "first", sorted[0].Days[1].Event)
	assert.Equal(t, "second", sorted[0].Days[2].Event)

	// input is untouched
	assert.Equal(t, "Mar'25", input[0].Month)
	assert.Equal(t, 3, input[0].Days[0].Date)
}

func TestSortCalendar_UnknownMonthLast(t *testing.T) {
	sorted := SortCalendar(models.Calendar{{Month: "Summer'25"}, {Month: "Dec'24"}, {Month: "Jul'25"}})
	assert.Equal(t, "Jul'25", sorted[0].Month)
	assert.Equal(t, "Dec'24", sorted[1].Month)
	assert.Equal(t, "Summer'25", sorted[2].Month)
}

func TestResolve(t *testing.T) {
	calendar := models.Calendar{
		fullMonth("Jan'25", 31, 1),
		fullMonth("Feb'25", 28, 3),
		fullMonth("Mar'25", 31, 1),
	}

	tests := []struct {
		name             string
		reference        time.Time
		today            string
		tomorrow         string
		dayAfterTomorrow string
		monthIndex       int
	}{
		{"middle of month", date(2025, time.January, 10), "Jan'25/10", "Jan'25/11", "Jan'25/12", 0},
		{"second to last day", date(2025, time.January, 30), "Jan'25/30", "Jan'25/31", "Feb'25/1", 0},
		{"last day crosses into next month", date(2025, time.January, 31), "Jan'25/31", "Feb'25/1", "Feb'25/2", 0},
		{"short month boundary", date(2025, time.February, 28), "Feb'25/28", "Mar'25/1", "Mar'25/2", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := Resolve(calendar, tt.reference)
			assert.Equal(t, tt.monthIndex, window.MonthIndex)
			assert.False(t, window.WeakMatch)
			assert.Equal(t, tt.today, describe(window.Today))
			assert.Equal(t, tt.tomorrow, describe(window.Tomorrow))
			assert.Equal(t, tt.dayAfterTomorrow, describe(window.DayAfterTomorrow))
		})
	}
}

// describe names a record by the month/date tag fullMonth stores in its event.
func describe(record *models.DayRecord) string {
	if record == nil {
		return "<nil>"
	}
	return record.Event
}

func TestResolve_SpansTwoBuckets(t *testing.T) {
	calendar := models.Calendar{
		{Month: "Jan'25", Days: []models.DayRecord{{Date: 1, DayOrder: "1"}, {Date: 2, DayOrder: "2"}}},
		{Month: "Feb'25", Days: []models.DayRecord{{Date: 1, DayOrder: "3"}}},
		{Month: "Mar'25", Days: []models.DayRecord{{Date: 1, DayOrder: "4"}, {Date: 2, DayOrder: "5"}}},
	}

	window := Resolve(calendar, date(2025, time.January, 2))

	require.NotNil(t, window.Today)
	assert.Equal(t, "2", window.Today.DayOrder)
	require.NotNil(t, window.Tomorrow)
	assert.Equal(t, "3", window.Tomorrow.DayOrder)
	require.NotNil(t, window.DayAfterTomorrow)
	assert.Equal(t, "4", window.DayAfterTomorrow.DayOrder)
}

func TestResolve_NoFollowingBucket(t *testing.T) {
	calendar := models.Calendar{fullMonth("Jan'25", 31, 1)}

	window := Resolve(calendar, date(2025, time.January, 31))

	assert.NotNil(t, window.Today)
	assert.Nil(t, window.Tomorrow)
	assert.Nil(t, window.DayAfterTomorrow)
}

func TestResolve_UnknownMonthFallsBackToFirstBucket(t *testing.T) {
	calendar := models.Calendar{fullMonth("Jan'25", 31, 1), fullMonth("Feb'25", 28, 1)}

	window := Resolve(calendar, date(2025, time.July, 5))

	assert.True(t, window.WeakMatch)
	assert.Equal(t, 0, window.MonthIndex)
	require.NotNil(t, window.Today)
	assert.Equal(t, 5, window.Today.Date)
}

func TestResolve_PositionalLookupShiftsOnGap(t *testing.T) {
	calendar := models.Calendar{{Month: "Jan'25", Days: []models.DayRecord{
		{Date: 1, DayOrder: "1"},
		{Date: 3, DayOrder: "2"},
		{Date: 4, DayOrder: "3"},
	}}}

	window := Resolve(calendar, date(2025, time.January, 2))

	require.NotNil(t, window.Today)
	assert.Equal(t, 3, window.Today.Date)
}

func TestResolve_EmptyCalendar(t *testing.T) {
	window := Resolve(nil, date(2025, time.January, 2))
	assert.Nil(t, window.Today)
	assert.Nil(t, window.Tomorrow)
	assert.Nil(t, window.DayAfterTomorrow)
	assert.True(t, window.WeakMatch)
}

func TestResolveDayOrder(t *testing.T) {
	calendar := models.Calendar{{Month: "Jan'25", Days: []models.DayRecord{
		{Date: 1, Day: "Wed", Event: "New Year", DayOrder: "-"},
		{Date: 2, Day: "Thu", DayOrder: "1"},
	}}}

	found := ResolveDayOrder(calendar, date(2025, time.January, 2))
	assert.Equal(t, models.DayOrderResolution{Date: 2, Day: "Thu", DayOrder: "1", Found: true, Status: 200}, found)

	missing := ResolveDayOrder(calendar, date(2025, time.January, 20))
	assert.False(t, missing.Found)
	assert.True(t, missing.Error)
	assert.Equal(t, 404, missing.Status)
	assert.Equal(t, "No information available for today", missing.Message)
	assert.False(t, missing.WeakMatch)
}

func TestResolveDayOrder_MonthNotInPlanner(t *testing.T) {
	calendar := SortCalendar(models.Calendar{
		{Month: "Feb'25", Days: []models.DayRecord{{Date: 1, Day: "Sat", DayOrder: "-"}, {Date: 2, Day: "Sun", DayOrder: "-"}}},
		{Month: "Jan'25", Days: []models.DayRecord{{Date: 1, Day: "Wed", DayOrder: "-"}, {Date: 2, Day: "Thu", DayOrder: "3"}}},
	})

	resolution := ResolveDayOrder(calendar, date(2025, time.June, 2))
	assert.False(t, resolution.Found)
	assert.True(t, resolution.WeakMatch)
	assert.Equal(t, 404, resolution.Status)
	assert.Empty(t, resolution.DayOrder)
}

func TestParseDayOrder(t *testing.T) {
	tests := []struct {
		code  string
		cycle int
		ok    bool
	}{
		{"1", 1, true},
		{" 5 ", 5, true},
		{"Day 3", 3, true},
		{"day4", 4, true},
		{"-", 0, false},
		{"", 0, false},
		{"6", 0, false},
		{"0", 0, false},
	}
	for _, tt := range tests {
		cycle, ok := ParseDayOrder(tt.code)
		assert.Equal(t, tt.ok, ok, tt.code)
		assert.Equal(t, tt.cycle, cycle, tt.code)
	}
}

package calendar

import (
	"academia-service/internal/app/models"
	"academia-service/internal/pkg/constvars"
	"sort"
	"strconv"
	"strings"
	"time"
)

// monthColumnWidth is the number of planner columns each month occupies:
// date, weekday, event, day order and an empty spacer.
const monthColumnWidth = 5

// dayOrderCycles is the length of the rotating day-order cycle.
const dayOrderCycles = 5

// monthHeaderMarker identifies month header cells such as "Jan'25".
const monthHeaderMarker = "'2"

var monthAbbreviations = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// BuildCalendar lifts day records out of a tokenized multi-month planner table.
// A record is kept only when both its date and day-order cells are filled and the date is
// numeric; every other cell is skipped without failing the build.
func BuildCalendar(table models.PlannerTable) models.Calendar {
	var months []string
	for _, header := range table.Headers {
		header = strings.TrimSpace(header)
		if strings.Contains(header, monthHeaderMarker) {
			months = append(months, header)
		}
	}

	calendar := make(models.Calendar, len(months))
	for i, month := range months {
		calendar[i] = models.MonthBucket{Month: month, Days: []models.DayRecord{}}
	}

	for _, row := range table.Rows {
		for i := range months {
			pad := i * monthColumnWidth
			date := cellAt(row, pad)
			dayOrder := cellAt(row, pad+3)
			if date == "" || dayOrder == "" {
				continue
			}
			dateNumber, err := strconv.Atoi(date)
			if err != nil {
				continue
			}
			calendar[i].Days = append(calendar[i].Days, models.DayRecord{
				Date:     dateNumber,
				Day:      cellAt(row, pad+1),
				Event:    cellAt(row, pad+2),
				DayOrder: dayOrder,
			})
		}
	}

	return calendar
}

func cellAt(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}

// SortCalendar returns a copy ordered by calendar month and, inside each month, by date.
// Only the month name is compared, so a planner spanning December to January sorts January
// first. Labels with an unknown month keep their relative order after the known months.
func SortCalendar(calendar models.Calendar) models.Calendar {
	sorted := make(models.Calendar, len(calendar))
	for i, bucket := range calendar {
		days := make([]models.DayRecord, len(bucket.Days))
		copy(days, bucket.Days)
		sorted[i] = models.MonthBucket{Month: bucket.Month, Days: days}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return monthRank(sorted[i].Month) < monthRank(sorted[j].Month)
	})
	for _, bucket := range sorted {
		days := bucket.Days
		sort.SliceStable(days, func(i, j int) bool {
			return days[i].Date < days[j].Date
		})
	}
	return sorted
}

func monthRank(label string) int {
	name := label
	if idx := strings.Index(name, "'"); idx >= 0 {
		name = name[:idx]
	}
	name = strings.TrimSpace(name)
	if len(name) > 3 {
		name = name[:3]
	}
	for i, abbreviation := range monthAbbreviations {
		if strings.EqualFold(name, abbreviation) {
			return i
		}
	}
	return len(monthAbbreviations)
}

// Resolve finds the entries for reference and the two following days in a sorted calendar.
//
// Lookups are positional: the entry for day N is the (N-1)th record of the month, so a
// month with a missing row shifts every later lookup by one. When no bucket label carries
// the reference month, the first bucket is used and WeakMatch is set.
func Resolve(calendar models.Calendar, reference time.Time) models.DayWindow {
	monthIndex := findMonthIndex(calendar, reference.Month())
	window := models.DayWindow{MonthIndex: monthIndex}
	if monthIndex < 0 {
		window.MonthIndex = 0
		window.WeakMatch = true
	}
	if len(calendar) == 0 {
		return window
	}

	position := reference.Day() - 1
	window.Today = lookAhead(calendar, window.MonthIndex, position, 0)
	window.Tomorrow = lookAhead(calendar, window.MonthIndex, position, 1)
	window.DayAfterTomorrow = lookAhead(calendar, window.MonthIndex, position, 2)
	return window
}

func findMonthIndex(calendar models.Calendar, month time.Month) int {
	abbreviation := monthAbbreviations[month-1]
	for i, bucket := range calendar {
		if strings.Contains(bucket.Month, abbreviation) {
			return i
		}
	}
	return -1
}

// lookAhead returns the record steps positions after position in the bucket at monthIndex.
// Positions past the end of the bucket continue into at most steps following buckets,
// starting from their first record.
func lookAhead(calendar models.Calendar, monthIndex, position, steps int) *models.DayRecord {
	days := calendar[monthIndex].Days
	if target := position + steps; target >= 0 && target < len(days) {
		record := days[target]
		return &record
	}
	if steps == 0 {
		return nil
	}

	remaining := len(days) - position - 1
	if remaining < 0 {
		remaining = 0
	}
	overflow := steps - 1 - remaining
	for next := monthIndex + 1; next < len(calendar) && next <= monthIndex+steps; next++ {
		nextDays := calendar[next].Days
		if overflow < len(nextDays) {
			record := nextDays[overflow]
			return &record
		}
		overflow -= len(nextDays)
	}
	return nil
}

// ResolveDayOrder reports the day order of reference. A missing entry is a not-found
// resolution, never an error. A reference month absent from the planner is reported as
// not found with WeakMatch set.
func ResolveDayOrder(calendar models.Calendar, reference time.Time) models.DayOrderResolution {
	window := Resolve(calendar, reference)
	today := window.Today
	if today == nil || window.WeakMatch {
		return models.DayOrderResolution{
			Found:     false,
			Error:     true,
			Status:    constvars.StatusNotFound,
			Message:   constvars.ErrClientNoDayOrder,
			WeakMatch: window.WeakMatch,
		}
	}
	return models.DayOrderResolution{
		Date:     today.Date,
		Day:      today.Day,
		DayOrder: today.DayOrder,
		Event:    today.Event,
		Found:    true,
		Status:   constvars.StatusOK,
	}
}

// ParseDayOrder reads a day-order code such as "3" or "Day 3" into its cycle index.
// Holidays ("-") and anything outside the cycle report false.
func ParseDayOrder(code string) (int, bool) {
	code = strings.TrimSpace(code)
	if len(code) >= 3 && strings.EqualFold(code[:3], "day") {
		code = strings.TrimSpace(code[3:])
	}
	cycle, err := strconv.Atoi(code)
	if err != nil || cycle < 1 || cycle > dayOrderCycles {
		return 0, false
	}
	return cycle, true
}

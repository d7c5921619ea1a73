package timetable

import (
	"academia-service/internal/app/models"
	"academia-service/internal/pkg/utils"
	"fmt"
	"sort"
	"strings"
)

const (
	onlineVenueMarker = "online"
	slotSpecSeparator = "-"
	combinedSeparator = "/"

	// mergeGapMinutes absorbs the short breaks between periods.
	mergeGapMinutes = 5
)

type participation struct {
	code   string
	title  string
	kind   models.CourseType
	room   string
	online bool
}

// Synthesize builds one DaySchedule per day-order cycle that has at least one class.
// Courses whose slots never appear in the grid drop out without failing the build.
func Synthesize(batch Batch, courses []models.EnrolledCourse) ([]models.DaySchedule, error) {
	if !batch.Valid() {
		return nil, ErrInvalidBatch
	}

	bySlot := indexBySlot(courses)
	schedule := make([]models.DaySchedule, 0, DayOrderCycles)
	for cycle := 1; cycle <= DayOrderCycles; cycle++ {
		periods, err := CyclePeriods(batch, cycle)
		if err != nil {
			return nil, err
		}

		var blocks []models.ClassBlock
		for _, p := range periods {
			participants := bySlot[p.SlotCode]
			if len(participants) == 0 {
				continue
			}
			blocks = append(blocks, combine(participants, p))
		}

		merged := mergeConsecutive(blocks)
		if len(merged) == 0 {
			continue
		}
		schedule = append(schedule, models.DaySchedule{
			Day:      cycle,
			DayOrder: DayOrderLabel(cycle),
			Table:    merged,
		})
	}
	return schedule, nil
}

// DayOrderLabel renders a cycle index as "Day N".
func DayOrderLabel(cycle int) string {
	return fmt.Sprintf("Day %d", cycle)
}

// ScheduleForDayOrder picks the DaySchedule of one cycle, if any class falls on it.
func ScheduleForDayOrder(schedule []models.DaySchedule, cycle int) (models.DaySchedule, bool) {
	for _, day := range schedule {
		if day.Day == cycle {
			return day, true
		}
	}
	return models.DaySchedule{}, false
}

// ExpandSlotSpec splits "A-B-C" into its listed codes. Empty parts are dropped.
func ExpandSlotSpec(spec string) []string {
	var codes []string
	for _, part := range strings.Split(spec, slotSpecSeparator) {
		part = strings.TrimSpace(part)
		if part != "" {
			codes = append(codes, part)
		}
	}
	return codes
}

// IsOnlineVenue reports whether a room names an online venue.
func IsOnlineVenue(room string) bool {
	return strings.Contains(strings.ToLower(room), onlineVenueMarker)
}

func indexBySlot(courses []models.EnrolledCourse) map[string][]participation {
	bySlot := make(map[string][]participation)
	for _, course := range courses {
		entry := participation{
			code:   course.Code,
			title:  course.Title,
			kind:   course.SlotType,
			room:   course.Room,
			online: IsOnlineVenue(course.Room),
		}
		if entry.kind == "" {
			entry.kind = models.CourseTypeTheory
		}
		// online venues are always scheduled as practicals
		if entry.online {
			entry.kind = models.CourseTypePractical
		}
		for _, code := range ExpandSlotSpec(course.Slot) {
			bySlot[code] = append(bySlot[code], entry)
		}
	}
	return bySlot
}

// combine collapses every participant of one period into a single block. Type and online
// flags come from the first participant only.
func combine(participants []participation, p PeriodSlot) models.ClassBlock {
	codes := make([]string, 0, len(participants))
	titles := make([]string, 0, len(participants))
	rooms := make([]string, 0, len(participants))
	for _, entry := range participants {
		codes = appendUnique(codes, entry.code)
		titles = appendUnique(titles, entry.title)
		rooms = appendUnique(rooms, entry.room)
	}

	first := participants[0]
	return models.ClassBlock{
		Code:       strings.Join(codes, combinedSeparator),
		Title:      strings.Join(titles, combinedSeparator),
		CourseType: first.kind,
		Room:       strings.Join(rooms, combinedSeparator),
		Online:     first.online,
		Slot:       p.SlotCode,
		StartTime:  p.StartTime,
		EndTime:    p.EndTime,
	}
}

func appendUnique(values []string, value string) []string {
	for _, existing := range values {
		if existing == value {
			return values
		}
	}
	return append(values, value)
}

// mergeConsecutive joins neighbouring blocks of the same course and room in one pass.
func mergeConsecutive(blocks []models.ClassBlock) []models.ClassBlock {
	if len(blocks) == 0 {
		return nil
	}

	sorted := make([]models.ClassBlock, len(blocks))
	copy(sorted, blocks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return clockMinutes(sorted[i].StartTime) < clockMinutes(sorted[j].StartTime)
	})

	merged := []models.ClassBlock{sorted[0]}
	for _, block := range sorted[1:] {
		last := &merged[len(merged)-1]
		if canMerge(*last, block) {
			last.EndTime = block.EndTime
			if last.Slot != block.Slot {
				last.Slot += combinedSeparator + block.Slot
			}
			continue
		}
		merged = append(merged, block)
	}
	return merged
}

func canMerge(earlier, later models.ClassBlock) bool {
	if earlier.Code != later.Code || earlier.Title != later.Title || earlier.Room != later.Room {
		return false
	}
	gap := clockMinutes(later.StartTime) - clockMinutes(earlier.EndTime)
	return gap >= 0 && gap <= mergeGapMinutes
}

func clockMinutes(clock string) int {
	minutes, _ := utils.ParseClockMinutes(clock)
	return minutes
}

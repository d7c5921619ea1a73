package courses

import (
	"academia-service/internal/app/models"
	"strings"
	"unicode"
	"unicode/utf8"
)

const notAvailable = "N/A"

// titleSeparator starts the descriptive tail some portals append to course titles.
const titleSeparator = " –"

// NormalizeCourses cleans the raw course rows of one student.
func NormalizeCourses(raw models.RawCourseList) models.CourseList {
	list := models.CourseList{
		RegNumber: strings.TrimSpace(raw.RegNumber),
		Courses:   make([]models.EnrolledCourse, 0, len(raw.Courses)),
	}
	for _, course := range raw.Courses {
		list.Courses = append(list.Courses, NormalizeCourse(course))
	}
	return list
}

// NormalizeCourse trims the trailing "-" of a slot spec, derives the slot type from it and
// fills empty descriptive fields with "N/A".
func NormalizeCourse(raw models.RawCourse) models.EnrolledCourse {
	slot := strings.TrimSuffix(strings.TrimSpace(raw.Slot), "-")

	slotType := models.CourseTypeTheory
	if strings.Contains(slot, "P") {
		slotType = models.CourseTypePractical
	}

	title := strings.TrimSpace(raw.Title)
	if idx := strings.Index(title, titleSeparator); idx >= 0 {
		title = strings.TrimSpace(title[:idx])
	}

	return models.EnrolledCourse{
		Code:           strings.TrimSpace(raw.Code),
		Title:          title,
		Credit:         orNotAvailable(raw.Credit),
		Category:       strings.TrimSpace(raw.Category),
		CourseCategory: strings.TrimSpace(raw.CourseCategory),
		Type:           orNotAvailable(raw.Type),
		SlotType:       slotType,
		Faculty:        orNotAvailable(raw.Faculty),
		Slot:           slot,
		Room:           normalizeRoom(raw.Room),
		AcademicYear:   strings.TrimSpace(raw.AcademicYear),
	}
}

func normalizeRoom(room string) string {
	room = strings.TrimSpace(room)
	if room == "" {
		return notAvailable
	}
	first, size := utf8.DecodeRuneInString(room)
	return string(unicode.ToUpper(first)) + room[size:]
}

func orNotAvailable(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return notAvailable
	}
	return value
}

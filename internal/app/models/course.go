package models

type CourseType string

const (
	CourseTypeTheory    CourseType = "Theory"
	CourseTypePractical CourseType = "Practical"
)

// RawCourse is a course row exactly as the course-listing collaborator reports it.
type RawCourse struct {
	Code           string `json:"code"`
	Title          string `json:"title"`
	Credit         string `json:"credit"`
	Category       string `json:"category"`
	CourseCategory string `json:"courseCategory"`
	Type           string `json:"type"`
	Faculty        string `json:"faculty"`
	Slot           string `json:"slot"`
	Room           string `json:"room"`
	AcademicYear   string `json:"academicYear"`
}

type RawCourseList struct {
	RegNumber string      `json:"regNumber"`
	Courses   []RawCourse `json:"courses"`
}

type EnrolledCourse struct {
	Code           string     `json:"code"`
	Title          string     `json:"title"`
	Credit         string     `json:"credit"`
	Category       string     `json:"category"`
	CourseCategory string     `json:"courseCategory"`
	Type           string     `json:"type"`
	SlotType       CourseType `json:"slotType"`
	Faculty        string     `json:"faculty"`
	Slot           string     `json:"slot"`
	Room           string     `json:"room"`
	AcademicYear   string     `json:"academicYear"`
}

type CourseList struct {
	RegNumber string           `json:"regNumber"`
	Courses   []EnrolledCourse `json:"courses"`
}

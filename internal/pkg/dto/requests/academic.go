package requests

type AcademicQuery struct {
	Batch string `json:"batch" validate:"omitempty,oneof=1 2"`
	Date  string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

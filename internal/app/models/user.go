package models

type User struct {
	RegNumber  string `json:"regNumber"`
	Name       string `json:"name"`
	Batch      string `json:"batch"`
	Department string `json:"department"`
	Semester   string `json:"semester"`
	Section    string `json:"section"`
}

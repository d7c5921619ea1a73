package responses

import "academia-service/internal/app/models"

type CalendarView struct {
	Calendar models.Calendar `json:"calendar"`
	models.DayWindow
}

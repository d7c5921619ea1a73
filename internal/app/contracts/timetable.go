package contracts

import (
	"academia-service/internal/app/models"
	"academia-service/internal/pkg/dto/responses"
	"context"
	"time"
)

type TimetableUsecase interface {
	GetTimetable(ctx context.Context, sessionToken, batch string) (*responses.Timetable, error)
	GenerateTimetable(ctx context.Context, sessionToken, batch string) (*responses.Timetable, error)
	ExportTimetable(ctx context.Context, sessionToken, batch string) (*models.TimetableExport, error)
	GetDayClasses(ctx context.Context, sessionToken, batch string, reference time.Time) (*responses.DayClasses, error)
}

package contracts

import (
	"academia-service/internal/app/models"
	"academia-service/internal/pkg/dto/responses"
	"context"
	"time"
)

type PlannerSnapshotRepository interface {
	Upsert(ctx context.Context, snapshot *models.PlannerSnapshot) error
	FindLatest(ctx context.Context, plannerName string) (*models.PlannerSnapshot, error)
}

type CalendarUsecase interface {
	GetCalendar(ctx context.Context, reference time.Time) (*responses.CalendarView, error)
	GetDayOrder(ctx context.Context, reference time.Time) (*models.DayOrderResolution, error)
	RefreshPlanner(ctx context.Context) (models.Calendar, error)
}

package contracts

import (
	"academia-service/internal/app/models"
	"context"
)

type EventPublisher interface {
	PublishTimetableGenerated(ctx context.Context, event *models.TimetableGeneratedEvent) error
}

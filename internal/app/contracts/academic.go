package contracts

import (
	"academia-service/internal/pkg/dto/responses"
	"context"
	"time"
)

type AcademicUsecase interface {
	GetAcademicData(ctx context.Context, sessionToken string, reference time.Time) (*responses.AcademicData, error)
}

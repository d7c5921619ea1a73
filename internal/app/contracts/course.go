package contracts

import (
	"academia-service/internal/app/models"
	"context"
)

type CourseUsecase interface {
	GetCourses(ctx context.Context, sessionToken string) (*models.CourseList, error)
}

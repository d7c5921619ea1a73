package contracts

import (
	"academia-service/internal/app/models"
	"context"
)

// AcademiaClient talks to the collaborator that scrapes the academic portal and hands back
// tokenized records. sessionToken is the caller's portal session and is passed through as is.
type AcademiaClient interface {
	FetchPlanner(ctx context.Context) (*models.PlannerTable, error)
	FetchCourses(ctx context.Context, sessionToken string) (*models.RawCourseList, error)
	FetchUser(ctx context.Context, sessionToken string) (*models.User, error)
}

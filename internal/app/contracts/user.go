package contracts

import (
	"academia-service/internal/app/models"
	"context"
)

type UserUsecase interface {
	GetUser(ctx context.Context, sessionToken string) (*models.User, error)
}

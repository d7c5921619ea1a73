package users

import (
	"academia-service/internal/app/config"
	"academia-service/internal/app/contracts/mocks"
	"academia-service/internal/app/models"
	"academia-service/internal/pkg/constvars"
	"academia-service/internal/pkg/utils"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestUserUsecase(client *mocks.AcademiaClient, repo *mocks.RedisRepository) *userUsecase {
	cfg := &config.InternalConfig{Cache: config.AppCache{UserTTLInMinutes: 10}}
	return NewUserUsecase(client, repo, cfg, zap.NewNop()).(*userUsecase)
}

func TestGetUser_CacheMiss(t *testing.T) {
	client := new(mocks.AcademiaClient)
	repo := new(mocks.RedisRepository)
	key := constvars.RedisKeyUserPrefix + utils.HashSessionToken("session")
	user := &models.User{RegNumber: "RA01", Batch: "2"}

	repo.On("Get", mock.Anything, key).Return("", nil)
	client.On("FetchUser", mock.Anything, "session").Return(user, nil)
	repo.On("Set", mock.Anything, key, user, 10*time.Minute).Return(nil)

	got, err := newTestUserUsecase(client, repo).GetUser(context.Background(), "session")
	require.NoError(t, err)
	assert.Equal(t, "2", got.Batch)
	repo.AssertExpectations(t)
}

func TestGetUser_CacheHit(t *testing.T) {
	client := new(mocks.AcademiaClient)
	repo := new(mocks.RedisRepository)
	repo.On("Get", mock.Anything, mock.Anything).Return(`{"regNumber":"RA01","batch":"1"}`, nil)

	got, err := newTestUserUsecase(client, repo).GetUser(context.Background(), "session")
	require.NoError(t, err)
	assert.Equal(t, "1", got.Batch)
	client.AssertNotCalled(t, "FetchUser", mock.Anything, mock.Anything)
}

func TestGetUser_UpstreamFailure(t *testing.T) {
	client := new(mocks.AcademiaClient)
	repo := new(mocks.RedisRepository)
	repo.On("Get", mock.Anything, mock.Anything).Return("", nil)
	client.On("FetchUser", mock.Anything, "session").Return(nil, errors.New("upstream down"))

	_, err := newTestUserUsecase(client, repo).GetUser(context.Background(), "session")
	assert.Error(t, err)
}

package users

import (
	"academia-service/internal/app/config"
	"academia-service/internal/app/contracts"
	"academia-service/internal/app/models"
	"academia-service/internal/pkg/constvars"
	"academia-service/internal/pkg/exceptions"
	"academia-service/internal/pkg/utils"
	"context"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type userUsecase struct {
	AcademiaClient  contracts.AcademiaClient
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewUserUsecase(
	academiaClient contracts.AcademiaClient,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.UserUsecase {
	return &userUsecase{
		AcademiaClient:  academiaClient,
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}

func (uc *userUsecase) GetUser(ctx context.Context, sessionToken string) (*models.User, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.GetUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if sessionToken == "" {
		return nil, exceptions.ErrSessionTokenMissing(nil)
	}

	cacheKey := constvars.RedisKeyUserPrefix + utils.HashSessionToken(sessionToken)
	cached, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err != nil {
		uc.Log.Warn("userUsecase.GetUser error reading cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	} else if cached != "" {
		var user models.User
		if err := json.Unmarshal([]byte(cached), &user); err == nil {
			return &user, nil
		}
	}

	user, err := uc.AcademiaClient.FetchUser(ctx, sessionToken)
	if err != nil {
		uc.Log.Error("userUsecase.GetUser error fetching user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	ttl := time.Duration(uc.InternalConfig.Cache.UserTTLInMinutes) * time.Minute
	if err := uc.RedisRepository.Set(ctx, cacheKey, user, ttl); err != nil {
		uc.Log.Warn("userUsecase.GetUser error caching user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("userUsecase.GetUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRegNumberKey, user.RegNumber),
	)
	return user, nil
}

package courses

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

type courseUsecase struct {
	AcademiaClient  contracts.AcademiaClient
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewCourseUsecase(
	academiaClient contracts.AcademiaClient,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.CourseUsecase {
	return &courseUsecase{
		AcademiaClient:  academiaClient,
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}

func (uc *courseUsecase) GetCourses(ctx context.Context, sessionToken string) (*models.CourseList, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("courseUsecase.GetCourses called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if sessionToken == "" {
		return nil, exceptions.ErrSessionTokenMissing(nil)
	}

	cacheKey := constvars.RedisKeyCoursesPrefix + utils.HashSessionToken(sessionToken)
	if cached := uc.readCache(ctx, cacheKey); cached != nil {
		uc.Log.Info("courseUsecase.GetCourses served from cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingCourseCountKey, len(cached.Courses)),
		)
		return cached, nil
	}

	raw, err := uc.AcademiaClient.FetchCourses(ctx, sessionToken)
	if err != nil {
		uc.Log.Error("courseUsecase.GetCourses error fetching courses",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	list := NormalizeCourses(*raw)

	ttl := time.Duration(uc.InternalConfig.Cache.CoursesTTLInMinutes) * time.Minute
	if err := uc.RedisRepository.Set(ctx, cacheKey, list, ttl); err != nil {
		uc.Log.Warn("courseUsecase.GetCourses error caching courses",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("courseUsecase.GetCourses succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRegNumberKey, list.RegNumber),
		zap.Int(constvars.LoggingCourseCountKey, len(list.Courses)),
	)
	return &list, nil
}

// readCache returns nil on a miss. Cache failures are logged and treated as a miss.
func (uc *courseUsecase) readCache(ctx context.Context, key string) *models.CourseList {
	raw, err := uc.RedisRepository.Get(ctx, key)
	if err != nil {
		uc.Log.Warn("courseUsecase.readCache error reading cache", zap.Error(err))
		return nil
	}
	if raw == "" {
		return nil
	}

	var list models.CourseList
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		uc.Log.Warn("courseUsecase.readCache error decoding cached courses", zap.Error(err))
		return nil
	}
	return &list
}

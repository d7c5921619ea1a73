package calendar

import (
	"academia-service/internal/app/config"
	"academia-service/internal/app/contracts"
	"academia-service/internal/app/models"
	"academia-service/internal/pkg/constvars"
	"academia-service/internal/pkg/dto/responses"
	"academia-service/internal/pkg/utils"
	"context"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type calendarUsecase struct {
	AcademiaClient     contracts.AcademiaClient
	RedisRepository    contracts.RedisRepository
	SnapshotRepository contracts.PlannerSnapshotRepository
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
	now                func() time.Time
}

func NewCalendarUsecase(
	academiaClient contracts.AcademiaClient,
	redisRepository contracts.RedisRepository,
	snapshotRepository contracts.PlannerSnapshotRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.CalendarUsecase {
	return &calendarUsecase{
		AcademiaClient:     academiaClient,
		RedisRepository:    redisRepository,
		SnapshotRepository: snapshotRepository,
		InternalConfig:     internalConfig,
		Log:                logger,
		now:                time.Now,
	}
}

func (uc *calendarUsecase) GetCalendar(ctx context.Context, reference time.Time) (*responses.CalendarView, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("calendarUsecase.GetCalendar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReferenceDateKey, reference.Format(constvars.DateLayoutISO)),
	)

	calendar, err := uc.loadCalendar(ctx)
	if err != nil {
		return nil, err
	}

	window := Resolve(calendar, reference)
	if window.WeakMatch {
		uc.Log.Warn("calendarUsecase.GetCalendar reference month not in planner, using first month",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingReferenceDateKey, reference.Format(constvars.DateLayoutISO)),
		)
	}

	uc.Log.Info("calendarUsecase.GetCalendar succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingMonthIndexKey, window.MonthIndex),
	)
	return &responses.CalendarView{Calendar: calendar, DayWindow: window}, nil
}

func (uc *calendarUsecase) GetDayOrder(ctx context.Context, reference time.Time) (*models.DayOrderResolution, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("calendarUsecase.GetDayOrder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReferenceDateKey, reference.Format(constvars.DateLayoutISO)),
	)

	calendar, err := uc.loadCalendar(ctx)
	if err != nil {
		return nil, err
	}

	resolution := ResolveDayOrder(calendar, reference)
	if resolution.WeakMatch {
		uc.Log.Warn("calendarUsecase.GetDayOrder reference month not in planner",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingReferenceDateKey, reference.Format(constvars.DateLayoutISO)),
		)
	}
	uc.Log.Info("calendarUsecase.GetDayOrder succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDayOrderKey, resolution.DayOrder),
		zap.Bool(constvars.LoggingSuccessKey, resolution.Found),
	)
	return &resolution, nil
}

// RefreshPlanner fetches the planner document, rebuilds the calendar and stores it in the
// cache and as the latest snapshot.
func (uc *calendarUsecase) RefreshPlanner(ctx context.Context) (models.Calendar, error) {
	requestID := utils.GetRequestID(ctx)
	plannerName := uc.InternalConfig.Planner.Name
	uc.Log.Info("calendarUsecase.RefreshPlanner called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPlannerNameKey, plannerName),
	)

	table, err := uc.AcademiaClient.FetchPlanner(ctx)
	if err != nil {
		uc.Log.Error("calendarUsecase.RefreshPlanner error fetching planner",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	calendar := SortCalendar(BuildCalendar(*table))

	ttl := time.Duration(uc.InternalConfig.Cache.PlannerTTLInMinutes) * time.Minute
	if err := uc.RedisRepository.Set(ctx, uc.cacheKey(), calendar, ttl); err != nil {
		uc.Log.Warn("calendarUsecase.RefreshPlanner error caching calendar",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	snapshot := &models.PlannerSnapshot{
		PlannerName: plannerName,
		Calendar:    calendar,
		FetchedAt:   uc.now().UTC(),
	}
	if err := uc.SnapshotRepository.Upsert(ctx, snapshot); err != nil {
		uc.Log.Warn("calendarUsecase.RefreshPlanner error saving snapshot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("calendarUsecase.RefreshPlanner succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingMonthCountKey, len(calendar)),
	)
	return calendar, nil
}

// loadCalendar prefers the cache, then the upstream, then the last snapshot.
func (uc *calendarUsecase) loadCalendar(ctx context.Context) (models.Calendar, error) {
	requestID := utils.GetRequestID(ctx)

	cached, err := uc.RedisRepository.Get(ctx, uc.cacheKey())
	if err != nil {
		uc.Log.Warn("calendarUsecase.loadCalendar error reading cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	} else if cached != "" {
		var calendar models.Calendar
		if err := json.Unmarshal([]byte(cached), &calendar); err == nil {
			return calendar, nil
		}
	}

	calendar, refreshErr := uc.RefreshPlanner(ctx)
	if refreshErr == nil {
		return calendar, nil
	}

	snapshot, err := uc.SnapshotRepository.FindLatest(ctx, uc.InternalConfig.Planner.Name)
	if err != nil || snapshot == nil {
		return nil, refreshErr
	}

	uc.Log.Warn("calendarUsecase.loadCalendar serving last planner snapshot",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Time(constvars.LoggingFetchedAtKey, snapshot.FetchedAt),
	)
	return snapshot.Calendar, nil
}

func (uc *calendarUsecase) cacheKey() string {
	return constvars.RedisKeyPlannerPrefix + uc.InternalConfig.Planner.Name
}

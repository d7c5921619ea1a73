package timetable

import (
	"academia-service/internal/app/config"
	"academia-service/internal/app/contracts"
	"academia-service/internal/app/models"
	"academia-service/internal/app/services/core/calendar"
	"academia-service/internal/app/services/shared/ratelimiter"
	"academia-service/internal/pkg/constvars"
	"academia-service/internal/pkg/dto/responses"
	"academia-service/internal/pkg/exceptions"
	"academia-service/internal/pkg/utils"
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type timetableUsecase struct {
	CourseUsecase   contracts.CourseUsecase
	UserUsecase     contracts.UserUsecase
	CalendarUsecase contracts.CalendarUsecase
	Storage         contracts.Storage
	Publisher       contracts.EventPublisher
	ExportLimiter   *ratelimiter.QuotaLimiter
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
	now             func() time.Time
}

func NewTimetableUsecase(
	courseUsecase contracts.CourseUsecase,
	userUsecase contracts.UserUsecase,
	calendarUsecase contracts.CalendarUsecase,
	storage contracts.Storage,
	publisher contracts.EventPublisher,
	exportLimiter *ratelimiter.QuotaLimiter,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.TimetableUsecase {
	return &timetableUsecase{
		CourseUsecase:   courseUsecase,
		UserUsecase:     userUsecase,
		CalendarUsecase: calendarUsecase,
		Storage:         storage,
		Publisher:       publisher,
		ExportLimiter:   exportLimiter,
		InternalConfig:  internalConfig,
		Log:             logger,
		now:             time.Now,
	}
}

type synthesizedSchedule struct {
	regNumber string
	batch     Batch
	schedule  []models.DaySchedule
}

// GetTimetable synthesizes the weekly timetable of the session's student without announcing it.
func (uc *timetableUsecase) GetTimetable(ctx context.Context, sessionToken, batch string) (*responses.Timetable, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("timetableUsecase.GetTimetable called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBatchKey, batch),
	)

	synthesized, err := uc.synthesize(ctx, sessionToken, batch)
	if err != nil {
		return nil, err
	}
	timetable := buildTimetable(synthesized)

	uc.Log.Info("timetableUsecase.GetTimetable succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRegNumberKey, timetable.RegNumber),
		zap.String(constvars.LoggingBatchKey, timetable.Batch),
		zap.Int(constvars.LoggingScheduleDaysKey, len(timetable.Schedule)),
	)
	return timetable, nil
}

// GenerateTimetable is GetTimetable followed by a TimetableGenerated event.
func (uc *timetableUsecase) GenerateTimetable(ctx context.Context, sessionToken, batch string) (*responses.Timetable, error) {
	timetable, err := uc.GetTimetable(ctx, sessionToken, batch)
	if err != nil {
		return nil, err
	}
	uc.publishGenerated(ctx, timetable)
	return timetable, nil
}

// ExportTimetable stores the timetable as a JSON object and returns a presigned download URL.
// Exports are limited per session per minute.
func (uc *timetableUsecase) ExportTimetable(ctx context.Context, sessionToken, batch string) (*models.TimetableExport, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("timetableUsecase.ExportTimetable called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBatchKey, batch),
	)

	if sessionToken == "" {
		return nil, exceptions.ErrSessionTokenMissing(nil)
	}

	if uc.ExportLimiter != nil {
		decision, err := uc.ExportLimiter.Allow(ctx, utils.HashSessionToken(sessionToken))
		if err != nil {
			uc.Log.Warn("timetableUsecase.ExportTimetable quota check failed, allowing export",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		} else if !decision.Allowed {
			return nil, exceptions.ErrExportQuotaExceeded(nil, decision.RetryAfterSecs)
		}
	}

	timetable, err := uc.GenerateTimetable(ctx, sessionToken, batch)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(timetable)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	bucketName := uc.InternalConfig.Export.BucketName
	objectName := utils.GenerateExportObjectName(constvars.ExportObjectPrefix, timetable.RegNumber, constvars.FileExtensionJSON)
	objectName, err = uc.Storage.UploadJSON(ctx, payload, bucketName, objectName)
	if err != nil {
		uc.Log.Error("timetableUsecase.ExportTimetable error uploading object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketNameKey, bucketName),
			zap.Error(err),
		)
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.Export.PreSignedUrlExpiryTimeInMinutes) * time.Minute
	url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, bucketName, objectName, expiry)
	if err != nil {
		uc.Log.Error("timetableUsecase.ExportTimetable error presigning object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("timetableUsecase.ExportTimetable succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return &models.TimetableExport{
		ObjectName: objectName,
		URL:        url,
		ExpiresAt:  uc.now().Add(expiry).UTC().Format(time.RFC3339),
	}, nil
}

// GetDayClasses resolves the day order of reference and the timetable concurrently and
// returns the classes scheduled for that day.
func (uc *timetableUsecase) GetDayClasses(ctx context.Context, sessionToken, batch string, reference time.Time) (*responses.DayClasses, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("timetableUsecase.GetDayClasses called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReferenceDateKey, reference.Format(constvars.DateLayoutISO)),
	)

	var (
		resolution  *models.DayOrderResolution
		synthesized *synthesizedSchedule
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		resolution, err = uc.CalendarUsecase.GetDayOrder(gctx, reference)
		return err
	})
	g.Go(func() error {
		var err error
		synthesized, err = uc.synthesize(gctx, sessionToken, batch)
		return err
	})
	if err := g.Wait(); err != nil {
		uc.Log.Error("timetableUsecase.GetDayClasses error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	classes := &responses.DayClasses{
		Date:     resolution.Date,
		Day:      resolution.Day,
		DayOrder: resolution.DayOrder,
		Event:    resolution.Event,
		Found:    resolution.Found,
		Classes:  []responses.TimetableBlock{},
	}
	if !resolution.Found {
		return classes, nil
	}

	cycle, ok := calendar.ParseDayOrder(resolution.DayOrder)
	if !ok {
		classes.Holiday = true
		return classes, nil
	}
	if day, ok := ScheduleForDayOrder(synthesized.schedule, cycle); ok {
		classes.Classes = timetableBlocks(day.Table)
	}

	uc.Log.Info("timetableUsecase.GetDayClasses succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDayOrderKey, resolution.DayOrder),
	)
	return classes, nil
}

// synthesize resolves the batch, fetches the enrolled courses and builds the weekly schedule.
func (uc *timetableUsecase) synthesize(ctx context.Context, sessionToken, batch string) (*synthesizedSchedule, error) {
	requestID := utils.GetRequestID(ctx)
	if sessionToken == "" {
		return nil, exceptions.ErrSessionTokenMissing(nil)
	}

	resolvedBatch, err := uc.resolveBatch(ctx, sessionToken, batch)
	if err != nil {
		uc.Log.Error("timetableUsecase.synthesize error resolving batch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	courses, err := uc.CourseUsecase.GetCourses(ctx, sessionToken)
	if err != nil {
		uc.Log.Error("timetableUsecase.synthesize error fetching courses",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	schedule, err := Synthesize(resolvedBatch, courses.Courses)
	if err != nil {
		return nil, exceptions.ErrInvalidBatch(err, resolvedBatch.String())
	}
	return &synthesizedSchedule{regNumber: courses.RegNumber, batch: resolvedBatch, schedule: schedule}, nil
}

// resolveBatch prefers the requested batch and falls back to the one on the user record.
func (uc *timetableUsecase) resolveBatch(ctx context.Context, sessionToken, requested string) (Batch, error) {
	if requested != "" {
		batch, err := ParseBatch(requested)
		if err != nil {
			return 0, exceptions.ErrInvalidBatch(err, requested)
		}
		return batch, nil
	}

	user, err := uc.UserUsecase.GetUser(ctx, sessionToken)
	if err != nil {
		return 0, err
	}
	if user == nil || user.Batch == "" {
		return 0, exceptions.ErrBatchUnknown(nil)
	}
	batch, err := ParseBatch(user.Batch)
	if err != nil {
		return 0, exceptions.ErrInvalidBatch(err, user.Batch)
	}
	return batch, nil
}

// publishGenerated announces a synthesized timetable. Failures are logged only.
func (uc *timetableUsecase) publishGenerated(ctx context.Context, timetable *responses.Timetable) {
	if uc.Publisher == nil {
		return
	}
	blockCount := 0
	for _, day := range timetable.Schedule {
		blockCount += len(day.Table)
	}
	event := &models.TimetableGeneratedEvent{
		EventID:     uuid.NewString(),
		EventType:   constvars.EventTypeTimetableGenerated,
		RegNumber:   timetable.RegNumber,
		Batch:       timetable.Batch,
		DayCount:    len(timetable.Schedule),
		BlockCount:  blockCount,
		GeneratedAt: uc.now().UTC().Format(time.RFC3339),
	}
	if err := uc.Publisher.PublishTimetableGenerated(ctx, event); err != nil {
		uc.Log.Warn("timetableUsecase.publishGenerated error publishing event",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
	}
}

func buildTimetable(synthesized *synthesizedSchedule) *responses.Timetable {
	timetable := &responses.Timetable{
		RegNumber: synthesized.regNumber,
		Batch:     synthesized.batch.String(),
		Schedule:  make([]responses.TimetableDay, 0, len(synthesized.schedule)),
	}
	for _, day := range synthesized.schedule {
		timetable.Schedule = append(timetable.Schedule, responses.TimetableDay{
			Day:      day.Day,
			DayOrder: day.DayOrder,
			Table:    timetableBlocks(day.Table),
		})
	}
	return timetable
}

func timetableBlocks(table []models.ClassBlock) []responses.TimetableBlock {
	blocks := make([]responses.TimetableBlock, 0, len(table))
	for _, block := range table {
		blocks = append(blocks, responses.TimetableBlock{
			ClassBlock: block,
			TimeSlot:   utils.ConvertTo12Hour(block.StartTime) + "-" + utils.ConvertTo12Hour(block.EndTime),
		})
	}
	return blocks
}

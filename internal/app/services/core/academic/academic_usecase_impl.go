package academic

import (
	"academia-service/internal/app/contracts"
	"academia-service/internal/pkg/constvars"
	"academia-service/internal/pkg/dto/responses"
	"academia-service/internal/pkg/exceptions"
	"academia-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type academicUsecase struct {
	UserUsecase      contracts.UserUsecase
	CourseUsecase    contracts.CourseUsecase
	CalendarUsecase  contracts.CalendarUsecase
	TimetableUsecase contracts.TimetableUsecase
	Log              *zap.Logger
}

func NewAcademicUsecase(
	userUsecase contracts.UserUsecase,
	courseUsecase contracts.CourseUsecase,
	calendarUsecase contracts.CalendarUsecase,
	timetableUsecase contracts.TimetableUsecase,
	logger *zap.Logger,
) contracts.AcademicUsecase {
	return &academicUsecase{
		UserUsecase:      userUsecase,
		CourseUsecase:    courseUsecase,
		CalendarUsecase:  calendarUsecase,
		TimetableUsecase: timetableUsecase,
		Log:              logger,
	}
}

// GetAcademicData fetches every source concurrently. A failing source is reported in place
// of its payload and never aborts the others.
func (uc *academicUsecase) GetAcademicData(ctx context.Context, sessionToken string, reference time.Time) (*responses.AcademicData, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("academicUsecase.GetAcademicData called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReferenceDateKey, reference.Format(constvars.DateLayoutISO)),
	)

	if sessionToken == "" {
		return nil, exceptions.ErrSessionTokenMissing(nil)
	}

	data := &responses.AcademicData{}
	var g errgroup.Group

	g.Go(func() error {
		data.User = uc.fetch(constvars.ResourceUser, requestID, func() (interface{}, error) {
			return uc.UserUsecase.GetUser(ctx, sessionToken)
		})
		return nil
	})
	g.Go(func() error {
		data.Courses = uc.fetch(constvars.ResourceCourses, requestID, func() (interface{}, error) {
			return uc.CourseUsecase.GetCourses(ctx, sessionToken)
		})
		return nil
	})
	g.Go(func() error {
		data.Calendar = uc.fetch(constvars.ResourceCalendar, requestID, func() (interface{}, error) {
			return uc.CalendarUsecase.GetCalendar(ctx, reference)
		})
		return nil
	})
	g.Go(func() error {
		data.DayOrder = uc.fetch(constvars.ResourceDayOrder, requestID, func() (interface{}, error) {
			return uc.CalendarUsecase.GetDayOrder(ctx, reference)
		})
		return nil
	})
	g.Go(func() error {
		data.Timetable = uc.fetch(constvars.ResourceTimetable, requestID, func() (interface{}, error) {
			return uc.TimetableUsecase.GetTimetable(ctx, sessionToken, "")
		})
		return nil
	})
	g.Go(func() error {
		data.Classes = uc.fetch(constvars.ResourceClasses, requestID, func() (interface{}, error) {
			return uc.TimetableUsecase.GetDayClasses(ctx, sessionToken, "", reference)
		})
		return nil
	})
	_ = g.Wait()

	uc.Log.Info("academicUsecase.GetAcademicData succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return data, nil
}

func (uc *academicUsecase) fetch(source, requestID string, fn func() (interface{}, error)) interface{} {
	var payload interface{}
	err := utils.LogOperation(uc.Log, "academic.fetch."+source, requestID, func() error {
		var err error
		payload, err = fn()
		return err
	})
	if err != nil {
		return responses.SourceError{
			Error:   fmt.Sprintf(constvars.ErrClientSourceFailed, source),
			Details: sourceDetails(err),
		}
	}
	return payload
}

// sourceDetails keeps developer messages and caller locations out of the response.
func sourceDetails(err error) string {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr.ClientMessage
	}
	return err.Error()
}

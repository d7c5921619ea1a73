package controllers

import (
	"academia-service/internal/app/config"
	"academia-service/internal/pkg/dto/requests"
	"academia-service/internal/pkg/exceptions"
	"academia-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const defaultRequestTimeout = 10 * time.Second

// Day shifts served by the today/tomorrow/day-after-tomorrow endpoints.
const (
	shiftToday            = 0
	shiftTomorrow         = 1
	shiftDayAfterTomorrow = 2
)

func requestContext(r *http.Request, internalConfig *config.InternalConfig) (context.Context, context.CancelFunc) {
	timeout := defaultRequestTimeout
	if internalConfig != nil && internalConfig.App.RequestTimeoutInSeconds > 0 {
		timeout = time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second
	}
	return context.WithTimeout(r.Context(), timeout)
}

// parseAcademicQuery validates the batch and date query parameters and returns the reference
// date shifted by shift days in the configured timezone.
func parseAcademicQuery(r *http.Request, internalConfig *config.InternalConfig, now time.Time, shift int) (*requests.AcademicQuery, time.Time, error) {
	query := utils.BuildAcademicQuery(r)
	if err := utils.ValidateStruct(query); err != nil {
		return nil, time.Time{}, exceptions.ErrInputValidation(err)
	}

	reference, err := utils.ParseReferenceDate(query.Date, now, loadLocation(internalConfig))
	if err != nil {
		return nil, time.Time{}, exceptions.ErrCannotParseDate(err, query.Date)
	}
	return query, reference.AddDate(0, 0, shift), nil
}

func loadLocation(internalConfig *config.InternalConfig) *time.Location {
	if internalConfig == nil || internalConfig.App.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func writeError(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}

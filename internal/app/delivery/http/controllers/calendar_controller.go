package controllers

import (
	"academia-service/internal/app/config"
	"academia-service/internal/app/contracts"
	"academia-service/internal/pkg/constvars"
	"academia-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type CalendarController struct {
	Log             *zap.Logger
	CalendarUsecase contracts.CalendarUsecase
	InternalConfig  *config.InternalConfig
	now             func() time.Time
}

func NewCalendarController(logger *zap.Logger, calendarUsecase contracts.CalendarUsecase, internalConfig *config.InternalConfig) *CalendarController {
	return &CalendarController{
		Log:             logger,
		CalendarUsecase: calendarUsecase,
		InternalConfig:  internalConfig,
		now:             time.Now,
	}
}

func (ctrl *CalendarController) GetCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	_, reference, err := parseAcademicQuery(r, ctrl.InternalConfig, ctrl.now(), shiftToday)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.CalendarUsecase.GetCalendar(ctx, reference)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCalendarSuccessMessage, response)
}

func (ctrl *CalendarController) GetDayOrderToday(w http.ResponseWriter, r *http.Request) {
	ctrl.getDayOrder(w, r, shiftToday)
}

func (ctrl *CalendarController) GetDayOrderTomorrow(w http.ResponseWriter, r *http.Request) {
	ctrl.getDayOrder(w, r, shiftTomorrow)
}

func (ctrl *CalendarController) GetDayOrderDayAfterTomorrow(w http.ResponseWriter, r *http.Request) {
	ctrl.getDayOrder(w, r, shiftDayAfterTomorrow)
}

// getDayOrder writes the resolution as-is; a date without a planner entry answers 404 with
// found set to false.
func (ctrl *CalendarController) getDayOrder(w http.ResponseWriter, r *http.Request, shift int) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	_, reference, err := parseAcademicQuery(r, ctrl.InternalConfig, ctrl.now(), shift)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	resolution, err := ctrl.CalendarUsecase.GetDayOrder(ctx, reference)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildStatusResponse(w, resolution.Status, resolution)
}

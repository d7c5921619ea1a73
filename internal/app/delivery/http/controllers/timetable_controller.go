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

type TimetableController struct {
	Log              *zap.Logger
	TimetableUsecase contracts.TimetableUsecase
	InternalConfig   *config.InternalConfig
	now              func() time.Time
}

func NewTimetableController(logger *zap.Logger, timetableUsecase contracts.TimetableUsecase, internalConfig *config.InternalConfig) *TimetableController {
	return &TimetableController{
		Log:              logger,
		TimetableUsecase: timetableUsecase,
		InternalConfig:   internalConfig,
		now:              time.Now,
	}
}

func (ctrl *TimetableController) GetTimetable(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	query, _, err := parseAcademicQuery(r, ctrl.InternalConfig, ctrl.now(), shiftToday)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.TimetableUsecase.GenerateTimetable(ctx, utils.GetSessionToken(r), query.Batch)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTimetableSuccessMessage, response)
}

func (ctrl *TimetableController) ExportTimetable(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	query, _, err := parseAcademicQuery(r, ctrl.InternalConfig, ctrl.now(), shiftToday)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.TimetableUsecase.ExportTimetable(ctx, utils.GetSessionToken(r), query.Batch)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ExportTimetableSuccessMessage, response)
}

func (ctrl *TimetableController) GetClassesToday(w http.ResponseWriter, r *http.Request) {
	ctrl.getDayClasses(w, r, shiftToday)
}

func (ctrl *TimetableController) GetClassesTomorrow(w http.ResponseWriter, r *http.Request) {
	ctrl.getDayClasses(w, r, shiftTomorrow)
}

func (ctrl *TimetableController) GetClassesDayAfterTomorrow(w http.ResponseWriter, r *http.Request) {
	ctrl.getDayClasses(w, r, shiftDayAfterTomorrow)
}

func (ctrl *TimetableController) getDayClasses(w http.ResponseWriter, r *http.Request, shift int) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	query, reference, err := parseAcademicQuery(r, ctrl.InternalConfig, ctrl.now(), shift)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.TimetableUsecase.GetDayClasses(ctx, utils.GetSessionToken(r), query.Batch, reference)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDayClassesSuccessMessage, response)
}

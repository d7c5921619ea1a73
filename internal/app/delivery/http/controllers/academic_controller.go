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

type AcademicController struct {
	Log             *zap.Logger
	AcademicUsecase contracts.AcademicUsecase
	InternalConfig  *config.InternalConfig
	now             func() time.Time
}

func NewAcademicController(logger *zap.Logger, academicUsecase contracts.AcademicUsecase, internalConfig *config.InternalConfig) *AcademicController {
	return &AcademicController{
		Log:             logger,
		AcademicUsecase: academicUsecase,
		InternalConfig:  internalConfig,
		now:             time.Now,
	}
}

func (ctrl *AcademicController) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	_, reference, err := parseAcademicQuery(r, ctrl.InternalConfig, ctrl.now(), shiftToday)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.AcademicUsecase.GetAcademicData(ctx, utils.GetSessionToken(r), reference)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAcademicDataSuccessMessage, response)
}

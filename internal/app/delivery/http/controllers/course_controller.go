package controllers

import (
	"academia-service/internal/app/config"
	"academia-service/internal/app/contracts"
	"academia-service/internal/pkg/constvars"
	"academia-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type CourseController struct {
	Log            *zap.Logger
	CourseUsecase  contracts.CourseUsecase
	InternalConfig *config.InternalConfig
}

func NewCourseController(logger *zap.Logger, courseUsecase contracts.CourseUsecase, internalConfig *config.InternalConfig) *CourseController {
	return &CourseController{
		Log:            logger,
		CourseUsecase:  courseUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *CourseController) GetCourses(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.CourseUsecase.GetCourses(ctx, utils.GetSessionToken(r))
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCoursesSuccessMessage, response)
}

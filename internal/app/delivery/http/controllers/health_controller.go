package controllers

import (
	"academia-service/internal/app/config"
	"academia-service/internal/pkg/constvars"
	"academia-service/internal/pkg/utils"
	"net/http"
)

type HealthController struct {
	InternalConfig *config.InternalConfig
}

func NewHealthController(internalConfig *config.InternalConfig) *HealthController {
	return &HealthController{InternalConfig: internalConfig}
}

func (ctrl *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessMessage, map[string]string{
		"status":  constvars.ResponseSuccess,
		"version": ctrl.InternalConfig.App.Version,
	})
}

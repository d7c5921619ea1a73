package logger

import (
	"academia-service/internal/app/config"
	"academia-service/internal/pkg/constvars"
	"os"

	"github.com/sirupsen/logrus"
)

// InitLogrus configures the process-level logger used before zap is built and after it is flushed.
func InitLogrus(internalConfig *config.InternalConfig) {
	switch internalConfig.App.Env {
	case constvars.AppEnvironmentProduction:
		logrus.SetFormatter(&logrus.JSONFormatter{})
		file, err := os.OpenFile("logrus.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			logrus.SetOutput(file)
		} else {
			logrus.Info("Failed to log to file, using default stderr")
		}
	default:
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

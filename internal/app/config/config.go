package config

import (
	"academia-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "academia"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", "8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                   utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                  utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			AllowedOrigins:            utils.GetEnvStringSlice("APP_ALLOWED_ORIGINS", []string{"*"}),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 100),
			MaxTimeRequestsPerSeconds: utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			ShutdownTimeoutInSeconds:  utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:   utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
		},
		Academia: AppAcademia{
			BaseUrl:                  utils.GetEnvString("ACADEMIA_BASE_URL", "http://localhost:9090"),
			RequestTimeoutInSeconds:  utils.GetEnvInt("ACADEMIA_REQUEST_TIMEOUT_IN_SECONDS", 8),
			MaxRequestsPerSecond:     utils.GetEnvFloat("ACADEMIA_MAX_REQUESTS_PER_SECOND", 20),
			Burst:                    utils.GetEnvInt("ACADEMIA_BURST", 40),
			ServiceTokenIssuer:       utils.GetEnvString("ACADEMIA_SERVICE_TOKEN_ISSUER", "academia-service"),
			ServiceTokenAudience:     utils.GetEnvString("ACADEMIA_SERVICE_TOKEN_AUDIENCE", "academia-scraper"),
			ServiceTokenExpInMinutes: utils.GetEnvInt("ACADEMIA_SERVICE_TOKEN_EXP_IN_MINUTES", 5),
		},
		Planner: AppPlanner{
			Name:               utils.GetEnvString("PLANNER_NAME", "academic-planner"),
			RefreshCronSpec:    utils.GetEnvString("PLANNER_REFRESH_CRON_SPEC", "@hourly"),
			RefreshLockTTLInMs: utils.GetEnvInt("PLANNER_REFRESH_LOCK_TTL_IN_MS", 120000),
		},
		Cache: AppCache{
			PlannerTTLInMinutes: utils.GetEnvInt("CACHE_PLANNER_TTL_IN_MINUTES", 60),
			CoursesTTLInMinutes: utils.GetEnvInt("CACHE_COURSES_TTL_IN_MINUTES", 2),
			UserTTLInMinutes:    utils.GetEnvInt("CACHE_USER_TTL_IN_MINUTES", 10),
		},
		JWT: AppJWT{
			Secret: utils.GetEnvString("JWT_SECRET", "anyjwt"),
		},
		Export: AppExport{
			BucketName:                      utils.GetEnvString("EXPORT_BUCKET_NAME", "academia-exports"),
			PreSignedUrlExpiryTimeInMinutes: utils.GetEnvInt("EXPORT_PRE_SIGNED_URL_EXPIRY_TIME_IN_MINUTES", 15),
			MaxExportsPerMinute:             utils.GetEnvInt("EXPORT_MAX_EXPORTS_PER_MINUTE", 3),
		},
		RabbitMQ: AppRabbitMQ{
			TimetableEventsQueue: utils.GetEnvString("RABBITMQ_TIMETABLE_EVENTS_QUEUE", "academia.timetable.events"),
		},
		MongoDB: AppMongoDB{
			AcademiaDBName: utils.GetEnvString("MONGODB_ACADEMIA_DB_NAME", "academia"),
		},
	}
}

package main

import (
	"academia-service/internal/app/config"
	"academia-service/internal/app/delivery/http/controllers"
	"academia-service/internal/app/delivery/http/middlewares"
	"academia-service/internal/app/delivery/http/routers"
	"academia-service/internal/app/drivers/database"
	"academia-service/internal/app/drivers/logger"
	"academia-service/internal/app/drivers/messaging"
	"academia-service/internal/app/drivers/storage"
	"academia-service/internal/app/services/core/academic"
	"academia-service/internal/app/services/core/calendar"
	"academia-service/internal/app/services/core/courses"
	"academia-service/internal/app/services/core/timetable"
	"academia-service/internal/app/services/core/users"
	"academia-service/internal/app/services/shared/academia"
	"academia-service/internal/app/services/shared/jwtmanager"
	"academia-service/internal/app/services/shared/locker"
	"academia-service/internal/app/services/shared/publisher"
	"academia-service/internal/app/services/shared/ratelimiter"
	"academia-service/internal/app/services/shared/redis"
	minioStorage "academia-service/internal/app/services/shared/storage"
	"academia-service/internal/pkg/constvars"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogrus(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	log := logger.NewZapLogger(driverConfig, internalConfig)
	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	storage.EnsureBucket(context.Background(), minioClient, internalConfig.Export.BucketName)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		MongoDB:        mongoDB,
		Minio:          minioClient,
		Logger:         log,
		RabbitMQ:       rabbitMQ,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	if err := bootstrapingTheApp(bootstrap); err != nil {
		logrus.Fatalf("Failed to bootstrap the app: %v", err)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler: chiRouter,
	}

	go func() {
		logrus.Infof("Server listening on port %s", internalConfig.App.Port)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Errorf("Failed to release resources: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	internalConfig := bootstrap.InternalConfig

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, bootstrap.Logger)

	jwtManager, err := jwtmanager.NewJWTManager(internalConfig, bootstrap.Logger)
	if err != nil {
		return err
	}

	academiaClient := academia.NewAcademiaClient(
		internalConfig.Academia.BaseUrl,
		time.Duration(internalConfig.Academia.RequestTimeoutInSeconds)*time.Second,
		internalConfig.Academia.MaxRequestsPerSecond,
		internalConfig.Academia.Burst,
		jwtManager,
		bootstrap.Logger,
	)

	eventPublisher, err := publisher.NewRabbitMQPublisher(bootstrap.RabbitMQ, internalConfig.RabbitMQ.TimetableEventsQueue, bootstrap.Logger)
	if err != nil {
		return err
	}

	exportStorage := minioStorage.NewMinioStorage(bootstrap.Minio)
	exportLimiter := ratelimiter.NewQuotaLimiter(
		redisRepository,
		bootstrap.Logger,
		constvars.ExportQuotaGroup,
		time.Minute,
		internalConfig.Export.MaxExportsPerMinute,
	)

	// Calendar
	snapshotRepository := calendar.NewPlannerSnapshotMongoRepository(bootstrap.MongoDB, internalConfig.MongoDB.AcademiaDBName)
	calendarUsecase := calendar.NewCalendarUsecase(academiaClient, redisRepository, snapshotRepository, internalConfig, bootstrap.Logger)

	// Courses and user
	courseUsecase := courses.NewCourseUsecase(academiaClient, redisRepository, internalConfig, bootstrap.Logger)
	userUsecase := users.NewUserUsecase(academiaClient, redisRepository, internalConfig, bootstrap.Logger)

	// Timetable
	timetableUsecase := timetable.NewTimetableUsecase(
		courseUsecase,
		userUsecase,
		calendarUsecase,
		exportStorage,
		eventPublisher,
		exportLimiter,
		internalConfig,
		bootstrap.Logger,
	)

	// Aggregate
	academicUsecase := academic.NewAcademicUsecase(userUsecase, courseUsecase, calendarUsecase, timetableUsecase, bootstrap.Logger)

	// Planner refresh worker
	worker := calendar.NewWorker(bootstrap.Logger, internalConfig, lockService, calendarUsecase)
	worker.Start(context.Background())
	bootstrap.WorkerStop = worker.Stop

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middlewares.NewMetrics(registry)

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		middlewares.NewMiddlewares(bootstrap.Logger, internalConfig, metrics),
		&routers.Controllers{
			Calendar:  controllers.NewCalendarController(bootstrap.Logger, calendarUsecase, internalConfig),
			Course:    controllers.NewCourseController(bootstrap.Logger, courseUsecase, internalConfig),
			Timetable: controllers.NewTimetableController(bootstrap.Logger, timetableUsecase, internalConfig),
			Academic:  controllers.NewAcademicController(bootstrap.Logger, academicUsecase, internalConfig),
			Health:    controllers.NewHealthController(internalConfig),
		},
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	)
	return nil
}

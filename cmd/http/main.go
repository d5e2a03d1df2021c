package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"rosta-service/internal/app/config"
	"rosta-service/internal/app/delivery/http/middlewares"
	"rosta-service/internal/app/delivery/http/routers"
	"rosta-service/internal/app/drivers/database"
	"rosta-service/internal/app/drivers/logger"
	"rosta-service/internal/app/drivers/messaging"
	"rosta-service/internal/app/drivers/storage"
	"rosta-service/internal/app/services/core/calendar"
	"rosta-service/internal/app/services/core/devices"
	"rosta-service/internal/app/services/core/exports"
	"rosta-service/internal/app/services/core/notify"
	"rosta-service/internal/app/services/core/rotations"
	"rosta-service/internal/app/services/core/shifts"
	"rosta-service/internal/app/services/core/shifttypes"
	"rosta-service/internal/app/services/shared/eventqueue"
	"rosta-service/internal/app/services/shared/jwtmanager"
	"rosta-service/internal/app/services/shared/locker"
	"rosta-service/internal/app/services/shared/ratelimiter"
	"rosta-service/internal/app/services/shared/redis"
	sharedstorage "rosta-service/internal/app/services/shared/storage"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if err := bootstrapTheApp(bootstrap); err != nil {
		log.Fatalf("Error bootstrapping the application: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	zapLogger.Info("server started",
		zap.String("address", internalConfig.App.Port),
		zap.String("environment", internalConfig.App.Env),
	)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Error closing application resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap) error {
	zapLogger := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, zapLogger)
	resourceLimiter := ratelimiter.NewResourceLimiter(redisRepository, zapLogger)
	deliveryRateLimiter := ratelimiter.NewDeliveryRateLimiter(redisRepository, zapLogger, internalConfig)
	minioStorage := sharedstorage.NewMinioStorage(bootstrap.Minio)

	eventQueue, err := eventqueue.NewService(bootstrap.RabbitMQ, zapLogger, internalConfig.Webhook.MaxQueue)
	if err != nil {
		return err
	}

	jwtManager, err := jwtmanager.NewJWTManager(internalConfig, zapLogger)
	if err != nil {
		return err
	}

	// Repositories
	shiftMongoRepository := shifts.NewShiftMongoRepository(bootstrap.MongoDB, dbName)
	shiftTypeMongoRepository := shifttypes.NewShiftTypeMongoRepository(bootstrap.MongoDB, dbName)
	rotationMongoRepository := rotations.NewRotationMongoRepository(bootstrap.MongoDB, dbName)
	deviceMongoRepository := devices.NewDeviceMongoRepository(bootstrap.MongoDB, dbName)
	subscriptionMongoRepository := notify.NewSubscriptionMongoRepository(bootstrap.MongoDB, dbName)

	// Shift types
	shiftTypeUsecase, err := shifttypes.NewShiftTypeUsecase(
		shiftTypeMongoRepository,
		shiftMongoRepository,
		redisRepository,
		zapLogger,
	)
	if err != nil {
		return err
	}
	shiftTypeController := shifttypes.NewShiftTypeController(zapLogger, shiftTypeUsecase)

	// Shifts
	shiftUsecase, err := shifts.NewShiftUsecase(
		shiftMongoRepository,
		shiftTypeMongoRepository,
		redisRepository,
		lockerService,
		eventQueue,
		internalConfig,
		zapLogger,
	)
	if err != nil {
		return err
	}
	shiftController := shifts.NewShiftController(zapLogger, shiftUsecase)

	// Devices
	deviceUsecase := devices.NewDeviceUsecase(
		deviceMongoRepository,
		shiftTypeMongoRepository,
		redisRepository,
		resourceLimiter,
		internalConfig,
		zapLogger,
	)
	deviceController := devices.NewDeviceController(zapLogger, deviceUsecase)

	// Calendar
	calendarUsecase, err := calendar.NewCalendarUsecase(
		shiftMongoRepository,
		shiftTypeUsecase,
		deviceUsecase,
		redisRepository,
		internalConfig,
		zapLogger,
	)
	if err != nil {
		return err
	}
	calendarController := calendar.NewCalendarController(zapLogger, calendarUsecase)

	// Rotations
	rotationUsecase, err := rotations.NewRotationUsecase(
		rotationMongoRepository,
		shiftMongoRepository,
		shiftTypeMongoRepository,
		redisRepository,
		lockerService,
		eventQueue,
		internalConfig,
		zapLogger,
	)
	if err != nil {
		return err
	}
	rotationController := rotations.NewRotationController(zapLogger, rotationUsecase)

	// Exports
	exportUsecase, err := exports.NewExportUsecase(
		shiftMongoRepository,
		shiftTypeUsecase,
		minioStorage,
		internalConfig,
		zapLogger,
	)
	if err != nil {
		return err
	}
	exportController := exports.NewExportController(zapLogger, exportUsecase)

	// Subscriptions
	subscriptionUsecase := notify.NewSubscriptionUsecase(subscriptionMongoRepository, internalConfig, zapLogger)
	subscriptionController := notify.NewSubscriptionController(zapLogger, subscriptionUsecase)

	// Middlewares
	middlewareInstance := middlewares.NewMiddlewares(zapLogger, internalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		middlewareInstance,
		calendarController,
		shiftController,
		shiftTypeController,
		rotationController,
		deviceController,
		exportController,
		subscriptionController,
	)

	// Background workers
	rotationWorker := rotations.NewWorker(zapLogger, internalConfig, lockerService, rotationUsecase)
	rotationWorker.Start(context.Background())
	bootstrap.RotationWorkerStop = rotationWorker.Stop

	deliveryWorker := notify.NewWorker(
		zapLogger,
		internalConfig,
		lockerService,
		eventQueue,
		subscriptionMongoRepository,
		jwtManager,
		deliveryRateLimiter,
	)
	bootstrap.WorkerStop = deliveryWorker.Start(context.Background())

	return nil
}

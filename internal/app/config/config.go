package config

import (
	"rosta-service/internal/pkg/utils"

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
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "rosta"),
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
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
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
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			BaseUrl:                    utils.GetEnvString("APP_BASE_URL", "http://localhost:8080/api/v1"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Europe/Berlin"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 2),
			FirstWeekday:               utils.GetEnvInt("APP_FIRST_WEEKDAY", 1),
			PairingCode:                utils.GetEnvString("APP_PAIRING_CODE", ""),
			SuperadminAPIKey:           utils.GetEnvString("APP_SUPERADMIN_API_KEY", ""),
			SuperadminAPIKeyRateLimit:  utils.GetEnvInt("APP_SUPERADMIN_API_KEY_RATE_LIMIT", 1000),
			CalendarCacheTTLInSeconds:  utils.GetEnvInt("APP_CALENDAR_CACHE_TTL_IN_SECONDS", 120),
		},
		Session: AppSession{
			JWTSecret:         utils.GetEnvString("APP_SESSION_JWT_SECRET", ""),
			ExpTimeInHours:    utils.GetEnvInt("APP_SESSION_EXP_TIME_IN_HOURS", 720),
			LockTTLInSeconds:  utils.GetEnvInt("APP_SESSION_LOCK_TTL_IN_SECONDS", 5),
			RegisterRateLimit: utils.GetEnvInt("APP_SESSION_REGISTER_RATE_LIMIT", 5),
		},
		Minio: AppMinio{
			BucketName:                     utils.GetEnvString("MINIO_BUCKET_NAME", "rosta-exports"),
			PresignedURLExpiryTimeInHours:  utils.GetEnvInt("APP_MINIO_PRESIGNED_URL_EXPIRY_TIME_IN_HOURS", 24),
			ExportMaxObjectSizeInMegabytes: utils.GetEnvInt("APP_MINIO_EXPORT_MAX_OBJECT_SIZE_IN_MEGABYTES", 8),
		},
		MongoDB: AppMongoDB{
			RostaDBName: utils.GetEnvString("APP_MONGODB_ROSTA_DB_NAME", "rosta"),
		},
		Rotation: AppRotation{
			CronSpec:         utils.GetEnvString("APP_ROTATION_CRON_SPEC", "@daily"),
			HorizonDays:      utils.GetEnvInt("APP_ROTATION_HORIZON_DAYS", 30),
			LockTTLInSeconds: utils.GetEnvInt("APP_ROTATION_LOCK_TTL_IN_SECONDS", 60),
		},
		Webhook: AppWebhook{
			MaxQueue:             utils.GetEnvInt("WEBHOOK_MAX_QUEUE", 10),
			ThrottleRetry:        utils.GetEnvInt("WEBHOOK_THROTTLE_RETRY", 5),
			HTTPTimeoutInSeconds: utils.GetEnvInt("WEBHOOK_HTTP_TIMEOUT_IN_SECONDS", 10),
			JWTAlg:               utils.GetEnvString("WEBHOOK_JWT_ALG", "ES256"),
			SigningKey:           utils.GetEnvString("WEBHOOK_SIGNING_KEY", ""),
			RateLimit:            utils.GetEnvInt("WEBHOOK_RATE_LIMIT", 60),
			RateLimitedEvents:    utils.GetEnvString("WEBHOOK_RATE_LIMITED_EVENTS", ""),
		},
	}
}

package config

type InternalConfig struct {
	App      App         `mapstructure:"app"`
	Session  AppSession  `mapstructure:"session"`
	Minio    AppMinio    `mapstructure:"minio"`
	MongoDB  AppMongoDB  `mapstructure:"mongodb"`
	Rotation AppRotation `mapstructure:"rotation"`
	Webhook  AppWebhook  `mapstructure:"webhook"`
}

type App struct {
	Env                        string `mapstructure:"env"`
	Port                       string `mapstructure:"port"`
	Version                    string `mapstructure:"version"`
	Address                    string `mapstructure:"address"`
	BaseUrl                    string `mapstructure:"base_url"`
	Timezone                   string `mapstructure:"timezone"`
	EndpointPrefix             string `mapstructure:"endpoint_prefix"`
	MaxRequests                int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds   int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestBodyLimitInMegabyte int    `mapstructure:"request_body_limit_in_megabyte"`
	// FirstWeekday is the roster-wide default week start (1=Sunday..7=Saturday)
	// used when a device has no saved preference.
	FirstWeekday int `mapstructure:"first_weekday"`
	// PairingCode must be presented by a device to register against this roster.
	PairingCode string `mapstructure:"pairing_code"`
	// SuperadminAPIKey guards the ops endpoints (rotation materialization, exports cleanup).
	SuperadminAPIKey string `mapstructure:"superadmin_api_key"`
	// SuperadminAPIKeyRateLimit is the per-second request budget for api-key callers.
	SuperadminAPIKeyRateLimit int `mapstructure:"superadmin_api_key_rate_limit"`
	// CalendarCacheTTLInSeconds bounds staleness of the cached month aggregates.
	CalendarCacheTTLInSeconds int `mapstructure:"calendar_cache_ttl_in_seconds"`
}

type AppSession struct {
	JWTSecret         string `mapstructure:"jwt_secret"`
	ExpTimeInHours    int    `mapstructure:"exp_time_in_hours"`
	LockTTLInSeconds  int    `mapstructure:"lock_ttl_in_seconds"`
	RegisterRateLimit int    `mapstructure:"register_rate_limit"`
}

type AppMinio struct {
	BucketName                     string `mapstructure:"bucket_name"`
	PresignedURLExpiryTimeInHours  int    `mapstructure:"presigned_url_expiry_time_in_hours"`
	ExportMaxObjectSizeInMegabytes int    `mapstructure:"export_max_object_size_in_megabytes"`
}

type AppMongoDB struct {
	RostaDBName string `mapstructure:"rosta_db_name"`
}

// AppRotation configures the background materializer that expands weekly
// rotations into concrete shifts.
type AppRotation struct {
	// CronSpec defines the materializer schedule (e.g., "@daily").
	CronSpec string `mapstructure:"cron_spec"`
	// HorizonDays is the default rolling window when a rotation does not set its own.
	HorizonDays int `mapstructure:"horizon_days"`
	// LockTTLInSeconds bounds how long one instance holds the materializer lock.
	LockTTLInSeconds int `mapstructure:"lock_ttl_in_seconds"`
}

// AppWebhook holds configuration for outbound event delivery to subscribers.
type AppWebhook struct {
	// MaxQueue defines how many items the worker processes per tick
	MaxQueue int `mapstructure:"max_queue"`
	// ThrottleRetry is the failedCount threshold before sending to DLQ
	ThrottleRetry int `mapstructure:"throttle_retry"`
	// HTTPTimeoutInSeconds is the HTTP client timeout when calling a subscriber
	HTTPTimeoutInSeconds int `mapstructure:"http_timeout_in_seconds"`
	// JWTAlg selects the signing algorithm (ES256|RS256)
	JWTAlg string `mapstructure:"jwt_alg"`
	// SigningKey is the private key PEM for signing delivery JWTs
	SigningKey string `mapstructure:"signing_key"`
	// RateLimit is the number of deliveries allowed per 60-second window per event type
	RateLimit int `mapstructure:"rate_limit"`
	// RateLimitedEvents is a CSV list of event types subject to rate limiting
	RateLimitedEvents string `mapstructure:"rate_limited_events"`
}

package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDeviceIDKey       = "device_id"
	LoggingShiftIDKey        = "shift_id"
	LoggingShiftTypeIDKey    = "shift_type_id"
	LoggingRotationIDKey     = "rotation_id"
	LoggingDataKey           = "data"
	LoggingQueryParamsKey    = "query_params"
	LoggingResponseKey       = "response"
	LoggingRequestKey        = "request"
	LoggingResponseLengthKey = "response_length"
	LoggingOperationKey      = "operation"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingMonthKey          = "month"
	LoggingEventTypeKey      = "event_type"
	LoggingQueueKey          = "queue"
	LoggingSubscriptionKey   = "subscription_id"

	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
)

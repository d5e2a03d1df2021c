package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":         "is required",
	"alphanum":         "must contain only alphanumeric characters",
	"min":              "must be at least %s",
	"max":              "must be at most %s",
	"numeric":          "must be a number",
	"len":              "must be %s characters long",
	"oneof":            "must be one of [%s]",
	"gt":               "must be greater than %s",
	"gte":              "must be greater than or equal to %s",
	"lt":               "must be less than %s",
	"lte":              "must be less than or equal to %s",
	"url":              "must be a valid URL",
	"uuid":             "must be a valid UUID",
	"hexcolor":         "must be a valid hex color code",
	"dayformat":        "must be a date formatted as YYYY-MM-DD",
	"clock":            "must be a time formatted as HH:MM",
	"required_if":      "is required when %s is %s",
	"required_without": "is required when %s is not present",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":              true,
	"max":              true,
	"len":              true,
	"gt":               true,
	"gte":              true,
	"lt":               true,
	"lte":              true,
	"oneof":            true,
	"required_if":      true,
	"required_without": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please pair the device again"
	ErrClientInvalidPairingCode            = "invalid pairing code"
	ErrClientInvalidDeviceCredentials      = "invalid device credentials"
	ErrClientDeviceNotFound                = "device is not registered"
	ErrClientShiftNotFound                 = "shift not found"
	ErrClientShiftTypeNotFound             = "shift type not found"
	ErrClientShiftTypeInUse                = "shift type is still used by existing shifts"
	ErrClientShiftTypeNameTaken            = "a shift type with that name already exists"
	ErrClientRotationNotFound              = "rotation not found"
	ErrClientSubscriptionNotFound          = "subscription not found"
	ErrClientDuplicateShift                = "the same shift type is already scheduled on that day"
	ErrClientDayLocked                     = "that day is being modified by another request, try again"
	ErrClientTooManyRequests               = "too many requests, slow down"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotParseTime          = "cannot parse time into the given format"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevInvalidFormat            = "invalid %s format"
	ErrDevBuildRequest             = "encountering error while building request DTO"
	ErrDevDocumentNotFound         = "document not found"
	ErrDevInvalidCredentials       = "invalid credentials"
	ErrDevUnauthorized             = "unauthorized access"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevSendHTTPRequest          = "failed to send HTTP request"
	ErrDevFailedToHashSecret       = "failed to hash device secret"
	ErrDevPairingCodeMismatch      = "pairing code does not match the configured value"
	ErrDevDeviceSecretMismatch     = "device secret does not match the stored hash"
	ErrDevDeviceNotExists          = "device not exists in our system"
	ErrDevShiftNotExists           = "shift not exists in our system"
	ErrDevShiftTypeNotExists       = "shift type not exists in our system"
	ErrDevShiftTypeStillReferenced = "shift type is referenced by at least one shift"
	ErrDevRotationNotExists        = "rotation not exists in our system"
	ErrDevSubscriptionNotExists    = "subscription not exists in our system"
	ErrDevDuplicateShiftOnDay      = "a shift with the same shift type already exists on that day"
	ErrDevDocumentAlreadyExists    = "a document with the same unique field already exists"
	ErrDevDayLockNotAcquired       = "failed to acquire the per-day write lock"

	// Validation messages
	ErrDevValidationFailed           = "validation failed"
	ErrDevInvalidRequestPayload      = "invalid request payload"
	ErrDevMissingRequiredFields      = "missing required fields"
	ErrDevURLParamIDValidationFailed = "parameter %s validation failed"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenExpired          = "token expired"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthInvalidAPIKey         = "api key does not match the configured value"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed when do delete document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
	ErrDevDBConnectionFailed         = "failed to connect to database"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"

	// Minio messages
	ErrDevMinioFailedToCreateObject          = "failed to create object into minio storage with bucket name '%s'"
	ErrDevMinioFailedToGetObjectPresignedURL = "failed to get object URL from minio storage with bucket name '%s'"

	// Redis messages
	ErrDevRedisSetData        = "failed to SET data into redis"
	ErrDevRedisGetData        = "failed to GET data from redis"
	ErrDevRedisGetNoData      = "failed to GET data from redis, there is no data associated with key %s"
	ErrDevRedisDeleteData     = "failed to DELETE data from redis"
	ErrDevRedisIncrementValue = "failed to INCR data in redis"
	ErrDevRedisSetNX          = "failed to SETNX data into redis"
	ErrDevRedisUnlock         = "failed to release redis lock"

	// RabbitMQ messages
	ErrDevRabbitMQPublish = "failed to publish message into queue '%s'"
	ErrDevRabbitMQConsume = "failed to consume messages from queue '%s'"

	// Export messages
	ErrDevExportRender = "failed to render the %s export"

	// Server messages
	ErrDevServerProcess          = "server failed to process something related to machine system"
	ErrDevServerInternalError    = "internal server error"
	ErrDevServerDeadlineExceeded = "deadline exceeded"

	// Miscellaneous messages
	ErrDevActionNotAllowed     = "action not allowed"
	ErrDevServiceUnavailable   = "service temporarily unavailable"
	ErrDevRequestLimitExceeded = "request limit exceeded"
)

const (
	ErrFileLocationUnknown = "file location unknown"
	ErrLineLocationUnknown = "line location unknown"
	ErrFunctionNameUnknown = "function name unknown"
)

const (
	ErrEnvParsing     = "Error parsing %s: %v, will use default value"
	ErrEnvKeyNotExist = "Error getting env key: %s, will use default value"
)

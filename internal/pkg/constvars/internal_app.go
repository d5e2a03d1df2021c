package constvars

type ContextKey string

const (
	ResourceShifts        = "shifts"
	ResourceShiftTypes    = "shift-types"
	ResourceRotations     = "rotations"
	ResourceDevices       = "devices"
	ResourceCalendar      = "calendar"
	ResourceExports       = "exports"
	ResourceSubscriptions = "subscriptions"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	MongoCollectionShifts        = "shifts"
	MongoCollectionShiftTypes    = "shift_types"
	MongoCollectionRotations     = "rotations"
	MongoCollectionDevices       = "devices"
	MongoCollectionSubscriptions = "subscriptions"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_DEVICE_ID_KEY            ContextKey = "device_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "ROSTA_SVC_"
)

const (
	ShiftSourceManual   = "manual"
	ShiftSourceRotation = "rotation"
)

const (
	ExportFormatCSV = "csv"
	ExportFormatICS = "ics"
)

const (
	DevicePlatformIOS     = "ios"
	DevicePlatformAndroid = "android"
)

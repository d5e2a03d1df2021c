package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Calendar messages
	GetMonthViewSuccessMessage = "get month view successfully"
	GetMonthGridSuccessMessage = "get month grid successfully"

	// Shift messages
	CreateShiftSuccessMessage      = "shift created successfully"
	DeleteShiftSuccessMessage      = "shift deleted successfully"
	GetShiftsSuccessMessage        = "get shifts successfully"
	BulkCreateShiftsSuccessMessage = "shifts created successfully"
	BulkDeleteShiftsSuccessMessage = "shifts deleted successfully"

	// Shift type messages
	CreateShiftTypeSuccessMessage = "shift type created successfully"
	UpdateShiftTypeSuccessMessage = "shift type updated successfully"
	DeleteShiftTypeSuccessMessage = "shift type deleted successfully"
	GetShiftTypesSuccessMessage   = "get shift types successfully"

	// Rotation messages
	CreateRotationSuccessMessage      = "rotation created successfully"
	UpdateRotationSuccessMessage      = "rotation updated successfully"
	DeleteRotationSuccessMessage      = "rotation deleted successfully"
	GetRotationsSuccessMessage        = "get rotations successfully"
	MaterializeRotationSuccessMessage = "rotations materialized successfully"

	// Device messages
	RegisterDeviceSuccessMessage       = "device registered successfully"
	RenewDeviceSessionSuccessMessage   = "device session renewed successfully"
	GetDeviceSuccessMessage            = "get device successfully"
	UpdateDeviceSettingsSuccessMessage = "device settings updated successfully"

	// Export messages
	CreateExportSuccessMessage = "export created successfully"

	// Subscription messages
	CreateSubscriptionSuccessMessage = "subscription created successfully"
	DeleteSubscriptionSuccessMessage = "subscription deleted successfully"
	GetSubscriptionsSuccessMessage   = "get subscriptions successfully"
)

package constvars

const (
	URLParamShiftID        = "shift_id"
	URLParamShiftTypeID    = "shift_type_id"
	URLParamRotationID     = "rotation_id"
	URLParamSubscriptionID = "subscription_id"
	URLParamYear           = "year"
	URLParamMonth          = "month"
)

const (
	URLQueryParamPage         = "page"
	URLQueryParamPageSize     = "page_size"
	URLQueryParamYear         = "year"
	URLQueryParamMonth        = "month"
	URLQueryParamFirstWeekday = "first_weekday"
	URLQueryParamMode         = "mode"
	URLQueryParamSelected     = "selected"
	URLQueryParamFocused      = "focused"
	URLQueryParamFormat       = "format"
)

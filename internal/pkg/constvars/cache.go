package constvars

const (
	RedisKeyShiftTypeList        = "shift-types:all"
	RedisKeyDeviceSettingsFormat = "devices:settings:%s"

	// RedisKeyCalendarVersion is bumped on every roster mutation; the month
	// cache key embeds the version so stale aggregates die without scans.
	RedisKeyCalendarVersion   = "calendar:version"
	RedisKeyMonthShiftsFormat = "calendar:shifts:v%d:%s"

	RedisKeyRotationWorkerLock = "rotations:materialize:lock"
	RedisKeyDeliveryWorkerLock = "notify:deliver:lock"
	RedisKeyDayLockFormat      = "shifts:day:%s:lock"
)

package constvars

const (
	RegexAlphanumeric    = `^[a-zA-Z0-9]+$`
	RegexNumeric         = `^\d+$`
	RegexURL             = `^(http|https):\/\/[^\s$.?#].[^\s]*$`
	RegexDateYYYYMMDD    = `^\d{4}-\d{2}-\d{2}$`
	RegexClockHHMM       = `^([01]\d|2[0-3]):[0-5]\d$`
	RegexDateTimeISO8601 = `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:\.\d+)?(?:Z|[+-]\d{2}:\d{2})$`
	RegexHexColorCode    = `^#?([a-fA-F0-9]{6}|[a-fA-F0-9]{3})$`
)

package utils

import "time"

const (
	DayKeyLayout = "2006-01-02"
	ClockLayout  = "15:04"
)

func ParseDayKey(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DayKeyLayout, value, loc)
}

func FormatDayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

func ParseClock(value string) (time.Time, error) {
	return time.Parse(ClockLayout, value)
}

func IsClockBefore(start, end string) bool {
	startTime, err := time.Parse(ClockLayout, start)
	if err != nil {
		return false
	}
	endTime, err := time.Parse(ClockLayout, end)
	if err != nil {
		return false
	}
	return startTime.Before(endTime)
}

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekdayNumber maps t to the roster weekday convention, 1=Sunday..7=Saturday.
func WeekdayNumber(t time.Time) int {
	return int(t.Weekday()) + 1
}

func MonthRange(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}

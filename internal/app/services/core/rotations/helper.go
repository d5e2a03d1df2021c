package rotations

import (
	"fmt"
	"time"

	"rosta-service/internal/app/models"
	"rosta-service/internal/pkg/utils"
)

// expandRotation returns every day in [from, to) that falls on one of the
// rotation's weekdays, at midnight in from's location. Both bounds are
// treated as local days; callers pass midnight-normalized times.
func expandRotation(rotation models.Rotation, from, to time.Time) []time.Time {
	wanted := weekdaySet(rotation.Weekdays)
	var days []time.Time
	for day := utils.StartOfDay(from); day.Before(to); day = day.AddDate(0, 0, 1) {
		if _, ok := wanted[utils.WeekdayNumber(day)]; ok {
			days = append(days, day)
		}
	}
	return days
}

func weekdaySet(weekdays []int) map[int]struct{} {
	set := make(map[int]struct{}, len(weekdays))
	for _, weekday := range weekdays {
		set[weekday] = struct{}{}
	}
	return set
}

// validateWeekdays rejects out-of-range or repeated weekday numbers. The
// validator tags already bound each value; duplicates only show up here.
func validateWeekdays(weekdays []int) error {
	seen := make(map[int]struct{}, len(weekdays))
	for i, weekday := range weekdays {
		if weekday < 1 || weekday > 7 {
			return fmt.Errorf("weekdays[%d]: %d is outside 1..7", i, weekday)
		}
		if _, duplicate := seen[weekday]; duplicate {
			return fmt.Errorf("weekdays[%d]: %d appears more than once", i, weekday)
		}
		seen[weekday] = struct{}{}
	}
	return nil
}

// horizonFor picks the rotation's own horizon when set, otherwise the
// roster-wide default.
func horizonFor(rotation models.Rotation, defaultHorizonDays int) int {
	if rotation.HorizonDays > 0 {
		return rotation.HorizonDays
	}
	return defaultHorizonDays
}

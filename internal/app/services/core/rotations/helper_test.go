package rotations

import (
	"testing"
	"time"

	"rosta-service/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func TestExpandRotation(t *testing.T) {

	t.Run("Single Weekday Lands On Every Matching Day", func(t *testing.T) {
		rotation := models.Rotation{Weekdays: []int{2}} // Mondays
		from := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

		days := expandRotation(rotation, from, to)

		assert.Len(t, days, 2, "two Mondays fall inside the first two weeks of March 2024")
		assert.Equal(t, 4, days[0].Day(), "first Monday should be March 4th")
		assert.Equal(t, 11, days[1].Day(), "second Monday should be March 11th")
	})

	t.Run("Weekend Plan Collects Saturdays And Sundays", func(t *testing.T) {
		rotation := models.Rotation{Weekdays: []int{1, 7}}
		from := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

		days := expandRotation(rotation, from, to)

		assert.Len(t, days, 4, "two full weekends fall inside the window")
		for _, day := range days {
			weekday := day.Weekday()
			assert.True(t, weekday == time.Saturday || weekday == time.Sunday,
				"every expanded day should be a weekend day, got %s", weekday)
		}
	})

	t.Run("Upper Bound Is Exclusive", func(t *testing.T) {
		rotation := models.Rotation{Weekdays: []int{6}} // Fridays
		from := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, time.March, 8, 0, 0, 0, 0, time.UTC)

		days := expandRotation(rotation, from, to)

		assert.Len(t, days, 1, "March 8th is a Friday but sits on the excluded bound")
		assert.Equal(t, 1, days[0].Day(), "only March 1st should be expanded")
	})

	t.Run("Every Day Plan Covers The Whole Window", func(t *testing.T) {
		rotation := models.Rotation{Weekdays: []int{1, 2, 3, 4, 5, 6, 7}}
		from := time.Date(2024, time.February, 26, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)

		days := expandRotation(rotation, from, to)

		assert.Len(t, days, 7, "a full-week plan should expand every day in the window")
	})

	t.Run("Days Are Normalized To Midnight", func(t *testing.T) {
		rotation := models.Rotation{Weekdays: []int{2}}
		from := time.Date(2024, time.March, 3, 15, 30, 0, 0, time.UTC)
		to := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

		days := expandRotation(rotation, from, to)

		assert.Len(t, days, 1, "one Monday inside the window")
		assert.Equal(t, 0, days[0].Hour(), "expanded days should start at midnight")
		assert.Equal(t, 0, days[0].Minute(), "expanded days should start at midnight")
	})

	t.Run("Empty Window Expands Nothing", func(t *testing.T) {
		rotation := models.Rotation{Weekdays: []int{1, 2, 3}}
		from := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

		days := expandRotation(rotation, from, from)

		assert.Empty(t, days, "an empty window should expand no days")
	})
}

func TestValidateWeekdays(t *testing.T) {

	t.Run("Valid Plans Pass", func(t *testing.T) {
		assert.NoError(t, validateWeekdays([]int{1}), "single weekday should validate")
		assert.NoError(t, validateWeekdays([]int{1, 2, 3, 4, 5, 6, 7}), "full week should validate")
	})

	t.Run("Out Of Range Weekday Fails", func(t *testing.T) {
		assert.Error(t, validateWeekdays([]int{0}), "zero is below the weekday range")
		assert.Error(t, validateWeekdays([]int{8}), "eight is above the weekday range")
	})

	t.Run("Duplicate Weekday Fails", func(t *testing.T) {
		assert.Error(t, validateWeekdays([]int{2, 3, 2}), "a repeated weekday should be rejected")
	})
}

func TestHorizonFor(t *testing.T) {

	t.Run("Rotation Horizon Wins When Set", func(t *testing.T) {
		rotation := models.Rotation{HorizonDays: 14}
		assert.Equal(t, 14, horizonFor(rotation, 30), "the rotation's own horizon should win")
	})

	t.Run("Default Horizon Fills The Gap", func(t *testing.T) {
		rotation := models.Rotation{}
		assert.Equal(t, 30, horizonFor(rotation, 30), "an unset horizon should fall back to the default")
	})
}

package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateByDay(t *testing.T) {
	t.Run("Empty Input Yields Empty Map", func(t *testing.T) {
		aggregates := AggregateByDay(nil)

		assert.Empty(t, aggregates)
	})

	t.Run("Groups By Wall Date Across Times Of Day", func(t *testing.T) {
		shifts := []ShiftRecord{
			{Date: time.Date(2024, time.March, 10, 6, 0, 0, 0, time.UTC), Symbol: "🌅"},
			{Date: time.Date(2024, time.March, 10, 22, 0, 0, 0, time.UTC), Symbol: "N"},
			{Date: time.Date(2024, time.March, 11, 6, 0, 0, 0, time.UTC), Symbol: "🌅"},
		}

		aggregates := AggregateByDay(shifts)

		require.Len(t, aggregates, 2, "two distinct days expected")
		tenth, ok := aggregates[DayKey("2024-03-10")]
		require.True(t, ok)
		assert.True(t, tenth.HasShift)
		assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), tenth.Date, "aggregate date should be start of day")
	})

	t.Run("First Record In Input Order Supplies The Symbol", func(t *testing.T) {
		morningFirst := []ShiftRecord{
			{Date: time.Date(2024, time.March, 10, 6, 0, 0, 0, time.UTC), Symbol: "🌅"},
			{Date: time.Date(2024, time.March, 10, 22, 0, 0, 0, time.UTC), Symbol: "N"},
		}
		nightFirst := []ShiftRecord{morningFirst[1], morningFirst[0]}

		assert.Equal(t, "🌅", AggregateByDay(morningFirst)[DayKey("2024-03-10")].Symbol)
		assert.Equal(t, "N", AggregateByDay(nightFirst)[DayKey("2024-03-10")].Symbol)
	})

	t.Run("Flags Are Stable Under Input Reordering", func(t *testing.T) {
		shifts := []ShiftRecord{
			{Date: time.Date(2024, time.March, 10, 6, 0, 0, 0, time.UTC), Symbol: "🌅"},
			{Date: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), Symbol: "🗓️", AllDay: true},
			{Date: time.Date(2024, time.March, 12, 14, 0, 0, 0, time.UTC), Symbol: "PM"},
		}
		reversed := []ShiftRecord{shifts[2], shifts[1], shifts[0]}

		forward := AggregateByDay(shifts)
		backward := AggregateByDay(reversed)

		require.Len(t, forward, 2)
		require.Len(t, backward, 2)
		for key, aggregate := range forward {
			assert.Equal(t, aggregate.HasShift, backward[key].HasShift, "HasShift for %s", key)
			assert.Equal(t, aggregate.AllDayShift, backward[key].AllDayShift, "AllDayShift for %s", key)
			assert.Equal(t, aggregate.Date, backward[key].Date, "Date for %s", key)
		}
	})

	t.Run("Any All Day Shift Marks The Whole Day", func(t *testing.T) {
		shifts := []ShiftRecord{
			{Date: time.Date(2024, time.March, 10, 6, 0, 0, 0, time.UTC), Symbol: "🌅", AllDay: false},
			{Date: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), Symbol: "🗓️", AllDay: true},
		}

		aggregate := AggregateByDay(shifts)[DayKey("2024-03-10")]

		assert.True(t, aggregate.HasShift)
		assert.True(t, aggregate.AllDayShift, "one all-day record should mark the day all-day")
		assert.Equal(t, "🌅", aggregate.Symbol, "symbol should still come from the first record")
	})

	t.Run("Wall Dates Match Across Zones", func(t *testing.T) {
		aest := time.FixedZone("UTC+10", 10*3600)
		shifts := []ShiftRecord{
			{Date: time.Date(2024, time.March, 10, 23, 0, 0, 0, time.UTC), Symbol: "N"},
			{Date: time.Date(2024, time.March, 10, 1, 0, 0, 0, aest), Symbol: "🌅"},
		}

		aggregates := AggregateByDay(shifts)

		assert.Len(t, aggregates, 1, "same wall date should fold into one day regardless of zone")
	})

	t.Run("Missing Symbol Stays Empty", func(t *testing.T) {
		shifts := []ShiftRecord{
			{Date: time.Date(2024, time.March, 10, 6, 0, 0, 0, time.UTC)},
		}

		aggregate := AggregateByDay(shifts)[DayKey("2024-03-10")]

		assert.True(t, aggregate.HasShift)
		assert.Equal(t, "", aggregate.Symbol)
	})
}

func TestDisplaySymbol(t *testing.T) {
	cases := []struct {
		name     string
		symbol   string
		expected string
	}{
		{"Empty", "", ""},
		{"Single Letter", "N", "N"},
		{"Two Letters Unchanged", "AM", "AM"},
		{"Exactly Three Unchanged", "PM2", "PM2"},
		{"Four Letters Truncated", "NGHT", "NGH…"},
		{"Five Letters Truncated", "NIGHT", "NIG…"},
		{"Single Emoji Unchanged", "🌅", "🌅"},
		{"Emoji Run Truncated By Rune", "🌅🌙🌞🌚🌛", "🌅🌙🌞…"},
		{"Multibyte Letters Truncated By Rune", "日勤務X", "日勤務…"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DisplaySymbol(tc.symbol))
		})
	}
}

func TestKeyFor(t *testing.T) {
	assert.Equal(t, DayKey("2024-03-05"), KeyFor(time.Date(2024, time.March, 5, 18, 30, 0, 0, time.UTC)))
	assert.Equal(t, DayKey("1999-12-31"), KeyFor(time.Date(1999, time.December, 31, 0, 0, 0, 0, time.UTC)))
}

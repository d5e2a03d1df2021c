package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMonthGrid(t *testing.T) {
	t.Run("March 2024 With Sunday Start", func(t *testing.T) {
		month := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

		cells := BuildMonthGrid(month, 1)

		require.Len(t, cells, GridSize, "grid should always hold 42 cells")
		for i := 0; i < 5; i++ {
			assert.False(t, cells[i].Dated(), "cell %d should be leading padding", i)
		}
		for i := 5; i < 36; i++ {
			assert.True(t, cells[i].Dated(), "cell %d should carry a date", i)
		}
		for i := 36; i < GridSize; i++ {
			assert.False(t, cells[i].Dated(), "cell %d should be trailing padding", i)
		}
		assert.Equal(t, 1, cells[5].Date.Day(), "first dated cell should be March 1")
		assert.Equal(t, 31, cells[35].Date.Day(), "last dated cell should be March 31")
	})

	t.Run("Monday Start Shifts The Offset", func(t *testing.T) {
		month := time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

		cells := BuildMonthGrid(month, 2)

		assert.False(t, cells[3].Dated(), "cell 3 should be padding with Monday start")
		assert.True(t, cells[4].Dated(), "cell 4 should be March 1 with Monday start")
		assert.Equal(t, 1, cells[4].Date.Day())
	})

	t.Run("Month Starting On The First Weekday Has No Leading Padding", func(t *testing.T) {
		// February 2027 starts on a Monday.
		month := time.Date(2027, time.February, 1, 0, 0, 0, 0, time.UTC)

		cells := BuildMonthGrid(month, 2)

		assert.True(t, cells[0].Dated(), "cell 0 should be February 1")
		assert.Equal(t, 1, cells[0].Date.Day())
		assert.False(t, cells[28].Dated(), "cell 28 should be trailing padding")
	})

	t.Run("Every Month Fills Exactly 42 Cells", func(t *testing.T) {
		for _, year := range []int{2023, 2024, 2025} {
			for m := time.January; m <= time.December; m++ {
				for firstWeekday := 1; firstWeekday <= 7; firstWeekday++ {
					month := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
					cells := BuildMonthGrid(month, firstWeekday)

					require.Len(t, cells, GridSize, "%s %d fw=%d", m, year, firstWeekday)
					for i, cell := range cells {
						assert.Equal(t, i, cell.Index, "cell index should match position")
					}
				}
			}
		}
	})

	t.Run("Dated Count Matches Days In Month", func(t *testing.T) {
		cases := []struct {
			name  string
			month time.Time
			days  int
		}{
			{"February Non Leap", time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC), 28},
			{"February Leap", time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), 29},
			{"April", time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), 30},
			{"December", time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), 31},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				for firstWeekday := 1; firstWeekday <= 7; firstWeekday++ {
					cells := BuildMonthGrid(tc.month, firstWeekday)
					dated := 0
					for _, cell := range cells {
						if cell.Dated() {
							dated++
						}
					}
					assert.Equal(t, tc.days, dated, "fw=%d", firstWeekday)
				}
			})
		}
	})

	t.Run("Dates Are Contiguous And Increase By One Day", func(t *testing.T) {
		month := time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC)

		cells := BuildMonthGrid(month, 1)

		var previous time.Time
		inDates := false
		for _, cell := range cells {
			if !cell.Dated() {
				if inDates {
					// Once dates ended, no dated cell may follow.
					for j := cell.Index; j < GridSize; j++ {
						assert.False(t, cells[j].Dated(), "cell %d should stay padding after dates end", j)
					}
					break
				}
				continue
			}
			if inDates {
				assert.Equal(t, previous.AddDate(0, 0, 1), cell.Date, "dates should increase by exactly one day")
			}
			previous = cell.Date
			inDates = true
		}
	})

	t.Run("Dates Are Normalized To Midnight In The Month Location", func(t *testing.T) {
		loc := time.FixedZone("UTC+10", 10*3600)
		month := time.Date(2024, time.June, 17, 23, 45, 12, 0, loc)

		cells := BuildMonthGrid(month, 1)

		for _, cell := range cells {
			if !cell.Dated() {
				continue
			}
			assert.Equal(t, 0, cell.Date.Hour(), "dated cells should sit at midnight")
			assert.Equal(t, 0, cell.Date.Minute())
			assert.Equal(t, loc, cell.Date.Location(), "dates should keep the month location")
		}
	})

	t.Run("First Weekday Wraps Outside 1 To 7", func(t *testing.T) {
		month := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

		assert.Equal(t, BuildMonthGrid(month, 1), BuildMonthGrid(month, 8), "8 should behave like Sunday")
		assert.Equal(t, BuildMonthGrid(month, 7), BuildMonthGrid(month, 0), "0 should behave like Saturday")
		assert.Equal(t, BuildMonthGrid(month, 6), BuildMonthGrid(month, -1), "-1 should behave like Friday")
	})
}

func TestDatedIndices(t *testing.T) {
	month := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	cells := BuildMonthGrid(month, 1)

	dated := DatedIndices(cells)

	assert.Len(t, dated, 31, "March should contribute 31 dated indices")
	_, ok := dated[4]
	assert.False(t, ok, "padding index should be absent")
	_, ok = dated[5]
	assert.True(t, ok, "March 1 index should be present")
	_, ok = dated[35]
	assert.True(t, ok, "March 31 index should be present")
}

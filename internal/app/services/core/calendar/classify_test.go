package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyCell(t *testing.T) {
	date := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	datedCell := Cell{Index: 14, Date: date}
	paddingCell := Cell{Index: 2}

	t.Run("Padding Cell Is Blank With No Action", func(t *testing.T) {
		presentation := ClassifyCell(paddingCell, nil, NewSelection(ModeAdd, []DayKey{"2024-03-10"}, ""))

		assert.Equal(t, PresentationBlank, presentation.Kind)
		assert.Equal(t, ActionNone, presentation.Action)
		assert.False(t, presentation.Selected)
	})

	t.Run("Shiftless Day In Add Mode Becomes Empty Target", func(t *testing.T) {
		presentation := ClassifyCell(datedCell, nil, NewSelection(ModeAdd, nil, ""))

		assert.Equal(t, PresentationEmptyTarget, presentation.Kind)
		assert.Equal(t, ActionToggleBulkDate, presentation.Action)
		assert.False(t, presentation.Selected)
	})

	t.Run("Empty Target Reflects Bulk Selection Membership", func(t *testing.T) {
		selection := NewSelection(ModeAdd, []DayKey{"2024-03-10", "2024-03-12"}, "")

		presentation := ClassifyCell(datedCell, nil, selection)

		assert.Equal(t, PresentationEmptyTarget, presentation.Kind)
		assert.True(t, presentation.Selected, "day key inside the bulk selection should read selected")
	})

	t.Run("Day With Shift Never Becomes Empty Target", func(t *testing.T) {
		aggregate := &DayAggregate{Date: date, HasShift: true, Symbol: "🌅"}
		selection := NewSelection(ModeAdd, []DayKey{"2024-03-10"}, "")

		presentation := ClassifyCell(datedCell, aggregate, selection)

		assert.Equal(t, PresentationDay, presentation.Kind, "shifted day must stay a day cell even in add mode")
		assert.Equal(t, ActionSelectDate, presentation.Action)
		assert.True(t, presentation.HasShift)
	})

	t.Run("Shiftless Day Outside Add Mode Is A Plain Day Cell", func(t *testing.T) {
		for _, mode := range []SelectionMode{ModeNone, ModeDelete} {
			presentation := ClassifyCell(datedCell, nil, NewSelection(mode, nil, ""))

			assert.Equal(t, PresentationDay, presentation.Kind, "mode %q", mode)
			assert.Equal(t, ActionSelectDate, presentation.Action, "mode %q", mode)
			assert.False(t, presentation.HasShift, "mode %q", mode)
			assert.Empty(t, presentation.Symbol, "mode %q", mode)
		}
	})

	t.Run("Aggregate Without Shift Counts As Shiftless", func(t *testing.T) {
		aggregate := &DayAggregate{Date: date}

		presentation := ClassifyCell(datedCell, aggregate, NewSelection(ModeAdd, nil, ""))

		assert.Equal(t, PresentationEmptyTarget, presentation.Kind)
	})

	t.Run("Day Cell Carries Aggregate Flags And Truncated Symbol", func(t *testing.T) {
		aggregate := &DayAggregate{Date: date, HasShift: true, AllDayShift: true, Symbol: "NIGHT"}

		presentation := ClassifyCell(datedCell, aggregate, Selection{})

		assert.Equal(t, PresentationDay, presentation.Kind)
		assert.True(t, presentation.HasShift)
		assert.True(t, presentation.AllDayShift)
		assert.Equal(t, "NIG…", presentation.Symbol, "symbol should be display-truncated")
	})

	t.Run("Focused Day Reads As Selected Date", func(t *testing.T) {
		focused := ClassifyCell(datedCell, nil, NewSelection(ModeNone, nil, "2024-03-10"))
		other := ClassifyCell(datedCell, nil, NewSelection(ModeNone, nil, "2024-03-11"))
		unfocused := ClassifyCell(datedCell, nil, Selection{})

		assert.True(t, focused.SelectedDate)
		assert.False(t, other.SelectedDate)
		assert.False(t, unfocused.SelectedDate, "empty focus should never match")
	})
}

func TestClassifyWholeGrid(t *testing.T) {
	month := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	cells := BuildMonthGrid(month, 1)
	aggregates := AggregateByDay([]ShiftRecord{
		{Date: time.Date(2024, time.March, 10, 6, 0, 0, 0, time.UTC), Symbol: "🌅"},
		{Date: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), Symbol: "🗓️", AllDay: true},
		{Date: time.Date(2024, time.March, 22, 22, 0, 0, 0, time.UTC), Symbol: "N"},
	})
	selection := NewSelection(ModeAdd, []DayKey{"2024-03-15"}, "2024-03-10")

	blanks, targets, days := 0, 0, 0
	for _, cell := range cells {
		var aggregate *DayAggregate
		if cell.Dated() {
			if found, ok := aggregates[KeyFor(cell.Date)]; ok {
				aggregate = &found
			}
		}
		presentation := ClassifyCell(cell, aggregate, selection)

		switch presentation.Kind {
		case PresentationBlank:
			blanks++
			assert.False(t, cell.Dated(), "only padding may be blank")
		case PresentationEmptyTarget:
			targets++
			assert.False(t, presentation.HasShift, "empty targets never carry shifts")
		case PresentationDay:
			days++
		}
	}

	assert.Equal(t, 11, blanks, "March 2024 with Sunday start pads 11 cells")
	assert.Equal(t, 29, targets, "31 days minus the two shifted days")
	assert.Equal(t, 2, days, "the two shifted days stay day cells in add mode")
}

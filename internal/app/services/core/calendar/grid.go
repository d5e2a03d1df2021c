package calendar

import "time"

// BuildMonthGrid lays the month containing the given instant onto a fixed
// 42-cell grid. firstWeekday picks which weekday heads each row, numbered
// 1 (Sunday) through 7 (Saturday); values outside that range wrap. Leading
// cells before day 1 and trailing cells after the last day are padding.
func BuildMonthGrid(month time.Time, firstWeekday int) []Cell {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()
	lead := offsetFromWeekStart(weekdayNumber(first), normalizeFirstWeekday(firstWeekday))

	cells := make([]Cell, 0, GridSize)
	for i := 0; i < lead; i++ {
		cells = append(cells, Cell{Index: i})
	}
	for day := 0; day < daysInMonth; day++ {
		cells = append(cells, Cell{Index: len(cells), Date: first.AddDate(0, 0, day)})
	}
	for len(cells) < GridSize {
		cells = append(cells, Cell{Index: len(cells)})
	}
	return cells
}

// DatedIndices collects the grid positions that carry dates, the occupancy
// set edge resolution reads.
func DatedIndices(cells []Cell) map[int]struct{} {
	dated := make(map[int]struct{}, len(cells))
	for _, cell := range cells {
		if cell.Dated() {
			dated[cell.Index] = struct{}{}
		}
	}
	return dated
}

// weekdayNumber maps a date's weekday to the 1=Sunday..7=Saturday numbering.
func weekdayNumber(t time.Time) int {
	return int(t.Weekday()) + 1
}

// normalizeFirstWeekday wraps any integer into 1..7 so the grid stays total
// even on out-of-range input.
func normalizeFirstWeekday(firstWeekday int) int {
	wrapped := (firstWeekday - 1) % 7
	if wrapped < 0 {
		wrapped += 7
	}
	return wrapped + 1
}

// offsetFromWeekStart counts how many weekday steps lie between the start of
// the week and the given weekday, both in 1..7 numbering.
func offsetFromWeekStart(weekday, firstWeekday int) int {
	offset := (weekday - firstWeekday) % 7
	if offset < 0 {
		offset += 7
	}
	return offset
}

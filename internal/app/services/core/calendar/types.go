// Package calendar computes the fixed 6x7 month grid the mobile clients
// render: which cells carry dates, how shifts aggregate per day, which border
// edges each cell draws, and what presentation each cell gets. The grid
// computations are pure functions over their inputs; the usecase assembles
// them over the shift and shift-type stores.
package calendar

import "time"

const (
	// Columns and Rows fix the grid to 42 cells so every month renders at
	// the same height, trailing rows padded as needed.
	Columns  = 7
	Rows     = 6
	GridSize = Columns * Rows
)

const dayKeyLayout = "2006-01-02"

// Cell is one slot of the month grid. Padding cells (before day 1 or after
// the last day) carry the zero time.
type Cell struct {
	Index int
	Date  time.Time
}

// Dated reports whether the cell holds a day of the displayed month.
func (c Cell) Dated() bool {
	return !c.Date.IsZero()
}

// DayKey identifies a calendar day regardless of time-of-day or zone: the
// record's own wall date formatted YYYY-MM-DD.
type DayKey string

// KeyFor derives the DayKey of a timestamp from its wall-clock date.
func KeyFor(t time.Time) DayKey {
	return DayKey(t.Format(dayKeyLayout))
}

// ShiftRecord is the read-only projection of a scheduled shift this package
// consumes. Symbol is already resolved through the shift-type catalog; an
// empty Symbol means no symbol is available.
type ShiftRecord struct {
	Date   time.Time
	Symbol string
	AllDay bool
}

// DayAggregate folds all shifts of one day into the flags a cell renders.
type DayAggregate struct {
	Date        time.Time
	HasShift    bool
	AllDayShift bool
	Symbol      string
}

// EdgeSet is a bitmask of the borders a cell draws.
type EdgeSet uint8

const (
	EdgeTop EdgeSet = 1 << iota
	EdgeBottom
	EdgeLeading
	EdgeTrailing
)

func (e EdgeSet) Has(edge EdgeSet) bool {
	return e&edge != 0
}

// Strings lists the set edges in a stable order for wire encoding.
func (e EdgeSet) Strings() []string {
	if e == 0 {
		return nil
	}
	names := make([]string, 0, 4)
	if e.Has(EdgeTop) {
		names = append(names, "top")
	}
	if e.Has(EdgeBottom) {
		names = append(names, "bottom")
	}
	if e.Has(EdgeLeading) {
		names = append(names, "leading")
	}
	if e.Has(EdgeTrailing) {
		names = append(names, "trailing")
	}
	return names
}

// SelectionMode mirrors the client's bulk selection state. The empty mode
// means no bulk selection is active.
type SelectionMode string

const (
	ModeNone   SelectionMode = ""
	ModeAdd    SelectionMode = "add"
	ModeDelete SelectionMode = "delete"
)

// Selection is the slice of client UI state cell classification depends on:
// the active bulk mode, the days toggled in it, and the single focused day.
type Selection struct {
	Mode     SelectionMode
	Selected map[DayKey]struct{}
	Focused  DayKey
}

// NewSelection builds a Selection from pre-parsed day keys.
func NewSelection(mode SelectionMode, selected []DayKey, focused DayKey) Selection {
	sel := Selection{Mode: mode, Focused: focused}
	if len(selected) > 0 {
		sel.Selected = make(map[DayKey]struct{}, len(selected))
		for _, key := range selected {
			sel.Selected[key] = struct{}{}
		}
	}
	return sel
}

// PresentationKind names the three ways a grid cell can render.
type PresentationKind string

const (
	// PresentationBlank is a padding cell with no content and no handlers.
	PresentationBlank PresentationKind = "blank"
	// PresentationEmptyTarget is a dated, shiftless cell that is tappable
	// while bulk-add selection is active.
	PresentationEmptyTarget PresentationKind = "empty_target"
	// PresentationDay is every other dated cell, with or without a shift.
	PresentationDay PresentationKind = "day"
)

// TapAction is the interaction token a presentation exposes; the caller wires
// it to the matching dispatch, this package never performs it.
type TapAction string

const (
	ActionNone           TapAction = ""
	ActionSelectDate     TapAction = "select_date"
	ActionToggleBulkDate TapAction = "toggle_bulk_date"
)

// CellPresentation is the classification result for one cell.
type CellPresentation struct {
	Kind PresentationKind

	// Selected is set on empty targets: membership in the bulk selection.
	Selected bool

	// Day cell fields. Symbol is display-truncated, see DisplaySymbol.
	HasShift     bool
	AllDayShift  bool
	Symbol       string
	SelectedDate bool

	Action TapAction
}

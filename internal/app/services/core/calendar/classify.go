package calendar

// ClassifyCell maps one grid cell to its presentation. Precedence: padding
// cells are blank; a dated day without shifts becomes a tappable empty target
// only while bulk-add mode is active; every other dated day renders as a day
// cell. A day that has shifts is never an empty target, whatever the mode.
func ClassifyCell(cell Cell, aggregate *DayAggregate, selection Selection) CellPresentation {
	if !cell.Dated() {
		return CellPresentation{Kind: PresentationBlank, Action: ActionNone}
	}

	key := KeyFor(cell.Date)
	hasShift := aggregate != nil && aggregate.HasShift

	if !hasShift && selection.Mode == ModeAdd {
		_, selected := selection.Selected[key]
		return CellPresentation{
			Kind:     PresentationEmptyTarget,
			Selected: selected,
			Action:   ActionToggleBulkDate,
		}
	}

	presentation := CellPresentation{
		Kind:         PresentationDay,
		SelectedDate: selection.Focused != "" && key == selection.Focused,
		Action:       ActionSelectDate,
	}
	if hasShift {
		presentation.HasShift = true
		presentation.AllDayShift = aggregate.AllDayShift
		presentation.Symbol = DisplaySymbol(aggregate.Symbol)
	}
	return presentation
}

package calendar

import "time"

const (
	maxSymbolRunes = 3
	symbolEllipsis = "…"
)

// AggregateByDay folds shift records into one DayAggregate per wall-clock
// day. Iterating the input twice yields the same map: the first record of a
// day fixes the aggregate's Symbol, so callers that care about which symbol
// wins order the slice before calling (repositories return shifts sorted by
// date then creation time). AllDayShift is true when any shift of the day is
// all-day, regardless of which record supplied the symbol.
func AggregateByDay(shifts []ShiftRecord) map[DayKey]DayAggregate {
	aggregates := make(map[DayKey]DayAggregate, len(shifts))
	for _, shift := range shifts {
		key := KeyFor(shift.Date)
		aggregate, seen := aggregates[key]
		if !seen {
			aggregate = DayAggregate{
				Date:     startOfDay(shift.Date),
				HasShift: true,
				Symbol:   shift.Symbol,
			}
		}
		if shift.AllDay {
			aggregate.AllDayShift = true
		}
		aggregates[key] = aggregate
	}
	return aggregates
}

// DisplaySymbol truncates a stored symbol to at most three runes for the
// cell badge, appending an ellipsis when anything was cut. Stored symbols
// are never modified; truncation is display-only.
func DisplaySymbol(symbol string) string {
	runes := []rune(symbol)
	if len(runes) <= maxSymbolRunes {
		return symbol
	}
	return string(runes[:maxSymbolRunes]) + symbolEllipsis
}

// startOfDay returns midnight of t's wall date in t's own location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

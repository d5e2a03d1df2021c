package responses

// MonthView is the server-side render of one month: 42 classified cells the
// client lays out row-major, 7 per row.
type MonthView struct {
	Year         int         `json:"year"`
	Month        int         `json:"month"`
	FirstWeekday int         `json:"first_weekday"`
	Cells        []MonthCell `json:"cells"`
}

type MonthCell struct {
	Index        int      `json:"index"`
	Date         string   `json:"date,omitempty"`
	Kind         string   `json:"kind"`
	HasShift     bool     `json:"has_shift,omitempty"`
	AllDayShift  bool     `json:"all_day_shift,omitempty"`
	Symbol       string   `json:"symbol,omitempty"`
	Selected     bool     `json:"selected,omitempty"`
	SelectedDate bool     `json:"selected_date,omitempty"`
	Action       string   `json:"action,omitempty"`
	Edges        []string `json:"edges,omitempty"`
}

type MonthGrid struct {
	Year         int        `json:"year"`
	Month        int        `json:"month"`
	FirstWeekday int        `json:"first_weekday"`
	Cells        []GridCell `json:"cells"`
}

type GridCell struct {
	Index int      `json:"index"`
	Date  string   `json:"date,omitempty"`
	Edges []string `json:"edges,omitempty"`
}

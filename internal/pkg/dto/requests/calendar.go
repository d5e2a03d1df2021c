package requests

// MonthView carries everything the grid endpoints need: the month to render,
// the weekday convention, and the client's current selection state.
type MonthView struct {
	Year         int      `json:"year" validate:"required,gte=1970,lte=2100"`
	Month        int      `json:"month" validate:"required,gte=1,lte=12"`
	FirstWeekday int      `json:"first_weekday" validate:"omitempty,gte=1,lte=7"`
	Mode         string   `json:"mode" validate:"omitempty,oneof=add delete"`
	Selected     []string `json:"selected" validate:"omitempty,dive,dayformat"`
	Focused      string   `json:"focused" validate:"omitempty,dayformat"`
}

package requests

type CreateShiftType struct {
	Name       string `json:"name" validate:"required,max=40"`
	Symbol     string `json:"symbol" validate:"required,max=8"`
	Color      string `json:"color" validate:"omitempty,hexcolor"`
	AllDay     bool   `json:"all_day"`
	StartClock string `json:"start_clock" validate:"omitempty,clock"`
	EndClock   string `json:"end_clock" validate:"omitempty,clock"`
}

type UpdateShiftType struct {
	Name       string `json:"name" validate:"required,max=40"`
	Symbol     string `json:"symbol" validate:"required,max=8"`
	Color      string `json:"color" validate:"omitempty,hexcolor"`
	AllDay     bool   `json:"all_day"`
	StartClock string `json:"start_clock" validate:"omitempty,clock"`
	EndClock   string `json:"end_clock" validate:"omitempty,clock"`
}

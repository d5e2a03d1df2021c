package responses

import "time"

type ShiftType struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Symbol     string    `json:"symbol"`
	Color      string    `json:"color,omitempty"`
	AllDay     bool      `json:"all_day"`
	StartClock string    `json:"start_clock,omitempty"`
	EndClock   string    `json:"end_clock,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

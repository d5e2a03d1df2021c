package responses

import "time"

type Shift struct {
	ID            string    `json:"id"`
	Date          string    `json:"date"`
	ShiftTypeID   string    `json:"shift_type_id"`
	ShiftTypeName string    `json:"shift_type_name,omitempty"`
	Symbol        string    `json:"symbol,omitempty"`
	AllDay        bool      `json:"all_day,omitempty"`
	RotationID    string    `json:"rotation_id,omitempty"`
	Source        string    `json:"source"`
	Note          string    `json:"note,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type BulkShiftResult struct {
	Requested int      `json:"requested"`
	Affected  int      `json:"affected"`
	Skipped   []string `json:"skipped,omitempty"`
}

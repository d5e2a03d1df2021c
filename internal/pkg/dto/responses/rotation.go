package responses

import "time"

type Rotation struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ShiftTypeID string    `json:"shift_type_id"`
	Weekdays    []int     `json:"weekdays"`
	HorizonDays int       `json:"horizon_days"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type MaterializeResult struct {
	RotationsSeen int `json:"rotations_seen"`
	ShiftsWritten int `json:"shifts_written"`
	DaysSkipped   int `json:"days_skipped"`
}

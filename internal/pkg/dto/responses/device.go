package responses

import "time"

type RegisteredDevice struct {
	Device       Device `json:"device"`
	DeviceSecret string `json:"device_secret"`
	SessionToken string `json:"session_token"`
}

type DeviceSession struct {
	SessionToken string    `json:"session_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type Device struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Platform   string         `json:"platform"`
	Settings   DeviceSettings `json:"settings"`
	LastSeenAt time.Time      `json:"last_seen_at"`
	CreatedAt  time.Time      `json:"created_at"`
}

type DeviceSettings struct {
	FirstWeekday       int    `json:"first_weekday"`
	ShowRotations      bool   `json:"show_rotations"`
	DefaultShiftTypeID string `json:"default_shift_type_id,omitempty"`
}

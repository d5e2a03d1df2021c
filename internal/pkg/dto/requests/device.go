package requests

type RegisterDevice struct {
	Name        string `json:"name" validate:"required,max=60"`
	Platform    string `json:"platform" validate:"required,oneof=ios android"`
	PairingCode string `json:"pairing_code" validate:"required,min=4,max=32"`
}

type RenewDeviceSession struct {
	DeviceID     string `json:"device_id" validate:"required"`
	DeviceSecret string `json:"device_secret" validate:"required"`
}

type UpdateDeviceSettings struct {
	FirstWeekday       int    `json:"first_weekday" validate:"required,gte=1,lte=7"`
	ShowRotations      bool   `json:"show_rotations"`
	DefaultShiftTypeID string `json:"default_shift_type_id" validate:"omitempty"`
}

package requests

type CreateRotation struct {
	Name        string `json:"name" validate:"required,max=60"`
	ShiftTypeID string `json:"shift_type_id" validate:"required"`
	Weekdays    []int  `json:"weekdays" validate:"required,min=1,max=7,dive,gte=1,lte=7"`
	HorizonDays int    `json:"horizon_days" validate:"omitempty,gte=1,lte=92"`
	Active      bool   `json:"active"`
}

type UpdateRotation struct {
	Name        string `json:"name" validate:"required,max=60"`
	ShiftTypeID string `json:"shift_type_id" validate:"required"`
	Weekdays    []int  `json:"weekdays" validate:"required,min=1,max=7,dive,gte=1,lte=7"`
	HorizonDays int    `json:"horizon_days" validate:"omitempty,gte=1,lte=92"`
	Active      bool   `json:"active"`
}

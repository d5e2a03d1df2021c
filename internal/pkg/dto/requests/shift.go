package requests

type CreateShift struct {
	Date        string `json:"date" validate:"required,dayformat"`
	ShiftTypeID string `json:"shift_type_id" validate:"required"`
	Note        string `json:"note" validate:"omitempty,max=200"`
}

type BulkCreateShifts struct {
	ShiftTypeID string   `json:"shift_type_id" validate:"required"`
	Dates       []string `json:"dates" validate:"required,min=1,max=62,dive,dayformat"`
}

type BulkShiftDates struct {
	Dates []string `json:"dates" validate:"required,min=1,max=62,dive,dayformat"`
}

type GetShifts struct {
	Year  int `json:"year" validate:"required,gte=1970,lte=2100"`
	Month int `json:"month" validate:"required,gte=1,lte=12"`
}

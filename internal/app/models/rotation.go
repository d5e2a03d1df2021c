package models

import "rosta-service/internal/pkg/dto/responses"

type Rotation struct {
	ID          string `bson:"_id,omitempty"`
	Name        string `bson:"name"`
	ShiftTypeID string `bson:"shiftTypeId"`
	Weekdays    []int  `bson:"weekdays"`
	HorizonDays int    `bson:"horizonDays"`
	Active      bool   `bson:"active"`
	TimeModel   `bson:",inline"`
}

func (r Rotation) ConvertIntoResponse() responses.Rotation {
	return responses.Rotation{
		ID:          r.ID,
		Name:        r.Name,
		ShiftTypeID: r.ShiftTypeID,
		Weekdays:    r.Weekdays,
		HorizonDays: r.HorizonDays,
		Active:      r.Active,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

package models

import (
	"time"

	"rosta-service/internal/pkg/dto/responses"
)

type Shift struct {
	ID          string    `bson:"_id,omitempty"`
	Date        time.Time `bson:"date"`
	ShiftTypeID string    `bson:"shiftTypeId"`
	RotationID  string    `bson:"rotationId,omitempty"`
	Source      string    `bson:"source"`
	Note        string    `bson:"note,omitempty"`
	TimeModel   `bson:",inline"`
}

func (s Shift) ConvertIntoResponse() responses.Shift {
	return responses.Shift{
		ID:          s.ID,
		Date:        s.Date.Format("2006-01-02"),
		ShiftTypeID: s.ShiftTypeID,
		RotationID:  s.RotationID,
		Source:      s.Source,
		Note:        s.Note,
		CreatedAt:   s.CreatedAt,
	}
}

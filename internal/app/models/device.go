package models

import (
	"time"

	"rosta-service/internal/pkg/dto/responses"
)

type Device struct {
	ID         string         `bson:"_id,omitempty"`
	Name       string         `bson:"name"`
	Platform   string         `bson:"platform"`
	SecretHash string         `bson:"secretHash"`
	Settings   DeviceSettings `bson:"settings"`
	LastSeenAt time.Time      `bson:"lastSeenAt"`
	TimeModel  `bson:",inline"`
}

type DeviceSettings struct {
	FirstWeekday       int    `bson:"firstWeekday" json:"first_weekday"`
	ShowRotations      bool   `bson:"showRotations" json:"show_rotations"`
	DefaultShiftTypeID string `bson:"defaultShiftTypeId,omitempty" json:"default_shift_type_id,omitempty"`
}

func (d Device) ConvertIntoResponse() responses.Device {
	return responses.Device{
		ID:       d.ID,
		Name:     d.Name,
		Platform: d.Platform,
		Settings: responses.DeviceSettings{
			FirstWeekday:       d.Settings.FirstWeekday,
			ShowRotations:      d.Settings.ShowRotations,
			DefaultShiftTypeID: d.Settings.DefaultShiftTypeID,
		},
		LastSeenAt: d.LastSeenAt,
		CreatedAt:  d.CreatedAt,
	}
}

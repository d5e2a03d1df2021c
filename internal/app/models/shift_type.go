package models

import "rosta-service/internal/pkg/dto/responses"

type ShiftType struct {
	ID         string `bson:"_id,omitempty"`
	Name       string `bson:"name"`
	Symbol     string `bson:"symbol"`
	Color      string `bson:"color,omitempty"`
	AllDay     bool   `bson:"allDay"`
	StartClock string `bson:"startClock,omitempty"`
	EndClock   string `bson:"endClock,omitempty"`
	TimeModel  `bson:",inline"`
}

func (st ShiftType) ConvertIntoResponse() responses.ShiftType {
	return responses.ShiftType{
		ID:         st.ID,
		Name:       st.Name,
		Symbol:     st.Symbol,
		Color:      st.Color,
		AllDay:     st.AllDay,
		StartClock: st.StartClock,
		EndClock:   st.EndClock,
		CreatedAt:  st.CreatedAt,
		UpdatedAt:  st.UpdatedAt,
	}
}

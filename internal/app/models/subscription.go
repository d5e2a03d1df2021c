package models

import "rosta-service/internal/pkg/dto/responses"

type Subscription struct {
	ID        string   `bson:"_id,omitempty"`
	URL       string   `bson:"url"`
	Events    []string `bson:"events,omitempty"`
	Active    bool     `bson:"active"`
	TimeModel `bson:",inline"`
}

// WantsEvent reports whether the subscription should receive eventType. An
// empty Events list subscribes to everything.
func (s Subscription) WantsEvent(eventType string) bool {
	if len(s.Events) == 0 {
		return true
	}
	for _, event := range s.Events {
		if event == eventType {
			return true
		}
	}
	return false
}

func (s Subscription) ConvertIntoResponse() responses.Subscription {
	return responses.Subscription{
		ID:        s.ID,
		URL:       s.URL,
		Events:    s.Events,
		Active:    s.Active,
		CreatedAt: s.CreatedAt,
	}
}

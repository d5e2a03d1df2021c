package models

import (
	json "github.com/goccy/go-json"
)

// RosterEvent is the payload queued for webhook delivery whenever the roster
// changes. Payload carries the event-specific body verbatim so the queue
// never has to understand it.
type RosterEvent struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	OccurredAt  int64           `json:"occurred_at"`
	Payload     json.RawMessage `json:"payload"`
	FailedCount int             `json:"failed_count"`
}

package contracts

import (
	"context"

	"rosta-service/internal/app/models"
)

// EventPublisher hands roster events to the delivery pipeline. Publishing is
// confirmed before return; delivery itself is asynchronous.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event *models.RosterEvent) error
}

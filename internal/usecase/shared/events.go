package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	EventReservationCreated = "reservation.created"
	EventReservationDeleted = "reservation.deleted"
	EventPaymentCompleted   = "payment.completed"
)

type Event struct {
	Name       string         `json:"event"`
	EntityID   uuid.UUID      `json:"entity_id"`
	OccurredAt time.Time      `json:"occurred_at"`
	Data       map[string]any `json:"data,omitempty"`
}

// EventPublisher is called after commit. Implementations must not fail the
// caller's request; they log and drop on error.
type EventPublisher interface {
	Publish(ctx context.Context, event Event)
}

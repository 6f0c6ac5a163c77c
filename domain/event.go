package domain

import (
	"time"

	"github.com/google/uuid"
)

// Pub/sub channel names shared between services. Publishers and
// subscribers are coupled only through these names and the event Type.
const (
	ChannelUserEvents  = "user_events"
	ChannelOrderEvents = "order_events"
)

// Event types carried on the channels above.
const (
	EventUserLogin      = "user_login"
	EventUserRegistered = "user_registered"
	EventOrderCompleted = "order_completed"
)

// Event is a fire-and-forget domain event. Delivery is at-most-once per
// currently-subscribed listener; events are not queued for late subscribers.
type Event struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Payload   map[string]any `json:"payload,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// NewEvent creates an event with a fresh ID and the given timestamp.
func NewEvent(eventType string, payload map[string]any, now time.Time) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Payload:   payload,
		Timestamp: now,
	}
}

package interfaces

import (
	"context"

	"myplatform/domain"
)

// EventHandler reacts to one event. A returned error is logged by the bus
// and never reaches the publisher.
type EventHandler func(ctx context.Context, event domain.Event) error

// EventBus is a narrow pub/sub contract over an external broker. The core
// depends only on this contract, never on the broker's wire protocol.
//
//go:generate moq -stub -out mock/event_bus.go -pkg mock . EventBus
type EventBus interface {
	// Publish delivers event to every currently active subscriber of
	// channel. Zero active subscribers is not an error.
	Publish(ctx context.Context, channel string, event domain.Event) error
	// Subscribe invokes handler for every subsequent publish on channel,
	// asynchronously relative to the publisher, until ctx is done.
	Subscribe(ctx context.Context, channel string, handler EventHandler) error
}

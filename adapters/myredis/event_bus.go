package myredis

import (
	"context"
	"encoding/json"

	"myplatform/domain"
	"myplatform/interfaces"
	"myplatform/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-redis/redis/v8"
)

type eventBus struct {
	client redis.UniversalClient
	logger log.Logger
}

// NewEventBus creates an EventBus over Redis pub/sub. Events are JSON on
// named channels; delivery is at-most-once per active subscriber and
// nothing is queued for late subscribers.
func NewEventBus(client redis.UniversalClient, logger log.Logger) *eventBus {
	logger = log.WithPrefix(logger, "component", "EventBus")
	return &eventBus{
		client: client,
		logger: logger,
	}
}

func (b *eventBus) Publish(ctx context.Context, channel string, event domain.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return service.NewInternalServerError("failed to marshal event", err)
	}

	// PUBLISH with zero subscribers succeeds; that matches the contract.
	if err := b.client.Publish(ctx, channel, data).Err(); err != nil {
		return service.NewInternalServerError("failed to publish event", err)
	}

	return nil
}

// Subscribe starts a goroutine draining the channel until ctx is done.
// Handler errors and panics are logged and never reach the publisher.
func (b *eventBus) Subscribe(ctx context.Context, channel string, handler interfaces.EventHandler) error {
	pubsub := b.client.Subscribe(ctx, channel)

	// Wait for the subscription to be confirmed so events published after
	// Subscribe returns are not missed.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return service.NewInternalServerError("failed to subscribe to channel", err)
	}

	go func() {
		defer func() {
			_ = pubsub.Close()
		}()

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				b.dispatch(ctx, channel, msg.Payload, handler)
			}
		}
	}()

	level.Info(b.logger).Log("msg", "subscribed", "channel", channel)
	return nil
}

func (b *eventBus) dispatch(ctx context.Context, channel, payload string, handler interfaces.EventHandler) {
	defer func() {
		if r := recover(); r != nil {
			level.Error(b.logger).Log("msg", "event handler panicked", "channel", channel, "panic", r)
		}
	}()

	var event domain.Event
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		level.Error(b.logger).Log("msg", "failed to unmarshal event", "channel", channel, "err", err)
		return
	}

	if err := handler(ctx, event); err != nil {
		level.Error(b.logger).Log("msg", "event handler failed", "channel", channel, "type", event.Type, "err", err)
	}
}

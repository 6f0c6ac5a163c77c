package service

import (
	"context"

	"myplatform/domain"
	"myplatform/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// LoyaltyAwarder consumes order events and credits loyalty points. It is
// wired to the order_events channel and reacts only to order_completed;
// other event types on the channel are ignored.
type LoyaltyAwarder struct {
	points interfaces.PointsStore
	logger log.Logger
}

// NewLoyaltyAwarder creates an awarder backed by the given points store.
func NewLoyaltyAwarder(points interfaces.PointsStore, logger log.Logger) *LoyaltyAwarder {
	if points == nil {
		panic("service.loyalty.go: points store is required")
	}
	logger = log.WithPrefix(logger, "component", "LoyaltyAwarder")
	return &LoyaltyAwarder{
		points: points,
		logger: logger,
	}
}

// Handle implements interfaces.EventHandler for the order_events channel.
// An order_completed event with userId and pointsEarned increments the
// user's balance exactly once per delivery.
func (a *LoyaltyAwarder) Handle(ctx context.Context, event domain.Event) error {
	if event.Type != domain.EventOrderCompleted {
		return nil
	}

	userID, ok := event.Payload["userId"].(string)
	if !ok || userID == "" {
		return NewBadParameterError("order_completed event without userId", nil)
	}
	points, ok := toInt64(event.Payload["pointsEarned"])
	if !ok || points <= 0 {
		return NewBadParameterError("order_completed event without pointsEarned", nil)
	}

	total, err := a.points.Increment(ctx, userID, points)
	if err != nil {
		return NewInternalServerError("failed to increment loyalty points", err)
	}

	level.Info(a.logger).Log(
		"msg", "loyalty points awarded",
		"user_id", userID,
		"points", points,
		"total", total,
	)
	return nil
}

// toInt64 accepts the numeric shapes a JSON payload can carry.
func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}

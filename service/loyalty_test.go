package service

import (
	"context"
	"testing"
	"time"

	"myplatform/domain"
	"myplatform/interfaces/mock"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderCompleted(payload map[string]any) domain.Event {
	return domain.NewEvent(domain.EventOrderCompleted, payload, time.Date(2026, 2, 21, 12, 0, 0, 0, time.UTC))
}

func TestLoyaltyAwarder_AwardsPointsOnce(t *testing.T) {
	points := &mock.PointsStoreMock{
		IncrementFunc: func(ctx context.Context, userID string, points int64) (int64, error) {
			return points, nil
		},
	}
	a := NewLoyaltyAwarder(points, log.NewNopLogger())

	err := a.Handle(context.Background(), orderCompleted(map[string]any{
		"userId":       "u-1",
		"pointsEarned": float64(50), // JSON numbers decode as float64
	}))
	require.NoError(t, err)

	calls := points.IncrementCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "u-1", calls[0].UserID)
	assert.Equal(t, int64(50), calls[0].Points)
}

func TestLoyaltyAwarder_IgnoresOtherEventTypes(t *testing.T) {
	points := &mock.PointsStoreMock{}
	a := NewLoyaltyAwarder(points, log.NewNopLogger())

	event := domain.NewEvent(domain.EventUserLogin, map[string]any{"userId": "u-1"}, time.Now())
	err := a.Handle(context.Background(), event)
	require.NoError(t, err)
	assert.Empty(t, points.IncrementCalls())
}

func TestLoyaltyAwarder_RejectsMalformedPayload(t *testing.T) {
	points := &mock.PointsStoreMock{}
	a := NewLoyaltyAwarder(points, log.NewNopLogger())

	tests := []struct {
		name    string
		payload map[string]any
	}{
		{"missing userId", map[string]any{"pointsEarned": float64(50)}},
		{"missing pointsEarned", map[string]any{"userId": "u-1"}},
		{"non-positive points", map[string]any{"userId": "u-1", "pointsEarned": float64(0)}},
		{"wrong type", map[string]any{"userId": "u-1", "pointsEarned": "fifty"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := a.Handle(context.Background(), orderCompleted(tt.payload))
			require.Error(t, err)
			assert.True(t, IsBadParameterError(err))
		})
	}
	assert.Empty(t, points.IncrementCalls())
}

func TestLoyaltyAwarder_PropagatesStoreError(t *testing.T) {
	points := &mock.PointsStoreMock{
		IncrementFunc: func(ctx context.Context, userID string, points int64) (int64, error) {
			return 0, assert.AnError
		},
	}
	a := NewLoyaltyAwarder(points, log.NewNopLogger())

	err := a.Handle(context.Background(), orderCompleted(map[string]any{
		"userId":       "u-1",
		"pointsEarned": float64(50),
	}))
	require.Error(t, err)
	assert.True(t, IsInternalServerError(err))
}

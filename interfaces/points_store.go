package interfaces

import "context"

// PointsStore keeps loyalty point balances per user.
//
//go:generate moq -stub -out mock/points_store.go -pkg mock . PointsStore
type PointsStore interface {
	// Increment adds points to the user's balance and returns the new total.
	Increment(ctx context.Context, userID string, points int64) (int64, error)
	// Get returns the user's balance; an unknown user has balance zero.
	Get(ctx context.Context, userID string) (int64, error)
}

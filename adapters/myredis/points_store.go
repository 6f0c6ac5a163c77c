package myredis

import (
	"context"
	"errors"

	"myplatform/service"

	"github.com/go-redis/redis/v8"
)

const pointsKeyPrefix = "loyalty:points"

type pointsStore struct {
	client redis.UniversalClient
}

// NewPointsStore creates a PointsStore over Redis (key: loyalty:points:{userId},
// INCRBY balance).
func NewPointsStore(client redis.UniversalClient) *pointsStore {
	return &pointsStore{
		client: client,
	}
}

func (s *pointsStore) Increment(ctx context.Context, userID string, points int64) (int64, error) {
	total, err := s.client.IncrBy(ctx, pointsKey(userID), points).Result()
	if err != nil {
		return 0, service.NewInternalServerError("failed to increment points in redis", err)
	}
	return total, nil
}

func (s *pointsStore) Get(ctx context.Context, userID string) (int64, error) {
	total, err := s.client.Get(ctx, pointsKey(userID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, service.NewInternalServerError("failed to read points from redis", err)
	}
	return total, nil
}

func pointsKey(userID string) string {
	return pointsKeyPrefix + ":" + userID
}

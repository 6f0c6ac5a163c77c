package myredis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"myplatform/domain"
	"myplatform/service"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "session"

type sessionStore struct {
	client redis.UniversalClient
}

// NewSessionStore creates a SessionStore over Redis (key: session:{token},
// value: JSON identity, TTL domain.SessionTTL). Redis enforces the TTL, so
// an expired token reads exactly like an absent one.
func NewSessionStore(client redis.UniversalClient) *sessionStore {
	return &sessionStore{
		client: client,
	}
}

func (s *sessionStore) Create(ctx context.Context, identity domain.Identity) (string, error) {
	token, err := service.NewSessionToken()
	if err != nil {
		return "", service.NewInternalServerError("failed to generate session token", err)
	}

	data, err := json.Marshal(identity)
	if err != nil {
		return "", service.NewInternalServerError("failed to marshal identity", err)
	}

	if err := s.client.Set(ctx, sessionKey(token), data, domain.SessionTTL).Err(); err != nil {
		return "", service.NewInternalServerError("failed to write session to redis", err)
	}

	return token, nil
}

func (s *sessionStore) Get(ctx context.Context, token string) (domain.Identity, error) {
	data, err := s.client.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Identity{}, service.NewUnauthenticatedError("session not found", err)
		}
		return domain.Identity{}, service.NewInternalServerError("failed to read session from redis", err)
	}

	var identity domain.Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		return domain.Identity{}, service.NewInternalServerError("failed to unmarshal identity", err)
	}

	return identity, nil
}

func (s *sessionStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return service.NewInternalServerError("failed to delete session from redis", err)
	}
	return nil
}

func sessionKey(token string) string {
	return fmt.Sprintf("%s:%s", sessionKeyPrefix, token)
}

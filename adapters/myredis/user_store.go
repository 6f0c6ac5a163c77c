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

const (
	userKeyPrefix   = "user"       // user:{email} -> JSON user
	userIDKeyPrefix = "user_id"    // user_id:{id} -> email
	userIDCounter   = "user:next_id"
)

type userStore struct {
	client redis.UniversalClient
}

// NewUserStore creates a UserStore over Redis. Users are stored as JSON
// under user:{email} with a user_id:{id} index for token lookups.
func NewUserStore(client redis.UniversalClient) *userStore {
	return &userStore{
		client: client,
	}
}

func (s *userStore) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	data, err := s.client.Get(ctx, userKey(email)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.User{}, service.NewEntityNotFoundError("user not found", err)
		}
		return domain.User{}, service.NewInternalServerError("failed to get user from redis", err)
	}

	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		return domain.User{}, service.NewInternalServerError("failed to unmarshal user", err)
	}

	return user, nil
}

func (s *userStore) GetByID(ctx context.Context, id string) (domain.User, error) {
	email, err := s.client.Get(ctx, userIDKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.User{}, service.NewEntityNotFoundError("user not found", err)
		}
		return domain.User{}, service.NewInternalServerError("failed to resolve user id", err)
	}

	return s.GetByEmail(ctx, email)
}

// Create persists a new user. SETNX on the email key makes duplicate
// signups a conflict rather than a silent overwrite.
func (s *userStore) Create(ctx context.Context, user domain.User) (domain.User, error) {
	if user.ID == "" {
		id, err := s.client.Incr(ctx, userIDCounter).Result()
		if err != nil {
			return domain.User{}, service.NewInternalServerError("failed to allocate user id", err)
		}
		user.ID = fmt.Sprintf("%d", id)
	}

	data, err := json.Marshal(user)
	if err != nil {
		return domain.User{}, service.NewInternalServerError("failed to marshal user", err)
	}

	created, err := s.client.SetNX(ctx, userKey(user.Email), data, 0).Result()
	if err != nil {
		return domain.User{}, service.NewInternalServerError("failed to write user to redis", err)
	}
	if !created {
		return domain.User{}, service.NewConflictError("email already registered", nil)
	}

	if err := s.client.Set(ctx, userIDKey(user.ID), user.Email, 0).Err(); err != nil {
		return domain.User{}, service.NewInternalServerError("failed to write user id index", err)
	}

	return user, nil
}

func userKey(email string) string {
	return userKeyPrefix + ":" + email
}

func userIDKey(id string) string {
	return userIDKeyPrefix + ":" + id
}

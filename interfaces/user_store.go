package interfaces

import (
	"context"

	"myplatform/domain"
)

// UserStore provides user persistence and lookup by email.
//
//go:generate moq -stub -out mock/user_store.go -pkg mock . UserStore
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
	// Create persists a new user. Returns a conflict error when the email
	// is already taken.
	Create(ctx context.Context, user domain.User) (domain.User, error)
}

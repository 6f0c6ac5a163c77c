package interfaces

import (
	"context"

	"myplatform/domain"
)

// SessionStore maps opaque bearer tokens to identity snapshots with a
// fixed TTL. The store owns the mapping; no other component persists
// tokens.
//
//go:generate moq -stub -out mock/session_store.go -pkg mock . SessionStore
type SessionStore interface {
	// Create generates a token, stores identity against it and returns it.
	Create(ctx context.Context, identity domain.Identity) (string, error)
	// Get returns the identity for token, or an unauthenticated error when
	// the token is absent or expired (the two are indistinguishable).
	Get(ctx context.Context, token string) (domain.Identity, error)
	// Delete removes the session for token. Deleting an absent token is
	// not an error.
	Delete(ctx context.Context, token string) error
}

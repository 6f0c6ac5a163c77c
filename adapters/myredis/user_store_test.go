package myredis

import (
	"context"
	"testing"

	"myplatform/domain"
	"myplatform/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() domain.User {
	return domain.User{
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$fakehash",
		Role:         "customer",
	}
}

func TestUserStore_CreateAndGetByEmail(t *testing.T) {
	ctx := context.Background()
	_, client := setupTestRedis(t)
	store := NewUserStore(client)

	created, err := store.Create(ctx, testUser())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := store.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestUserStore_GetByID(t *testing.T) {
	ctx := context.Background()
	_, client := setupTestRedis(t)
	store := NewUserStore(client)

	created, err := store.Create(ctx, testUser())
	require.NoError(t, err)

	got, err := store.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestUserStore_GetByEmail_NotFound(t *testing.T) {
	ctx := context.Background()
	_, client := setupTestRedis(t)
	store := NewUserStore(client)

	_, err := store.GetByEmail(ctx, "nobody@example.com")
	require.Error(t, err)
	assert.True(t, service.IsEntityNotFoundError(err))
}

func TestUserStore_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	_, client := setupTestRedis(t)
	store := NewUserStore(client)

	_, err := store.GetByID(ctx, "999")
	require.Error(t, err)
	assert.True(t, service.IsEntityNotFoundError(err))
}

func TestUserStore_Create_DuplicateEmailConflicts(t *testing.T) {
	ctx := context.Background()
	_, client := setupTestRedis(t)
	store := NewUserStore(client)

	first, err := store.Create(ctx, testUser())
	require.NoError(t, err)

	_, err = store.Create(ctx, testUser())
	require.Error(t, err)
	assert.True(t, service.IsConflictError(err))

	// The original record is untouched.
	got, err := store.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, first, got)
}

func TestUserStore_Create_AssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	_, client := setupTestRedis(t)
	store := NewUserStore(client)

	first, err := store.Create(ctx, testUser())
	require.NoError(t, err)

	second := testUser()
	second.Email = "bob@example.com"
	created, err := store.Create(ctx, second)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, created.ID)
}

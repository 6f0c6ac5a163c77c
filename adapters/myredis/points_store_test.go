package myredis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointsStore_IncrementAccumulates(t *testing.T) {
	ctx := context.Background()
	_, client := setupTestRedis(t)
	store := NewPointsStore(client)

	total, err := store.Increment(ctx, "u-1", 50)
	require.NoError(t, err)
	assert.Equal(t, int64(50), total)

	total, err = store.Increment(ctx, "u-1", 25)
	require.NoError(t, err)
	assert.Equal(t, int64(75), total)
}

func TestPointsStore_Get(t *testing.T) {
	ctx := context.Background()
	_, client := setupTestRedis(t)
	store := NewPointsStore(client)

	_, err := store.Increment(ctx, "u-1", 50)
	require.NoError(t, err)

	total, err := store.Get(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, int64(50), total)
}

func TestPointsStore_Get_UnknownUserIsZero(t *testing.T) {
	ctx := context.Background()
	_, client := setupTestRedis(t)
	store := NewPointsStore(client)

	total, err := store.Get(ctx, "nobody")
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestPointsStore_BalancesAreIndependent(t *testing.T) {
	ctx := context.Background()
	_, client := setupTestRedis(t)
	store := NewPointsStore(client)

	_, err := store.Increment(ctx, "u-1", 50)
	require.NoError(t, err)
	_, err = store.Increment(ctx, "u-2", 10)
	require.NoError(t, err)

	total, err := store.Get(ctx, "u-2")
	require.NoError(t, err)
	assert.Equal(t, int64(10), total)
}

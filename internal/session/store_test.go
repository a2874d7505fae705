package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oncolearn/internal/errs"
)

func newTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisStoreWithClient(client), mr
}

func TestRedisStore_SaveAndLookup(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	require.NoError(t, store.Save(ctx, "tok-1", 7, time.Hour))

	userID, err := store.Lookup(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
}

func TestRedisStore_LookupUnknown(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Lookup(context.Background(), "never-issued")

	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestRedisStore_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	require.NoError(t, store.Save(ctx, "tok-1", 7, time.Minute))

	mr.FastForward(2 * time.Minute)

	_, err := store.Lookup(ctx, "tok-1")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestRedisStore_DeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	require.NoError(t, store.Save(ctx, "tok-1", 7, time.Hour))

	assert.NoError(t, store.Delete(ctx, "tok-1"))
	assert.NoError(t, store.Delete(ctx, "tok-1"))

	_, err := store.Lookup(ctx, "tok-1")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

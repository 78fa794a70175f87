package sessions

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	s, err := store.Create(ctx, "S1")
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, time.Hour, s.ExpiresAt.Sub(s.CreatedAt))

	got, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "S1", got.RegNo)

	other, err := store.Create(ctx, "S1")
	require.NoError(t, err)
	assert.NotEqual(t, s.ID, other.ID)

	_, err = store.Get(ctx, "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore(30 * time.Minute)
	store.now = func() time.Time { return now }

	s, err := store.Create(ctx, "S2")
	require.NoError(t, err)

	now = now.Add(29 * time.Minute)
	_, err = store.Get(ctx, s.ID)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = store.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Empty(t, store.sessions)
}

func TestMemoryStoreReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)
	s, _ := store.Create(ctx, "S1")

	got, _ := store.Get(ctx, s.ID)
	got.RegNo = "S2"

	again, _ := store.Get(ctx, s.ID)
	assert.Equal(t, "S1", again.RegNo)
}

// needs a running Redis: REDIS_TEST_ADDR=localhost:6379
func TestRedisStore(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}

	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()
	store := NewRedisStore(client, time.Minute)

	s, err := store.Create(ctx, "S1")
	require.NoError(t, err)
	t.Cleanup(func() { client.Del(ctx, sessionKey(s.ID)) })

	got, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "S1", got.RegNo)

	ttl, err := client.TTL(ctx, sessionKey(s.ID)).Result()
	require.NoError(t, err)
	assert.InDelta(t, time.Minute.Seconds(), ttl.Seconds(), 5)

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionExpired(t *testing.T) {
	now := time.Now()
	s := Session{ExpiresAt: now}
	assert.True(t, s.Expired(now.Add(time.Second)))
	assert.False(t, s.Expired(now.Add(-time.Second)))
}

func TestSessionKey(t *testing.T) {
	assert.Equal(t, "session:abc", sessionKey("abc"))
}

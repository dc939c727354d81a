package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ifsi-gestion/ifsi-api/internal/models"
)

func mustToken(t *testing.T) string {
	t.Helper()
	token, err := NewToken()
	require.NoError(t, err)
	return token
}

func newRedisFixture(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client), mr
}

func TestRedisStoreSaveAndFind(t *testing.T) {
	store, _ := newRedisFixture(t)
	ctx := context.Background()

	sess := &models.Session{
		ID:        "sess-1",
		Token:     mustToken(t),
		UserID:    7,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, store.Save(ctx, sess))

	found, err := store.Find(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, found.ID)
	assert.Equal(t, int64(7), found.UserID)
	assert.Equal(t, sess.Token, found.Token)
}

func TestRedisStoreUnknownToken(t *testing.T) {
	store, _ := newRedisFixture(t)

	_, err := store.Find(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStoreDelete(t *testing.T) {
	store, _ := newRedisFixture(t)
	ctx := context.Background()

	sess := &models.Session{
		ID:        "sess-1",
		Token:     mustToken(t),
		UserID:    7,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, store.Save(ctx, sess))
	require.NoError(t, store.Delete(ctx, sess.Token))

	_, err := store.Find(ctx, sess.Token)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an already absent token is not an error.
	assert.NoError(t, store.Delete(ctx, sess.Token))
}

func TestRedisStoreKeyExpiresWithSession(t *testing.T) {
	store, mr := newRedisFixture(t)
	ctx := context.Background()

	sess := &models.Session{
		ID:        "sess-1",
		Token:     mustToken(t),
		UserID:    7,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, store.Save(ctx, sess))

	mr.FastForward(2 * time.Hour)

	_, err := store.Find(ctx, sess.Token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStoreRejectsExpiredSession(t *testing.T) {
	store, _ := newRedisFixture(t)

	sess := &models.Session{
		ID:        "sess-1",
		Token:     mustToken(t),
		UserID:    7,
		CreatedAt: time.Now().Add(-2 * time.Hour),
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	assert.Error(t, store.Save(context.Background(), sess))
}

package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ifsi-gestion/ifsi-api/internal/models"
)

func TestMemoryStoreSaveFindDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	now := time.Now()

	sess := &models.Session{
		ID:        "s1",
		Token:     "token-1",
		UserID:    7,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
	require.NoError(t, store.Save(ctx, sess))

	found, err := store.Find(ctx, "token-1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), found.UserID)

	require.NoError(t, store.Delete(ctx, "token-1"))
	_, err = store.Find(ctx, "token-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreFixedExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	base := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	current := base
	store.now = func() time.Time { return current }

	sess := &models.Session{
		ID:        "s1",
		Token:     "token-1",
		UserID:    7,
		CreatedAt: base,
		ExpiresAt: base.Add(24 * time.Hour),
	}
	require.NoError(t, store.Save(ctx, sess))

	current = base.Add(23 * time.Hour)
	_, err := store.Find(ctx, "token-1")
	require.NoError(t, err)

	// Expiry is fixed at issuance; reading the session does not extend it.
	current = base.Add(24*time.Hour + time.Minute)
	_, err = store.Find(ctx, "token-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.Find(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewTokenIsOpaqueAndUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 64; i++ {
		token, err := NewToken()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(token), 40)
		_, dup := seen[token]
		assert.False(t, dup)
		seen[token] = struct{}{}
	}
}

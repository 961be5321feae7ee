package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"villadash/models"
)

func TestSessionTokens(t *testing.T) {
	s := New()
	assert.NotEmpty(t, s.ID)
	assert.False(t, s.Authenticated())

	s.SetTokens("a1", "r1")
	assert.True(t, s.Authenticated())
	assert.True(t, s.Dirty())

	s.SetTokens("a2", "")
	assert.Equal(t, "a2", s.AccessToken())
	assert.Equal(t, "r1", s.RefreshToken(), "refresh kept when not rotated")

	s.SetUser(&models.User{ID: 1, Email: "admin@example.com"})
	u := s.User()
	u.Email = "changed"
	assert.Equal(t, "admin@example.com", s.User().Email, "User returns a copy")

	s.Clear()
	assert.True(t, s.Cleared())
	assert.False(t, s.Authenticated())
	assert.Nil(t, s.User())
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	s := New()
	s.SetTokens("a1", "r1")
	s.SetUser(&models.User{ID: 1, Name: "Admin"})
	require.NoError(t, store.Save(ctx, s))
	assert.False(t, s.Dirty())

	loaded, err := store.Load(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "a1", loaded.AccessToken())
	assert.Equal(t, "r1", loaded.RefreshToken())
	assert.Equal(t, "Admin", loaded.User().Name)
	assert.False(t, loaded.Dirty())

	loaded.Clear()
	require.NoError(t, store.Save(ctx, loaded), "saving a logged-out session deletes it")
	_, err = store.Load(ctx, s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreUsesTokenExpiry(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	s := New()
	s.SetTokens("a1", "r1")
	s.SetExpiry(time.Now().Add(-time.Minute))
	require.NoError(t, store.Save(ctx, s), "expired tokens fall back to the default ttl")
	_, err := store.Load(ctx, s.ID)
	require.NoError(t, err)

	_, err = store.Load(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTTLFor(t *testing.T) {
	s := New()
	s.SetTokens("a", "r")
	exp := time.Now().Add(30 * time.Minute)

	ttl := ttlFor(s, time.Hour, func(string) (time.Time, bool) { return exp, true })
	assert.InDelta(t, (30 * time.Minute).Seconds(), ttl.Seconds(), 5)
	assert.True(t, s.ExpiresAt().Equal(exp))

	assert.Equal(t, time.Hour, ttlFor(New(), time.Hour, nil))
}

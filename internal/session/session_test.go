package session

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/herbalif/herbalif/internal/kv"
	"github.com/herbalif/herbalif/internal/logging"
	"github.com/herbalif/herbalif/internal/models"
)

var testSecret = []byte("test-secret")

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newManager(store kv.Store) *Manager {
	return NewManager(store, testSecret, discardLogger())
}

func TestManager_EmptyAtColdStart(t *testing.T) {
	m := newManager(kv.NewMemoryStore())
	require.Nil(t, m.Current(context.Background()))
}

func TestManager_SetAndCurrent(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	m := newManager(store)

	ana := &models.Account{ID: "u1", Email: "ana@x.com", Name: "Ana"}
	m.Set(ctx, ana)

	got := m.Current(ctx)
	require.NotNil(t, got)
	require.Equal(t, *ana, *got)

	// a second manager over the same substrate restores the session
	m2 := newManager(store)
	restored := m2.Current(ctx)
	require.NotNil(t, restored)
	require.Equal(t, "u1", restored.ID)
}

func TestManager_LastWriteWins(t *testing.T) {
	ctx := context.Background()
	m := newManager(kv.NewMemoryStore())

	m.Set(ctx, &models.Account{ID: "u1", Email: "a@x.com", Name: "A"})
	m.Set(ctx, &models.Account{ID: "u2", Email: "b@x.com", Name: "B"})

	got := m.Current(ctx)
	require.NotNil(t, got)
	require.Equal(t, "u2", got.ID)
}

func TestManager_Logout(t *testing.T) {
	ctx := context.Background()
	m := newManager(kv.NewMemoryStore())

	m.Set(ctx, &models.Account{ID: "u1", Email: "a@x.com", Name: "A"})
	m.Logout(ctx)
	require.Nil(t, m.Current(ctx))
}

func TestManager_RejectsTamperedToken(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	m := newManager(store)

	m.Set(ctx, &models.Account{ID: "u1", Email: "a@x.com", Name: "A"})

	raw, err := store.Get(ctx, kv.KeySession)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0x01
	require.NoError(t, store.Set(ctx, kv.KeySession, raw))

	require.Nil(t, m.Current(ctx), "tampered token must read as signed out")
}

func TestManager_RejectsGarbageValue(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(ctx, kv.KeySession, []byte("not-a-token")))

	m := newManager(store)
	require.Nil(t, m.Current(ctx))
}

func TestManager_RejectsTokenSignedWithOtherSecret(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()

	other := NewManager(store, []byte("other-secret"), discardLogger())
	other.Set(ctx, &models.Account{ID: "u1", Email: "a@x.com", Name: "A"})

	m := newManager(store)
	require.Nil(t, m.Current(ctx))
}

func TestManager_DisabledSubstrate(t *testing.T) {
	ctx := context.Background()
	m := newManager(kv.NewDisabledStore())

	m.Set(ctx, &models.Account{ID: "u1", Email: "a@x.com", Name: "A"})
	require.Nil(t, m.Current(ctx), "disabled substrate degrades to signed out")
	m.Logout(ctx)
}

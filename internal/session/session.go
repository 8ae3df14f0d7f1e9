// Package session tracks the single "currently signed-in" account slot,
// shared across the whole UI. The slot is persisted in the key-value
// substrate as a signed token so that a session survives a cold start.
package session

import (
	"context"

	"github.com/herbalif/herbalif/internal/kv"
	"github.com/herbalif/herbalif/internal/logging"
	"github.com/herbalif/herbalif/internal/models"
)

// Manager reads and writes the session slot. Last write wins; there is no
// concurrency control beyond that.
type Manager struct {
	store  kv.Store
	secret []byte
	logger logging.Logger
}

func NewManager(store kv.Store, secret []byte, logger logging.Logger) *Manager {
	return &Manager{store: store, secret: secret, logger: logger}
}

// Current returns the signed-in account, or nil when the slot is empty.
// A missing, tampered, or undecodable persisted value reads as an empty
// session; substrate errors degrade the same way.
func (m *Manager) Current(ctx context.Context) *models.Account {
	raw, err := m.store.Get(ctx, kv.KeySession)
	if err != nil {
		m.logger.Warn(ctx, "session read failed, treating as signed out", "error", err)
		return nil
	}
	if raw == nil {
		return nil
	}

	acc, err := decodeToken(string(raw), m.secret)
	if err != nil {
		m.logger.Warn(ctx, "stored session token rejected", "error", err)
		return nil
	}
	return acc
}

// Set overwrites the slot. A nil account represents logout and removes the
// persisted value. Substrate write errors are swallowed with a warning so
// the in-flight user action still completes.
func (m *Manager) Set(ctx context.Context, account *models.Account) {
	if account == nil {
		if err := m.store.Delete(ctx, kv.KeySession); err != nil {
			m.logger.Warn(ctx, "session clear failed", "error", err)
		}
		return
	}

	token, err := encodeToken(*account, m.secret)
	if err != nil {
		m.logger.Warn(ctx, "session token signing failed", "error", err)
		return
	}
	if err := m.store.Set(ctx, kv.KeySession, []byte(token)); err != nil {
		m.logger.Warn(ctx, "session write failed", "error", err)
	}
}

// Logout clears the slot.
func (m *Manager) Logout(ctx context.Context) {
	m.Set(ctx, nil)
}

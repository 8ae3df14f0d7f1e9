// Package accounts keeps the registry of user accounts and implements
// registration and login over the key-value substrate. Accounts are stored
// as one JSON list under a single key; email is the case-sensitive identity
// key.
package accounts

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"github.com/herbalif/herbalif/internal/common"
	"github.com/herbalif/herbalif/internal/kv"
	"github.com/herbalif/herbalif/internal/logging"
	"github.com/herbalif/herbalif/internal/models"
	"github.com/herbalif/herbalif/internal/session"
)

// Store is the account registry. Successful registration and login both set
// the shared session slot, matching the UI contract.
type Store struct {
	store    kv.Store
	sessions *session.Manager
	verifier CredentialVerifier
	logger   logging.Logger

	newID func() string
}

func NewStore(store kv.Store, sessions *session.Manager, verifier CredentialVerifier, logger logging.Logger) *Store {
	return &Store{
		store:    store,
		sessions: sessions,
		verifier: verifier,
		logger:   logger,
		newID:    uuid.NewString,
	}
}

// Register creates a new account. It fails with common.ErrDuplicateEmail
// when an account with the exact same email exists. The raw password is
// handed to the credential verifier and not stored by this component.
// On success the session is set to the new account.
func (s *Store) Register(ctx context.Context, name, email, rawPassword string) (*models.Account, error) {
	all := s.load(ctx)

	for _, a := range all {
		if a.Email == email {
			return nil, common.ErrDuplicateEmail
		}
	}

	account := models.Account{ID: s.newID(), Email: email, Name: name}

	if err := s.verifier.OnRegister(ctx, account.ID, rawPassword); err != nil {
		return nil, err
	}

	s.save(ctx, append(all, account))
	s.sessions.Set(ctx, &account)

	s.logger.Info(ctx, "account registered", "id", account.ID, "email", account.Email)
	return &account, nil
}

// FindByEmail returns the account with the exact email, or nil. Pure lookup,
// no side effects.
func (s *Store) FindByEmail(ctx context.Context, email string) *models.Account {
	for _, a := range s.load(ctx) {
		if a.Email == email {
			found := a
			return &found
		}
	}
	return nil
}

// Login authenticates an account. It fails with common.ErrUserNotFound when
// no account matches the email, or with common.ErrInvalidCredentials when
// the verifier rejects the password. On success the session is set to the
// matched account.
func (s *Store) Login(ctx context.Context, email, rawPassword string) (*models.Account, error) {
	account := s.FindByEmail(ctx, email)
	if account == nil {
		return nil, common.ErrUserNotFound
	}

	if err := s.verifier.Verify(ctx, account.ID, rawPassword); err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	s.sessions.Set(ctx, account)

	s.logger.Info(ctx, "login succeeded", "id", account.ID)
	return account, nil
}

// load reads the account list. Substrate failures degrade to an empty list
// so the UI stays usable.
func (s *Store) load(ctx context.Context) []models.Account {
	raw, err := s.store.Get(ctx, kv.KeyAccounts)
	if err != nil {
		s.logger.Warn(ctx, "account list read failed, treating as empty", "error", err)
		return nil
	}
	if raw == nil {
		return nil
	}

	var all []models.Account
	if err := json.Unmarshal(raw, &all); err != nil {
		s.logger.Warn(ctx, "account list undecodable, treating as empty", "error", err)
		return nil
	}
	return all
}

// save persists the account list; write failures are swallowed with a
// warning (no-op write under an unavailable substrate).
func (s *Store) save(ctx context.Context, all []models.Account) {
	raw, err := json.Marshal(all)
	if err != nil {
		s.logger.Warn(ctx, "account list encoding failed", "error", err)
		return
	}
	if err := s.store.Set(ctx, kv.KeyAccounts, raw); err != nil {
		s.logger.Warn(ctx, "account list write failed", "error", err)
	}
}

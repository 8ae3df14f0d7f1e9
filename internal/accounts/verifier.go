package accounts

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/herbalif/herbalif/internal/common"
	"github.com/herbalif/herbalif/internal/kv"
)

// DemoSecret is the single password accepted by the fixed demo rule,
// independent of what was supplied at registration.
const DemoSecret = "password123"

// credentialsKey holds the bcrypt hash map used by BcryptVerifier.
const credentialsKey = "herbalif_credentials"

// CredentialVerifier decides whether a login password is acceptable.
// OnRegister observes the password supplied at registration; Verify returns
// common.ErrInvalidCredentials on rejection.
type CredentialVerifier interface {
	OnRegister(ctx context.Context, accountID, rawPassword string) error
	Verify(ctx context.Context, accountID, rawPassword string) error
}

// FixedSecretVerifier implements the documented demo rule: the registration
// password is discarded and login accepts exactly one fixed secret. This is
// intentionally not a security mechanism.
type FixedSecretVerifier struct {
	Secret string
}

func NewFixedSecretVerifier() *FixedSecretVerifier {
	return &FixedSecretVerifier{Secret: DemoSecret}
}

func (v *FixedSecretVerifier) OnRegister(ctx context.Context, accountID, rawPassword string) error {
	return nil
}

func (v *FixedSecretVerifier) Verify(ctx context.Context, accountID, rawPassword string) error {
	if subtle.ConstantTimeCompare([]byte(rawPassword), []byte(v.Secret)) != 1 {
		return common.ErrInvalidCredentials
	}
	return nil
}

// BcryptVerifier is the hardened alternative: it stores a bcrypt hash of the
// registration password in the substrate and verifies logins against it.
type BcryptVerifier struct {
	store kv.Store
}

func NewBcryptVerifier(store kv.Store) *BcryptVerifier {
	return &BcryptVerifier{store: store}
}

func (v *BcryptVerifier) OnRegister(ctx context.Context, accountID, rawPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("password hashing failed: %w", err)
	}

	hashes, err := v.load(ctx)
	if err != nil {
		return err
	}
	hashes[accountID] = hash
	return v.save(ctx, hashes)
}

func (v *BcryptVerifier) Verify(ctx context.Context, accountID, rawPassword string) error {
	hashes, err := v.load(ctx)
	if err != nil {
		return err
	}
	hash, ok := hashes[accountID]
	if !ok {
		return common.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(hash, []byte(rawPassword)) != nil {
		return common.ErrInvalidCredentials
	}
	return nil
}

func (v *BcryptVerifier) load(ctx context.Context) (map[string][]byte, error) {
	raw, err := v.store.Get(ctx, credentialsKey)
	if err != nil {
		return nil, fmt.Errorf("credentials read failed: %w", err)
	}
	hashes := make(map[string][]byte)
	if raw == nil {
		return hashes, nil
	}
	if err := json.Unmarshal(raw, &hashes); err != nil {
		return nil, fmt.Errorf("credentials undecodable: %w", err)
	}
	return hashes, nil
}

func (v *BcryptVerifier) save(ctx context.Context, hashes map[string][]byte) error {
	raw, err := json.Marshal(hashes)
	if err != nil {
		return fmt.Errorf("credentials encoding failed: %w", err)
	}
	if err := v.store.Set(ctx, credentialsKey, raw); err != nil {
		return fmt.Errorf("credentials write failed: %w", err)
	}
	return nil
}

// Package kv defines the key-value persistence substrate shared by the
// account, session, and history stores. The substrate holds serialized
// values under opaque string keys; the domain stores decide the layout.
//
// Implementations: in-memory (tests), disabled (degraded contexts), SQLite
// (local database), and Postgres.
package kv

import "context"

// Well-known keys of the three logical namespaces.
const (
	KeyAccounts = "herbalif_users"
	KeySession  = "herbalif_current_user"
	KeyHistory  = "herbalif_history"
)

// Store is a minimal key-value store over string keys and serialized values.
//
// Get returns (nil, nil) for an absent key. Delete is a no-op for an absent
// key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

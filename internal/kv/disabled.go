package kv

import "context"

// DisabledStore is the substrate used when no persistence is available
// (no DSN configured, or the real store failed to open). Reads are empty,
// writes are no-ops, so the rest of the layer keeps working in degraded
// form instead of failing.
type DisabledStore struct{}

func NewDisabledStore() *DisabledStore { return &DisabledStore{} }

func (s *DisabledStore) Get(ctx context.Context, key string) ([]byte, error) { return nil, nil }

func (s *DisabledStore) Set(ctx context.Context, key string, value []byte) error { return nil }

func (s *DisabledStore) Delete(ctx context.Context, key string) error { return nil }

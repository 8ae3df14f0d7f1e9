// Package history stores identification records for all owners as one JSON
// list under a single key in the key-value substrate, filtered by owner at
// read time.
package history

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/herbalif/herbalif/internal/common"
	"github.com/herbalif/herbalif/internal/kv"
	"github.com/herbalif/herbalif/internal/logging"
	"github.com/herbalif/herbalif/internal/models"
)

// Store is the append/query/delete store of identification records.
// Records are immutable once appended and never updated in place.
type Store struct {
	store  kv.Store
	logger logging.Logger

	newID func() string
	now   func() time.Time
}

func NewStore(store kv.Store, logger logging.Logger) *Store {
	return &Store{
		store:  store,
		logger: logger,
		newID:  uuid.NewString,
		now:    time.Now,
	}
}

// History returns the owner's records ordered by creation time descending,
// ties broken by insertion order. The returned slice is fresh and does not
// alias internal storage.
func (s *Store) History(ctx context.Context, ownerID string) []models.IdentificationRecord {
	all := s.load(ctx)

	result := make([]models.IdentificationRecord, 0, len(all))
	for _, r := range all {
		if r.OwnerID == ownerID {
			result = append(result, r)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

// Append assigns a fresh id and a call-time timestamp to the draft, persists
// it, and returns the completed record.
func (s *Store) Append(ctx context.Context, draft models.RecordDraft) models.IdentificationRecord {
	record := models.IdentificationRecord{
		ID:              s.newID(),
		OwnerID:         draft.OwnerID,
		ImageName:       draft.ImageName,
		ImagePreviewRef: draft.ImagePreviewRef,
		PredictedLabel:  draft.PredictedLabel,
		Category:        draft.Category,
		Description:     draft.Description,
		CreatedAt:       s.now(),
	}

	s.save(ctx, append(s.load(ctx), record))

	s.logger.Debug(ctx, "record appended", "id", record.ID, "owner", record.OwnerID)
	return record
}

// DeleteByID removes the record with the matching id, whoever owns it.
// Absent ids are a no-op. Ownership is deliberately not checked here; see
// DeleteOwned for the checked variant.
func (s *Store) DeleteByID(ctx context.Context, id string) {
	all := s.load(ctx)

	kept := make([]models.IdentificationRecord, 0, len(all))
	for _, r := range all {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(all) {
		return
	}
	s.save(ctx, kept)
}

// DeleteOwned removes the record only when it belongs to ownerID. It returns
// common.ErrNotFound when the id is absent or owned by another account.
func (s *Store) DeleteOwned(ctx context.Context, ownerID, id string) error {
	all := s.load(ctx)

	found := false
	kept := make([]models.IdentificationRecord, 0, len(all))
	for _, r := range all {
		if r.ID == id && r.OwnerID == ownerID {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return common.ErrNotFound
	}
	s.save(ctx, kept)
	return nil
}

func (s *Store) load(ctx context.Context) []models.IdentificationRecord {
	raw, err := s.store.Get(ctx, kv.KeyHistory)
	if err != nil {
		s.logger.Warn(ctx, "history read failed, treating as empty", "error", err)
		return nil
	}
	if raw == nil {
		return nil
	}

	var all []models.IdentificationRecord
	if err := json.Unmarshal(raw, &all); err != nil {
		s.logger.Warn(ctx, "history undecodable, treating as empty", "error", err)
		return nil
	}
	return all
}

func (s *Store) save(ctx context.Context, all []models.IdentificationRecord) {
	raw, err := json.Marshal(all)
	if err != nil {
		s.logger.Warn(ctx, "history encoding failed", "error", err)
		return
	}
	if err := s.store.Set(ctx, kv.KeyHistory, raw); err != nil {
		s.logger.Warn(ctx, "history write failed", "error", err)
	}
}

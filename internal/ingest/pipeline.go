// Package ingest turns a raw classifier label into an enriched, persisted
// identification record bound to the current session.
package ingest

import (
	"context"
	"errors"

	"github.com/herbalif/herbalif/internal/history"
	"github.com/herbalif/herbalif/internal/knowledge"
	"github.com/herbalif/herbalif/internal/logging"
	"github.com/herbalif/herbalif/internal/models"
	"github.com/herbalif/herbalif/internal/session"
)

// ErrSkipped signals that no session was active, so the result was shown but
// not recorded. It is a no-op signal, not a failure; callers match it with
// errors.Is.
var ErrSkipped = errors.New("no active session, result not recorded")

// Pipeline performs the single ingestion step. It never retries: only a
// successful label reaches this component.
type Pipeline struct {
	sessions *session.Manager
	base     *knowledge.Base
	records  *history.Store
	logger   logging.Logger

	// onSaved is the completion signal the UI layer consumes to refresh the
	// history list. May be nil.
	onSaved func(models.IdentificationRecord)
}

func New(sessions *session.Manager, base *knowledge.Base, records *history.Store, logger logging.Logger, onSaved func(models.IdentificationRecord)) *Pipeline {
	return &Pipeline{
		sessions: sessions,
		base:     base,
		records:  records,
		logger:   logger,
		onSaved:  onSaved,
	}
}

// Ingest resolves the knowledge entry for rawLabel, binds the record to the
// current account, and appends it to history. With an empty session it
// returns ErrSkipped and writes nothing.
func (p *Pipeline) Ingest(ctx context.Context, rawLabel, imageName, previewRef string) (*models.IdentificationRecord, error) {
	account := p.sessions.Current(ctx)
	if account == nil {
		p.logger.Info(ctx, "no session, skipping record", "label", rawLabel)
		return nil, ErrSkipped
	}

	entry := p.base.Lookup(rawLabel)

	record := p.records.Append(ctx, models.RecordDraft{
		OwnerID:         account.ID,
		ImageName:       imageName,
		ImagePreviewRef: previewRef,
		PredictedLabel:  rawLabel,
		Category:        entry.Category,
		Description:     entry.Description,
	})

	if p.onSaved != nil {
		p.onSaved(record)
	}

	p.logger.Info(ctx, "record saved", "id", record.ID, "owner", record.OwnerID, "label", rawLabel)
	return &record, nil
}

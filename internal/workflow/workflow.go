// Package workflow drives one identification round trip: select a file,
// submit it to the classifier, and hand a successful label to the ingestion
// pipeline.
//
// States move Idle → FileSelected → Submitting → {Succeeded, Failed} → Idle
// (via Reset). Selecting a new file resets from any state, including a
// Submitting state stuck on a hung request.
package workflow

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/herbalif/herbalif/internal/classifier"
	"github.com/herbalif/herbalif/internal/ingest"
	"github.com/herbalif/herbalif/internal/logging"
	"github.com/herbalif/herbalif/internal/models"
	"github.com/herbalif/herbalif/internal/previews"
)

type State string

const (
	StateIdle         State = "idle"
	StateFileSelected State = "file_selected"
	StateSubmitting   State = "submitting"
	StateSucceeded    State = "succeeded"
	StateFailed       State = "failed"
)

var ErrInvalidTransition = errors.New("invalid workflow transition")

// Workflow holds the state of the current identification attempt. It is
// driven from a single thread of control.
type Workflow struct {
	classifier classifier.Client
	previews   previews.Store
	pipeline   *ingest.Pipeline
	logger     logging.Logger

	state    State
	filePath string
	fileName string

	label   string
	failure error
}

func New(c classifier.Client, p previews.Store, pipeline *ingest.Pipeline, logger logging.Logger) *Workflow {
	return &Workflow{
		classifier: c,
		previews:   p,
		pipeline:   pipeline,
		logger:     logger,
		state:      StateIdle,
	}
}

func (w *Workflow) State() State { return w.state }

// Label returns the predicted label of the last successful submission.
func (w *Workflow) Label() string { return w.label }

// Failure returns the error of the last failed submission.
func (w *Workflow) Failure() error { return w.failure }

// SelectFile stages a file for submission. Allowed from any state; it
// discards the previous attempt.
func (w *Workflow) SelectFile(path string) {
	w.state = StateFileSelected
	w.filePath = path
	w.fileName = filepath.Base(path)
	w.label = ""
	w.failure = nil
}

// Reset returns a terminal state to Idle. A Submitting workflow can only be
// reset by a new file selection.
func (w *Workflow) Reset() error {
	if w.state == StateSubmitting {
		return ErrInvalidTransition
	}
	w.state = StateIdle
	w.filePath = ""
	w.fileName = ""
	w.label = ""
	w.failure = nil
	return nil
}

// Submit sends the staged file to the classifier and, on success, stores the
// preview and ingests the result. Only legal from FileSelected.
//
// A classification failure moves the workflow to Failed and persists
// nothing. A successful classification moves it to Succeeded even when the
// record is skipped for an anonymous session; the skip is reported through
// the returned error.
func (w *Workflow) Submit(ctx context.Context) (*models.IdentificationRecord, error) {
	if w.state != StateFileSelected {
		return nil, fmt.Errorf("%w: submit from %s", ErrInvalidTransition, w.state)
	}
	w.state = StateSubmitting

	image, err := os.ReadFile(w.filePath)
	if err != nil {
		w.fail(ctx, fmt.Errorf("cannot read image: %w", err))
		return nil, w.failure
	}

	label, err := w.classifier.Predict(ctx, w.fileName, bytes.NewReader(image))
	if err != nil {
		w.fail(ctx, err)
		return nil, w.failure
	}

	// the preview is cosmetic: a failed save still records the result
	previewRef, err := w.previews.Save(ctx, w.fileName, bytes.NewReader(image))
	if err != nil {
		w.logger.Warn(ctx, "preview save failed", "error", err)
		previewRef = ""
	}

	w.state = StateSucceeded
	w.label = label

	return w.pipeline.Ingest(ctx, label, w.fileName, previewRef)
}

func (w *Workflow) fail(ctx context.Context, err error) {
	w.state = StateFailed
	w.failure = err
	w.logger.Warn(ctx, "identification failed", "error", err)
}

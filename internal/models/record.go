package models

import "time"

// Category classifies a knowledge entry and every identification record.
type Category string

const (
	CategoryHerbal    Category = "Herbal"
	CategoryNonHerbal Category = "Non-Herbal"
)

// KnowledgeEntry is static display metadata associated with a classifier
// label.
type KnowledgeEntry struct {
	Category    Category `json:"category"`
	Description string   `json:"description"`
}

// IdentificationRecord is the persisted, immutable result of one
// classification event, owned by an account. Records are created only by the
// ingestion pipeline and never updated in place.
type IdentificationRecord struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"ownerId"`
	ImageName       string    `json:"imageName"`
	ImagePreviewRef string    `json:"imagePreviewRef"`
	PredictedLabel  string    `json:"predictedLabel"`
	Category        Category  `json:"category"`
	Description     string    `json:"description"`
	CreatedAt       time.Time `json:"createdAt"`
}

// RecordDraft carries the fields of an identification record that the
// ingestion pipeline assembles before the history store assigns an id and a
// timestamp.
type RecordDraft struct {
	OwnerID         string
	ImageName       string
	ImagePreviewRef string
	PredictedLabel  string
	Category        Category
	Description     string
}

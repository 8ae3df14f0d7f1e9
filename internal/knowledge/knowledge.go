// Package knowledge maps classifier labels to static display metadata.
// The label set is fixed at startup; lookups never fail.
package knowledge

import "github.com/herbalif/herbalif/internal/models"

// Fallback is returned for labels the base does not know.
var Fallback = models.KnowledgeEntry{
	Category:    models.CategoryNonHerbal,
	Description: "Plant information unavailable.",
}

// Base resolves a classifier label to its knowledge entry.
type Base struct {
	entries map[string]models.KnowledgeEntry
}

// NewBase returns a Base loaded with the builtin label set.
func NewBase() *Base {
	return &Base{entries: builtin}
}

// Lookup returns the entry for label, or Fallback when the label is unknown.
// It is pure and total.
func (b *Base) Lookup(label string) models.KnowledgeEntry {
	if e, ok := b.entries[label]; ok {
		return e
	}
	return Fallback
}

var builtin = map[string]models.KnowledgeEntry{
	"saga": {
		Category: models.CategoryHerbal,
		Description: "Saga (Abrus precatorius) is used in traditional medicine " +
			"against coughs, fever, and inflammation; its seeds also appear in " +
			"herbal preparations.",
	},
	"kelor": {
		Category: models.CategoryHerbal,
		Description: "Moringa (Moringa oleifera) leaves are rich in vitamins A " +
			"and C and minerals, known as a superfood with strong antioxidant " +
			"properties that supports the immune system.",
	},
	"beras": {
		Category: models.CategoryNonHerbal,
		Description: "Rice (Oryza sativa) is a staple carbohydrate crop. Not an " +
			"herbal plant, though its leaves contain silica.",
	},
	"tomat": {
		Category: models.CategoryNonHerbal,
		Description: "Tomato (Solanum lycopersicum) is a food crop rich in " +
			"lycopene. Its leaves are not eaten as they contain toxic solanine.",
	},
	"kentang": {
		Category: models.CategoryNonHerbal,
		Description: "Potato (Solanum tuberosum) is a carbohydrate source. " +
			"Potato leaves contain toxic glycoalkaloids and must not be eaten.",
	},
}

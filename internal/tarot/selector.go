package tarot

import (
	"github.com/miyakoshi/septade/internal/diagnosis"
	"github.com/miyakoshi/septade/internal/errors"
)

// ErrEmptyCatalog is returned when Select is handed a deck with no cards.
var ErrEmptyCatalog = errors.NewSentinel("tarot catalog is empty")

// Select picks one card from the catalog with a deterministic modular hash:
// the character codes of the type code are summed, the four signed axis
// scores are added, and the absolute value is reduced modulo the catalog
// length.
//
// The hash is intentionally simple rather than a curated semantic mapping.
// Stability matters more than meaning here: results are persisted and must
// redisplay the identical card later without recomputation drift.
func Select(typeCode diagnosis.TypeCode, scores diagnosis.AxisScores, catalog []Card) (Card, error) {
	if len(catalog) == 0 {
		return Card{}, ErrEmptyCatalog
	}

	sum := 0
	for _, r := range string(typeCode) {
		sum += int(r)
	}
	sum += scores.Sum()
	if sum < 0 {
		sum = -sum
	}

	return catalog[sum%len(catalog)], nil
}

// Package similarity provides the trigram-similarity capability consumed by
// the match engine. Scoring itself is delegated to go-edlib; this package only
// adapts it to the window semantics the matcher expects.
package similarity

import (
	"strings"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

// shingleSize is the character n-gram length used for scoring.
const shingleSize = 3

// TrigramScorer scores a pattern against the best whitespace window of a
// target using trigram (3-shingle) Jaccard similarity. It is case-insensitive
// and returns 0 for targets with no comparable window. Stateless and safe for
// concurrent use.
type TrigramScorer struct{}

// NewTrigramScorer creates a TrigramScorer.
func NewTrigramScorer() *TrigramScorer {
	return &TrigramScorer{}
}

// Score returns the best similarity in [0, 1] between pattern and any
// whitespace-delimited window of target.
func (s *TrigramScorer) Score(pattern, target string) float64 {
	pattern = strings.ToLower(pattern)
	if utf8.RuneCountInString(pattern) < shingleSize {
		// The matcher routes short patterns to containment; a scorer asked
		// anyway has no trigrams to compare.
		return 0.0
	}

	best := 0.0
	for _, window := range strings.Fields(strings.ToLower(target)) {
		if utf8.RuneCountInString(window) < shingleSize {
			continue
		}
		score := float64(edlib.JaccardSimilarity(pattern, window, shingleSize))
		if score > best {
			best = score
		}
	}
	return best
}

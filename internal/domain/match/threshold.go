package match

import "fmt"

// shortPatternLimit is the length below which trigram scoring is unreliable.
const shortPatternLimit = 3

// Threshold maps a pattern length and a typo budget to a similarity cutoff
// in [0, 1]. Inputs must be non-negative; OptimalThreshold is the validated form.
//
// A padded string of n characters produces n+2 trigrams, and each single-character
// typo can invalidate up to three of them. The cutoff is the fraction of trigrams
// that must survive the budget.
func Threshold(length, maxTypos int) float64 {
	if length < shortPatternLimit {
		// Too short for similarity scoring: with any typo allowance the string
		// is unconditionally dissimilar, otherwise require an exact match.
		if maxTypos >= 1 {
			return 0.0
		}
		return 1.0
	}

	trigramCount := float64(length) + 2.0
	threshold := (trigramCount - 3.0*float64(maxTypos)) / trigramCount
	if threshold < 0.0 {
		return 0.0
	}
	return threshold
}

// OptimalThreshold validates its inputs and returns the similarity cutoff.
func OptimalThreshold(length, maxTypos int) (float64, error) {
	if length < 0 {
		return 0, fmt.Errorf("pattern length must be non-negative, got %d", length)
	}
	if maxTypos < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidTypoBudget, maxTypos)
	}
	return Threshold(length, maxTypos), nil
}

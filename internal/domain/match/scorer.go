package match

// Scorer is the external trigram-similarity capability. Score returns the best
// similarity in [0, 1] between pattern and any comparably sized window of
// target. Implementations must be case-insensitive and safe for empty inputs.
type Scorer interface {
	Score(pattern, target string) float64
}

// ScorerFunc adapts a plain function to the Scorer interface.
type ScorerFunc func(pattern, target string) float64

// Score calls f.
func (f ScorerFunc) Score(pattern, target string) float64 { return f(pattern, target) }

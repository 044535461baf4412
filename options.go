package fuzzle

import (
	"github.com/craterlabs/fuzzle/internal/domain/clause"
	"github.com/craterlabs/fuzzle/internal/domain/match"
)

// Scorer is the trigram-similarity capability: the best similarity in [0, 1]
// between a pattern and any comparably sized window of the target.
// Implementations must be case-insensitive.
type Scorer = match.Scorer

// ScorerFunc adapts a plain function to Scorer.
type ScorerFunc = match.ScorerFunc

// Dialect renders identifiers and literals for the engine that will execute
// compiled fragments.
type Dialect = clause.Dialect

type options struct {
	scorer  match.Scorer
	dialect clause.Dialect
}

// Option configures a Matcher.
type Option func(*options)

// WithScorer replaces the built-in trigram scorer.
func WithScorer(s Scorer) Option {
	return func(o *options) {
		if s != nil {
			o.scorer = s
		}
	}
}

// WithDialect replaces the PostgreSQL dialect used by the clause compiler.
func WithDialect(d Dialect) Option {
	return func(o *options) {
		if d != nil {
			o.dialect = d
		}
	}
}

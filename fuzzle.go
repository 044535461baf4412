// Package fuzzle decides whether a run of text approximately matches a query
// under a bounded typo budget, and can emit an equivalent SQL predicate
// fragment for later execution instead of deciding directly.
//
// Both paths share one decision tree per search term: a similarity cutoff
// derived from the term length and the typo budget, or a plain
// case-insensitive containment check for terms too short for trigram scoring
// (or when no typos are allowed). Term results aggregate under AND/OR, and
// multi-column results aggregate under an independent AND/OR.
//
// All operations are pure and safe for concurrent use.
package fuzzle

import (
	"github.com/craterlabs/fuzzle/internal/domain/clause"
	"github.com/craterlabs/fuzzle/internal/domain/match"
	"github.com/craterlabs/fuzzle/internal/similarity"
)

// Logic selects AND/OR aggregation. Term logic and column logic are
// independent settings.
type Logic = match.Logic

// Aggregation modes.
const (
	And = match.And
	Or  = match.Or
)

// Documented defaults, applied by callers that accept optional settings.
const (
	// DefaultMaxTypos is the typo budget used when a caller does not specify one.
	DefaultMaxTypos = 1
	// DefaultTermLogic is the single-column term aggregation default.
	DefaultTermLogic = And
	// DefaultMultiTermLogic is the term aggregation default for multi-column
	// operations: a term may match in any column.
	DefaultMultiTermLogic = Or
	// DefaultColumnLogic is the multi-column aggregation default.
	DefaultColumnLogic = And
)

// Configuration errors surfaced by every operation.
var (
	ErrInvalidLogic      = match.ErrInvalidLogic
	ErrInvalidTypoBudget = match.ErrInvalidTypoBudget
)

// Matcher is the fuzzle entry point: the fuzzy-match decision engine and its
// clause-compiler twin over one scorer and one SQL dialect.
type Matcher struct {
	matcher  *match.Matcher
	compiler *clause.Compiler
}

// New creates a Matcher. By default it scores with the built-in trigram
// scorer and renders clauses for PostgreSQL/pg_trgm.
func New(opts ...Option) *Matcher {
	cfg := options{
		scorer:  similarity.NewTrigramScorer(),
		dialect: clause.PostgresDialect{},
	}
	for _, o := range opts {
		o(&cfg)
	}
	return &Matcher{
		matcher:  match.NewMatcher(cfg.scorer),
		compiler: clause.NewCompiler(cfg.dialect),
	}
}

// MatchQuery reports whether content matches the whitespace-split query under
// the typo budget, aggregating terms with termLogic. An empty query is
// vacuously true under AND and false under OR.
func (m *Matcher) MatchQuery(content, query string, maxTypos int, termLogic Logic) (bool, error) {
	return m.matcher.MatchQuery(&content, query, maxTypos, termLogic)
}

// MultiMatchQuery evaluates the query against every column and aggregates the
// per-column decisions with columnLogic. A nil column never matches.
func (m *Matcher) MultiMatchQuery(
	query string, maxTypos int, termLogic, columnLogic Logic, columns ...*string,
) (bool, error) {
	return m.matcher.MultiMatchQuery(query, maxTypos, termLogic, columnLogic, columns...)
}

// BuildMatchQueryClause compiles the single-column decision into a SQL
// predicate fragment against columnName. The column name must come from a
// trusted enumeration; identifier quoting cannot neutralize arbitrary input.
func (m *Matcher) BuildMatchQueryClause(columnName, query string, maxTypos int, termLogic Logic) (string, error) {
	return m.compiler.MatchQueryClause(columnName, query, maxTypos, termLogic)
}

// BuildMultiMatchQueryClause compiles the multi-column decision into a SQL
// predicate fragment.
func (m *Matcher) BuildMultiMatchQueryClause(
	columnNames []string, query string, maxTypos int, termLogic, columnLogic Logic,
) (string, error) {
	return m.compiler.MultiMatchQueryClause(columnNames, query, maxTypos, termLogic, columnLogic)
}

// CalculateOptimalSimilarityThreshold maps a pattern length and typo budget to
// the similarity cutoff both paths use, in [0, 1].
func CalculateOptimalSimilarityThreshold(length, maxTypos int) (float64, error) {
	return match.OptimalThreshold(length, maxTypos)
}

// ParseLogic converts a case-insensitive user string ("and", "OR") to a Logic.
func ParseLogic(s string) (Logic, error) {
	return match.ParseLogic(s)
}

// Text wraps a string as a nullable column value.
func Text(s string) *string { return &s }

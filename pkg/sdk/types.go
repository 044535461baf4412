package sdk

import "github.com/craterlabs/fuzzle/internal/domain/match"

// Logic combines term or column outcomes. Either "and" or "or".
type Logic = match.Logic

// Logic values.
const (
	And = match.And
	Or  = match.Or
)

// Scorer computes a similarity score in [0, 1] between a pattern and a target.
type Scorer = match.Scorer

// Record is a stored set of named text fields.
type Record struct {
	ID     string
	Fields map[string]string
}

// SearchQuery describes a typo-tolerant search over stored records.
// Zero values for MaxTypos, TermLogic, ColumnLogic and Limit fall back to the
// client defaults.
type SearchQuery struct {
	Query       string
	Columns     []string
	MaxTypos    *int
	TermLogic   Logic
	ColumnLogic Logic
	Limit       int
}

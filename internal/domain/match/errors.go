package match

import "errors"

// Sentinel errors for invalid match configuration. Both are detected at the
// boundary of each public operation, before any matching or rendering work.
var (
	// ErrInvalidLogic signals a term or column logic outside {AND, OR}.
	ErrInvalidLogic = errors.New("invalid match logic")
	// ErrInvalidTypoBudget signals a negative typo budget.
	ErrInvalidTypoBudget = errors.New("invalid typo budget")
)

package sdk

import (
	"github.com/craterlabs/fuzzle/internal/domain"
	"github.com/craterlabs/fuzzle/internal/domain/match"
)

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrRecordNotFound    = domain.ErrRecordNotFound
	ErrInvalidRecord     = domain.ErrInvalidRecord
	ErrNoColumns         = domain.ErrNoColumns
	ErrInvalidLogic      = match.ErrInvalidLogic
	ErrInvalidTypoBudget = match.ErrInvalidTypoBudget
)

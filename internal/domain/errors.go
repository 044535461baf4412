// Package domain holds cross-cutting domain errors for the fuzzle service.
package domain

import "errors"

var (
	// ErrRecordNotFound signals a missing record.
	ErrRecordNotFound = errors.New("record not found")
	// ErrNoColumns signals a search request naming no columns to match against.
	ErrNoColumns = errors.New("at least one column is required")
	// ErrInvalidRecord signals a record that failed validation.
	ErrInvalidRecord = errors.New("invalid record")
)

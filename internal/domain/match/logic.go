package match

import (
	"fmt"
	"strings"
)

// Logic is the boolean aggregation mode for a set of match results.
// Term logic and column logic are independent settings of this type.
type Logic string

// Aggregation mode constants.
const (
	// And requires every operand to match; an empty operand set is vacuously true.
	And Logic = "AND"
	// Or requires at least one operand to match; an empty operand set is false.
	Or Logic = "OR"
)

// IsValid checks if the logic is one of the supported values.
func (l Logic) IsValid() bool {
	return l == And || l == Or
}

// Keyword returns the textual operator used when a clause is rendered.
func (l Logic) Keyword() string { return string(l) }

// ParseLogic converts a case-insensitive user string into a Logic.
// Anything other than "and"/"or" is ErrInvalidLogic.
func ParseLogic(s string) (Logic, error) {
	l := Logic(strings.ToUpper(strings.TrimSpace(s)))
	if !l.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidLogic, s)
	}
	return l, nil
}

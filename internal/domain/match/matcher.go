package match

import (
	"fmt"
	"strings"
)

// Matcher evaluates fuzzy-match decisions for query terms against text values.
// It holds no mutable state and is safe for concurrent use.
type Matcher struct {
	scorer Scorer
}

// NewMatcher creates a Matcher over the given similarity capability.
func NewMatcher(scorer Scorer) *Matcher {
	return &Matcher{scorer: scorer}
}

// MatchTerm decides whether a single term matches a text value under the typo
// budget. A nil target never matches.
func (m *Matcher) MatchTerm(target *string, pattern string, maxTypos int) (bool, error) {
	if maxTypos < 0 {
		return false, fmt.Errorf("%w: %d", ErrInvalidTypoBudget, maxTypos)
	}
	return m.evalTerm(target, PlanTerm(pattern, maxTypos)), nil
}

// MatchWords aggregates per-term decisions for a pre-split term sequence.
// AND short-circuits on the first miss and is vacuously true for no terms;
// OR short-circuits on the first hit and is false for no terms.
func (m *Matcher) MatchWords(target *string, terms []string, maxTypos int, logic Logic) (bool, error) {
	plan, err := PlanTerms(terms, maxTypos, logic)
	if err != nil {
		return false, err
	}
	return m.eval(target, plan), nil
}

// MatchQuery splits a raw query on whitespace and evaluates it against one
// text value.
func (m *Matcher) MatchQuery(target *string, query string, maxTypos int, logic Logic) (bool, error) {
	return m.MatchWords(target, SplitQuery(query), maxTypos, logic)
}

// MatchColumns evaluates the term set against every column and aggregates the
// per-column results under columnLogic. Term and column logic are independent.
func (m *Matcher) MatchColumns(
	terms []string, maxTypos int, termLogic, columnLogic Logic, columns []*string,
) (bool, error) {
	if !columnLogic.IsValid() {
		return false, fmt.Errorf("%w: %q", ErrInvalidLogic, string(columnLogic))
	}
	plan, err := PlanTerms(terms, maxTypos, termLogic)
	if err != nil {
		return false, err
	}

	result := columnLogic == And
	for _, col := range columns {
		matched := m.eval(col, plan)
		if columnLogic == And && !matched {
			return false, nil
		}
		if columnLogic == Or && matched {
			return true, nil
		}
	}
	return result, nil
}

// MultiMatchQuery is MatchColumns preceded by whitespace splitting of the raw
// query, with columns as a variadic list.
func (m *Matcher) MultiMatchQuery(
	query string, maxTypos int, termLogic, columnLogic Logic, columns ...*string,
) (bool, error) {
	return m.MatchColumns(SplitQuery(query), maxTypos, termLogic, columnLogic, columns)
}

// eval runs a resolved plan against one text value. A nil target is an
// immediate non-match regardless of logic.
func (m *Matcher) eval(target *string, plan QueryPlan) bool {
	if target == nil {
		return false
	}

	result := plan.Logic == And
	for _, term := range plan.Terms {
		matched := m.evalTerm(target, term)
		if plan.Logic == And && !matched {
			return false
		}
		if plan.Logic == Or && matched {
			return true
		}
	}
	return result
}

func (m *Matcher) evalTerm(target *string, plan TermPlan) bool {
	if target == nil {
		return false
	}
	switch plan.Regime {
	case RegimeSimilarity:
		return m.scorer.Score(plan.Pattern, *target) >= plan.Cutoff
	default:
		return containsIgnoreCase(*target, plan.Pattern)
	}
}

// containsIgnoreCase reports case-insensitive substring containment.
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

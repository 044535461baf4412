package match

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// longPatternLimit is the length above which the typo budget gets one extra
// typo. Trigram engines undercount the trailing boundary trigram on longer
// patterns, so the raw budget is too strict there.
const longPatternLimit = 5

// Regime selects how a single term is matched against a text value.
type Regime int

// Term matching regimes.
const (
	// RegimeContains is a case-insensitive substring check, used for patterns
	// too short for trigram scoring and for a zero typo budget.
	RegimeContains Regime = iota
	// RegimeSimilarity compares a trigram similarity score against a cutoff.
	RegimeSimilarity
)

// TermPlan is the resolved decision for one search term: which regime applies
// and, for the similarity regime, the cutoff. A plan is either evaluated by a
// Matcher or rendered by the clause compiler, so both paths share the same
// threshold and typo-adjustment rules.
type TermPlan struct {
	Pattern string
	Regime  Regime
	Cutoff  float64
}

// PlanTerm resolves the matching regime for one term. maxTypos must be
// non-negative; validation happens at the public operation boundary.
func PlanTerm(pattern string, maxTypos int) TermPlan {
	length := utf8.RuneCountInString(pattern)
	if length < shortPatternLimit || maxTypos == 0 {
		return TermPlan{Pattern: pattern, Regime: RegimeContains}
	}

	adjusted := maxTypos
	if length > longPatternLimit {
		adjusted++
	}
	return TermPlan{
		Pattern: pattern,
		Regime:  RegimeSimilarity,
		Cutoff:  Threshold(length, adjusted),
	}
}

// QueryPlan is the resolved decision tree for a set of terms under one logic.
type QueryPlan struct {
	Terms []TermPlan
	Logic Logic
}

// PlanTerms resolves a pre-split term sequence. Order and duplicates are
// preserved.
func PlanTerms(terms []string, maxTypos int, logic Logic) (QueryPlan, error) {
	if !logic.IsValid() {
		return QueryPlan{}, fmt.Errorf("%w: %q", ErrInvalidLogic, string(logic))
	}
	if maxTypos < 0 {
		return QueryPlan{}, fmt.Errorf("%w: %d", ErrInvalidTypoBudget, maxTypos)
	}

	plans := make([]TermPlan, len(terms))
	for i, t := range terms {
		plans[i] = PlanTerm(t, maxTypos)
	}
	return QueryPlan{Terms: plans, Logic: logic}, nil
}

// PlanQuery splits a raw query into terms and resolves them.
func PlanQuery(query string, maxTypos int, logic Logic) (QueryPlan, error) {
	return PlanTerms(SplitQuery(query), maxTypos, logic)
}

// SplitQuery decomposes a raw query string into ordered search terms on runs
// of whitespace. Duplicates are kept; a blank query yields no terms.
func SplitQuery(query string) []string {
	return strings.Fields(query)
}

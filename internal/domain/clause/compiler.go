// Package clause compiles fuzzy-match decisions into textual SQL predicate
// fragments. It mirrors the evaluation path in internal/domain/match exactly:
// both consume the same term plans, so a compiled fragment is the textual
// image of the boolean the matcher would produce for any column value.
package clause

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/craterlabs/fuzzle/internal/domain/match"
)

// Compiler renders match decisions as parenthesized predicate fragments.
// Fragments are assembled and escaped here but never executed.
type Compiler struct {
	dialect Dialect
}

// NewCompiler creates a Compiler for the given dialect.
func NewCompiler(dialect Dialect) *Compiler {
	return &Compiler{dialect: dialect}
}

// Term renders the predicate for a single term against a column. maxTypos
// must be non-negative.
func (c *Compiler) Term(column, pattern string, maxTypos int) (string, error) {
	if maxTypos < 0 {
		return "", fmt.Errorf("%w: %d", match.ErrInvalidTypoBudget, maxTypos)
	}
	return c.renderTerm(column, match.PlanTerm(pattern, maxTypos)), nil
}

// MatchQueryClause renders the term-set predicate for one column: each term's
// fragment joined by the logic keyword, parenthesized as a unit. An empty
// query renders the neutral boolean literal for the logic ("true" under AND,
// "false" under OR).
func (c *Compiler) MatchQueryClause(column, query string, maxTypos int, logic match.Logic) (string, error) {
	plan, err := match.PlanQuery(query, maxTypos, logic)
	if err != nil {
		return "", err
	}
	return c.render(column, plan), nil
}

// MultiMatchQueryClause renders one term-set fragment per column and joins
// them with the column logic keyword, parenthesized.
func (c *Compiler) MultiMatchQueryClause(
	columns []string, query string, maxTypos int, termLogic, columnLogic match.Logic,
) (string, error) {
	if !columnLogic.IsValid() {
		return "", fmt.Errorf("%w: %q", match.ErrInvalidLogic, string(columnLogic))
	}
	plan, err := match.PlanQuery(query, maxTypos, termLogic)
	if err != nil {
		return "", err
	}

	fragments := make([]string, len(columns))
	for i, col := range columns {
		fragments[i] = c.render(col, plan)
	}
	return c.join(fragments, columnLogic), nil
}

func (c *Compiler) render(column string, plan match.QueryPlan) string {
	fragments := make([]string, len(plan.Terms))
	for i, term := range plan.Terms {
		fragments[i] = c.renderTerm(column, term)
	}
	return c.join(fragments, plan.Logic)
}

// join parenthesizes a fragment list under a logic keyword, collapsing the
// empty list to its neutral boolean literal.
func (c *Compiler) join(fragments []string, logic match.Logic) string {
	switch len(fragments) {
	case 0:
		if logic == match.And {
			return "true"
		}
		return "false"
	case 1:
		return fragments[0]
	default:
		return "(" + strings.Join(fragments, " "+logic.Keyword()+" ") + ")"
	}
}

func (c *Compiler) renderTerm(column string, plan match.TermPlan) string {
	ident := c.dialect.QuoteIdentifier(column)
	if plan.Regime == match.RegimeSimilarity {
		literal := c.dialect.QuoteLiteral(plan.Pattern)
		cutoff := strconv.FormatFloat(plan.Cutoff, 'f', -1, 64)
		return "similarity(" + literal + ", " + ident + ") >= " + cutoff
	}

	pattern := c.dialect.QuoteLiteral("%" + c.dialect.EscapeLikePattern(plan.Pattern) + "%")
	return ident + " ILIKE " + pattern
}

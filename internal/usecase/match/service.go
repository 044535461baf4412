// Package match is the use-case layer over the fuzzy-match engine and its
// clause compiler: validation happens in the domain, this layer adds
// observability.
package match

import (
	"context"

	"go.uber.org/zap"

	"github.com/craterlabs/fuzzle/internal/domain/clause"
	"github.com/craterlabs/fuzzle/internal/domain/match"
	"github.com/craterlabs/fuzzle/internal/logger"
	"github.com/craterlabs/fuzzle/internal/metrics"
)

// Service exposes the evaluation and compilation paths.
type Service struct {
	matcher  *match.Matcher
	compiler *clause.Compiler
}

// New creates a match service.
func New(scorer match.Scorer, dialect clause.Dialect) *Service {
	return &Service{
		matcher:  match.NewMatcher(scorer),
		compiler: clause.NewCompiler(dialect),
	}
}

// Matcher returns the underlying evaluation engine for other use cases.
func (s *Service) Matcher() *match.Matcher { return s.matcher }

// Match evaluates a query against one text value.
func (s *Service) Match(
	ctx context.Context, content, query string, maxTypos int, termLogic match.Logic,
) (bool, error) {
	matched, err := s.matcher.MatchQuery(&content, query, maxTypos, termLogic)
	if err != nil {
		return false, err
	}
	metrics.ObserveMatchDecision("match", matched)
	logger.FromContext(ctx).Debug("match evaluated",
		zap.String("query", query),
		zap.Int("max_typos", maxTypos),
		zap.String("term_logic", string(termLogic)),
		zap.Bool("matched", matched),
	)
	return matched, nil
}

// MultiMatch evaluates a query across several nullable columns.
func (s *Service) MultiMatch(
	ctx context.Context, query string, maxTypos int,
	termLogic, columnLogic match.Logic, columns []*string,
) (bool, error) {
	matched, err := s.matcher.MatchColumns(
		match.SplitQuery(query), maxTypos, termLogic, columnLogic, columns,
	)
	if err != nil {
		return false, err
	}
	metrics.ObserveMatchDecision("multi_match", matched)
	logger.FromContext(ctx).Debug("multi-match evaluated",
		zap.String("query", query),
		zap.Int("max_typos", maxTypos),
		zap.Int("columns", len(columns)),
		zap.Bool("matched", matched),
	)
	return matched, nil
}

// BuildClause compiles the single-column decision into a predicate fragment.
func (s *Service) BuildClause(
	ctx context.Context, column, query string, maxTypos int, termLogic match.Logic,
) (string, error) {
	fragment, err := s.compiler.MatchQueryClause(column, query, maxTypos, termLogic)
	if err != nil {
		return "", err
	}
	metrics.ObserveClauseBuilt("match")
	logger.FromContext(ctx).Debug("clause compiled",
		zap.String("column", column),
		zap.Int("fragment_len", len(fragment)),
	)
	return fragment, nil
}

// BuildMultiClause compiles the multi-column decision into a predicate fragment.
func (s *Service) BuildMultiClause(
	ctx context.Context, columns []string, query string, maxTypos int,
	termLogic, columnLogic match.Logic,
) (string, error) {
	fragment, err := s.compiler.MultiMatchQueryClause(columns, query, maxTypos, termLogic, columnLogic)
	if err != nil {
		return "", err
	}
	metrics.ObserveClauseBuilt("multi_match")
	logger.FromContext(ctx).Debug("multi clause compiled",
		zap.Strings("columns", columns),
		zap.Int("fragment_len", len(fragment)),
	)
	return fragment, nil
}

// Threshold exposes the similarity cutoff formula.
func (s *Service) Threshold(length, maxTypos int) (float64, error) {
	return match.OptimalThreshold(length, maxTypos)
}

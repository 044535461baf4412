// Package records handles record CRUD and in-process fuzzy search over the
// stored records.
package records

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/craterlabs/fuzzle/internal/domain"
	"github.com/craterlabs/fuzzle/internal/domain/match"
	domrec "github.com/craterlabs/fuzzle/internal/domain/record"
	"github.com/craterlabs/fuzzle/internal/logger"
	"github.com/craterlabs/fuzzle/internal/metrics"
)

const defaultSearchLimit = 20

// Service coordinates record storage and search.
type Service struct {
	repo     Repository
	matcher  *match.Matcher
	maxLimit int
}

// New creates a records service. maxLimit caps search result counts;
// non-positive means the default is also the cap.
func New(repo Repository, matcher *match.Matcher, maxLimit int) *Service {
	if maxLimit <= 0 {
		maxLimit = defaultSearchLimit
	}
	return &Service{repo: repo, matcher: matcher, maxLimit: maxLimit}
}

// Upsert validates and stores a record. Returns the record and whether it was
// created rather than replaced.
func (s *Service) Upsert(ctx context.Context, id string, fields map[string]string) (domrec.Record, bool, error) {
	rec, err := domrec.New(id, fields)
	if err != nil {
		return domrec.Record{}, false, fmt.Errorf("validate record: %w", err)
	}

	created, err := s.repo.Upsert(ctx, &rec)
	if err != nil {
		return domrec.Record{}, false, fmt.Errorf("store record: %w", err)
	}

	logger.FromContext(ctx).Debug("record upserted",
		zap.String("id", id), zap.Bool("created", created))
	return rec, created, nil
}

// Get returns a record by ID.
func (s *Service) Get(ctx context.Context, id string) (domrec.Record, error) {
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		return domrec.Record{}, fmt.Errorf("get record %s: %w", id, err)
	}
	return rec, nil
}

// Delete removes a record by ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete record %s: %w", id, err)
	}
	return nil
}

// List returns all records ordered by ID.
func (s *Service) List(ctx context.Context) ([]domrec.Record, error) {
	recs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return recs, nil
}

// SearchRequest describes one fuzzy search over stored records.
type SearchRequest struct {
	Query       string
	Columns     []string
	MaxTypos    int
	TermLogic   match.Logic
	ColumnLogic match.Logic
	Limit       int
}

// Search evaluates the query against the named columns of every stored record
// and returns the matches in ID order, capped at the request limit.
func (s *Service) Search(ctx context.Context, req SearchRequest) ([]domrec.Record, error) {
	if len(req.Columns) == 0 {
		return nil, domain.ErrNoColumns
	}

	terms := match.SplitQuery(req.Query)
	// Fail fast on bad logic/budget before touching storage.
	if _, err := match.PlanTerms(terms, req.MaxTypos, req.TermLogic); err != nil {
		return nil, err
	}
	if !req.ColumnLogic.IsValid() {
		return nil, fmt.Errorf("%w: %q", match.ErrInvalidLogic, string(req.ColumnLogic))
	}

	limit := req.Limit
	if limit <= 0 || limit > s.maxLimit {
		limit = s.maxLimit
	}

	recs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	matched := make([]domrec.Record, 0, limit)
	for _, rec := range recs {
		ok, err := s.matcher.MatchColumns(
			terms, req.MaxTypos, req.TermLogic, req.ColumnLogic, rec.Columns(req.Columns),
		)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		matched = append(matched, rec)
		if len(matched) == limit {
			break
		}
	}

	metrics.ObserveRecordSearch(len(recs), len(matched))
	logger.FromContext(ctx).Debug("records searched",
		zap.String("query", req.Query),
		zap.Strings("columns", req.Columns),
		zap.Int("scanned", len(recs)),
		zap.Int("matched", len(matched)),
	)
	return matched, nil
}

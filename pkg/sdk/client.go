package sdk

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/craterlabs/fuzzle/internal/db"
	dbRedis "github.com/craterlabs/fuzzle/internal/db/redis"
	"github.com/craterlabs/fuzzle/internal/domain/match"
	domrec "github.com/craterlabs/fuzzle/internal/domain/record"
	recordrepo "github.com/craterlabs/fuzzle/internal/repository/record"
	"github.com/craterlabs/fuzzle/internal/similarity"
	recordsuc "github.com/craterlabs/fuzzle/internal/usecase/records"
)

const defaultReadinessTimeout = 10 * time.Second

// recordsUseCase is the internal interface for record operations,
// swappable in tests.
type recordsUseCase interface {
	Upsert(ctx context.Context, id string, fields map[string]string) (domrec.Record, bool, error)
	Get(ctx context.Context, id string) (domrec.Record, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domrec.Record, error)
	Search(ctx context.Context, req recordsuc.SearchRequest) ([]domrec.Record, error)
}

// Client is the fuzzle SDK entry point.
type Client struct {
	store    db.Store
	records  recordsUseCase
	defaults clientDefaults
}

type clientDefaults struct {
	maxTypos    int
	termLogic   match.Logic
	columnLogic match.Logic
}

// New creates a fuzzle Client and connects to the database.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		keyPrefix:   "fuzzle:",
		searchLimit: 100,
		maxTypos:    1,
		termLogic:   match.And,
		columnLogic: match.And,
		scorer:      similarity.NewTrigramScorer(),
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("fuzzle: database address required (use WithRedis)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Password: cfg.password,
	})
	if err != nil {
		return nil, fmt.Errorf("fuzzle: create redis store: %w", err)
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("fuzzle: database not ready: %w", err)
	}

	repo := recordrepo.New(store, cfg.keyPrefix)
	matcher := match.NewMatcher(cfg.scorer)

	return &Client{
		store:   store,
		records: recordsuc.New(repo, matcher, cfg.searchLimit),
		defaults: clientDefaults{
			maxTypos:    cfg.maxTypos,
			termLogic:   cfg.termLogic,
			columnLogic: cfg.columnLogic,
		},
	}, nil
}

// Close releases the database connection.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("fuzzle: ping: %w", err)
	}
	return nil
}

// UpsertRecord validates and stores a record. Returns true when the record was
// created rather than replaced.
func (c *Client) UpsertRecord(ctx context.Context, id string, fields map[string]string) (bool, error) {
	_, created, err := c.records.Upsert(ctx, id, fields)
	if err != nil {
		return false, fmt.Errorf("fuzzle: upsert record: %w", err)
	}
	return created, nil
}

// GetRecord returns a stored record by ID.
func (c *Client) GetRecord(ctx context.Context, id string) (Record, error) {
	rec, err := c.records.Get(ctx, id)
	if err != nil {
		return Record{}, fmt.Errorf("fuzzle: get record: %w", err)
	}
	return recordFromDomain(rec), nil
}

// DeleteRecord removes a stored record by ID.
func (c *Client) DeleteRecord(ctx context.Context, id string) error {
	if err := c.records.Delete(ctx, id); err != nil {
		return fmt.Errorf("fuzzle: delete record: %w", err)
	}
	return nil
}

// ListRecords returns all stored records ordered by ID.
func (c *Client) ListRecords(ctx context.Context) ([]Record, error) {
	recs, err := c.records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fuzzle: list records: %w", err)
	}
	return recordsFromDomain(recs), nil
}

// SearchRecords runs a typo-tolerant search over the named columns of every
// stored record.
func (c *Client) SearchRecords(ctx context.Context, q SearchQuery) ([]Record, error) {
	maxTypos := c.defaults.maxTypos
	if q.MaxTypos != nil {
		maxTypos = *q.MaxTypos
	}
	termLogic := q.TermLogic
	if termLogic == "" {
		termLogic = c.defaults.termLogic
	}
	columnLogic := q.ColumnLogic
	if columnLogic == "" {
		columnLogic = c.defaults.columnLogic
	}

	recs, err := c.records.Search(ctx, recordsuc.SearchRequest{
		Query:       q.Query,
		Columns:     q.Columns,
		MaxTypos:    maxTypos,
		TermLogic:   termLogic,
		ColumnLogic: columnLogic,
		Limit:       q.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("fuzzle: search records: %w", err)
	}
	return recordsFromDomain(recs), nil
}

func recordFromDomain(rec domrec.Record) Record {
	return Record{ID: rec.ID(), Fields: rec.Fields()}
}

func recordsFromDomain(recs []domrec.Record) []Record {
	out := make([]Record, len(recs))
	for i, rec := range recs {
		out[i] = recordFromDomain(rec)
	}
	return out
}

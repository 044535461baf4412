// Package record persists records as Redis hashes.
package record

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/craterlabs/fuzzle/internal/domain"
	domrec "github.com/craterlabs/fuzzle/internal/domain/record"
)

// store is the consumer interface for records (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo implements usecase/records.Repository.
type Repo struct {
	store     store
	keyPrefix string
}

// New creates a record repository. keyPrefix namespaces all keys.
func New(s store, keyPrefix string) *Repo {
	return &Repo{store: s, keyPrefix: keyPrefix}
}

// Upsert creates or replaces a record. Returns true if created.
// A replace deletes the old hash first so dropped fields do not linger.
func (r *Repo) Upsert(ctx context.Context, rec *domrec.Record) (bool, error) {
	key := r.recordKey(rec.ID())

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("check exists %s: %w", key, err)
	}
	if exists {
		if err := r.store.Del(ctx, key); err != nil {
			return false, fmt.Errorf("clear %s: %w", key, err)
		}
	}

	if err := r.store.HSet(ctx, key, rec.Fields()); err != nil {
		return false, fmt.Errorf("hset %s: %w", key, err)
	}
	return !exists, nil
}

// Get returns a record by ID.
func (r *Repo) Get(ctx context.Context, id string) (domrec.Record, error) {
	key := r.recordKey(id)
	fields, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return domrec.Record{}, fmt.Errorf("hgetall %s: %w", key, err)
	}
	// HGETALL on a missing key is an empty map, not an error.
	if len(fields) == 0 {
		return domrec.Record{}, domain.ErrRecordNotFound
	}
	return domrec.Reconstruct(id, fields), nil
}

// Delete removes a record by ID.
func (r *Repo) Delete(ctx context.Context, id string) error {
	key := r.recordKey(id)

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists %s: %w", key, err)
	}
	if !exists {
		return domain.ErrRecordNotFound
	}

	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	return nil
}

// List returns all records ordered by ID.
func (r *Repo) List(ctx context.Context) ([]domrec.Record, error) {
	keys, err := r.store.Scan(ctx, r.recordKey("*"))
	if err != nil {
		return nil, fmt.Errorf("scan records: %w", err)
	}
	sort.Strings(keys)

	fieldMaps, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("fetch records: %w", err)
	}

	records := make([]domrec.Record, 0, len(fieldMaps))
	for i, fields := range fieldMaps {
		// A record deleted between SCAN and HGETALL comes back empty.
		if len(fields) == 0 {
			continue
		}
		id := strings.TrimPrefix(keys[i], r.recordKey(""))
		records = append(records, domrec.Reconstruct(id, fields))
	}
	return records, nil
}

func (r *Repo) recordKey(id string) string {
	return r.keyPrefix + "record:" + id
}

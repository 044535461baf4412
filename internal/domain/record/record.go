// Package record defines the stored-record aggregate that the fuzzy search
// service matches against.
package record

import (
	"fmt"
	"regexp"

	"github.com/craterlabs/fuzzle/internal/domain"
)

var idRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Limits for record identifiers and field payloads.
const (
	MaxIDLength   = 256
	MaxFieldCount = 64
	MaxFieldSize  = 16384 // 16KB per field value
)

// Record is a set of named text fields under one identifier (immutable value
// object). Fields that were never written are absent, which the matcher
// treats as null columns.
type Record struct {
	id     string
	fields map[string]string
}

// New validates and creates a Record.
// ID: ^[a-zA-Z0-9_-]+$, 1-256 chars. At least one field is required.
func New(id string, fields map[string]string) (Record, error) {
	if id == "" {
		return Record{}, fmt.Errorf("%w: record ID is required", domain.ErrInvalidRecord)
	}
	if len(id) > MaxIDLength {
		return Record{}, fmt.Errorf("%w: record ID too long (max %d)", domain.ErrInvalidRecord, MaxIDLength)
	}
	if !idRegex.MatchString(id) {
		return Record{}, fmt.Errorf("%w: record ID must be alphanumeric with underscores and hyphens", domain.ErrInvalidRecord)
	}
	if len(fields) == 0 {
		return Record{}, fmt.Errorf("%w: at least one field is required", domain.ErrInvalidRecord)
	}
	if len(fields) > MaxFieldCount {
		return Record{}, fmt.Errorf("%w: too many fields (max %d)", domain.ErrInvalidRecord, MaxFieldCount)
	}
	for name, value := range fields {
		if name == "" {
			return Record{}, fmt.Errorf("%w: field name must not be empty", domain.ErrInvalidRecord)
		}
		if len(value) > MaxFieldSize {
			return Record{}, fmt.Errorf("%w: field %q too large (max %d bytes)", domain.ErrInvalidRecord, name, MaxFieldSize)
		}
	}

	return Record{id: id, fields: cloneFields(fields)}, nil
}

// Reconstruct creates a Record without validation (storage hydration).
func Reconstruct(id string, fields map[string]string) Record {
	return Record{id: id, fields: fields}
}

// ID returns the record identifier.
func (r *Record) ID() string { return r.id }

// Fields returns the field map.
func (r *Record) Fields() map[string]string { return r.fields }

// Column returns the value of one field, or nil when the field is absent.
func (r *Record) Column(name string) *string {
	if v, ok := r.fields[name]; ok {
		return &v
	}
	return nil
}

// Columns resolves an ordered list of field names to nullable values.
func (r *Record) Columns(names []string) []*string {
	cols := make([]*string, len(names))
	for i, name := range names {
		cols[i] = r.Column(name)
	}
	return cols
}

func cloneFields(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

package clause

import "strings"

// Dialect renders identifiers and literals for the engine that will execute
// the emitted fragments. Quoting protects legitimate values only; column names
// and logic keywords must still come from a trusted enumeration, because no
// quoting rule can neutralize an input that is not a real identifier.
type Dialect interface {
	// QuoteIdentifier renders a column name.
	QuoteIdentifier(name string) string
	// QuoteLiteral renders a string literal.
	QuoteLiteral(value string) string
	// EscapeLikePattern neutralizes wildcard metacharacters inside a value
	// that will be embedded into a LIKE/ILIKE pattern, before literal quoting.
	EscapeLikePattern(value string) string
}

// PostgresDialect renders fragments for PostgreSQL with the pg_trgm extension.
type PostgresDialect struct{}

var (
	pgIdentEscaper   = strings.NewReplacer(`"`, `""`)
	pgLiteralEscaper = strings.NewReplacer(`'`, `''`)
	pgLikeEscaper    = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
)

// QuoteIdentifier double-quotes an identifier, doubling embedded quotes.
func (PostgresDialect) QuoteIdentifier(name string) string {
	return `"` + pgIdentEscaper.Replace(name) + `"`
}

// QuoteLiteral single-quotes a literal, doubling embedded quotes.
func (PostgresDialect) QuoteLiteral(value string) string {
	return `'` + pgLiteralEscaper.Replace(value) + `'`
}

// EscapeLikePattern backslash-escapes %, _ and \ so they match literally.
func (PostgresDialect) EscapeLikePattern(value string) string {
	return pgLikeEscaper.Replace(value)
}

package chi

// ErrorCode identifies an API error class.
type ErrorCode string

// API error codes.
const (
	CodeBadRequest        ErrorCode = "bad_request"
	CodeValidationFailed  ErrorCode = "validation_failed"
	CodeInvalidLogic      ErrorCode = "invalid_logic"
	CodeInvalidTypoBudget ErrorCode = "invalid_typo_budget"
	CodeNoColumns         ErrorCode = "no_columns"
	CodeRecordNotFound    ErrorCode = "record_not_found"
	CodeInternalError     ErrorCode = "internal_error"
)

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// MatchRequest asks whether a query matches one text value.
type MatchRequest struct {
	Content   string `json:"content"`
	Query     string `json:"query"`
	MaxTypos  *int   `json:"max_typos,omitempty"`
	TermLogic string `json:"term_logic,omitempty"`
}

// MultiMatchRequest asks whether a query matches across nullable columns.
type MultiMatchRequest struct {
	Columns     []*string `json:"columns"`
	Query       string    `json:"query"`
	MaxTypos    *int      `json:"max_typos,omitempty"`
	TermLogic   string    `json:"term_logic,omitempty"`
	ColumnLogic string    `json:"column_logic,omitempty"`
}

// MatchResponse carries a match decision.
type MatchResponse struct {
	Matched bool `json:"matched"`
}

// ClauseRequest asks for a predicate fragment over one column.
type ClauseRequest struct {
	Column    string `json:"column"`
	Query     string `json:"query"`
	MaxTypos  *int   `json:"max_typos,omitempty"`
	TermLogic string `json:"term_logic,omitempty"`
}

// MultiClauseRequest asks for a predicate fragment over several columns.
type MultiClauseRequest struct {
	Columns     []string `json:"columns"`
	Query       string   `json:"query"`
	MaxTypos    *int     `json:"max_typos,omitempty"`
	TermLogic   string   `json:"term_logic,omitempty"`
	ColumnLogic string   `json:"column_logic,omitempty"`
}

// ClauseResponse carries a compiled predicate fragment.
type ClauseResponse struct {
	Clause string `json:"clause"`
}

// ThresholdResponse carries a similarity cutoff.
type ThresholdResponse struct {
	Length    int     `json:"length"`
	MaxTypos  int     `json:"max_typos"`
	Threshold float64 `json:"threshold"`
}

// UpsertRecordRequest stores a record's fields.
type UpsertRecordRequest struct {
	Fields map[string]string `json:"fields"`
}

// RecordResponse is the JSON shape of a stored record.
type RecordResponse struct {
	ID     string            `json:"id"`
	Fields map[string]string `json:"fields"`
}

// RecordListResponse carries a list of records.
type RecordListResponse struct {
	Items []RecordResponse `json:"items"`
	Total int              `json:"total"`
}

// SearchRecordsRequest is a fuzzy search over stored records.
type SearchRecordsRequest struct {
	Query       string   `json:"query"`
	Columns     []string `json:"columns"`
	MaxTypos    *int     `json:"max_typos,omitempty"`
	TermLogic   string   `json:"term_logic,omitempty"`
	ColumnLogic string   `json:"column_logic,omitempty"`
	Limit       int      `json:"limit,omitempty"`
}

// HealthResponse reports component health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

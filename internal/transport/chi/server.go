package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	chirouter "github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/craterlabs/fuzzle/internal/domain"
	"github.com/craterlabs/fuzzle/internal/domain/match"
	domrec "github.com/craterlabs/fuzzle/internal/domain/record"
	healthuc "github.com/craterlabs/fuzzle/internal/usecase/health"
	matchuc "github.com/craterlabs/fuzzle/internal/usecase/match"
	recordsuc "github.com/craterlabs/fuzzle/internal/usecase/records"
)

// Defaults are the matching parameters used when a request omits them.
// MultiTermLogic applies to the multi-column operations, where a term
// matching in any one column is the useful default.
type Defaults struct {
	MaxTypos       int
	TermLogic      match.Logic
	MultiTermLogic match.Logic
	ColumnLogic    match.Logic
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server is the HTTP API over the match engine and record store.
type Server struct {
	match         *matchuc.Service
	records       *recordsuc.Service
	health        *healthuc.Service
	defaults      Defaults
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	matchSvc *matchuc.Service,
	recordsSvc *recordsuc.Service,
	healthSvc *healthuc.Service,
	defaults Defaults,
	logger *zap.Logger,
) *Server {
	s := &Server{
		match:    matchSvc,
		records:  recordsSvc,
		health:   healthSvc,
		defaults: defaults,
		logger:   logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(match.ErrInvalidLogic, http.StatusBadRequest, CodeInvalidLogic),
		sentinelHandler(match.ErrInvalidTypoBudget, http.StatusBadRequest, CodeInvalidTypoBudget),
		sentinelHandler(domain.ErrNoColumns, http.StatusBadRequest, CodeNoColumns),
		sentinelHandler(domain.ErrInvalidRecord, http.StatusBadRequest, CodeValidationFailed),
		sentinelHandler(domain.ErrRecordNotFound, http.StatusNotFound, CodeRecordNotFound),
	}
	return s
}

// Routes mounts all API routes on the given router.
func (s *Server) Routes(r chirouter.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/api/v1", func(r chirouter.Router) {
		r.Post("/match", s.Match)
		r.Post("/match/multi", s.MultiMatch)
		r.Post("/clauses/match", s.BuildClause)
		r.Post("/clauses/multi", s.BuildMultiClause)
		r.Get("/threshold", s.Threshold)

		r.Route("/records", func(r chirouter.Router) {
			r.Get("/", s.ListRecords)
			r.Post("/search", s.SearchRecords)
			r.Put("/{id}", s.UpsertRecord)
			r.Get("/{id}", s.GetRecord)
			r.Delete("/{id}", s.DeleteRecord)
		})
	})
}

// Match handles POST /api/v1/match.
func (s *Server) Match(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	maxTypos := s.maxTypos(req.MaxTypos)
	termLogic, err := s.logic(req.TermLogic, s.defaults.TermLogic)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	matched, err := s.match.Match(r.Context(), req.Content, req.Query, maxTypos, termLogic)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MatchResponse{Matched: matched})
}

// MultiMatch handles POST /api/v1/match/multi.
func (s *Server) MultiMatch(w http.ResponseWriter, r *http.Request) {
	var req MultiMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	maxTypos := s.maxTypos(req.MaxTypos)
	termLogic, err := s.logic(req.TermLogic, s.defaults.MultiTermLogic)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	columnLogic, err := s.logic(req.ColumnLogic, s.defaults.ColumnLogic)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	matched, err := s.match.MultiMatch(r.Context(), req.Query, maxTypos, termLogic, columnLogic, req.Columns)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MatchResponse{Matched: matched})
}

// BuildClause handles POST /api/v1/clauses/match.
func (s *Server) BuildClause(w http.ResponseWriter, r *http.Request) {
	var req ClauseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.Column == "" {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, "column is required")
		return
	}

	maxTypos := s.maxTypos(req.MaxTypos)
	termLogic, err := s.logic(req.TermLogic, s.defaults.TermLogic)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	clause, err := s.match.BuildClause(r.Context(), req.Column, req.Query, maxTypos, termLogic)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ClauseResponse{Clause: clause})
}

// BuildMultiClause handles POST /api/v1/clauses/multi.
func (s *Server) BuildMultiClause(w http.ResponseWriter, r *http.Request) {
	var req MultiClauseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if len(req.Columns) == 0 {
		s.handleDomainError(w, domain.ErrNoColumns)
		return
	}

	maxTypos := s.maxTypos(req.MaxTypos)
	termLogic, err := s.logic(req.TermLogic, s.defaults.MultiTermLogic)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	columnLogic, err := s.logic(req.ColumnLogic, s.defaults.ColumnLogic)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	clause, err := s.match.BuildMultiClause(r.Context(), req.Columns, req.Query, maxTypos, termLogic, columnLogic)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ClauseResponse{Clause: clause})
}

// Threshold handles GET /api/v1/threshold.
func (s *Server) Threshold(w http.ResponseWriter, r *http.Request) {
	length, err := strconv.Atoi(r.URL.Query().Get("length"))
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "length must be an integer")
		return
	}

	maxTypos := s.defaults.MaxTypos
	if raw := r.URL.Query().Get("max_typos"); raw != "" {
		maxTypos, err = strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, CodeBadRequest, "max_typos must be an integer")
			return
		}
	}

	threshold, err := s.match.Threshold(length, maxTypos)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ThresholdResponse{
		Length:    length,
		MaxTypos:  maxTypos,
		Threshold: threshold,
	})
}

// UpsertRecord handles PUT /api/v1/records/{id}.
func (s *Server) UpsertRecord(w http.ResponseWriter, r *http.Request) {
	id := chirouter.URLParam(r, "id")

	var req UpsertRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	rec, created, err := s.records.Upsert(r.Context(), id, req.Fields)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
		w.Header().Set("Location", "/api/v1/records/"+id)
	}
	writeJSON(w, status, recordToResponse(rec))
}

// GetRecord handles GET /api/v1/records/{id}.
func (s *Server) GetRecord(w http.ResponseWriter, r *http.Request) {
	rec, err := s.records.Get(r.Context(), chirouter.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, recordToResponse(rec))
}

// DeleteRecord handles DELETE /api/v1/records/{id}.
func (s *Server) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	if err := s.records.Delete(r.Context(), chirouter.URLParam(r, "id")); err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListRecords handles GET /api/v1/records.
func (s *Server) ListRecords(w http.ResponseWriter, r *http.Request) {
	recs, err := s.records.List(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, recordListToResponse(recs))
}

// SearchRecords handles POST /api/v1/records/search.
func (s *Server) SearchRecords(w http.ResponseWriter, r *http.Request) {
	var req SearchRecordsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	maxTypos := s.maxTypos(req.MaxTypos)
	termLogic, err := s.logic(req.TermLogic, s.defaults.MultiTermLogic)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	columnLogic, err := s.logic(req.ColumnLogic, s.defaults.ColumnLogic)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	recs, err := s.records.Search(r.Context(), recordsuc.SearchRequest{
		Query:       req.Query,
		Columns:     req.Columns,
		MaxTypos:    maxTypos,
		TermLogic:   termLogic,
		ColumnLogic: columnLogic,
		Limit:       req.Limit,
	})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, recordListToResponse(recs))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func (s *Server) maxTypos(p *int) int {
	if p == nil {
		return s.defaults.MaxTypos
	}
	return *p
}

func (s *Server) logic(raw string, def match.Logic) (match.Logic, error) {
	if raw == "" {
		// Configured defaults arrive as raw config strings ("and") and
		// need the same case normalization as request values.
		return match.ParseLogic(string(def))
	}
	return match.ParseLogic(raw)
}

func recordToResponse(rec domrec.Record) RecordResponse {
	return RecordResponse{
		ID:     rec.ID(),
		Fields: rec.Fields(),
	}
}

func recordListToResponse(recs []domrec.Record) RecordListResponse {
	items := make([]RecordResponse, len(recs))
	for i, rec := range recs {
		items[i] = recordToResponse(rec)
	}
	return RecordListResponse{Items: items, Total: len(items)}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		match.ErrInvalidLogic,
		match.ErrInvalidTypoBudget,
		domain.ErrNoColumns,
		domain.ErrInvalidRecord,
		domain.ErrRecordNotFound,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}

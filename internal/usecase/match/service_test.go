package match

import (
	"context"
	"errors"
	"testing"

	"github.com/craterlabs/fuzzle/internal/domain/clause"
	"github.com/craterlabs/fuzzle/internal/domain/match"
	"github.com/craterlabs/fuzzle/internal/similarity"
)

func newTestService() *Service {
	return New(similarity.NewTrigramScorer(), clause.PostgresDialect{})
}

func TestMatch_ExactQuery(t *testing.T) {
	svc := newTestService()

	matched, err := svc.Match(context.Background(), "Georgi Facello", "Georgi Facello", 0, match.And)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !matched {
		t.Error("expected exact query to match")
	}
}

func TestMatch_TypoWithinBudget(t *testing.T) {
	svc := newTestService()

	matched, err := svc.Match(context.Background(), "Chris Gid", "Chriss", 1, match.And)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !matched {
		t.Error("expected one-typo query to match under budget 1")
	}

	matched, err = svc.Match(context.Background(), "Chris Gid", "Chriss", 0, match.And)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if matched {
		t.Error("expected one-typo query to miss under budget 0")
	}
}

func TestMatch_InvalidInputs(t *testing.T) {
	svc := newTestService()

	_, err := svc.Match(context.Background(), "text", "query", 1, match.Logic("xor"))
	if !errors.Is(err, match.ErrInvalidLogic) {
		t.Errorf("expected ErrInvalidLogic, got %v", err)
	}

	_, err = svc.Match(context.Background(), "text", "query", -1, match.And)
	if !errors.Is(err, match.ErrInvalidTypoBudget) {
		t.Errorf("expected ErrInvalidTypoBudget, got %v", err)
	}
}

func TestMultiMatch_AnyColumn(t *testing.T) {
	svc := newTestService()

	first := "Georgi"
	last := "Facello"
	matched, err := svc.MultiMatch(
		context.Background(), "facello", 1, match.And, match.Or, []*string{&first, &last, nil},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !matched {
		t.Error("expected query to match the last-name column")
	}
}

func TestBuildClause_ContainmentRegime(t *testing.T) {
	svc := newTestService()

	fragment, err := svc.BuildClause(context.Background(), "city", "NY", 1, match.And)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `"city" ILIKE '%NY%'`
	if fragment != want {
		t.Errorf("expected %q, got %q", want, fragment)
	}
}

func TestBuildMultiClause_InvalidColumnLogic(t *testing.T) {
	svc := newTestService()

	_, err := svc.BuildMultiClause(
		context.Background(), []string{"a", "b"}, "query", 1, match.And, match.Logic("nand"),
	)
	if !errors.Is(err, match.ErrInvalidLogic) {
		t.Errorf("expected ErrInvalidLogic, got %v", err)
	}
}

func TestThreshold(t *testing.T) {
	svc := newTestService()

	got, err := svc.Threshold(6, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0.25 {
		t.Errorf("expected 0.25, got %v", got)
	}

	if _, err := svc.Threshold(6, -1); !errors.Is(err, match.ErrInvalidTypoBudget) {
		t.Errorf("expected ErrInvalidTypoBudget, got %v", err)
	}
}

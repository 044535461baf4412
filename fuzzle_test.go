package fuzzle

import (
	"errors"
	"math"
	"testing"
)

func TestMatchQuery_ExactZeroBudget(t *testing.T) {
	m := New()
	got, err := m.MatchQuery("Georgi Facello", "Georgi Facello", 0, And)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Error("exact content must match its own query with a zero typo budget")
	}
}

func TestMatchQuery_EmptyQuery(t *testing.T) {
	m := New()
	got, err := m.MatchQuery("Georgi Facello", " \t ", 1, And)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Error("whitespace-only query under AND must be vacuously true")
	}
}

func TestMatchQuery_ToleratesTypo(t *testing.T) {
	m := New()

	got, err := m.MatchQuery("Chris Gid", "Chriss", 1, And)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Error("one dropped character within the budget must still match")
	}

	got, err = m.MatchQuery("Chris Gid", "Chriss", 0, And)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got {
		t.Error("zero budget must demand exact containment")
	}
}

func TestMultiMatchQuery_EndToEnd(t *testing.T) {
	m := New()
	got, err := m.MultiMatchQuery("Chriss Gid", 1, Or, And, Text("Chriss"), Text("Gid"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Error("every column satisfies at least one term; AND over columns must hold")
	}
}

func TestMultiMatchQuery_NilColumn(t *testing.T) {
	m := New()
	got, err := m.MultiMatchQuery("Chriss", 1, Or, And, Text("Chriss"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got {
		t.Error("a nil column under AND must sink the whole match")
	}
}

func TestBuildMultiMatchQueryClause_EndToEnd(t *testing.T) {
	m := New()
	got, err := m.BuildMultiMatchQueryClause(
		[]string{"first_name", "last_name"}, "Chriss Gid", 1, Or, And,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `((similarity('Chriss', "first_name") >= 0.25 OR similarity('Gid', "first_name") >= 0.4)` +
		` AND (similarity('Chriss', "last_name") >= 0.25 OR similarity('Gid', "last_name") >= 0.4))`
	if got != want {
		t.Errorf("clause =\n%s\nwant\n%s", got, want)
	}
}

func TestBuildMatchQueryClause_Default(t *testing.T) {
	m := New()
	got, err := m.BuildMatchQueryClause("title", "Sales Manager", DefaultMaxTypos, Or)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `(similarity('Sales', "title") >= 0.5714285714285714 OR similarity('Manager', "title") >= 0.3333333333333333)`
	if got != want {
		t.Errorf("clause = %s, want %s", got, want)
	}
}

func TestInvalidLogic_BothPaths(t *testing.T) {
	m := New()

	if _, err := m.MatchQuery("x", "y", 1, Logic("XOR")); !errors.Is(err, ErrInvalidLogic) {
		t.Errorf("evaluation path: expected ErrInvalidLogic, got %v", err)
	}
	if _, err := m.BuildMatchQueryClause("c", "y", 1, Logic("XOR")); !errors.Is(err, ErrInvalidLogic) {
		t.Errorf("compilation path: expected ErrInvalidLogic, got %v", err)
	}
}

func TestNegativeTypoBudget_BothPaths(t *testing.T) {
	m := New()

	if _, err := m.MatchQuery("x", "y", -1, And); !errors.Is(err, ErrInvalidTypoBudget) {
		t.Errorf("evaluation path: expected ErrInvalidTypoBudget, got %v", err)
	}
	if _, err := m.BuildMatchQueryClause("c", "why", -1, And); !errors.Is(err, ErrInvalidTypoBudget) {
		t.Errorf("compilation path: expected ErrInvalidTypoBudget, got %v", err)
	}
}

func TestCalculateOptimalSimilarityThreshold(t *testing.T) {
	tests := []struct {
		length, maxTypos int
		want             float64
	}{
		{6, 2, 0.25},
		{7, 2, 1.0 / 3.0},
		{2, 1, 0.0},
		{2, 0, 1.0},
	}
	for _, tt := range tests {
		got, err := CalculateOptimalSimilarityThreshold(tt.length, tt.maxTypos)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("threshold(%d, %d) = %v, want %v", tt.length, tt.maxTypos, got, tt.want)
		}
	}
}

func TestWithScorer(t *testing.T) {
	// A scorer that refuses everything turns similarity matches off entirely.
	m := New(WithScorer(ScorerFunc(func(_, _ string) float64 { return 0 })))
	got, err := m.MatchQuery("Chris Gid", "Chriss", 1, And)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got {
		t.Error("zero scorer must not match in the similarity regime")
	}
}

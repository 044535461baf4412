package similarity

import "testing"

func TestScore_ExactWord(t *testing.T) {
	s := NewTrigramScorer()
	if got := s.Score("chriss", "chriss"); got != 1.0 {
		t.Errorf("identical strings: score = %v, want 1.0", got)
	}
}

func TestScore_CaseInsensitive(t *testing.T) {
	s := NewTrigramScorer()
	if got := s.Score("CHRISS", "chriss"); got != 1.0 {
		t.Errorf("case-folded strings: score = %v, want 1.0", got)
	}
}

func TestScore_BestWindow(t *testing.T) {
	s := NewTrigramScorer()
	// The matching word inside a longer value must win, not the whole value.
	if got := s.Score("chriss", "dr chriss van houten"); got != 1.0 {
		t.Errorf("windowed score = %v, want 1.0", got)
	}
}

func TestScore_Disjoint(t *testing.T) {
	s := NewTrigramScorer()
	if got := s.Score("chriss", "wumpus"); got != 0.0 {
		t.Errorf("disjoint strings: score = %v, want 0.0", got)
	}
}

func TestScore_PartialOverlap(t *testing.T) {
	s := NewTrigramScorer()
	got := s.Score("chriss", "criss")
	if got <= 0.0 || got >= 1.0 {
		t.Errorf("one-typo score = %v, want strictly between 0 and 1", got)
	}
}

func TestScore_DegenerateInputs(t *testing.T) {
	s := NewTrigramScorer()
	tests := []struct {
		name            string
		pattern, target string
	}{
		{"short pattern", "ab", "abcdef"},
		{"empty pattern", "", "abcdef"},
		{"empty target", "chriss", ""},
		{"target words too short", "chriss", "a b c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Score(tt.pattern, tt.target); got != 0.0 {
				t.Errorf("score = %v, want 0.0", got)
			}
		})
	}
}

func TestScore_Bounds(t *testing.T) {
	s := NewTrigramScorer()
	patterns := []string{"chriss", "facello", "manager", "göthe"}
	targets := []string{"chris", "Georgi Facello", "sales manager", "", "göthe"}
	for _, p := range patterns {
		for _, target := range targets {
			got := s.Score(p, target)
			if got < 0.0 || got > 1.0 {
				t.Fatalf("Score(%q, %q) = %v out of [0, 1]", p, target, got)
			}
		}
	}
}

package symbolre

import (
	"reflect"
	"testing"
)

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		pattern string
	}{
		{"("},
		{")"},
		{"(a"},
		{"a)"},
		{"* a"},
		{"a **"},
		{"a #"},
	}
	for _, tt := range tests {
		if _, err := Compile(tt.pattern); err == nil {
			t.Errorf("Compile(%q) succeeded, want error", tt.pattern)
		}
	}
}

func TestMatchSequence(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		symbols []string
		matched bool
		done    bool
	}{
		{
			name:    "exact concatenation",
			pattern: "a b c",
			symbols: []string{"a", "b", "c"},
			matched: true,
			done:    true,
		},
		{
			name:    "incomplete concatenation",
			pattern: "a b c",
			symbols: []string{"a", "b"},
			matched: true,
			done:    false,
		},
		{
			name:    "wrong symbol",
			pattern: "a b",
			symbols: []string{"b"},
			matched: false,
		},
		{
			name:    "wildcard matches anything",
			pattern: ". .",
			symbols: []string{"x", "y"},
			matched: true,
			done:    true,
		},
		{
			name:    "star absorbs repeats",
			pattern: "a b* c",
			symbols: []string{"a", "b", "b", "b", "c"},
			matched: true,
			done:    true,
		},
		{
			name:    "star matches empty",
			pattern: "a b* c",
			symbols: []string{"a", "c"},
			matched: true,
			done:    true,
		},
		{
			name:    "plus needs at least one",
			pattern: "a+",
			symbols: []string{"a", "a"},
			matched: true,
			done:    true,
		},
		{
			name:    "optional present",
			pattern: "a? b",
			symbols: []string{"a", "b"},
			matched: true,
			done:    true,
		},
		{
			name:    "optional absent",
			pattern: "a? b",
			symbols: []string{"b"},
			matched: true,
			done:    true,
		},
		{
			name:    "alternation",
			pattern: "a | b",
			symbols: []string{"b"},
			matched: true,
			done:    true,
		},
		{
			name:    "group repetition",
			pattern: "(a b)* c",
			symbols: []string{"a", "b", "a", "b", "c"},
			matched: true,
			done:    true,
		},
		{
			name:    "sequence grammar",
			pattern: "sequence_header .* end_of_sequence",
			symbols: []string{"sequence_header", "padding_data", "high_quality_picture", "end_of_sequence"},
			matched: true,
			done:    true,
		},
		{
			name:    "sequence grammar not ended",
			pattern: "sequence_header .* end_of_sequence",
			symbols: []string{"sequence_header", "padding_data"},
			matched: true,
			done:    false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := MustCompile(tt.pattern)
			ok := true
			for _, sym := range tt.symbols {
				ok = m.MatchSymbol(sym)
				if !ok {
					break
				}
			}
			if ok != tt.matched {
				t.Fatalf("matched = %v, want %v", ok, tt.matched)
			}
			if !tt.matched {
				return
			}
			if done := m.IsComplete(); done != tt.done {
				t.Errorf("IsComplete() = %v, want %v", done, tt.done)
			}
		})
	}
}

func TestMatchFailureLeavesStateUnchanged(t *testing.T) {
	m := MustCompile("a b")
	if m.MatchSymbol("x") {
		t.Fatal("MatchSymbol(x) succeeded, want failure")
	}
	if !m.MatchSymbol("a") || !m.MatchSymbol("b") {
		t.Error("matcher no longer accepts 'a b' after a failed match")
	}
}

func TestValidNextSymbols(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		symbols []string
		want    []string
	}{
		{
			name:    "start of concatenation",
			pattern: "a b",
			want:    []string{"a"},
		},
		{
			name:    "after first symbol",
			pattern: "a b",
			symbols: []string{"a"},
			want:    []string{"b"},
		},
		{
			name:    "completion marker",
			pattern: "a",
			symbols: []string{"a"},
			want:    []string{EndOfSequence},
		},
		{
			name:    "alternation start",
			pattern: "a | b",
			want:    []string{"a", "b"},
		},
		{
			name:    "wildcard and literal",
			pattern: "sequence_header .* end_of_sequence",
			symbols: []string{"sequence_header"},
			want:    []string{Wildcard, "end_of_sequence"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := MustCompile(tt.pattern)
			for _, sym := range tt.symbols {
				if !m.MatchSymbol(sym) {
					t.Fatalf("MatchSymbol(%q) failed", sym)
				}
			}
			got := m.ValidNextSymbols()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ValidNextSymbols() = %q, want %q", got, tt.want)
			}
		})
	}
}

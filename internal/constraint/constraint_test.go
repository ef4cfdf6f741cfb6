package constraint

import (
	"testing"
)

func TestValueSetContains(t *testing.T) {
	tests := []struct {
		name string
		set  ValueSet
		v    int64
		want bool
	}{
		{"empty set", ValueSet{}, 0, false},
		{"discrete hit", NewValueSet(1, 3, 5), 3, true},
		{"discrete miss", NewValueSet(1, 3, 5), 4, false},
		{"range hit", NewRange(10, 20), 15, true},
		{"range lower bound", NewRange(10, 20), 10, true},
		{"range upper bound", NewRange(10, 20), 20, true},
		{"range miss", NewRange(10, 20), 21, false},
		{"any", AnyValue(), -12345, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set.Contains(tt.v); got != tt.want {
				t.Errorf("Contains(%d) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestValueSetAddRangeMerges(t *testing.T) {
	var s ValueSet
	s.AddValue(5)
	s.AddRange(1, 4)
	s.AddRange(3, 8)
	if got := s.String(); got != "{1-8}" {
		// 5 is swallowed by the merged range.
		t.Errorf("String() = %s, want {1-8}", got)
	}
	if !s.Contains(5) || s.Contains(9) {
		t.Error("merged range has wrong membership")
	}
}

func TestValueSetUnion(t *testing.T) {
	a := NewValueSet(1)
	b := NewRange(5, 7)
	u := a.Union(b)
	for _, v := range []int64{1, 5, 6, 7} {
		if !u.Contains(v) {
			t.Errorf("union missing %d", v)
		}
	}
	if u.Contains(2) {
		t.Error("union contains 2")
	}
	if !a.Union(AnyValue()).IsAny() {
		t.Error("union with any is not any")
	}
}

func TestValueSetString(t *testing.T) {
	tests := []struct {
		name string
		set  ValueSet
		want string
	}{
		{"empty", ValueSet{}, "{<no values>}"},
		{"any", AnyValue(), "{<any value>}"},
		{"sorted values", NewValueSet(3, 1, 2), "{1, 2, 3}"},
		{"mixed", NewValueSet(9).Union(NewRange(1, 4)), "{1-4, 9}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set.String(); got != tt.want {
				t.Errorf("String() = %s, want %s", got, tt.want)
			}
		})
	}
}

// A toy table with two rules: one for "level 1" streams which must be
// low delay with small dimensions, one for "level 2" streams which may
// be either profile with a wider size range.
func testTable() Table {
	return Table{
		Rule{
			"level":   NewValueSet(1),
			"profile": NewValueSet(0),
			"width":   NewRange(1, 100),
		},
		Rule{
			"level":   NewValueSet(2),
			"profile": NewValueSet(0, 3),
			"width":   NewRange(1, 1000),
		},
	}
}

func TestAllowedValuesFor(t *testing.T) {
	table := testTable()

	var h History
	if got := AllowedValuesFor(table, "profile", &h).String(); got != "{0, 3}" {
		t.Errorf("profile with empty history = %s, want {0, 3}", got)
	}

	h.Add("level", 1)
	if got := AllowedValuesFor(table, "profile", &h).String(); got != "{0}" {
		t.Errorf("profile after level=1 = %s, want {0}", got)
	}
	if got := AllowedValuesFor(table, "width", &h).String(); got != "{1-100}" {
		t.Errorf("width after level=1 = %s, want {1-100}", got)
	}
}

func TestAllowedValuesForUnmentionedKey(t *testing.T) {
	table := testTable()
	var h History
	h.Add("level", 2)
	if got := AllowedValuesFor(table, "frame_rate", &h); !got.IsAny() {
		t.Errorf("unmentioned key = %s, want any", got)
	}
}

func TestFilterEliminatesRules(t *testing.T) {
	table := testTable()

	var h History
	h.Add("level", 2)
	h.Add("profile", 3)
	if got := len(Filter(table, &h)); got != 1 {
		t.Fatalf("Filter() kept %d rules, want 1", got)
	}
	if !IsAllowedCombination(table, &h) {
		t.Error("IsAllowedCombination() = false, want true")
	}

	h.Add("width", 5000)
	if IsAllowedCombination(table, &h) {
		t.Error("IsAllowedCombination() with out-of-range width = true, want false")
	}
}

func TestFilterRequiresRuleToDefineKey(t *testing.T) {
	// A rule that doesn't define a history key is eliminated, not
	// treated as permissive.
	table := Table{
		Rule{"a": NewValueSet(1)},
		Rule{"a": NewValueSet(1), "b": NewValueSet(2)},
	}
	var h History
	h.Add("a", 1)
	h.Add("b", 2)
	if got := len(Filter(table, &h)); got != 1 {
		t.Errorf("Filter() kept %d rules, want 1", got)
	}
}

func TestEmptyRuleSurvivesEverything(t *testing.T) {
	table := Table{Rule{}}
	var h History
	h.Add("anything", 42)
	h.Add("else", -1)
	if got := len(Filter(table, &h)); got != 1 {
		t.Errorf("Filter() kept %d rules, want 1", got)
	}
	if got := AllowedValuesFor(table, "anything", &h); !got.IsAny() {
		t.Errorf("AllowedValuesFor() = %s, want any", got)
	}
}

func TestHistoryOrderPreserved(t *testing.T) {
	var h History
	h.Add("b", 2)
	h.Add("a", 1)
	h.Add("b", 3)
	entries := h.Entries()
	want := []Entry{{"b", 2}, {"a", 1}, {"b", 3}}
	if len(entries) != len(want) {
		t.Fatalf("Entries() has %d entries, want %d", len(entries), len(want))
	}
	for i, e := range entries {
		if e != want[i] {
			t.Errorf("Entries()[%d] = %v, want %v", i, e, want[i])
		}
	}
	if got := h.String(); got != "b=2, a=1, b=3" {
		t.Errorf("String() = %q", got)
	}
	h.Reset()
	if len(h.Entries()) != 0 {
		t.Error("Reset() did not clear the history")
	}
}

// Package constraint evaluates tables of allowed value combinations.
//
// A constraint table is an ordered list of rules, each mapping field
// names to sets of permitted values. A combination of values satisfies
// the table if at least one rule permits every value in the combination.
// Tables are used to express the restrictions conformance levels place
// on stream parameters: values are checked one at a time, in stream
// order, against the rules that the previously accepted values have not
// already eliminated.
package constraint

import (
	"fmt"
	"sort"
	"strings"
)

// ValueSet represents a set of allowed integer values, stored as
// discrete values and inclusive ranges. The zero ValueSet is empty.
// Boolean stream fields are represented as 0 and 1.
type ValueSet struct {
	any    bool
	values []int64
	ranges [][2]int64
}

// NewValueSet creates a set containing the given discrete values.
func NewValueSet(values ...int64) ValueSet {
	var s ValueSet
	for _, v := range values {
		s.AddValue(v)
	}
	return s
}

// AnyValue returns the wildcard set containing every possible value.
func AnyValue() ValueSet {
	return ValueSet{any: true}
}

// NewRange creates a set containing the inclusive range [lo, hi].
func NewRange(lo, hi int64) ValueSet {
	var s ValueSet
	s.AddRange(lo, hi)
	return s
}

// IsAny reports whether the set is the wildcard set.
func (s ValueSet) IsAny() bool {
	return s.any
}

// IsEmpty reports whether the set contains no values.
func (s ValueSet) IsEmpty() bool {
	return !s.any && len(s.values) == 0 && len(s.ranges) == 0
}

// AddValue adds a single value to the set.
func (s *ValueSet) AddValue(v int64) {
	if s.any || s.Contains(v) {
		return
	}
	s.values = append(s.values, v)
}

// AddRange adds the inclusive range [lo, hi] to the set, merging it
// with any values or ranges it overlaps.
func (s *ValueSet) AddRange(lo, hi int64) {
	if s.any {
		return
	}
	kept := s.values[:0]
	for _, v := range s.values {
		if v < lo || v > hi {
			kept = append(kept, v)
		}
	}
	s.values = kept

	merged := s.ranges[:0]
	for _, r := range s.ranges {
		if lo <= r[1] && r[0] <= hi {
			if r[0] < lo {
				lo = r[0]
			}
			if r[1] > hi {
				hi = r[1]
			}
		} else {
			merged = append(merged, r)
		}
	}
	s.ranges = append(merged, [2]int64{lo, hi})
}

// Contains tests set membership.
func (s ValueSet) Contains(v int64) bool {
	if s.any {
		return true
	}
	for _, value := range s.values {
		if value == v {
			return true
		}
	}
	for _, r := range s.ranges {
		if r[0] <= v && v <= r[1] {
			return true
		}
	}
	return false
}

// Union returns a set containing the values of both sets.
func (s ValueSet) Union(other ValueSet) ValueSet {
	if s.any || other.any {
		return AnyValue()
	}
	var out ValueSet
	for _, v := range s.values {
		out.AddValue(v)
	}
	for _, v := range other.values {
		out.AddValue(v)
	}
	for _, r := range s.ranges {
		out.AddRange(r[0], r[1])
	}
	for _, r := range other.ranges {
		out.AddRange(r[0], r[1])
	}
	return out
}

// String renders the set for diagnostics, listing values and ranges in
// ascending order.
func (s ValueSet) String() string {
	if s.any {
		return "{<any value>}"
	}
	if s.IsEmpty() {
		return "{<no values>}"
	}
	type item struct {
		lo, hi int64
		ranged bool
	}
	items := make([]item, 0, len(s.values)+len(s.ranges))
	for _, v := range s.values {
		items = append(items, item{v, v, false})
	}
	for _, r := range s.ranges {
		items = append(items, item{r[0], r[1], true})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].lo < items[j].lo })
	parts := make([]string, len(items))
	for i, it := range items {
		if it.ranged {
			parts[i] = fmt.Sprintf("%d-%d", it.lo, it.hi)
		} else {
			parts[i] = fmt.Sprintf("%d", it.lo)
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Rule maps constrained field names to their permitted value sets. An
// empty Rule acts as a catch-all which survives any filtering.
type Rule map[string]ValueSet

// Table is an ordered list of rules describing allowed combinations of
// field values.
type Table []Rule

// Entry records one accepted value of a constrained field.
type Entry struct {
	Key   string
	Value int64
}

// History is the ordered list of previously accepted field values for
// the current scope. It is append-only within a scope.
type History struct {
	entries []Entry
}

// Add appends an accepted value to the history.
func (h *History) Add(key string, value int64) {
	h.entries = append(h.entries, Entry{key, value})
}

// Entries returns the accepted values in acceptance order.
func (h *History) Entries() []Entry {
	return h.entries
}

// Reset discards the history.
func (h *History) Reset() {
	h.entries = nil
}

// String renders the history for diagnostics.
func (h *History) String() string {
	parts := make([]string, len(h.entries))
	for i, e := range h.entries {
		parts[i] = fmt.Sprintf("%s=%d", e.Key, e.Value)
	}
	return strings.Join(parts, ", ")
}

// Filter returns the rules whose constraints are satisfied by every
// value in the history. A rule survives only if it defines every
// history key and permits its value; the empty rule always survives.
func Filter(table Table, history *History) Table {
	var out Table
	for _, rule := range table {
		if len(rule) == 0 {
			out = append(out, rule)
			continue
		}
		ok := true
		for _, e := range history.Entries() {
			set, defined := rule[e.Key]
			if !defined || !set.Contains(e.Value) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, rule)
		}
	}
	return out
}

// AllowedValuesFor returns the union of the value sets permitted for
// key by the rules that the history has not eliminated. A key no
// surviving rule mentions is unconstrained. Evaluating the same table,
// key and history always yields the same result.
func AllowedValuesFor(table Table, key string, history *History) ValueSet {
	var out ValueSet
	mentioned := false
	for _, rule := range Filter(table, history) {
		set, defined := rule[key]
		if !defined {
			continue
		}
		mentioned = true
		out = out.Union(set)
	}
	if !mentioned {
		return AnyValue()
	}
	return out
}

// IsAllowedCombination reports whether at least one rule permits every
// value in the history.
func IsAllowedCombination(table Table, history *History) bool {
	return len(Filter(table, history)) > 0
}

package vc2

import (
	"github.com/kwahlin/go-vc2/internal/constraint"
)

// The conformance levels (SMPTE ST 2042-2 and the RP 2047 family)
// restrict both the ordering of data units in a sequence and the
// values many bitstream fields may take. The restrictions are data:
// a sequence pattern per level, and a constraint table of allowed
// value combinations shared by all levels (each rule names the levels
// it applies to).
//
// The unconstrained level permits everything. The bundled data for
// the specialized levels is deliberately permissive; deployments
// checking against a specific level's published tables supply them via
// DecoderOptions.LevelConstraints.

// LevelValues is a set of permitted values for one constrained field:
// discrete values, inclusive ranges, or any value at all. Boolean
// fields use 0 and 1.
type LevelValues struct {
	Any    bool
	Values []int64
	Ranges [][2]int64
}

// LevelRule maps constrained field names to their permitted values.
// A rule applies only while every field it has in common with the
// values already read permits them; an empty rule always applies.
type LevelRule map[string]LevelValues

// LevelConstraints carries level conformance data: one sequence
// restriction pattern per level (in the symbol pattern language used
// for data unit ordering) and an ordered list of value rules.
type LevelConstraints struct {
	SequenceRestrictions map[Level]string
	Rules                []LevelRule
}

// toTable converts the exported rule representation to the internal
// evaluator's.
func (lc *LevelConstraints) toTable() constraint.Table {
	table := make(constraint.Table, 0, len(lc.Rules))
	for _, rule := range lc.Rules {
		r := make(constraint.Rule, len(rule))
		for key, vals := range rule {
			var set constraint.ValueSet
			if vals.Any {
				set = constraint.AnyValue()
			} else {
				for _, v := range vals.Values {
					set.AddValue(v)
				}
				for _, rg := range vals.Ranges {
					set.AddRange(rg[0], rg[1])
				}
			}
			r[key] = set
		}
		table = append(table, r)
	}
	return table
}

// defaultLevelSequencePatterns holds the per-level data unit ordering
// restrictions. Levels without an entry fall back to the unconstrained
// pattern.
var defaultLevelSequencePatterns = map[Level]string{
	LevelUnconstrained: ".*",
}

// unconstrainedSequencePattern permits any ordering the generic
// sequence grammar already allows.
const unconstrainedSequencePattern = ".*"

// defaultLevelConstraintTable permits every value combination: a
// single catch-all rule that mentions no fields.
var defaultLevelConstraintTable = constraint.Table{constraint.Rule{}}

// levelSequencePattern returns the ordering restriction pattern for a
// level.
func (s *State) levelSequencePattern(level Level) string {
	if pattern, ok := s.levelPatterns[level]; ok {
		return pattern
	}
	if pattern, ok := defaultLevelSequencePatterns[level]; ok {
		return pattern
	}
	return unconstrainedSequencePattern
}

// assertLevelConstraint checks a bitstream value against the level
// constraint table, given every constrained value read so far, and
// then adds it to that history. The constrained values are recorded in
// stream order, so identical streams always produce identical
// histories and identical verdicts.
func (s *State) assertLevelConstraint(key string, value int64) error {
	allowed := constraint.AllowedValuesFor(s.levelTable, key, s.seq.constrainedValues)
	if !allowed.Contains(value) {
		history := s.seq.constrainedValues.Entries()
		entries := make([]LevelConstraintEntry, len(history))
		for i, e := range history {
			entries[i] = LevelConstraintEntry{Key: e.Key, Value: e.Value}
		}
		return &ValueNotAllowedInLevel{
			Key:           key,
			Value:         value,
			AllowedValues: allowed.String(),
			History:       entries,
			Level:         s.seq.level,
		}
	}
	s.seq.constrainedValues.Add(key, value)
	return nil
}

// assertLevelConstraintBool checks a boolean bitstream value,
// represented as 0 or 1.
func (s *State) assertLevelConstraintBool(key string, value bool) error {
	v := int64(0)
	if value {
		v = 1
	}
	return s.assertLevelConstraint(key, v)
}

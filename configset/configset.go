// Package configset summarizes parser configurations collected during one prediction step.
package configset

import (
	"github.com/ava12/llxconf"
	"github.com/ava12/llxconf/bitset"
	"github.com/ava12/llxconf/compact"
	"github.com/ava12/llxconf/conflict"
)

// Config is a single simulation state: automaton state, predicted alternative
// and a key identifying the invocation context (empty for none).
type Config struct {
	State   int
	Alt     int
	Context string
}

type subsetKey struct {
	state   int
	context string
}

// Set holds configurations in insertion order. Duplicates are ignored.
type Set struct {
	capacity int
	configs  []Config
	index    map[Config]bool
}

// New creates an empty set, capacity is the exclusive upper bound of alternative numbers.
// Returns OutOfRangeError for negative capacity, the same way bitset.New does.
func New(capacity int) (*Set, error) {
	if capacity < 0 {
		return nil, llxconf.FormatError(llxconf.OutOfRangeError, "negative alternative capacity %d", capacity)
	}

	return &Set{
		capacity: capacity,
		index:    make(map[Config]bool),
	}, nil
}

// Add adds configuration to the set.
// Returns OutOfRangeError if c.Alt does not fit capacity, InvalidArgumentError if c.State is negative.
func (s *Set) Add(c Config) error {
	if c.State < 0 {
		return llxconf.FormatError(llxconf.InvalidArgumentError, "negative state %d", c.State)
	}
	if c.Alt < 0 || c.Alt >= s.capacity {
		return llxconf.FormatError(llxconf.OutOfRangeError, "alternative %d out of range [0, %d)", c.Alt, s.capacity)
	}

	if !s.index[c] {
		s.index[c] = true
		s.configs = append(s.configs, c)
	}
	return nil
}

// Len returns the number of distinct configurations.
func (s *Set) Len() int {
	return len(s.configs)
}

// Configs returns a copy of stored configurations.
func (s *Set) Configs() []Config {
	result := make([]Config, len(s.configs))
	copy(result, s.configs)
	return result
}

func (s *Set) newBitmap() *bitset.Set {
	result, _ := bitset.New(s.capacity)
	return result
}

// Alternatives returns all alternatives predicted by stored configurations.
func (s *Set) Alternatives() *bitset.Set {
	result := s.newBitmap()
	for _, c := range s.configs {
		result.Add(c.Alt)
	}
	return result
}

// UniqueAlt returns the only predicted alternative or -1.
func (s *Set) UniqueAlt() int {
	alts := s.Alternatives()
	if alts.Len() != 1 {
		return -1
	}
	return alts.NextSet(0)
}

// AltSubsets groups alternatives by (state, context) pairs in order of first appearance.
func (s *Set) AltSubsets() []*bitset.Set {
	var result []*bitset.Set
	index := make(map[subsetKey]int)
	for _, c := range s.configs {
		key := subsetKey{c.State, c.Context}
		i, found := index[key]
		if !found {
			i = len(result)
			index[key] = i
			result = append(result, s.newBitmap())
		}
		result[i].Add(c.Alt)
	}
	return result
}

// Conflict returns nil unless every (state, context) pair predicts at least two alternatives.
// The record holds the union of all subsets and is exact if all subsets are equal.
func (s *Set) Conflict() *conflict.Record {
	subsets := s.AltSubsets()
	if len(subsets) == 0 {
		return nil
	}

	alts := s.newBitmap()
	exact := true
	for _, subset := range subsets {
		if subset.Len() < 2 {
			return nil
		}
		if !subset.IsEqual(subsets[0]) {
			exact = false
		}
		alts.Union(subset)
	}
	return conflict.New(alts, exact)
}

// Prune removes configurations for which pred returns true.
func (s *Set) Prune(pred func(Config) bool) error {
	if pred == nil {
		return llxconf.FormatError(llxconf.InvalidArgumentError, "predicate is nil")
	}

	configs, e := compact.RemoveFunc(s.configs, func(c Config) bool {
		if pred(c) {
			delete(s.index, c)
			return true
		}
		return false
	})
	s.configs = configs
	return e
}

// RemoveAlt removes all configurations predicting alt.
func (s *Set) RemoveAlt(alt int) {
	s.Prune(func(c Config) bool {
		return c.Alt == alt
	})
}

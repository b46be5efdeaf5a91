// Package conflict describes conflicts between grammar alternatives found during prediction.
package conflict

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/ava12/llxconf/bitset"
	"github.com/ava12/llxconf/interval"
)

// Record stores information about a configuration conflict.
// Records are immutable and may be shared between goroutines.
type Record struct {
	alts  *bitset.Set
	exact bool
}

// New creates a record holding a copy of alts.
// alts is expected to contain at least two alternatives, this is not checked.
func New(alts *bitset.Set, exact bool) *Record {
	return &Record{alts.Copy(), exact}
}

// Alternatives returns a copy of the set of conflicting alternatives.
func (r *Record) Alternatives() *bitset.Set {
	return r.alts.Copy()
}

// Exact tells whether the conflict is exact.
// An exact conflict occurs when the represented alternatives cannot be further
// reduced by consuming additional input. After an exact conflict in SLL prediction
// only switching to full-context prediction could reduce the set of viable alternatives.
// In LL prediction an exact conflict indicates a true ambiguity in the input.
func (r *Record) Exact() bool {
	return r.exact
}

// Equal returns true if other is a *Record or Record with the same exactness and alternatives.
func (r *Record) Equal(other any) bool {
	var o *Record
	switch v := other.(type) {
	case *Record:
		o = v
	case Record:
		o = &v
	}
	if o == nil || r == nil {
		return false
	}
	if o == r {
		return true
	}

	return r.exact == o.exact && r.alts.IsEqual(o.alts)
}

// Hash depends on alternatives only: records that differ only in exactness have equal hashes.
// Use Equal to tell such records apart.
func (r *Record) Hash() uint64 {
	words := r.alts.Words()
	buf := make([]byte, len(words)*8)
	for i, w := range words {
		binary.LittleEndian.PutUint64(buf[i*8:], w)
	}
	return xxhash.Sum64(buf)
}

// Intervals returns conflicting alternatives as an interval set.
func (r *Record) Intervals() *interval.Set {
	return interval.FromBitmap(r.alts)
}

func (r *Record) String() string {
	kind := "inexact"
	if r.exact {
		kind = "exact"
	}
	return kind + " conflict " + r.Intervals().String()
}

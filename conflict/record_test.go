package conflict

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava12/llxconf/bitset"
)

func alts(t *testing.T, items ...int) *bitset.Set {
	t.Helper()
	b, e := bitset.New(256, items...)
	require.NoError(t, e)
	return b
}

func TestAccessors(t *testing.T) {
	r := New(alts(t, 1, 3), true)
	assert.True(t, r.Exact())
	assert.Equal(t, []int{1, 3}, r.Alternatives().ToSlice())
	assert.False(t, New(alts(t, 1, 3), false).Exact())
}

func TestImmutable(t *testing.T) {
	src := alts(t, 1, 3)
	r := New(src, true)
	require.NoError(t, src.Add(5))
	assert.Equal(t, []int{1, 3}, r.Alternatives().ToSlice())

	view := r.Alternatives()
	require.NoError(t, view.Remove(1))
	assert.Equal(t, []int{1, 3}, r.Alternatives().ToSlice())
}

func TestEqual(t *testing.T) {
	r := New(alts(t, 1, 3), true)
	assert.True(t, r.Equal(r))
	assert.True(t, r.Equal(New(alts(t, 1, 3), true)))
	assert.True(t, r.Equal(*New(alts(t, 3, 1), true)))
	assert.False(t, r.Equal(New(alts(t, 1, 3), false)))
	assert.False(t, r.Equal(New(alts(t, 1, 2, 3), true)))
	assert.False(t, r.Equal(nil))
	assert.False(t, r.Equal((*Record)(nil)))
	assert.False(t, r.Equal(alts(t, 1, 3)))
	assert.False(t, r.Equal("exact conflict [1,1], [3,3]"))

	narrow, e := bitset.New(4, 1, 3)
	require.NoError(t, e)
	assert.True(t, r.Equal(New(narrow, true)), "capacity must not affect equality")
}

func TestHashIgnoresExactness(t *testing.T) {
	exact := New(alts(t, 1, 3), true)
	inexact := New(alts(t, 1, 3), false)
	assert.Equal(t, exact.Hash(), inexact.Hash())
	assert.False(t, exact.Equal(inexact))
	assert.NotEqual(t, exact.Hash(), New(alts(t, 1, 2), true).Hash())
}

func TestEqualityLaws(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	records := make([]*Record, 0, 60)
	for i := 0; i < 60; i++ {
		b := alts(t)
		for n := 2 + r.IntN(3); n > 0; n-- {
			require.NoError(t, b.Add(r.IntN(6)))
		}
		records = append(records, New(b, r.IntN(2) == 0))
	}

	for i, r1 := range records {
		for j, r2 := range records {
			t.Run(fmt.Sprintf("%d-%d", i, j), func(t *testing.T) {
				sameAlts := r1.Alternatives().IsEqual(r2.Alternatives())
				assert.Equal(t, sameAlts && r1.Exact() == r2.Exact(), r1.Equal(r2))
				assert.Equal(t, r1.Equal(r2), r2.Equal(r1))
				if sameAlts {
					assert.Equal(t, r1.Hash(), r2.Hash())
				}
			})
		}
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "exact conflict [1,1], [3,3]", New(alts(t, 1, 3), true).String())
	assert.Equal(t, "inexact conflict [2,4]", New(alts(t, 2, 3, 4), false).String())
	assert.Equal(t, 1, New(alts(t, 2, 3, 4), false).Intervals().Count())
}

func TestSingletonIsKept(t *testing.T) {
	r := New(alts(t, 7), false)
	assert.Equal(t, []int{7}, r.Alternatives().ToSlice())
}

func TestZeroValue(t *testing.T) {
	var zero Record
	assert.False(t, New(alts(t, 1, 3), false).Equal(zero))
	assert.False(t, New(alts(t, 1, 3), false).Equal(&zero))
	assert.False(t, zero.Equal(New(alts(t, 1, 3), false)))
	assert.True(t, zero.Equal(New(alts(t), false)))
	assert.True(t, zero.Equal(Record{}))

	assert.Equal(t, New(alts(t), true).Hash(), zero.Hash())
	assert.Equal(t, "inexact conflict ", zero.String())
	assert.True(t, zero.Alternatives().IsEmpty())
	assert.True(t, zero.Intervals().IsEmpty())
}

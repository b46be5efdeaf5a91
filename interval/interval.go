// Package interval implements sparse integer sets stored as ordered lists of closed ranges.
package interval

import (
	"sort"
	"strconv"
	"strings"

	"github.com/ava12/llxconf/bitset"
)

// Interval is a closed range [Low, High], Low <= High.
type Interval struct {
	Low, High int
}

// Len returns the number of integers covered by the interval.
func (i Interval) Len() int {
	return i.High - i.Low + 1
}

func (i Interval) String() string {
	return "[" + strconv.Itoa(i.Low) + "," + strconv.Itoa(i.High) + "]"
}

// Set keeps intervals sorted, disjoint and non-adjacent,
// so any set of integers has exactly one representation.
// Zero value is an empty set.
type Set struct {
	intervals []Interval
}

// New creates a set containing items.
func New(items ...int) *Set {
	result := &Set{}
	for _, item := range items {
		result.Add(item)
	}
	return result
}

// FromBitmap builds a set containing exactly the items of b.
// The result does not share storage with b.
func FromBitmap(b *bitset.Set) *Set {
	result := &Set{}
	i := b.NextSet(0)
	if i < 0 {
		return result
	}

	current := Interval{i, i}
	for i = b.NextSet(i + 1); i >= 0; i = b.NextSet(i + 1) {
		if i != current.High+1 {
			result.intervals = append(result.intervals, current)
			current.Low = i
		}
		current.High = i
	}
	result.intervals = append(result.intervals, current)
	return result
}

// Add adds single item to the set.
func (s *Set) Add(item int) *Set {
	return s.AddRange(item, item)
}

// AddRange adds all integers in [low, high] to the set; empty ranges are ignored.
func (s *Set) AddRange(low, high int) *Set {
	if low > high {
		return s
	}

	// first interval that may touch [low, high]
	first := sort.Search(len(s.intervals), func(i int) bool {
		return s.intervals[i].High >= low-1
	})
	last := first
	for last < len(s.intervals) && s.intervals[last].Low <= high+1 {
		if s.intervals[last].Low < low {
			low = s.intervals[last].Low
		}
		if s.intervals[last].High > high {
			high = s.intervals[last].High
		}
		last++
	}

	if first == last {
		s.intervals = append(s.intervals, Interval{})
		copy(s.intervals[first+1:], s.intervals[first:])
		s.intervals[first] = Interval{low, high}
		return s
	}

	s.intervals[first] = Interval{low, high}
	s.intervals = append(s.intervals[:first+1], s.intervals[last:]...)
	return s
}

// Contains reports whether item falls into one of the intervals.
func (s *Set) Contains(item int) bool {
	i := sort.Search(len(s.intervals), func(i int) bool {
		return s.intervals[i].High >= item
	})
	return i < len(s.intervals) && s.intervals[i].Low <= item
}

// Intervals returns a copy of stored intervals in ascending order.
func (s *Set) Intervals() []Interval {
	result := make([]Interval, len(s.intervals))
	copy(result, s.intervals)
	return result
}

// Count returns the number of intervals.
func (s *Set) Count() int {
	return len(s.intervals)
}

// Size returns the number of integers in the set.
func (s *Set) Size() int {
	result := 0
	for _, i := range s.intervals {
		result += i.Len()
	}
	return result
}

// IsEmpty reports whether the set has no intervals.
func (s *Set) IsEmpty() bool {
	return len(s.intervals) == 0
}

// ToSlice returns all items in ascending order.
func (s *Set) ToSlice() []int {
	result := make([]int, 0, s.Size())
	for _, i := range s.intervals {
		for item := i.Low; item <= i.High; item++ {
			result = append(result, item)
		}
	}
	return result
}

// ToBitmap creates a bitmap of given capacity with the same items.
// Returns OutOfRangeError if some item does not fit.
func (s *Set) ToBitmap(capacity int) (*bitset.Set, error) {
	return bitset.New(capacity, s.ToSlice()...)
}

// IsEqual relies on uniqueness of representation.
func (s *Set) IsEqual(t *Set) bool {
	if len(s.intervals) != len(t.intervals) {
		return false
	}

	for i, iv := range s.intervals {
		if t.intervals[i] != iv {
			return false
		}
	}
	return true
}

// String returns intervals like "[2,4], [7,7], [9,10]" or empty string.
func (s *Set) String() string {
	parts := make([]string, len(s.intervals))
	for i, iv := range s.intervals {
		parts[i] = iv.String()
	}
	return strings.Join(parts, ", ")
}

// Package bitset implements a capacity-bounded bitmap of non-negative alternative indices.
package bitset

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/ava12/llxconf"
)

const chunkShift = 6
const chunkSize = 1 << chunkShift

// Set is a dense bitmap holding integers in range [0, capacity).
// Storage is allocated lazily up to the highest added item.
type Set struct {
	capacity int
	chunks   []uint64
}

func countBits(chunk uint64) int {
	return bits.OnesCount64(chunk)
}

// New creates a set of given capacity containing items.
// Returns OutOfRangeError if capacity is negative or any item does not fit.
func New(capacity int, items ...int) (*Set, error) {
	if capacity < 0 {
		return nil, llxconf.FormatError(llxconf.OutOfRangeError, "negative bitmap capacity %d", capacity)
	}

	result := &Set{capacity: capacity}
	if e := result.Add(items...); e != nil {
		return nil, e
	}

	return result, nil
}

// FromSlice is the same as New(capacity, items...).
func FromSlice(capacity int, items []int) (*Set, error) {
	return New(capacity, items...)
}

// Capacity returns the exclusive upper bound of storable items.
func (s *Set) Capacity() int {
	if s == nil {
		return 0
	}
	return s.capacity
}

// chunkList makes read-only methods treat nil set as empty.
func (s *Set) chunkList() []uint64 {
	if s == nil {
		return nil
	}
	return s.chunks
}

// ToSlice returns all items in ascending order.
func (s *Set) ToSlice() []int {
	result := make([]int, 0, s.Len())
	for i := s.NextSet(0); i >= 0; i = s.NextSet(i + 1) {
		result = append(result, i)
	}
	return result
}

// Len returns the number of items in the set.
func (s *Set) Len() int {
	result := 0
	for _, chunk := range s.chunkList() {
		result += countBits(chunk)
	}
	return result
}

// NextSet returns the smallest item >= from or -1 if there is none.
func (s *Set) NextSet(from int) int {
	if from < 0 {
		from = 0
	}
	chunks := s.chunkList()
	index := from >> chunkShift
	if index >= len(chunks) {
		return -1
	}

	chunk := chunks[index] >> (uint(from) & (chunkSize - 1))
	if chunk != 0 {
		return from + bits.TrailingZeros64(chunk)
	}

	for index++; index < len(chunks); index++ {
		if chunks[index] != 0 {
			return index<<chunkShift + bits.TrailingZeros64(chunks[index])
		}
	}
	return -1
}

func (s *Set) allocate(high int) {
	chunkCnt := high>>chunkShift + 1
	if chunkCnt <= len(s.chunks) {
		return
	}

	chunks := make([]uint64, chunkCnt)
	copy(chunks, s.chunks)
	s.chunks = chunks
}

func chunkIndex(item int) int {
	return item >> chunkShift
}

func bitMask(item int) uint64 {
	return 1 << (uint(item) & (chunkSize - 1))
}

func (s *Set) validate(items []int) (max int, e error) {
	max = -1
	for _, item := range items {
		if item < 0 || item >= s.capacity {
			return 0, llxconf.FormatError(llxconf.OutOfRangeError, "index %d out of range [0, %d)", item, s.capacity)
		}
		if item > max {
			max = item
		}
	}
	return max, nil
}

// Add adds items to the set.
// Returns OutOfRangeError and leaves the set unchanged if any item does not fit.
func (s *Set) Add(items ...int) error {
	max, e := s.validate(items)
	if e != nil || max < 0 {
		return e
	}

	s.allocate(max)
	for _, item := range items {
		s.chunks[chunkIndex(item)] |= bitMask(item)
	}
	return nil
}

// Remove removes items from the set.
// Returns OutOfRangeError and leaves the set unchanged if any item does not fit.
func (s *Set) Remove(items ...int) error {
	if _, e := s.validate(items); e != nil {
		return e
	}

	for _, item := range items {
		index := chunkIndex(item)
		if index < len(s.chunks) {
			s.chunks[index] &= ^bitMask(item)
		}
	}
	return nil
}

// Contains returns false for any item outside of the set capacity.
func (s *Set) Contains(item int) bool {
	chunks := s.chunkList()
	if item < 0 || chunkIndex(item) >= len(chunks) {
		return false
	}

	return chunks[chunkIndex(item)]&bitMask(item) != 0
}

// Copy returns an independent set with the same capacity and items.
// Copy of nil set is an empty set of zero capacity.
func (s *Set) Copy() *Set {
	chunks := make([]uint64, len(s.chunkList()))
	copy(chunks, s.chunkList())
	return &Set{s.Capacity(), chunks}
}

func isEmpty(chunks []uint64) bool {
	for _, chunk := range chunks {
		if chunk != 0 {
			return false
		}
	}

	return true
}

// IsEmpty reports whether the set has no items. A nil set is empty.
func (s *Set) IsEmpty() bool {
	return isEmpty(s.chunkList())
}

// IsEqual compares items only, capacities may differ. nil set equals any empty set.
func (s *Set) IsEqual(t *Set) bool {
	a, b := s.chunkList(), t.chunkList()
	if len(a) < len(b) {
		a, b = b, a
	}
	if !isEmpty(a[len(b):]) {
		return false
	}

	for i, chunk := range b {
		if a[i] != chunk {
			return false
		}
	}
	return true
}

// Union adds all items of t to s, capacity of s is increased if needed.
func (s *Set) Union(t *Set) *Set {
	if t == nil {
		return s
	}
	if t.capacity > s.capacity {
		s.capacity = t.capacity
	}
	if len(t.chunks) > len(s.chunks) {
		s.allocate(len(t.chunks)<<chunkShift - 1)
	}
	for i, chunk := range t.chunks {
		s.chunks[i] |= chunk
	}
	return s
}

// Words returns a copy of underlying bitmap words without trailing zero words.
// Sets with equal items return equal words.
func (s *Set) Words() []uint64 {
	chunks := s.chunkList()
	l := len(chunks)
	for l > 0 && chunks[l-1] == 0 {
		l--
	}
	result := make([]uint64, l)
	copy(result, chunks)
	return result
}

func (s *Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i := s.NextSet(0); i >= 0; i = s.NextSet(i + 1) {
		if sb.Len() > 1 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(i))
	}
	sb.WriteByte('}')
	return sb.String()
}

// Package compact removes sequence elements matching a predicate without allocating a second sequence.
// Surviving elements always keep their relative order.
package compact

import (
	"reflect"

	"github.com/ava12/llxconf"
)

// Indexed is a sequence supporting positional overwrite.
type Indexed[T any] interface {
	Len() int
	At(i int) T
	Set(i int, item T)
	// Truncate drops all items starting from position n.
	Truncate(n int)
}

// Iterator walks a sequence forward; Remove deletes the item last returned by Value.
type Iterator[T any] interface {
	Next() bool
	Value() T
	Remove()
}

// Iterable is a sequence that can only be walked forward.
type Iterable[T any] interface {
	Iterator() Iterator[T]
}

func nilPredicateError() *llxconf.Error {
	return llxconf.FormatError(llxconf.InvalidArgumentError, "predicate is nil")
}

// RemoveFunc removes items for which pred returns true and returns the shortened slice.
// Freed tail of the original slice is zeroed.
// Returns InvalidArgumentError if pred is nil; nil slice is returned as is.
func RemoveFunc[T any](items []T, pred func(T) bool) ([]T, error) {
	if pred == nil {
		return items, nilPredicateError()
	}

	j := 0
	for i, item := range items {
		if !pred(item) {
			if j != i {
				items[j] = item
			}
			j++
		}
	}

	var zero T
	for i := j; i < len(items); i++ {
		items[i] = zero
	}
	return items[:j], nil
}

// RemoveAll removes items for which pred returns true.
// Sequences implementing Indexed[T] are compacted in place,
// others are walked once with their iterator.
// Returns InvalidArgumentError if seq or pred is nil.
func RemoveAll[T any](seq Iterable[T], pred func(T) bool) error {
	if pred == nil {
		return nilPredicateError()
	}
	if isNil(seq) {
		return llxconf.FormatError(llxconf.InvalidArgumentError, "sequence is nil")
	}

	if s, indexed := seq.(Indexed[T]); indexed {
		removeIndexed(s, pred)
	} else {
		removeIterable(seq, pred)
	}
	return nil
}

// isNil catches nil interfaces, typed nil pointers and adapters over nil storage.
func isNil[T any](seq Iterable[T]) bool {
	if seq == nil {
		return true
	}
	if n, valid := seq.(interface{ IsNil() bool }); valid {
		return n.IsNil()
	}

	v := reflect.ValueOf(seq)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

func removeIndexed[T any](s Indexed[T], pred func(T) bool) {
	j := 0
	l := s.Len()
	for i := 0; i < l; i++ {
		item := s.At(i)
		if !pred(item) {
			if j != i {
				s.Set(j, item)
			}
			j++
		}
	}

	if j < l {
		s.Truncate(j)
	}
}

func removeIterable[T any](s Iterable[T], pred func(T) bool) {
	for it := s.Iterator(); it.Next(); {
		if pred(it.Value()) {
			it.Remove()
		}
	}
}

// Slice adapts a slice variable to Indexed and Iterable.
type Slice[T any] struct {
	Items *[]T
}

// Of wraps a pointer to slice.
func Of[T any](items *[]T) Slice[T] {
	return Slice[T]{items}
}

// IsNil is true if s has no slice variable to work with.
func (s Slice[T]) IsNil() bool {
	return s.Items == nil
}

// Len is 0 for an adapter over nil pointer.
func (s Slice[T]) Len() int {
	if s.Items == nil {
		return 0
	}
	return len(*s.Items)
}

func (s Slice[T]) At(i int) T {
	return (*s.Items)[i]
}

func (s Slice[T]) Set(i int, item T) {
	(*s.Items)[i] = item
}

func (s Slice[T]) Truncate(n int) {
	if s.Items == nil {
		return
	}

	var zero T
	items := *s.Items
	for i := n; i < len(items); i++ {
		items[i] = zero
	}
	*s.Items = items[:n]
}

func (s Slice[T]) Iterator() Iterator[T] {
	return &sliceIterator[T]{s.Items, -1}
}

type sliceIterator[T any] struct {
	items *[]T
	pos   int
}

func (it *sliceIterator[T]) Next() bool {
	if it.items == nil {
		return false
	}

	it.pos++
	return it.pos < len(*it.items)
}

func (it *sliceIterator[T]) Value() T {
	return (*it.items)[it.pos]
}

func (it *sliceIterator[T]) Remove() {
	items := *it.items
	copy(items[it.pos:], items[it.pos+1:])
	var zero T
	items[len(items)-1] = zero
	*it.items = items[:len(items)-1]
	it.pos--
}

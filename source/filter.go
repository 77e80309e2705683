package source

import (
	"fmt"

	"github.com/kbukum/itkit/peekable"
)

// FilterIter yields the items of an inner producer accepted by a predicate.
type FilterIter[T any] struct {
	inner peekable.Iterator[T]
	keep  func(T) bool
}

// Filter returns a producer over the items of inner accepted by keep.
func Filter[T any](inner peekable.Iterator[T], keep func(T) bool) *FilterIter[T] {
	return &FilterIter[T]{inner: inner, keep: keep}
}

// Next returns the next accepted item from the front.
func (f *FilterIter[T]) Next() (T, bool) {
	for {
		item, ok := f.inner.Next()
		if !ok || f.keep(item) {
			return item, ok
		}
	}
}

// SizeHint has no lower bound; the upper bound is the inner producer's.
func (f *FilterIter[T]) SizeHint() (lower, upper int, hasUpper bool) {
	if sh, ok := f.inner.(peekable.SizeHinter); ok {
		_, upper, hasUpper = sh.SizeHint()
	}
	return 0, upper, hasUpper
}

func (f *FilterIter[T]) String() string {
	return fmt.Sprintf("Filter{%v}", f.inner)
}

// DoubleEndedFilterIter is a FilterIter that can also yield from the back.
type DoubleEndedFilterIter[T any] struct {
	FilterIter[T]
	de peekable.DoubleEndedIterator[T]
}

// FilterDoubleEnded is Filter over a double-ended producer.
func FilterDoubleEnded[T any](inner peekable.DoubleEndedIterator[T], keep func(T) bool) *DoubleEndedFilterIter[T] {
	return &DoubleEndedFilterIter[T]{
		FilterIter: FilterIter[T]{inner: inner, keep: keep},
		de:         inner,
	}
}

// NextBack returns the next accepted item from the back.
func (f *DoubleEndedFilterIter[T]) NextBack() (T, bool) {
	for {
		item, ok := f.de.NextBack()
		if !ok || f.keep(item) {
			return item, ok
		}
	}
}

package source

import (
	"fmt"

	"github.com/kbukum/itkit/peekable"
)

// MapIter yields the items of an inner producer transformed by a function.
type MapIter[T, U any] struct {
	inner peekable.Iterator[T]
	fn    func(T) U
}

// Map returns a producer yielding fn(item) for each item of inner.
func Map[T, U any](inner peekable.Iterator[T], fn func(T) U) *MapIter[T, U] {
	return &MapIter[T, U]{inner: inner, fn: fn}
}

// Next transforms the next item from the front.
func (m *MapIter[T, U]) Next() (U, bool) {
	item, ok := m.inner.Next()
	if !ok {
		var zero U
		return zero, false
	}
	return m.fn(item), true
}

// SizeHint forwards the inner producer's bounds.
func (m *MapIter[T, U]) SizeHint() (lower, upper int, hasUpper bool) {
	if sh, ok := m.inner.(peekable.SizeHinter); ok {
		return sh.SizeHint()
	}
	return 0, 0, false
}

func (m *MapIter[T, U]) String() string {
	return fmt.Sprintf("Map{%v}", m.inner)
}

// DoubleEndedMapIter is a MapIter that can also yield from the back.
type DoubleEndedMapIter[T, U any] struct {
	MapIter[T, U]
	de peekable.DoubleEndedIterator[T]
}

// MapDoubleEnded is Map over a double-ended producer.
func MapDoubleEnded[T, U any](inner peekable.DoubleEndedIterator[T], fn func(T) U) *DoubleEndedMapIter[T, U] {
	return &DoubleEndedMapIter[T, U]{
		MapIter: MapIter[T, U]{inner: inner, fn: fn},
		de:      inner,
	}
}

// NextBack transforms the next item from the back.
func (m *DoubleEndedMapIter[T, U]) NextBack() (U, bool) {
	item, ok := m.de.NextBack()
	if !ok {
		var zero U
		return zero, false
	}
	return m.fn(item), true
}

package source

import (
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"

	"github.com/kbukum/itkit/peekable"
)

// SliceIter yields the elements of a slice from either end.
type SliceIter[T any] struct {
	items []T
	front int
	back  int
}

// Slice returns a producer over items. The slice is not copied.
func Slice[T any](items []T) *SliceIter[T] {
	return &SliceIter[T]{items: items, back: len(items)}
}

// Next returns the first remaining element.
func (s *SliceIter[T]) Next() (T, bool) {
	if s.front >= s.back {
		var zero T
		return zero, false
	}
	item := s.items[s.front]
	s.front++
	return item, true
}

// NextBack returns the last remaining element.
func (s *SliceIter[T]) NextBack() (T, bool) {
	if s.front >= s.back {
		var zero T
		return zero, false
	}
	s.back--
	return s.items[s.back], true
}

// Remaining returns the elements not yet yielded.
func (s *SliceIter[T]) Remaining() []T {
	return s.items[s.front:s.back]
}

// SizeHint reports the exact number of remaining elements.
func (s *SliceIter[T]) SizeHint() (lower, upper int, hasUpper bool) {
	n := s.back - s.front
	return n, n, true
}

// Clone returns an independent cursor over the same backing slice.
func (s *SliceIter[T]) Clone() peekable.Iterator[T] {
	c := *s
	return &c
}

// Equal reports whether other is a SliceIter with deeply equal remaining
// elements.
func (s *SliceIter[T]) Equal(other peekable.Iterator[T]) bool {
	o, ok := other.(*SliceIter[T])
	if !ok {
		return false
	}
	a, b := s.Remaining(), o.Remaining()
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || reflect.DeepEqual(a, b)
}

// HashState writes the remaining length followed by each element.
func (s *SliceIter[T]) HashState(d *xxhash.Digest, item func(*xxhash.Digest, T)) {
	peekable.IntegerHasher(d, s.back-s.front)
	for _, v := range s.Remaining() {
		item(d, v)
	}
}

func (s *SliceIter[T]) String() string {
	return fmt.Sprintf("Slice%v", s.Remaining())
}

package source

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"

	"github.com/kbukum/itkit/peekable"
)

// RangeIter yields the integers in [start, end) from either end.
type RangeIter[T constraints.Integer] struct {
	start T
	end   T
}

// Range returns a producer over [start, end). It is empty when end <= start.
func Range[T constraints.Integer](start, end T) *RangeIter[T] {
	return &RangeIter[T]{start: start, end: end}
}

// Next returns the lowest remaining integer.
func (r *RangeIter[T]) Next() (T, bool) {
	if r.start >= r.end {
		return 0, false
	}
	v := r.start
	r.start++
	return v, true
}

// NextBack returns the highest remaining integer.
func (r *RangeIter[T]) NextBack() (T, bool) {
	if r.start >= r.end {
		return 0, false
	}
	r.end--
	return r.end, true
}

// Bounds returns the remaining half-open interval.
func (r *RangeIter[T]) Bounds() (start, end T) {
	return r.start, r.end
}

// SizeHint reports the exact number of remaining integers. Lengths beyond
// the int range report no upper bound.
func (r *RangeIter[T]) SizeHint() (lower, upper int, hasUpper bool) {
	if r.start >= r.end {
		return 0, 0, true
	}
	n := uint64(r.end) - uint64(r.start)
	if n > uint64(maxInt) {
		return maxInt, 0, false
	}
	return int(n), int(n), true
}

const maxInt = int(^uint(0) >> 1)

// Clone returns a copy of the remaining interval.
func (r *RangeIter[T]) Clone() peekable.Iterator[T] {
	c := *r
	return &c
}

// Equal reports whether other is a RangeIter over the same interval.
func (r *RangeIter[T]) Equal(other peekable.Iterator[T]) bool {
	o, ok := other.(*RangeIter[T])
	return ok && *r == *o
}

// HashState writes both bounds.
func (r *RangeIter[T]) HashState(d *xxhash.Digest, item func(*xxhash.Digest, T)) {
	item(d, r.start)
	item(d, r.end)
}

func (r *RangeIter[T]) String() string {
	return fmt.Sprintf("%v..%v", r.start, r.end)
}

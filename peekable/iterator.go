package peekable

import (
	"iter"

	"github.com/cespare/xxhash/v2"
)

// Iterator is a producer that yields items from the front.
// Next returns false once the producer is exhausted.
type Iterator[T any] interface {
	Next() (T, bool)
}

// DoubleEndedIterator is a producer that can also yield from the back.
// Both ends draw from the same remaining sequence.
type DoubleEndedIterator[T any] interface {
	Iterator[T]
	NextBack() (T, bool)
}

// SizeHinter reports bounds on the number of remaining items.
type SizeHinter interface {
	SizeHint() (lower, upper int, hasUpper bool)
}

// Cloner is implemented by producers whose state can be duplicated.
type Cloner[T any] interface {
	Clone() Iterator[T]
}

// Equaler is implemented by producers that compare their remaining state.
type Equaler[T any] interface {
	Equal(other Iterator[T]) bool
}

// StateHasher is implemented by producers that feed their state into a digest.
// item hashes a single element of the sequence.
type StateHasher[T any] interface {
	HashState(d *xxhash.Digest, item func(*xxhash.Digest, T))
}

// FrontPeeker is the front-end surface shared by Peekable and DoubleEnded.
type FrontPeeker[T any] interface {
	Iterator[T]
	Peek() (T, bool)
	PeekMut() *T
	NextIf(pred func(T) bool) (T, bool)
	SizeHint() (lower, upper int, hasUpper bool)
	All() iter.Seq[T]
	String() string
}

// BackPeeker adds the back-end operations available on DoubleEnded.
type BackPeeker[T any] interface {
	FrontPeeker[T]
	NextBack() (T, bool)
	PeekBack() (T, bool)
	PeekBackMut() *T
	NextBackIf(pred func(T) bool) (T, bool)
	NextFrontBackIf(pred func(front, back T) bool) (T, T, bool)
	Backward() iter.Seq[T]
}

// Adapter is implemented by *Peekable and *DoubleEnded.
type Adapter[T any] interface {
	core() *Peekable[T]
}

var (
	_ FrontPeeker[int] = (*Peekable[int])(nil)
	_ BackPeeker[int]  = (*DoubleEnded[int])(nil)
	_ Adapter[int]     = (*Peekable[int])(nil)
	_ Adapter[int]     = (*DoubleEnded[int])(nil)
)

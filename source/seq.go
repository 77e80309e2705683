package source

import (
	"iter"

	"github.com/kbukum/itkit/peekable"
)

// SeqIter pulls items from a range-over-func sequence.
type SeqIter[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

// FromSeq returns a front-only producer over seq. The sequence runs as a
// coroutine until it is exhausted or Stop is called.
func FromSeq[T any](seq iter.Seq[T]) *SeqIter[T] {
	next, stop := iter.Pull(seq)
	return &SeqIter[T]{next: next, stop: stop}
}

// Next pulls the next item. The coroutine is released on exhaustion.
func (s *SeqIter[T]) Next() (T, bool) {
	if s.done {
		var zero T
		return zero, false
	}
	item, ok := s.next()
	if !ok {
		s.Stop()
	}
	return item, ok
}

// Stop releases the sequence. Later calls to Next report exhaustion.
func (s *SeqIter[T]) Stop() {
	if !s.done {
		s.done = true
		s.stop()
	}
}

var _ peekable.Iterator[int] = (*SeqIter[int])(nil)

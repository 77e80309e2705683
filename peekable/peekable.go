package peekable

import (
	"iter"
	"math"

	"github.com/kbukum/itkit/errors"
)

// Peekable wraps a producer with a one-item lookahead at the front.
// The back slot is only filled by DoubleEnded, but front consumes still
// fall back to it.
type Peekable[T any] struct {
	iter  Iterator[T]
	front slot[T]
	back  slot[T]
	obs   *observer
}

// New wraps it. Both slots start empty.
func New[T any](it Iterator[T], opts ...Option) *Peekable[T] {
	return &Peekable[T]{iter: it, obs: newObserver(opts)}
}

// Wrap returns a *DoubleEnded when it can yield from the back and a
// *Peekable otherwise. Callers detect the back operations with a type
// assertion to BackPeeker.
func Wrap[T any](it Iterator[T], opts ...Option) FrontPeeker[T] {
	if de, ok := it.(DoubleEndedIterator[T]); ok {
		return NewDoubleEnded(de, opts...)
	}
	return New(it, opts...)
}

func (p *Peekable[T]) core() *Peekable[T] { return p }

// ID returns the adapter id attached to log entries.
func (p *Peekable[T]) ID() string { return p.obs.ID() }

func (p *Peekable[T]) pullFront() (T, bool) {
	item, ok := p.iter.Next()
	p.obs.pulled(EndFront, ok)
	return item, ok
}

// Peek returns the next front item without consuming it.
func (p *Peekable[T]) Peek() (T, bool) {
	if v := p.PeekMut(); v != nil {
		return *v, true
	}
	var zero T
	return zero, false
}

// PeekMut is like Peek but returns a pointer into the cached item. Writes
// through it are seen by the consume that hands the item out.
func (p *Peekable[T]) PeekMut() *T {
	if p.front.empty() {
		p.front.fill(p.pullFront())
	}
	if v := p.front.ref(); v != nil {
		return v
	}
	return p.back.ref()
}

// Next consumes the next front item.
func (p *Peekable[T]) Next() (T, bool) {
	if p.front.empty() {
		if item, ok := p.pullFront(); ok {
			return item, true
		}
	} else if item, ok := p.front.take(); ok {
		return item, true
	}
	return p.takeBack()
}

// takeBack hands out the back slot after the front end ran dry.
func (p *Peekable[T]) takeBack() (T, bool) {
	item, ok := p.back.take()
	if ok {
		p.obs.fellBack(EndFront)
	}
	return item, ok
}

// NextIf consumes the next front item only if pred accepts it. pred is not
// called when the adapter is exhausted. A rejected item stays at the front.
func (p *Peekable[T]) NextIf(pred func(T) bool) (T, bool) {
	item, ok := p.Next()
	if ok && pred(item) {
		return item, true
	}
	p.restoreFront("NextIf", item, ok)
	var zero T
	return zero, false
}

func (p *Peekable[T]) restoreFront(op string, item T, ok bool) {
	if !p.front.empty() {
		panic(errors.Invariant(op, "front slot occupied after consume"))
	}
	p.front.fill(item, ok)
	p.obs.restored(op)
}

// SizeHint returns the producer's bounds plus one for each cached item.
// Producers that are not a SizeHinter report (0, 0, false). The lower bound
// saturates at math.MaxInt and an upper bound that would overflow is
// dropped.
func (p *Peekable[T]) SizeHint() (lower, upper int, hasUpper bool) {
	if sh, ok := p.iter.(SizeHinter); ok {
		lower, upper, hasUpper = sh.SizeHint()
	}
	extra := p.front.items() + p.back.items()
	if lower > math.MaxInt-extra {
		lower = math.MaxInt
	} else {
		lower += extra
	}
	if hasUpper {
		if upper > math.MaxInt-extra {
			upper, hasUpper = 0, false
		} else {
			upper += extra
		}
	}
	return lower, upper, hasUpper
}

// All consumes the remaining items from the front.
func (p *Peekable[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := p.Next()
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// NextIfEq consumes the next front item if it equals want.
func NextIfEq[T comparable](p FrontPeeker[T], want T) (T, bool) {
	return p.NextIf(func(item T) bool { return item == want })
}

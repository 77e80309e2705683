package peekable

import (
	"iter"

	"github.com/kbukum/itkit/errors"
)

// DoubleEnded is a Peekable over a producer that can also yield from the
// back, with a second lookahead slot at that end.
type DoubleEnded[T any] struct {
	*Peekable[T]
	de DoubleEndedIterator[T]
}

// NewDoubleEnded wraps it. Both slots start empty.
func NewDoubleEnded[T any](it DoubleEndedIterator[T], opts ...Option) *DoubleEnded[T] {
	return &DoubleEnded[T]{Peekable: New[T](it, opts...), de: it}
}

func (d *DoubleEnded[T]) pullBack() (T, bool) {
	item, ok := d.de.NextBack()
	d.obs.pulled(EndBack, ok)
	return item, ok
}

// PeekBack returns the next back item without consuming it.
func (d *DoubleEnded[T]) PeekBack() (T, bool) {
	if v := d.PeekBackMut(); v != nil {
		return *v, true
	}
	var zero T
	return zero, false
}

// PeekBackMut is the back-end mirror of PeekMut.
func (d *DoubleEnded[T]) PeekBackMut() *T {
	if d.back.empty() {
		d.back.fill(d.pullBack())
	}
	if v := d.back.ref(); v != nil {
		return v
	}
	return d.front.ref()
}

// NextBack consumes the next back item.
func (d *DoubleEnded[T]) NextBack() (T, bool) {
	if d.back.empty() {
		if item, ok := d.pullBack(); ok {
			return item, true
		}
	} else if item, ok := d.back.take(); ok {
		return item, true
	}
	return d.takeFront()
}

func (d *DoubleEnded[T]) takeFront() (T, bool) {
	item, ok := d.front.take()
	if ok {
		d.obs.fellBack(EndBack)
	}
	return item, ok
}

// NextBackIf consumes the next back item only if pred accepts it.
func (d *DoubleEnded[T]) NextBackIf(pred func(T) bool) (T, bool) {
	item, ok := d.NextBack()
	if ok && pred(item) {
		return item, true
	}
	d.restoreBack("NextBackIf", item, ok)
	var zero T
	return zero, false
}

func (d *DoubleEnded[T]) restoreBack(op string, item T, ok bool) {
	if !d.back.empty() {
		panic(errors.Invariant(op, "back slot occupied after consume"))
	}
	d.back.fill(item, ok)
	d.obs.restored(op)
}

// NextFrontBackIf consumes one item from each end when both exist and pred
// accepts the pair. Otherwise each outcome is put back at its own end; with a
// single item left it ends up at the front and the back records the end.
func (d *DoubleEnded[T]) NextFrontBackIf(pred func(front, back T) bool) (T, T, bool) {
	front, fok := d.Next()
	back, bok := d.NextBack()
	if fok && bok && pred(front, back) {
		return front, back, true
	}

	const op = "NextFrontBackIf"
	if !d.front.empty() {
		panic(errors.Invariant(op, "front slot occupied after consume"))
	}
	if !d.back.empty() {
		panic(errors.Invariant(op, "back slot occupied after consume"))
	}
	d.front.fill(front, fok)
	d.back.fill(back, bok)
	d.obs.restored(op)

	var zero T
	return zero, zero, false
}

// Backward consumes the remaining items from the back.
func (d *DoubleEnded[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := d.NextBack()
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// NextBackIfEq consumes the next back item if it equals want.
func NextBackIfEq[T comparable](d BackPeeker[T], want T) (T, bool) {
	return d.NextBackIf(func(item T) bool { return item == want })
}

// NextFrontBackIfEq consumes the front and back items if they equal front
// and back respectively.
func NextFrontBackIfEq[T comparable](d BackPeeker[T], front, back T) (T, T, bool) {
	return d.NextFrontBackIf(func(f, b T) bool { return f == front && b == back })
}

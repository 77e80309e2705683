package peekable

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

type slotState uint8

const (
	slotEmpty slotState = iota
	slotPulled
)

// slot caches one pulled outcome for an end. In the pulled state ok reports
// whether the outcome is an item or the end of the producer.
type slot[T any] struct {
	state slotState
	item  T
	ok    bool
}

func (s *slot[T]) empty() bool { return s.state == slotEmpty }

func (s *slot[T]) fill(item T, ok bool) {
	s.state = slotPulled
	s.item = item
	s.ok = ok
}

// take hands out the cached item, if any, and resets the slot.
func (s *slot[T]) take() (T, bool) {
	item, ok := s.item, s.state == slotPulled && s.ok
	*s = slot[T]{}
	if !ok {
		var zero T
		return zero, false
	}
	return item, true
}

// ref points into the cached item, nil when the slot holds no item.
func (s *slot[T]) ref() *T {
	if s.state == slotPulled && s.ok {
		return &s.item
	}
	return nil
}

// items counts real items held.
func (s *slot[T]) items() int {
	if s.ref() != nil {
		return 1
	}
	return 0
}

func (s *slot[T]) equal(other *slot[T], eq func(T, T) bool) bool {
	if s.state != other.state {
		return false
	}
	if s.state == slotEmpty {
		return true
	}
	if s.ok != other.ok {
		return false
	}
	return !s.ok || eq(s.item, other.item)
}

func (s *slot[T]) hash(d *xxhash.Digest, item func(*xxhash.Digest, T)) {
	switch {
	case s.state == slotEmpty:
		_, _ = d.Write([]byte{0})
	case !s.ok:
		_, _ = d.Write([]byte{1})
	default:
		_, _ = d.Write([]byte{2})
		item(d, s.item)
	}
}

func (s *slot[T]) String() string {
	switch {
	case s.state == slotEmpty:
		return "Empty"
	case !s.ok:
		return "Pulled(End)"
	default:
		return fmt.Sprintf("Pulled(%v)", s.item)
	}
}

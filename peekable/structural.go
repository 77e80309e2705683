package peekable

import (
	"encoding/binary"
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// String renders the producer and both slots.
func (p *Peekable[T]) String() string {
	return fmt.Sprintf("Peekable{iter: %v, front: %s, back: %s}", p.iter, p.front.String(), p.back.String())
}

// String renders the producer and both slots.
func (d *DoubleEnded[T]) String() string {
	return fmt.Sprintf("DoubleEnded{iter: %v, front: %s, back: %s}", d.iter, d.front.String(), d.back.String())
}

// Clone duplicates the adapter. It reports false unless the producer is a
// Cloner. Cached items are copied by value and instrumentation is shared.
func (p *Peekable[T]) Clone() (*Peekable[T], bool) {
	c, ok := p.iter.(Cloner[T])
	if !ok {
		return nil, false
	}
	return &Peekable[T]{iter: c.Clone(), front: p.front, back: p.back, obs: p.obs}, true
}

// Clone duplicates the adapter. The producer's clone must itself be double
// ended.
func (d *DoubleEnded[T]) Clone() (*DoubleEnded[T], bool) {
	c, ok := d.de.(Cloner[T])
	if !ok {
		return nil, false
	}
	it, ok := c.Clone().(DoubleEndedIterator[T])
	if !ok {
		return nil, false
	}
	return &DoubleEnded[T]{
		Peekable: &Peekable[T]{iter: it, front: d.front, back: d.back, obs: d.obs},
		de:       it,
	}, true
}

// Equal reports whether a and b hold equal producers and equal slots.
func Equal[T comparable](a, b Adapter[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares cached items with eq. Producers are
// compared with Equaler when available, reflect.DeepEqual otherwise.
func EqualFunc[T any](a, b Adapter[T], eq func(T, T) bool) bool {
	pa, pb := a.core(), b.core()
	return producersEqual(pa.iter, pb.iter) &&
		pa.front.equal(&pb.front, eq) &&
		pa.back.equal(&pb.back, eq)
}

func producersEqual[T any](a, b Iterator[T]) bool {
	if e, ok := a.(Equaler[T]); ok {
		return e.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}

// Hash digests the producer state followed by the front and back slots.
// item hashes one cached item; see IntegerHasher, StringHasher and
// FormatHasher. The producer state is digested on its own and written as a
// fixed 8-byte frame, so it cannot run into the slot bytes. Producers that
// are not a StateHasher are walked the way reflect.DeepEqual compares them,
// which keeps Hash consistent with Equal.
func Hash[T any](a Adapter[T], item func(*xxhash.Digest, T)) uint64 {
	p := a.core()
	state := xxhash.New()
	if sh, ok := p.iter.(StateHasher[T]); ok {
		sh.HashState(state, item)
	} else {
		hashDeep(state, p.iter)
	}
	d := xxhash.New()
	IntegerHasher(d, state.Sum64())
	p.front.hash(d, item)
	p.back.hash(d, item)
	return d.Sum64()
}

// IntegerHasher writes v as 8 little-endian bytes.
func IntegerHasher[T constraints.Integer](d *xxhash.Digest, v T) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	_, _ = d.Write(buf[:])
}

// StringHasher writes the length of s followed by its bytes.
func StringHasher(d *xxhash.Digest, s string) {
	IntegerHasher(d, len(s))
	_, _ = d.WriteString(s)
}

// FormatHasher writes the %#v rendering of v.
func FormatHasher[T any](d *xxhash.Digest, v T) {
	_, _ = fmt.Fprintf(d, "%#v", v)
}

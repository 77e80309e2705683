package peekable

import (
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// deepHasher digests a value by walking it the way reflect.DeepEqual
// compares it: pointers and interfaces are followed, map entries are
// combined without regard to order, and struct fields are read whether
// exported or not. Values DeepEqual reports equal produce equal digests,
// except for cyclic values whose cycles have different lengths.
type deepHasher struct {
	active map[visit]struct{}
}

type visit struct {
	ptr uintptr
	typ reflect.Type
}

func hashDeep(d *xxhash.Digest, v any) {
	h := deepHasher{active: make(map[visit]struct{})}
	h.value(d, reflect.ValueOf(v))
}

func writeByte(d *xxhash.Digest, b byte) {
	_, _ = d.Write([]byte{b})
}

func (h *deepHasher) value(d *xxhash.Digest, v reflect.Value) {
	if !v.IsValid() {
		writeByte(d, 0)
		return
	}
	StringHasher(d, v.Type().String())

	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			writeByte(d, 1)
		} else {
			writeByte(d, 0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		IntegerHasher(d, v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		IntegerHasher(d, v.Uint())
	case reflect.Float32, reflect.Float64:
		hashFloat(d, v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		hashFloat(d, real(c))
		hashFloat(d, imag(c))
	case reflect.String:
		StringHasher(d, v.String())
	case reflect.Array:
		for i := range v.Len() {
			h.value(d, v.Index(i))
		}
	case reflect.Slice:
		IntegerHasher(d, v.Len())
		if !h.enter(d, v) {
			return
		}
		for i := range v.Len() {
			h.value(d, v.Index(i))
		}
		h.leave(v)
	case reflect.Map:
		IntegerHasher(d, v.Len())
		if !h.enter(d, v) {
			return
		}
		var sum uint64
		entries := v.MapRange()
		for entries.Next() {
			e := xxhash.New()
			h.value(e, entries.Key())
			h.value(e, entries.Value())
			sum += e.Sum64()
		}
		IntegerHasher(d, sum)
		h.leave(v)
	case reflect.Pointer:
		if !h.enter(d, v) {
			return
		}
		h.value(d, v.Elem())
		h.leave(v)
	case reflect.Interface:
		h.value(d, v.Elem())
	case reflect.Struct:
		for i := range v.NumField() {
			h.value(d, v.Field(i))
		}
	case reflect.Func:
		// Non-nil funcs are never deep equal, so only nil-ness matters.
		if v.IsNil() {
			writeByte(d, 0)
		} else {
			writeByte(d, 1)
		}
	case reflect.Chan, reflect.UnsafePointer:
		IntegerHasher(d, uint64(v.Pointer()))
	}
}

// enter marks a reference as being walked. It writes a marker and reports
// false for nil or empty references and for references already on the
// current path.
func (h *deepHasher) enter(d *xxhash.Digest, v reflect.Value) bool {
	if v.IsNil() || (v.Kind() != reflect.Pointer && v.Len() == 0) {
		writeByte(d, 0)
		return false
	}
	key := visit{v.Pointer(), v.Type()}
	if _, ok := h.active[key]; ok {
		writeByte(d, 2)
		return false
	}
	h.active[key] = struct{}{}
	writeByte(d, 1)
	return true
}

func (h *deepHasher) leave(v reflect.Value) {
	delete(h.active, visit{v.Pointer(), v.Type()})
}

func hashFloat(d *xxhash.Digest, f float64) {
	if f == 0 {
		f = 0 // -0 == +0
	}
	IntegerHasher(d, math.Float64bits(f))
}

package peekable_test

import (
	"math"
	"testing"

	"github.com/cespare/xxhash/v2"

	"github.com/kbukum/itkit/peekable"
	"github.com/kbukum/itkit/source"
)

// advanced returns an adapter over 0..5 after Next, Peek and PeekBack, so
// the producer holds 2..4 with 1 at the front and 4 at the back.
func advanced() *peekable.DoubleEnded[int] {
	d := ints(5)
	d.Next()
	d.Peek()
	d.PeekBack()
	return d
}

func TestString(t *testing.T) {
	d := peekable.NewDoubleEnded[int](source.Slice([]int{0, 1, 2, 3}))
	d.Next()
	d.Peek()
	d.PeekBack()

	want := "DoubleEnded{iter: Slice[2], front: Pulled(1), back: Pulled(3)}"
	if got := d.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	p := peekable.New[int](source.Range(0, 1))
	p.Next()
	p.Peek()
	want = "Peekable{iter: 1..1, front: Pulled(End), back: Empty}"
	if got := p.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestEqual(t *testing.T) {
	a := advanced()

	// Same producer state and slots reached another way.
	b := peekable.NewDoubleEnded[int](source.Range(1, 5))
	b.Peek()
	b.PeekBack()

	if !peekable.Equal[int](a, b) {
		t.Fatalf("expected %s to equal %s", a, b)
	}

	b.Next()
	if peekable.Equal[int](a, b) {
		t.Errorf("expected %s to differ from %s", a, b)
	}

	c := peekable.NewDoubleEnded[int](source.Range(2, 4))
	if peekable.Equal[int](a, c) {
		t.Error("expected empty slots to differ from pulled slots")
	}
}

func TestEqualFunc(t *testing.T) {
	a := peekable.New[string](source.Slice([]string{"Go", "rust"}))
	b := peekable.New[string](source.Slice([]string{"Go", "rust"}))
	a.Peek()
	b.Peek()
	*b.PeekMut() = "GO"

	if peekable.Equal[string](a, b) {
		t.Error("expected case-sensitive equality to fail")
	}
	fold := func(x, y string) bool { return len(x) == len(y) && (x == y || x == "Go" && y == "GO") }
	if !peekable.EqualFunc[string](a, b, fold) {
		t.Error("expected custom equality to hold")
	}
}

// countdown has no Equaler, so adapters over it compare with reflect.DeepEqual.
type countdown struct{ n int }

func (c *countdown) Next() (int, bool) {
	if c.n == 0 {
		return 0, false
	}
	c.n--
	return c.n, true
}

func TestEqualWithoutEqualer(t *testing.T) {
	a := peekable.New[int](&countdown{n: 3})
	b := peekable.New[int](&countdown{n: 3})
	if !peekable.Equal[int](a, b) {
		t.Error("expected deep-equal producers to compare equal")
	}
	a.Peek()
	if peekable.Equal[int](a, b) {
		t.Error("expected adapters to differ after a peek")
	}
	b.Peek()
	if !peekable.Equal[int](a, b) {
		t.Error("expected adapters to match after the same peek")
	}
	if got := a.String(); got != "Peekable{iter: &{2}, front: Pulled(2), back: Empty}" {
		t.Errorf("unexpected rendering %q", got)
	}
}

func TestHash(t *testing.T) {
	a := advanced()

	state := xxhash.New()
	peekable.IntegerHasher(state, 2)
	peekable.IntegerHasher(state, 4)
	d := xxhash.New()
	peekable.IntegerHasher(d, state.Sum64())
	_, _ = d.Write([]byte{2})
	peekable.IntegerHasher(d, 1)
	_, _ = d.Write([]byte{2})
	peekable.IntegerHasher(d, 4)
	want := d.Sum64()

	if got := peekable.Hash[int](a, peekable.IntegerHasher[int]); got != want {
		t.Errorf("expected hash %x, got %x", want, got)
	}

	b := peekable.NewDoubleEnded[int](source.Range(1, 5))
	b.Peek()
	b.PeekBack()
	if peekable.Hash[int](a, peekable.IntegerHasher[int]) != peekable.Hash[int](b, peekable.IntegerHasher[int]) {
		t.Error("expected equal adapters to hash equally")
	}
}

func TestHashDistinguishesSlotStates(t *testing.T) {
	fresh := peekable.New[int](source.Range(0, 0))
	ended := peekable.New[int](source.Range(0, 0))
	ended.Peek()

	h := func(p *peekable.Peekable[int]) uint64 { return peekable.Hash[int](p, peekable.IntegerHasher[int]) }
	if h(fresh) == h(ended) {
		t.Error("expected empty and end-marker slots to hash differently")
	}
}

// boxed hides a slice producer behind a pointer and implements neither
// Equaler nor StateHasher.
type boxed struct{ inner *source.SliceIter[int] }

func (b boxed) Next() (int, bool) { return b.inner.Next() }

// labelled keeps its state in a map and a float, which %#v renders unstably.
type labelled struct {
	seen  map[string]int
	scale float64
	left  int
}

func (l *labelled) Next() (int, bool) {
	if l.left == 0 {
		return 0, false
	}
	l.left--
	return l.left, true
}

func TestHashFollowsEqualWithoutStateHasher(t *testing.T) {
	h := func(a peekable.Adapter[int]) uint64 { return peekable.Hash[int](a, peekable.IntegerHasher[int]) }

	t.Run("pointer fields", func(t *testing.T) {
		a := peekable.New[int](boxed{source.Slice([]int{1, 2, 3})})
		b := peekable.New[int](boxed{source.Slice([]int{1, 2, 3})})
		a.Peek()
		b.Peek()
		if !peekable.Equal[int](a, b) {
			t.Fatal("expected adapters over equal boxed slices to be equal")
		}
		if h(a) != h(b) {
			t.Errorf("equal adapters hash differently: %x vs %x", h(a), h(b))
		}
		b.Next()
		if peekable.Equal[int](a, b) || h(a) == h(b) {
			t.Error("expected adapters to differ after b advanced")
		}
	})

	t.Run("map and float fields", func(t *testing.T) {
		x := &labelled{seen: map[string]int{}, scale: 0, left: 2}
		y := &labelled{seen: map[string]int{}, scale: math.Copysign(0, -1), left: 2}
		for _, k := range []string{"a", "b", "c", "d"} {
			x.seen[k] = len(k)
		}
		for _, k := range []string{"d", "c", "b", "a"} {
			y.seen[k] = len(k)
		}
		a := peekable.New[int](x)
		b := peekable.New[int](y)
		if !peekable.Equal[int](a, b) {
			t.Fatal("expected deep-equal producers to be equal")
		}
		if h(a) != h(b) {
			t.Errorf("equal adapters hash differently: %x vs %x", h(a), h(b))
		}
		y.seen["e"] = 1
		if h(a) == h(b) {
			t.Error("expected an extra map entry to change the hash")
		}
	})

	t.Run("repeatable", func(t *testing.T) {
		a := peekable.New[int](&countdown{n: 3})
		if h(a) != h(a) {
			t.Error("expected a stable hash")
		}
	})
}

func TestHashers(t *testing.T) {
	words := peekable.New[string](source.Slice([]string{"a", "b"}))
	words.Peek()
	same := peekable.New[string](source.Slice([]string{"a", "b"}))
	same.Peek()
	if peekable.Hash[string](words, peekable.StringHasher) != peekable.Hash[string](same, peekable.StringHasher) {
		t.Error("expected StringHasher digests to match")
	}

	type point struct{ x, y int }
	pts := peekable.New[point](source.FromSeq(func(yield func(point) bool) { yield(point{1, 2}) }))
	pts.Peek()
	h1 := peekable.Hash[point](pts, peekable.FormatHasher[point])
	h2 := peekable.Hash[point](pts, peekable.FormatHasher[point])
	if h1 != h2 {
		t.Error("expected FormatHasher digest to be stable")
	}
}

func TestClone(t *testing.T) {
	d := peekable.NewDoubleEnded[int](source.Slice([]int{0, 1, 2, 3}))
	d.Next()
	d.Peek()
	d.PeekBack()

	c, ok := d.Clone()
	if !ok {
		t.Fatal("expected slice producer to be clonable")
	}
	if !peekable.Equal[int](d, c) {
		t.Fatalf("expected clone %s to equal %s", c, d)
	}

	for _, it := range []*peekable.DoubleEnded[int]{c, d} {
		for _, want := range []int{1, 2, 3} {
			if v, ok := it.Next(); !ok || v != want {
				t.Fatalf("expected %d, got (%d, %v)", want, v, ok)
			}
		}
		if _, ok := it.Next(); ok {
			t.Error("expected exhaustion")
		}
	}
}

func TestCloneFrontOnly(t *testing.T) {
	p := peekable.New[int](source.Range(0, 3))
	p.Peek()
	c, ok := p.Clone()
	if !ok {
		t.Fatal("expected range producer to be clonable")
	}
	c.Next()
	if v, _ := p.Peek(); v != 0 {
		t.Errorf("expected original to keep 0, got %d", v)
	}
	if v, _ := c.Peek(); v != 1 {
		t.Errorf("expected clone to advance to 1, got %d", v)
	}
}

func TestCloneUnsupported(t *testing.T) {
	p := peekable.New[int](source.FromSeq(func(yield func(int) bool) { yield(1) }))
	if _, ok := p.Clone(); ok {
		t.Error("expected sequence producer not to be clonable")
	}

	d := peekable.NewDoubleEnded[int](source.MapDoubleEnded[int, int](source.Range(0, 2), func(x int) int { return x * 2 }))
	if _, ok := d.Clone(); ok {
		t.Error("expected map producer not to be clonable")
	}
}

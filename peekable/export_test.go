package peekable

// Slot renderings for tests in peekable_test.

func FrontSlot[T any](p *Peekable[T]) string { return p.front.String() }

func BackSlot[T any](p *Peekable[T]) string { return p.back.String() }

// RestoreFront forces a front restore regardless of the slot state.
func RestoreFront[T any](p *Peekable[T], item T, ok bool) {
	p.restoreFront("NextIf", item, ok)
}

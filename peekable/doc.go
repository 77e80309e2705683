// Package peekable provides lookahead adapters over pull-based iterators.
//
// A Peekable caches at most one pulled outcome per end of the wrapped
// producer. DoubleEnded adds the back-end operations when the producer can
// yield from both ends. Consuming from one end after peeking from the other
// never loses or duplicates an item: when an end is exhausted the item
// cached at the opposite end is handed out before exhaustion is reported.
//
//	d := peekable.NewDoubleEnded(source.Slice([]int{1, 2, 3}))
//	first, _ := d.Peek()     // 1
//	last, _ := d.PeekBack()  // 3
//	for v := range d.All() { // 1 2 3
//		...
//	}
//
// Adapters are single-owner values and are not safe for concurrent use.
package peekable

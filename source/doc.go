// Package source provides producers for peekable adapters.
//
// Slice and Range yield from both ends and report exact size hints. Filter
// and Map wrap another producer lazily. FromSeq adapts a range-over-func
// sequence and FromFallible adapts a context-aware iterator that may fail.
//
//	d := peekable.NewDoubleEnded(source.Range(0, 5))
//	evens := peekable.New(source.Filter(source.Slice(items), isEven))
package source

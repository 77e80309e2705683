package source

import (
	"context"
	"fmt"

	"github.com/kbukum/itkit/errors"
	"github.com/kbukum/itkit/logger"
	"github.com/kbukum/itkit/peekable"
	"github.com/kbukum/itkit/resilience"
)

// FallibleIterator provides pull-based access to a stream that may fail,
// such as a paginated remote listing.
type FallibleIterator[T any] interface {
	// Next returns the next value. Returns (zero, false, nil) when exhausted.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the iterator.
	Close() error
}

// FallibleIter adapts a FallibleIterator to the infallible producer
// contract. The first failure ends the sequence and is kept in Err.
type FallibleIter[T any] struct {
	ctx   context.Context
	inner FallibleIterator[T]
	name  string
	retry *resilience.RetryConfig
	log   *logger.Logger
	err   error
	done  bool
}

// FallibleOption configures FromFallible.
type FallibleOption func(*fallibleOptions)

type fallibleOptions struct {
	retry *resilience.RetryConfig
	log   *logger.Logger
}

// WithRetry retries failed pulls according to cfg before ending the
// sequence.
func WithRetry(cfg resilience.RetryConfig) FallibleOption {
	return func(o *fallibleOptions) { o.retry = &cfg }
}

// WithFailureLogger reports the failure that ends the sequence to log.
// Without it failures go to the global logger's "source" component.
func WithFailureLogger(log *logger.Logger) FallibleOption {
	return func(o *fallibleOptions) { o.log = log }
}

// FromFallible returns a front-only producer over inner. name identifies the
// source in errors.
func FromFallible[T any](ctx context.Context, name string, inner FallibleIterator[T], opts ...FallibleOption) *FallibleIter[T] {
	var o fallibleOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.WithComponent("source")
	}
	return &FallibleIter[T]{ctx: ctx, inner: inner, name: name, retry: o.retry, log: o.log}
}

type pulled[T any] struct {
	item T
	ok   bool
}

func (f *FallibleIter[T]) pull() (T, bool, error) {
	if f.retry == nil {
		return f.inner.Next(f.ctx)
	}
	p, err := resilience.Retry(f.ctx, *f.retry, func() (pulled[T], error) {
		item, ok, err := f.inner.Next(f.ctx)
		return pulled[T]{item, ok}, err
	})
	return p.item, p.ok, err
}

// Next pulls the next item. A failure or exhaustion closes the inner
// iterator.
func (f *FallibleIter[T]) Next() (T, bool) {
	var zero T
	if f.done {
		return zero, false
	}
	item, ok, err := f.pull()
	if err != nil {
		f.fail(errors.SourceFailed(f.name, err))
		f.finish()
		return zero, false
	}
	if !ok {
		f.finish()
		return zero, false
	}
	return item, true
}

func (f *FallibleIter[T]) finish() {
	f.done = true
	if err := f.inner.Close(); err != nil && f.err == nil {
		f.fail(errors.SourceFailed(f.name, fmt.Errorf("close: %w", err)))
	}
}

func (f *FallibleIter[T]) fail(err error) {
	f.err = err
	f.log.WithError(err).Error("source failed", logger.Fields(logger.FieldSource, f.name))
}

// Close releases the inner iterator early.
func (f *FallibleIter[T]) Close() error {
	if f.done {
		return nil
	}
	f.finish()
	return f.Err()
}

// Err returns the failure that ended the sequence, if any.
func (f *FallibleIter[T]) Err() error {
	return f.err
}

var _ peekable.Iterator[int] = (*FallibleIter[int])(nil)

package peekable

import (
	"context"

	"github.com/google/uuid"

	"github.com/kbukum/itkit/logger"
	"github.com/kbukum/itkit/observability"
)

// Ends reported in logs and metrics.
const (
	EndFront = "front"
	EndBack  = "back"
)

// Option configures an adapter.
type Option func(*options)

type options struct {
	logger  *logger.Logger
	metrics *observability.Metrics
}

// WithLogger traces producer pulls, cross-slot fallbacks and restores at
// debug level.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMetrics records adapter activity on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// observer fans adapter events out to the configured logger and metrics.
// A nil observer ignores every event.
type observer struct {
	id      string
	log     *logger.Logger
	metrics *observability.Metrics
}

func newObserver(opts []Option) *observer {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil && o.metrics == nil {
		return nil
	}
	id := uuid.NewString()
	obs := &observer{id: id, metrics: o.metrics}
	if o.logger != nil {
		obs.log = o.logger.WithComponent("peekable").WithFields(logger.Fields(logger.FieldAdapterID, id))
	}
	return obs
}

func (o *observer) pulled(end string, ok bool) {
	if o == nil {
		return
	}
	if o.metrics != nil {
		o.metrics.RecordPull(context.Background(), end, !ok)
	}
	if o.log != nil && o.log.DebugEnabled() {
		outcome := "item"
		if !ok {
			outcome = "end"
		}
		o.log.Debug("producer pulled", logger.Fields(logger.FieldEnd, end, logger.FieldOutcome, outcome))
	}
}

func (o *observer) fellBack(end string) {
	if o == nil {
		return
	}
	if o.metrics != nil {
		o.metrics.RecordFallback(context.Background(), end)
	}
	if o.log != nil && o.log.DebugEnabled() {
		o.log.Debug("served from opposite slot", logger.Fields(logger.FieldEnd, end))
	}
}

func (o *observer) restored(op string) {
	if o == nil {
		return
	}
	if o.metrics != nil {
		o.metrics.RecordRestore(context.Background(), op)
	}
	if o.log != nil && o.log.DebugEnabled() {
		o.log.Debug("outcome restored", logger.Fields(logger.FieldOperation, op))
	}
}

// ID returns the adapter id used in logs, empty when the adapter carries no
// instrumentation.
func (o *observer) ID() string {
	if o == nil {
		return ""
	}
	return o.id
}

// Package trace logs control-flow decisions with zap.
//
// A Tracer never changes a flow: Observe returns its input and Do returns what
// flow.Do returns. It only records where breaks happen and how scopes end.
package trace

import (
	"time"

	"github.com/google/uuid"
	"github.com/on-the-ground/tryflow/flow"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

// Tracer logs breaks and Do scopes to a zap logger.
type Tracer struct {
	logger *zap.Logger
	now    func() time.Time
}

// Option configures a Tracer.
type Option func(*Tracer)

// WithClock sets the clock used to measure scope spans. The default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(t *Tracer) {
		if now != nil {
			t.now = now
		}
	}
}

// New returns a Tracer writing to logger. A nil logger discards everything.
func New(logger *zap.Logger, opts ...Option) *Tracer {
	if logger == nil {
		logger = zap.NewNop()
	}
	t := &Tracer{logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Logger returns the underlying logger.
func (t *Tracer) Logger() *zap.Logger {
	return t.logger
}

// Sync flushes buffered log entries.
func (t *Tracer) Sync() {
	if err := t.logger.Sync(); err != nil {
		t.logger.Warn("failed to sync logger", zap.Error(err))
	}
}

// Observe logs cf at debug level when it is Break and returns it unchanged.
//
// Usage:
//
//	if cf := trace.Observe(t, "validate.negative", flow.BreakIfWith(n < 0, "negative")); cf.IsBreak() {
//	    return cf
//	}
func Observe[B any](t *Tracer, site string, cf flow.ControlFlow[B]) flow.ControlFlow[B] {
	if cf.IsBreak() {
		t.logger.Debug("break", zap.String("site", site), zap.Object("flow", cf))
	}
	return cf
}

// Do runs flow.Do(body) and logs entering and leaving the scope.
// Each call gets its own scope id; the leave entry carries the outcome and the
// time span the body ran for. A scope left by a panic is logged with
// panicked=true before the panic continues.
func Do[B any](t *Tracer, name string, body func(try flow.Try[B]) flow.ControlFlow[B]) (res flow.ControlFlow[B]) {
	scopeID := uuid.New().String()
	logger := t.logger.With(zap.String("scope", name), zap.String("scopeId", scopeID))

	start := t.now()
	logger.Debug("entered scope")

	completed := false
	defer func() {
		span := timespan.BetweenTimes(start, t.now())
		fields := []zap.Field{
			zap.Time("start", span.Start()),
			zap.Duration("elapsed", span.Duration()),
		}
		if completed {
			fields = append(fields, zap.Object("flow", res))
		} else {
			fields = append(fields, zap.Bool("panicked", true))
		}
		logger.Debug("left scope", fields...)
	}()

	res = flow.Do(body)
	completed = true
	return res
}

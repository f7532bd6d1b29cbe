package compose

import (
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/ib-77/flowless/pkg/rop"
	"github.com/ib-77/flowless/pkg/rop/core"
	"github.com/ib-77/flowless/pkg/rop/logger"
)

const instrumentationName = "github.com/ib-77/flowless/pkg/rop/compose"

var _ rop.Callable = Func(nil)

// Func is a composed pipeline. It returns the final value directly when the
// whole run stayed synchronous, and a *future.Future otherwise. A non-nil
// error is only ever returned by a synchronous run.
type Func func(args ...any) (any, error)

// Call implements rop.Callable, so a pipeline can be a step of another one.
func (f Func) Call(args ...any) (any, error) {
	return f(args...)
}

// Composer builds pipelines sharing one logger, tracer and meter.
type Composer struct {
	log         *logger.Logger
	tracer      trace.Tracer
	meter       metric.Meter
	invocations metric.Int64Counter
}

// Option configures a Composer.
type Option func(*Composer)

// WithLogger sets the logger. Without it the global logger is used.
func WithLogger(l *logger.Logger) Option {
	return func(c *Composer) { c.log = l }
}

// WithTracer sets the tracer that records one span per invocation.
func WithTracer(t trace.Tracer) Option {
	return func(c *Composer) { c.tracer = t }
}

// WithMeter sets the meter that counts invocations.
func WithMeter(m metric.Meter) Option {
	return func(c *Composer) { c.meter = m }
}

// NewComposer returns a Composer. Tracing and metrics default to the global
// OpenTelemetry providers.
func NewComposer(opts ...Option) *Composer {
	c := &Composer{}
	for _, opt := range opts {
		opt(c)
	}
	if c.tracer == nil {
		c.tracer = otel.Tracer(instrumentationName)
	}
	if c.meter == nil {
		c.meter = otel.Meter(instrumentationName)
	}
	c.invocations = newCounter(c.meter)
	return c
}

func (c *Composer) componentLogger() *logger.Logger {
	if c.log != nil {
		return c.log
	}
	return logger.WithComponent("compose")
}

// New builds a pipeline from steps. A step is any Go function, a Func, a
// rop.Callable or a Marker made by Catch.
func (c *Composer) New(steps ...any) (Func, error) {
	p := &pipeline{c: c, steps: make([]element, 0, len(steps))}

	for i, step := range steps {
		if m, ok := step.(catcher); ok {
			h := m.catchHandler()
			if h.IsZero() {
				return nil, fmt.Errorf("compose: step %d: %w", i,
					rop.NewError(rop.ErrCodeInvalidStep, "catch marker without handler"))
			}
			p.steps = append(p.steps, element{fn: h, catch: true})
			continue
		}

		fn, err := core.Adapt(step)
		if err != nil {
			return nil, fmt.Errorf("compose: step %d: %w", i, err)
		}
		p.steps = append(p.steps, element{fn: fn})
	}

	return p.run, nil
}

// Compose is like New but panics when a step has the wrong shape.
func (c *Composer) Compose(steps ...any) Func {
	f, err := c.New(steps...)
	if err != nil {
		panic(err)
	}
	return f
}

var defaultComposer = sync.OnceValue(func() *Composer { return NewComposer() })

// New builds a pipeline with the default Composer.
func New(steps ...any) (Func, error) {
	return defaultComposer().New(steps...)
}

// Compose builds a pipeline with the default Composer and panics when a step
// has the wrong shape. Steps run left to right; Compose() is the identity.
//
//	inc := func(a int) int { return a + 1 }
//	double := func(a int) int { return a * 2 }
//	f := compose.Compose(inc, compose.Catch(func(error) int { return -1 }), double)
//	v, _ := f(4)                   // 10, synchronously
//	v, _ = f(future.Resolved(4))   // *future.Future settling to 10
func Compose(steps ...any) Func {
	return defaultComposer().Compose(steps...)
}

package compose

import (
	"context"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"

	"github.com/ib-77/flowless/pkg/rop"
	"github.com/ib-77/flowless/pkg/rop/core"
	"github.com/ib-77/flowless/pkg/rop/future"
	"github.com/ib-77/flowless/pkg/rop/logger"
	"github.com/ib-77/flowless/pkg/rop/solo"
)

const (
	modeSync     = "sync"
	modeDeferred = "deferred"
)

type element struct {
	fn    core.Fn
	catch bool
}

// pipeline is immutable once built; every call gets its own invocation.
type pipeline struct {
	c     *Composer
	steps []element
}

// invocation carries the state of one call of a pipeline. In deferred mode
// its continuations run one after another, never concurrently.
type invocation struct {
	p     *pipeline
	ctx   context.Context
	span  trace.Span
	log   *logger.Logger
	debug bool
	mode  string
}

func (p *pipeline) run(args ...any) (any, error) {
	inv := p.start()

	if rop.AnyAsync(args...) {
		return inv.deferTo(0, future.All(args...), true), nil
	}

	next, pending, cur := inv.fold(0, rop.Success(args))
	if pending != nil {
		return inv.deferTo(next, pending, false), nil
	}

	inv.finish(cur)
	return output(cur)
}

// fold runs the steps from i on, the way a railway runs: a failure skips
// ordinary steps until a catch marker recovers it. fold stops early and
// returns the pending value when the input of step i is asynchronous.
func (inv *invocation) fold(i int, cur rop.Result[[]any]) (int, rop.Thenable, rop.Result[[]any]) {
	for ; i < len(inv.p.steps); i++ {
		el := inv.p.steps[i]

		if el.catch {
			cur = solo.Recover(cur, func(err error) rop.Result[[]any] {
				inv.logDebug("failure routed to catch", i, err)
				return single(el.fn.Call(err))
			})
		} else {
			cur = solo.Switch(cur, func(args []any) rop.Result[[]any] {
				return single(el.fn.Call(args...))
			})
			if cur.IsFailure() {
				inv.logDebug("step failed", i, cur.Err())
			}
		}

		if pending, ok := asyncValue(cur); ok {
			return i + 1, pending, cur
		}
	}

	return i, nil, cur
}

// deferTo hands the rest of the pipeline, from step next on, over to the
// continuation of pending. spread marks the joined arguments of the call.
func (inv *invocation) deferTo(next int, pending rop.Thenable, spread bool) *future.Future {
	out := future.New()
	inv.mode = modeDeferred
	if inv.debug {
		inv.log.Debug("switched to deferred mode", logger.Fields(
			logger.FieldStep, next,
			logger.FieldFutureID, out.ID().String(),
		))
	}

	inv.resume(out, next, pending, spread)
	return out
}

func (inv *invocation) resume(out *future.Future, next int, pending rop.Thenable, spread bool) {
	pending.Then(func(value any, err error) {
		var in rop.Result[[]any]
		switch {
		case err != nil:
			in = rop.Fail[[]any](err)
		case spread:
			in = rop.Success(value.([]any))
		default:
			in = rop.Success([]any{value})
		}

		n, p, cur := inv.fold(next, in)
		if p != nil {
			inv.resume(out, n, p, false)
			return
		}

		inv.finish(cur)
		v, err := output(cur)
		if err != nil {
			out.Reject(err)
			return
		}
		out.Resolve(v)
	})
}

func (inv *invocation) logDebug(msg string, step int, err error) {
	if !inv.debug {
		return
	}
	inv.log.WithError(err).Debug(msg, logger.Fields(
		logger.FieldStep, step,
		logger.FieldFunction, inv.p.steps[step].fn.Name(),
		logger.FieldMode, inv.mode,
	))
}

func (p *pipeline) start() *invocation {
	log := p.c.componentLogger()
	inv := &invocation{
		p:     p,
		log:   log,
		debug: log.Enabled(zerolog.DebugLevel),
		mode:  modeSync,
	}
	var id string
	inv.ctx, inv.span, id = p.c.startSpan(len(p.steps), inv.debug)
	if inv.debug {
		inv.log = log.WithFields(logger.Fields(logger.FieldInvocationID, id))
	}
	return inv
}

func (inv *invocation) finish(cur rop.Result[[]any]) {
	inv.p.c.endSpan(inv.ctx, inv.span, inv.mode, cur.Err())
	if cur.IsFailure() && inv.debug {
		inv.log.WithError(cur.Err()).Debug("pipeline failed without catch",
			logger.Fields(logger.FieldMode, inv.mode))
	}
}

func single(r rop.Result[any]) rop.Result[[]any] {
	return solo.Switch(r, func(v any) rop.Result[[]any] {
		return rop.Success([]any{v})
	})
}

func asyncValue(cur rop.Result[[]any]) (rop.Thenable, bool) {
	if !cur.IsSuccess() {
		return nil, false
	}
	values := cur.Result()
	if len(values) != 1 || !rop.IsAsync(values[0]) {
		return nil, false
	}
	return values[0].(rop.Thenable), true
}

// output unwraps the final value: nothing, the single value, or all the
// arguments of an identity run.
func output(cur rop.Result[[]any]) (any, error) {
	values, err := cur.Unpack()
	if err != nil {
		return nil, err
	}
	switch len(values) {
	case 0:
		return nil, nil
	case 1:
		return values[0], nil
	default:
		return values, nil
	}
}

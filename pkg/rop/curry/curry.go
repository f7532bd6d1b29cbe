package curry

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/ib-77/flowless/pkg/rop"
	"github.com/ib-77/flowless/pkg/rop/core"
	"github.com/ib-77/flowless/pkg/rop/future"
	"github.com/ib-77/flowless/pkg/rop/logger"
)

var _ rop.Callable = (*Curried)(nil)

// Curried is a function together with the leading arguments bound so far.
// It is immutable: every Call that does not complete the argument list
// returns a new Curried, so partial applications can be shared and reused.
type Curried struct {
	fn    core.Fn
	bound []any
}

// New curries fn, whose arity is its number of fixed parameters. Functions
// without a declared parameter list are rejected.
func New(fn any) (*Curried, error) {
	f, err := core.Adapt(fn)
	if err != nil {
		return nil, err
	}
	if f.Arity() == core.UnknownArity {
		return nil, rop.NewError(rop.ErrCodeInvalidStep,
			"cannot curry %s: arity is unknown", f.Name())
	}
	return &Curried{fn: f}, nil
}

// Curry is like New but panics when fn cannot be curried.
//
//	addMul := curry.Curry(func(a, b, c int) int { return (a + b) * c })
//	add5, _ := addMul.Call(2, 3)          // *Curried waiting for c
//	v, _ := add5.(*curry.Curried).Call(5) // 25
func Curry(fn any) *Curried {
	c, err := New(fn)
	if err != nil {
		panic(err)
	}
	return c
}

// Arity is the number of arguments needed before fn runs.
func (c *Curried) Arity() int {
	return c.fn.Arity()
}

// Bound returns a copy of the arguments collected so far.
func (c *Curried) Bound() []any {
	return slices.Clone(c.bound)
}

// Call adds args to the bound arguments. While fewer than Arity arguments
// are known it returns a new *Curried. Once enough are known it calls fn:
// directly when no argument is asynchronous, returning fn's result as is;
// otherwise after every asynchronous argument has settled, returning a
// *future.Future of fn's result. A rejected argument rejects that future
// and fn never runs.
func (c *Curried) Call(args ...any) (any, error) {
	all := make([]any, 0, len(c.bound)+len(args))
	all = append(all, c.bound...)
	all = append(all, args...)

	if len(all) < c.fn.Arity() {
		return &Curried{fn: c.fn, bound: all}, nil
	}

	if !rop.AnyAsync(all...) {
		return c.fn.Call(all...).Unpack()
	}

	log := logger.WithComponent("curry")
	out := future.New()
	if log.Enabled(zerolog.DebugLevel) {
		log.Debug("awaiting asynchronous arguments", logger.Fields(
			logger.FieldFunction, c.fn.Name(),
			logger.FieldFutureID, out.ID().String(),
		))
	}

	future.All(all...).Then(func(value any, err error) {
		if err != nil {
			out.Reject(err)
			return
		}
		r := c.fn.Call(value.([]any)...)
		if !r.IsSuccess() {
			out.Reject(r.Err())
			return
		}
		out.Resolve(r.Result())
	})
	return out, nil
}

// Func returns c as a plain function, usable wherever a
// func(...any) (any, error) is expected, including compose.Compose.
func (c *Curried) Func() func(args ...any) (any, error) {
	return c.Call
}

func (c *Curried) String() string {
	return fmt.Sprintf("curry(%s, %d/%d)", c.fn.Name(), len(c.bound), c.fn.Arity())
}

package compose

import (
	"github.com/ib-77/flowless/pkg/rop"
	"github.com/ib-77/flowless/pkg/rop/core"
)

// catcher is the capability the runner looks for to tell a Marker apart
// from an ordinary step.
type catcher interface {
	catchHandler() core.Fn
}

// Marker marks an error handler inside a pipeline. It is skipped while the
// pipeline succeeds and only runs for a failure of an earlier step.
type Marker struct {
	handler core.Fn
}

func (m Marker) catchHandler() core.Fn {
	return m.handler
}

// NewCatch wraps handler in a Marker. handler must accept one argument, the
// error, and may return any value, an asynchronous value or (value, error).
func NewCatch(handler any) (Marker, error) {
	fn, err := core.Adapt(handler)
	if err != nil {
		return Marker{}, err
	}

	switch {
	case fn.Arity() == 1, fn.Arity() == core.UnknownArity, fn.Variadic() && fn.Arity() == 0:
		return Marker{handler: fn}, nil
	}

	return Marker{}, rop.NewError(rop.ErrCodeInvalidStep,
		"catch handler %s takes %d arguments, want 1", fn.Name(), fn.Arity())
}

// Catch is like NewCatch but panics when handler has the wrong shape. The
// Marker is only meaningful as an argument of Compose.
//
// A handler whose only result is declared error reports failure through it,
// so func(err error) error { return err } keeps the pipeline failing. To turn
// the error into the pipeline's value, declare an any result:
//
//	compose.Catch(func(err error) any { return err })
func Catch(handler any) Marker {
	m, err := NewCatch(handler)
	if err != nil {
		panic(err)
	}
	return m
}

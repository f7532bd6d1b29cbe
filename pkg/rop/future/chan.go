package future

import (
	"errors"

	"github.com/ib-77/flowless/pkg/rop"
)

// ErrNoValue rejects futures built from a channel that closed empty.
var ErrNoValue = errors.New("future: channel closed without a value")

// FromChan returns a Future resolved with the first value received from ch.
func FromChan[T any](ch <-chan T) *Future {
	f := New()
	go func() {
		v, ok := <-ch
		if !ok {
			f.Reject(ErrNoValue)
			return
		}
		f.Resolve(v)
	}()
	return f
}

// FromResultChan returns a Future settled by the first Result received
// from ch.
func FromResultChan[T any](ch <-chan rop.Result[T]) *Future {
	f := New()
	go func() {
		r, ok := <-ch
		switch {
		case !ok:
			f.Reject(ErrNoValue)
		case r.IsSuccess():
			f.Resolve(r.Result())
		default:
			f.Reject(r.Err())
		}
	}()
	return f
}

// ToChan delivers the outcome of v as a single Result on a buffered
// channel, then closes it.
func ToChan(v any) <-chan rop.Result[any] {
	out := make(chan rop.Result[any], 1)
	if !rop.IsAsync(v) {
		out <- rop.Success(v)
		close(out)
		return out
	}

	v.(rop.Thenable).Then(func(value any, err error) {
		out <- rop.FromPair(value, err)
		close(out)
	})
	return out
}

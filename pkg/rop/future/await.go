package future

import (
	"context"
	"reflect"
	"sync"

	"github.com/ib-77/flowless/pkg/rop"
)

// Await returns v directly when it is not asynchronous, and otherwise waits
// for it to settle or for ctx to be done.
func Await(ctx context.Context, v any) (any, error) {
	if !rop.IsAsync(v) {
		return v, nil
	}

	if f, ok := v.(*Future); ok {
		return f.Await(ctx)
	}

	f := New()
	f.Resolve(v)
	return f.Await(ctx)
}

// AwaitAs is Await followed by a type assertion. A nil outcome yields the
// zero value of T.
func AwaitAs[T any](ctx context.Context, v any) (T, error) {
	var zero T

	value, err := Await(ctx, v)
	if err != nil {
		return zero, err
	}
	if value == nil {
		return zero, nil
	}

	t, ok := value.(T)
	if !ok {
		return zero, rop.NewError(rop.ErrCodeInvalidArgument,
			"awaited %T, want %s", value, reflect.TypeFor[T]())
	}
	return t, nil
}

// All waits for every asynchronous element of values and resolves to a
// []any holding the settled values in their original positions. Plain
// values are copied as they are. The first rejection rejects the result.
func All(values ...any) *Future {
	out := New()

	if len(values) == 0 {
		out.Resolve([]any{})
		return out
	}

	var mu sync.Mutex
	results := make([]any, len(values))
	remaining := len(values)

	store := func(i int, value any) {
		mu.Lock()
		results[i] = value
		remaining--
		last := remaining == 0
		mu.Unlock()

		if last {
			out.Resolve(results)
		}
	}

	for i, v := range values {
		if !rop.IsAsync(v) {
			store(i, v)
			continue
		}

		v.(rop.Thenable).Then(func(value any, err error) {
			if err != nil {
				out.Reject(err)
				return
			}
			store(i, value)
		})
	}

	return out
}

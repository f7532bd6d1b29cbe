package lite

import (
	"context"
	"sync"

	"github.com/ib-77/flowless/pkg/rop"
	"github.com/ib-77/flowless/pkg/rop/future"
	"github.com/ib-77/flowless/pkg/rop/solo"
)

// Run calls pipeline once per value received from inputCh on lines worker
// goroutines. The returned channel is closed once inputCh is closed and
// drained, or once ctx is done.
func Run(ctx context.Context, inputCh <-chan any, pipeline rop.Callable, lines int) <-chan rop.Result[any] {
	out := make(chan rop.Result[any])
	wg := &sync.WaitGroup{}

	deliver := func(_ any, r rop.Result[any]) bool {
		select {
		case <-ctx.Done():
			return false
		case out <- r:
			return true
		}
	}

	for range max(lines, 1) {
		wg.Add(1)
		go locomotive[any](ctx, inputCh, identity, pipeline, deliver, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

type job struct {
	pos   int
	value any
}

// Map calls pipeline once per element of values on lines worker goroutines
// and returns the outcomes in input order. When ctx is done first, the
// elements that were not processed keep an empty Result and ctx.Err() is
// returned.
func Map(ctx context.Context, values []any, pipeline rop.Callable, lines int) ([]rop.Result[any], error) {
	results := make([]rop.Result[any], len(values))
	jobs := make(chan job)
	wg := &sync.WaitGroup{}

	deliver := func(j job, r rop.Result[any]) bool {
		results[j.pos] = r
		return true
	}

	for range max(lines, 1) {
		wg.Add(1)
		go locomotive[job](ctx, jobs, func(j job) any { return j.value }, pipeline, deliver, wg)
	}

feed:
	for i, v := range values {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- job{pos: i, value: v}:
		}
	}
	close(jobs)
	wg.Wait()

	return results, ctx.Err()
}

// Finally reduces every outcome received from input with onSuccess or
// onError.
func Finally[Out any](ctx context.Context, input <-chan rop.Result[any],
	onSuccess func(v any) Out, onError func(err error) Out) <-chan Out {

	out := make(chan Out)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case r, ok := <-input:
				if !ok {
					return
				}
				select {
				case <-ctx.Done():
					return
				case out <- solo.Finally(r, onSuccess, onError):
				}
			}
		}
	}()
	return out
}

func locomotive[T any](ctx context.Context, inputCh <-chan T, input func(T) any,
	pipeline rop.Callable, deliver func(T, rop.Result[any]) bool, wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				return
			case r := <-engine(pipeline, input(in)):
				if !deliver(in, r) {
					return
				}
			}
		}
	}
}

// engine runs one call of pipeline. The channel is buffered, so an outcome
// that settles after ctx is done is dropped without blocking anyone.
func engine(pipeline rop.Callable, in any) <-chan rop.Result[any] {
	r := solo.Try(func() (any, error) { return pipeline.Call(in) })
	if !r.IsSuccess() {
		ch := make(chan rop.Result[any], 1)
		ch <- r
		close(ch)
		return ch
	}
	return future.ToChan(r.Result())
}

func identity(v any) any { return v }

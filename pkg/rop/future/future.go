package future

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/ib-77/flowless/pkg/rop"
	"github.com/ib-77/flowless/pkg/rop/solo"
)

// ErrNilRejection replaces the nil error of a Reject(nil) call.
var ErrNilRejection = errors.New("future: rejected with a nil error")

var (
	_ rop.Thenable            = (*Future)(nil)
	_ rop.ResultProvider[any] = (*Future)(nil)
)

// Future is an asynchronous value that settles exactly once, either with a
// value or with an error.
//
// Continuations registered with Then run in registration order on the
// goroutine that settles the Future, or immediately on the caller's
// goroutine when the Future has already settled.
type Future struct {
	id   uuid.UUID
	done chan struct{}

	mu        sync.Mutex
	locked    bool
	settled   bool
	result    rop.Result[any]
	callbacks []func(any, error)
}

// New returns a pending Future.
func New() *Future {
	return &Future{
		id:   uuid.New(),
		done: make(chan struct{}),
	}
}

// Resolved returns a Future resolved with v. If v is asynchronous the
// Future follows it.
func Resolved(v any) *Future {
	f := New()
	f.Resolve(v)
	return f
}

// Rejected returns a Future rejected with err.
func Rejected(err error) *Future {
	f := New()
	f.Reject(err)
	return f
}

// Go runs fn on a new goroutine and returns a Future of its outcome.
// A panic in fn rejects the Future with a *rop.PanicError.
func Go(fn func() (any, error)) *Future {
	f := New()
	go func() {
		r := solo.Try(fn)
		if r.IsSuccess() {
			f.Resolve(r.Result())
			return
		}
		f.Reject(r.Err())
	}()
	return f
}

// ID identifies the Future in logs and traces.
func (f *Future) ID() uuid.UUID {
	return f.id
}

// Resolve settles the Future with v. When v is itself asynchronous the
// Future adopts its outcome. Calls after the first Resolve or Reject are
// ignored.
func (f *Future) Resolve(v any) {
	if !f.lock() {
		return
	}

	if other, ok := v.(*Future); ok && other == f {
		f.settle(rop.Fail[any](rop.NewError(rop.ErrCodeSelfResolution,
			"future %s resolved with itself", f.id)))
		return
	}

	if rop.IsAsync(v) {
		v.(rop.Thenable).Then(func(value any, err error) {
			f.settle(rop.FromPair(value, err))
		})
		return
	}

	f.settle(rop.Success(v))
}

// Reject settles the Future with err. Calls after the first Resolve or
// Reject are ignored. A nil err is replaced by ErrNilRejection.
func (f *Future) Reject(err error) {
	if !f.lock() {
		return
	}
	if err == nil {
		err = ErrNilRejection
	}
	f.settle(rop.Fail[any](err))
}

// Then registers a continuation. It implements rop.Thenable.
func (f *Future) Then(onSettled func(value any, err error)) {
	f.mu.Lock()
	if f.settled {
		r := f.result
		f.mu.Unlock()
		onSettled(r.Unpack())
		return
	}
	f.callbacks = append(f.callbacks, onSettled)
	f.mu.Unlock()
}

// Done is closed once the Future has settled.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Settled reports whether the Future has settled.
func (f *Future) Settled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.settled
}

// Result returns the settled outcome, and false while still pending.
func (f *Future) Result() (rop.Result[any], bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.result, f.settled
}

// Await blocks until the Future settles or ctx is done. An expired ctx only
// stops the wait; whatever produces the value keeps running.
func (f *Future) Await(ctx context.Context) (any, error) {
	select {
	case <-f.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	r, _ := f.Result()
	return r.Unpack()
}

func (f *Future) lock() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.locked {
		return false
	}
	f.locked = true
	return true
}

func (f *Future) settle(r rop.Result[any]) {
	f.mu.Lock()
	if f.settled {
		f.mu.Unlock()
		return
	}
	f.settled = true
	f.result = r
	callbacks := f.callbacks
	f.callbacks = nil
	close(f.done)
	f.mu.Unlock()

	value, err := r.Unpack()
	for _, cb := range callbacks {
		cb(value, err)
	}
}

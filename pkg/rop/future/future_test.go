package future

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ib-77/flowless/pkg/rop"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var errBoom = errors.New("boom")

// settledValue is a Thenable that is not a *Future.
type settledValue struct {
	value any
	err   error
}

func (s settledValue) Then(onSettled func(any, error)) {
	onSettled(s.value, s.err)
}

func awaitCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestFuture_Resolved(t *testing.T) {
	f := Resolved(42)

	assert.True(t, f.Settled())
	v, err := f.Await(awaitCtx(t))
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	r, ok := f.Result()
	require.True(t, ok)
	assert.True(t, r.IsSuccess())
}

func TestFuture_Rejected(t *testing.T) {
	f := Rejected(errBoom)

	_, err := f.Await(awaitCtx(t))
	assert.Same(t, errBoom, err)
}

func TestFuture_RejectNil(t *testing.T) {
	f := New()
	f.Reject(nil)

	_, err := f.Await(awaitCtx(t))
	assert.ErrorIs(t, err, ErrNilRejection)
}

func TestFuture_SettlesOnce(t *testing.T) {
	f := New()
	f.Resolve(1)
	f.Resolve(2)
	f.Reject(errBoom)

	v, err := f.Await(awaitCtx(t))
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestFuture_PendingResult(t *testing.T) {
	f := New()

	_, ok := f.Result()
	assert.False(t, ok)
	assert.False(t, f.Settled())

	select {
	case <-f.Done():
		t.Fatal("pending future reported done")
	default:
	}

	f.Resolve(nil)
	<-f.Done()
}

func TestFuture_ThenOrder(t *testing.T) {
	f := New()

	var got []int
	for i := range 3 {
		f.Then(func(any, error) { got = append(got, i) })
	}
	assert.Empty(t, got)

	f.Resolve("x")
	assert.Equal(t, []int{0, 1, 2}, got)

	f.Then(func(v any, err error) {
		assert.Equal(t, "x", v)
		got = append(got, 3)
	})
	assert.Equal(t, []int{0, 1, 2, 3}, got)
}

func TestFuture_AdoptsThenable(t *testing.T) {
	v, err := Resolved(settledValue{value: "adopted"}).Await(awaitCtx(t))
	require.NoError(t, err)
	assert.Equal(t, "adopted", v)

	_, err = Resolved(settledValue{err: errBoom}).Await(awaitCtx(t))
	assert.Same(t, errBoom, err)
}

func TestFuture_AdoptsPendingFuture(t *testing.T) {
	inner := New()
	outer := Resolved(inner)
	assert.False(t, outer.Settled())

	inner.Resolve(7)

	v, err := outer.Await(awaitCtx(t))
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestFuture_SelfResolution(t *testing.T) {
	f := New()
	f.Resolve(f)

	_, err := f.Await(awaitCtx(t))
	assert.ErrorIs(t, err, rop.ErrSelfResolution)
}

func TestFuture_NilPointerIsPlainValue(t *testing.T) {
	var nilFuture *Future

	v, err := Resolved(nilFuture).Await(awaitCtx(t))
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestGo(t *testing.T) {
	f := Go(func() (any, error) {
		time.Sleep(5 * time.Millisecond)
		return "done", nil
	})

	v, err := f.Await(awaitCtx(t))
	require.NoError(t, err)
	assert.Equal(t, "done", v)
}

func TestGo_Panic(t *testing.T) {
	f := Go(func() (any, error) { panic(errBoom) })

	_, err := f.Await(awaitCtx(t))

	var pe *rop.PanicError
	require.ErrorAs(t, err, &pe)
	assert.ErrorIs(t, err, errBoom)
	assert.ErrorIs(t, err, rop.ErrStepPanicked)
}

func TestFuture_AwaitContextDone(t *testing.T) {
	f := New()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := f.Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	f.Resolve(1)
	v, err := f.Await(awaitCtx(t))
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestFuture_ConcurrentThenAndResolve(t *testing.T) {
	f := New()

	var registered, called sync.WaitGroup
	registered.Add(20)
	called.Add(20)
	for range 20 {
		go func() {
			defer registered.Done()
			f.Then(func(v any, err error) {
				assert.Equal(t, 1, v)
				called.Done()
			})
		}()
	}

	go f.Resolve(1)
	registered.Wait()
	called.Wait()
}

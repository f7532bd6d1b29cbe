package curry

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ib-77/flowless/pkg/rop"
	"github.com/ib-77/flowless/pkg/rop/compose"
	"github.com/ib-77/flowless/pkg/rop/future"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var errBoom = errors.New("boom")

func addMul(a, b, c int) int { return (a + b) * c }

// apply calls v, which must be a *Curried, and fails the test on error.
func apply(t *testing.T, v any, args ...any) any {
	t.Helper()
	c, ok := v.(*Curried)
	require.True(t, ok, "expected *Curried, got %T", v)

	out, err := c.Call(args...)
	require.NoError(t, err)
	return out
}

func await(t *testing.T, v any) (any, error) {
	t.Helper()
	require.True(t, rop.IsAsync(v), "expected an asynchronous result, got %T", v)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return future.Await(ctx, v)
}

func TestCurry_Groupings(t *testing.T) {
	c := Curry(addMul)

	assert.Equal(t, 25, apply(t, c, 2, 3, 5))
	assert.Equal(t, 25, apply(t, apply(t, c, 2), 3, 5))
	assert.Equal(t, 25, apply(t, apply(t, c, 2, 3), 5))
	assert.Equal(t, 25, apply(t, apply(t, apply(t, c, 2), 3), 5))
}

func TestCurry_EmptyCallReturnsEquivalent(t *testing.T) {
	c := Curry(addMul)

	same := apply(t, c)
	require.IsType(t, &Curried{}, same)
	assert.Equal(t, 25, apply(t, same, 2, 3, 5))
}

func TestCurry_PartialsAreIndependent(t *testing.T) {
	two := apply(t, Curry(addMul), 2)

	twoThree := apply(t, two, 3)
	twoFour := apply(t, two, 4)

	assert.Equal(t, 25, apply(t, twoThree, 5))
	assert.Equal(t, 30, apply(t, twoFour, 5))
	assert.Equal(t, []any{2}, two.(*Curried).Bound())
	assert.Equal(t, []any{2, 3}, twoThree.(*Curried).Bound())
}

func TestCurry_BoundIsACopy(t *testing.T) {
	two := apply(t, Curry(addMul), 2).(*Curried)

	bound := two.Bound()
	bound[0] = 100

	assert.Equal(t, 25, apply(t, two, 3, 5))
}

func TestCurry_SurplusArgumentsAreDropped(t *testing.T) {
	assert.Equal(t, 25, apply(t, Curry(addMul), 2, 3, 5, 7))
}

func TestCurry_AsyncArguments(t *testing.T) {
	partial := apply(t, Curry(addMul), 2, future.Resolved(3))
	require.IsType(t, &Curried{}, partial)

	v, err := await(t, apply(t, partial, 5))
	require.NoError(t, err)
	assert.Equal(t, 25, v)
}

func TestCurry_AsyncArgumentsSettleLater(t *testing.T) {
	late := future.Go(func() (any, error) {
		time.Sleep(5 * time.Millisecond)
		return 5, nil
	})

	v, err := await(t, apply(t, Curry(addMul), future.Resolved(2), 3, late))
	require.NoError(t, err)
	assert.Equal(t, 25, v)
}

func TestCurry_RejectedArgumentSkipsFunction(t *testing.T) {
	var calls atomic.Int32
	c := Curry(func(a, b int) int {
		calls.Add(1)
		return a + b
	})

	_, err := await(t, apply(t, c, 1, future.Rejected(errBoom)))

	assert.Same(t, errBoom, err)
	assert.Zero(t, calls.Load())
}

func TestCurry_SyncResultIsNotUnwrapped(t *testing.T) {
	inner := future.Resolved(1)
	c := Curry(func(a int) *future.Future { return inner })

	assert.Same(t, inner, apply(t, c, 1))
}

func TestCurry_AsyncResultIsFlattened(t *testing.T) {
	c := Curry(func(a int) *future.Future { return future.Resolved(a * 10) })

	v, err := await(t, apply(t, c, future.Resolved(4)))
	require.NoError(t, err)
	assert.Equal(t, 40, v)
}

func TestCurry_FunctionError(t *testing.T) {
	c := Curry(func(a int) (int, error) { return 0, errBoom })

	_, err := c.Call(1)
	assert.Same(t, errBoom, err)

	_, err = await(t, apply(t, c, future.Resolved(1)))
	assert.Same(t, errBoom, err)
}

func TestCurry_ZeroArity(t *testing.T) {
	c := Curry(func() string { return "now" })

	assert.Zero(t, c.Arity())
	assert.Equal(t, "now", apply(t, c))
}

func TestCurry_VariadicArity(t *testing.T) {
	sum := func(first int, rest ...int) int {
		for _, r := range rest {
			first += r
		}
		return first
	}

	c := Curry(sum)
	assert.Equal(t, 1, c.Arity())
	assert.Equal(t, 6, apply(t, c, 1, 2, 3))
}

func TestNew_Rejects(t *testing.T) {
	_, err := New(42)
	assert.ErrorIs(t, err, rop.ErrInvalidStep)

	_, err = New(func(args ...any) (any, error) { return nil, nil })
	assert.ErrorIs(t, err, rop.ErrInvalidStep)

	assert.Panics(t, func() { Curry(nil) })
}

func TestCurry_AsPipelineStep(t *testing.T) {
	double := func(a int) int { return a * 2 }
	partial := apply(t, Curry(addMul), 2, future.Resolved(3))

	out, err := compose.Compose(partial, double)(5)
	require.NoError(t, err)

	v, err := await(t, out)
	require.NoError(t, err)
	assert.Equal(t, 50, v)

	v, err = compose.Compose(Curry(addMul).Func(), double)(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 18, v)
}

func TestCurried_String(t *testing.T) {
	two := apply(t, Curry(addMul), 2).(*Curried)

	assert.Contains(t, two.String(), "1/3")
}

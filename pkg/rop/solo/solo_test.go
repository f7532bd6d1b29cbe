package solo

import (
	"errors"
	"testing"

	"github.com/ib-77/flowless/pkg/rop"
)

func TestTry_Success(t *testing.T) {
	t.Parallel()
	out := Try(func() (int, error) { return 5, nil })

	if !out.IsSuccess() || out.Result() != 5 {
		t.Fatalf("expected success with 5, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Result(), out.Err())
	}
}

func TestTry_Error(t *testing.T) {
	t.Parallel()
	err := errors.New("bad")
	out := Try(func() (int, error) { return 0, err })

	if out.IsSuccess() || !errors.Is(out.Err(), err) {
		t.Fatalf("expected failure 'bad', got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
}

func TestTry_Panic(t *testing.T) {
	t.Parallel()
	out := Try(func() (int, error) { panic("boom") })

	var pe *rop.PanicError
	if !errors.As(out.Err(), &pe) {
		t.Fatalf("expected *rop.PanicError, got %T", out.Err())
	}
	if pe.Value != "boom" || len(pe.Stack) == 0 {
		t.Fatalf("unexpected panic error: value=%v, stack=%d bytes", pe.Value, len(pe.Stack))
	}
	if !errors.Is(out.Err(), rop.ErrStepPanicked) {
		t.Fatalf("panic error should match ErrStepPanicked")
	}
}

func TestSwitch_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")

	called := false
	out := Switch(Fail[int](err), func(v int) rop.Result[string] {
		called = true
		return Succeed("x")
	})

	if called {
		t.Fatalf("onSuccess should not be called when input is a failure")
	}
	if out.IsSuccess() || out.Err() != err {
		t.Fatalf("expected failure 'boom', got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
}

func TestSwitch_SuccessPath(t *testing.T) {
	t.Parallel()
	out := Switch(Succeed(3), func(v int) rop.Result[int] { return Succeed(v * 2) })

	if !out.IsSuccess() || out.Result() != 6 {
		t.Fatalf("expected success with 6, got: success=%v, val=%v", out.IsSuccess(), out.Result())
	}
}

func TestRecover(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")

	var got error
	out := Recover(Fail[int](err), func(e error) rop.Result[int] {
		got = e
		return Succeed(-1)
	})
	if got != err || !out.IsSuccess() || out.Result() != -1 {
		t.Fatalf("expected recovery to -1, got: success=%v, val=%v, handler err=%v", out.IsSuccess(), out.Result(), got)
	}

	called := false
	out = Recover(Succeed(4), func(error) rop.Result[int] {
		called = true
		return Succeed(0)
	})
	if called || out.Result() != 4 {
		t.Fatalf("successful input should pass through, got %v", out.Result())
	}
}

func TestTee(t *testing.T) {
	t.Parallel()
	seen := 0
	out := Tee(Succeed(8), func(v int) { seen = v })

	if seen != 8 || out.Result() != 8 {
		t.Fatalf("expected side effect with 8, got seen=%d, val=%d", seen, out.Result())
	}

	seen = 0
	Tee(Fail[int](errors.New("x")), func(v int) { seen = 1 })
	if seen != 0 {
		t.Fatalf("side effect should not run on failure")
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	onSuccess := func(v int) string { return "ok" }
	onError := func(err error) string { return err.Error() }

	if got := Finally(Succeed(1), onSuccess, onError); got != "ok" {
		t.Fatalf("expected 'ok', got %q", got)
	}
	if got := Finally(Fail[int](errors.New("bad")), onSuccess, onError); got != "bad" {
		t.Fatalf("expected 'bad', got %q", got)
	}
}

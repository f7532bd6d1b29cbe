package solo

import (
	"github.com/ib-77/flowless/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Fail[T](err)
}

// Try calls onTryExecute and turns its (value, error) pair into a Result.
// A panic inside onTryExecute becomes a *rop.PanicError failure.
func Try[Out any](onTryExecute func() (Out, error)) (res rop.Result[Out]) {
	defer func() {
		if r := recover(); r != nil {
			res = rop.Fail[Out](rop.NewPanicError(r))
		}
	}()

	return rop.FromPair(onTryExecute())
}

// Switch runs onSuccess on the value of a successful input. Failures pass
// through untouched.
func Switch[In any, Out any](input rop.Result[In],
	onSuccess func(r In) rop.Result[Out]) rop.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return rop.FailFrom[In, Out](input)
}

// Recover runs onFailure on the error of a failed input and puts the track
// back on success. Successful inputs pass through untouched.
func Recover[T any](input rop.Result[T],
	onFailure func(err error) rop.Result[T]) rop.Result[T] {

	if input.IsSuccess() {
		return input
	}
	return onFailure(input.Err())
}

// Tee runs a side effect on a successful input.
func Tee[T any](input rop.Result[T], onSuccess func(r T)) rop.Result[T] {
	if input.IsSuccess() {
		onSuccess(input.Result())
	}
	return input
}

func Finally[In, Out any](input rop.Result[In],
	onSuccess func(r In) Out,
	onError func(err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return onError(input.Err())
}

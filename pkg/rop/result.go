package rop

// Result is the settled outcome of a step or of an asynchronous value:
// either a value or an error, never both.
type Result[T any] struct {
	result    T
	err       error
	isSuccess bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		isSuccess: true,
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
	}
}

// FromPair builds a Result from the usual (value, error) return pair.
func FromPair[T any](r T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Success(r)
}

// FailFrom carries a failure over to a Result of another type.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: false,
	}
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && r.err != nil
}

// IsEmpty reports a zero Result that was never settled.
func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isSuccess
}

// Unpack returns the Result as a (value, error) pair.
func (r Result[T]) Unpack() (T, error) {
	return r.result, r.err
}

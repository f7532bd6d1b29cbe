package rop

// Thenable is the minimal contract of an asynchronous value: it accepts a
// continuation that is invoked exactly once, when the value settles.
type Thenable interface {
	// Then registers onSettled. err is non-nil when the value was rejected.
	Then(onSettled func(value any, err error))
}

// Callable is implemented by values that can stand in for a function in a
// pipeline, such as a partially applied curried function.
type Callable interface {
	Call(args ...any) (any, error)
}

// ResultProvider is implemented by values that can report how they settled.
type ResultProvider[T any] interface {
	// Result returns the settled Result and whether settlement happened yet.
	Result() (Result[T], bool)
}

// IsAsync reports whether v is an asynchronous value. Nil interfaces and
// nil pointers are never asynchronous.
func IsAsync(v any) bool {
	if IsNil(v) {
		return false
	}
	_, ok := v.(Thenable)
	return ok
}

// AnyAsync reports whether at least one of values is asynchronous.
func AnyAsync(values ...any) bool {
	for _, v := range values {
		if IsAsync(v) {
			return true
		}
	}
	return false
}

package rop

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// ErrorCode is a machine-readable error code.
type ErrorCode string

// Failures raised while running a pipeline.
const (
	// ErrCodeStepFailed marks a step that returned an error.
	ErrCodeStepFailed ErrorCode = "STEP_FAILED"
	// ErrCodeStepPanicked marks a step that panicked.
	ErrCodeStepPanicked ErrorCode = "STEP_PANICKED"
	// ErrCodeArgumentRejected marks an asynchronous argument that was rejected.
	ErrCodeArgumentRejected ErrorCode = "ARGUMENT_REJECTED"
	// ErrCodeSelfResolution marks a future resolved with itself.
	ErrCodeSelfResolution ErrorCode = "SELF_RESOLUTION"
)

// Shape errors, raised before anything runs.
const (
	// ErrCodeInvalidStep marks a value that cannot be used as a function.
	ErrCodeInvalidStep ErrorCode = "INVALID_STEP"
	// ErrCodeInvalidArgument marks an argument that does not fit a parameter.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeUnsupportedCollection marks a collection ForEach cannot walk.
	ErrCodeUnsupportedCollection ErrorCode = "UNSUPPORTED_COLLECTION"
)

// Error is the error type raised by the library itself. Errors returned by
// user functions are passed through untouched.
type Error struct {
	// Code is a machine-readable error code.
	Code ErrorCode
	// Message is a human-readable error message.
	Message string
	// Details contains additional context for the error.
	Details map[string]any
	// Cause is the underlying error that caused this error.
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is matches any *Error with the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return t.Code == e.Code
	}
	return false
}

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// NewError creates a new *Error.
func NewError(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Sentinels for errors.Is checks.
var (
	ErrInvalidStep           = &Error{Code: ErrCodeInvalidStep}
	ErrInvalidArgument       = &Error{Code: ErrCodeInvalidArgument}
	ErrUnsupportedCollection = &Error{Code: ErrCodeUnsupportedCollection}
	ErrSelfResolution        = &Error{Code: ErrCodeSelfResolution}
	ErrStepPanicked          = &Error{Code: ErrCodeStepPanicked}
)

// PanicError is the failure produced by a function that panicked.
type PanicError struct {
	// Value is the value passed to panic.
	Value any
	// Stack is the stack trace captured at recovery time.
	Stack []byte
}

// NewPanicError wraps a recovered panic value. If the value already is an
// error it stays reachable through errors.Is and errors.As.
func NewPanicError(value any) *PanicError {
	return &PanicError{Value: value, Stack: debug.Stack()}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("recovered from panic: %v", e.Value)
}

func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

func (e *PanicError) Is(target error) bool {
	return target == ErrStepPanicked
}

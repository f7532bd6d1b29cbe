package core

import (
	"fmt"
	"reflect"
	"runtime"

	"github.com/ib-77/flowless/pkg/rop"
	"github.com/ib-77/flowless/pkg/rop/solo"
)

// UnknownArity is reported by functions that declare no parameter list, such
// as rop.Callable values and func(...any) (any, error).
const UnknownArity = -1

var (
	errorType   = reflect.TypeOf((*error)(nil)).Elem()
	dynamicType = reflect.TypeOf((func(...any) (any, error))(nil))
)

// Fn is a function value normalised to a single calling convention.
// The zero value is not usable; build one with Adapt.
type Fn struct {
	name     string
	arity    int
	variadic bool
	call     func(args []any) (any, error)
}

// Adapt normalises f. Accepted values are any Go func whose results are
// (), (T), (error) or (T, error), any func convertible to
// func(...any) (any, error), and rop.Callable values.
func Adapt(f any) (Fn, error) {
	if rop.IsNil(f) {
		return Fn{}, rop.NewError(rop.ErrCodeInvalidStep, "nil function")
	}

	if c, ok := f.(rop.Callable); ok {
		return Fn{
			name:  fmt.Sprintf("%T", f),
			arity: UnknownArity,
			call:  func(args []any) (any, error) { return c.Call(args...) },
		}, nil
	}

	rv := reflect.ValueOf(f)
	rt := rv.Type()
	if rt.Kind() != reflect.Func {
		return Fn{}, rop.NewError(rop.ErrCodeInvalidStep, "%T is not a function", f).
			WithDetail("type", rt.String())
	}

	name := runtime.FuncForPC(rv.Pointer()).Name()

	if rt.ConvertibleTo(dynamicType) {
		dyn := rv.Convert(dynamicType).Interface().(func(...any) (any, error))
		return Fn{
			name:     name,
			arity:    UnknownArity,
			variadic: true,
			call:     func(args []any) (any, error) { return dyn(args...) },
		}, nil
	}

	if err := checkResults(rt); err != nil {
		return Fn{}, err.WithDetail("function", name)
	}

	arity := rt.NumIn()
	if rt.IsVariadic() {
		arity--
	}

	return Fn{
		name:     name,
		arity:    arity,
		variadic: rt.IsVariadic(),
		call: func(args []any) (any, error) {
			in, err := convertArgs(rt, args)
			if err != nil {
				return nil, err.WithDetail("function", name)
			}
			return unpackResults(rt, rv.Call(in))
		},
	}, nil
}

// MustAdapt is like Adapt but panics on shape errors.
func MustAdapt(f any) Fn {
	fn, err := Adapt(f)
	if err != nil {
		panic(err)
	}
	return fn
}

func (f Fn) Name() string { return f.name }

// IsZero reports an Fn that was not built by Adapt.
func (f Fn) IsZero() bool { return f.call == nil }

// Arity is the number of fixed parameters, or UnknownArity.
func (f Fn) Arity() int { return f.arity }

func (f Fn) Variadic() bool { return f.variadic }

// Call invokes the function. Missing arguments become zero values, surplus
// arguments of a non-variadic function are dropped. Panics are recovered
// into *rop.PanicError failures.
func (f Fn) Call(args ...any) rop.Result[any] {
	return solo.Try(func() (any, error) {
		return f.call(args)
	})
}

func checkResults(rt reflect.Type) *rop.Error {
	switch rt.NumOut() {
	case 0, 1:
		return nil
	case 2:
		if rt.Out(1) == errorType {
			return nil
		}
	}
	return rop.NewError(rop.ErrCodeInvalidStep,
		"unsupported results %s: want (), (T), (error) or (T, error)", rt.String())
}

func convertArgs(rt reflect.Type, args []any) ([]reflect.Value, *rop.Error) {
	fixed := rt.NumIn()
	if rt.IsVariadic() {
		fixed--
	}

	in := make([]reflect.Value, 0, max(fixed, len(args)))
	for i := 0; i < fixed; i++ {
		var arg any
		if i < len(args) {
			arg = args[i]
		}
		v, err := convertArg(i, arg, rt.In(i))
		if err != nil {
			return nil, err
		}
		in = append(in, v)
	}

	if rt.IsVariadic() {
		elem := rt.In(fixed).Elem()
		for i := fixed; i < len(args); i++ {
			v, err := convertArg(i, args[i], elem)
			if err != nil {
				return nil, err
			}
			in = append(in, v)
		}
	}

	return in, nil
}

func convertArg(pos int, arg any, to reflect.Type) (reflect.Value, *rop.Error) {
	if arg == nil {
		return reflect.Zero(to), nil
	}

	v := reflect.ValueOf(arg)
	if v.Type().AssignableTo(to) {
		return v, nil
	}

	return reflect.Value{}, rop.NewError(rop.ErrCodeInvalidArgument,
		"argument %d: %s is not assignable to %s", pos, v.Type(), to).
		WithDetail("position", pos)
}

func unpackResults(rt reflect.Type, out []reflect.Value) (any, error) {
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		if rt.Out(0) == errorType {
			return nil, asError(out[0])
		}
		return out[0].Interface(), nil
	default:
		if err := asError(out[1]); err != nil {
			return nil, err
		}
		return out[0].Interface(), nil
	}
}

func asError(v reflect.Value) error {
	if v.IsNil() {
		return nil
	}
	err := v.Interface().(error)
	if rop.IsNil(err) {
		return nil
	}
	return err
}

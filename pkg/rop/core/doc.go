// Package core contains the function plumbing shared by compose and curry:
// Adapt normalises arbitrary Go functions, rop.Callable values and dynamic
// func(...any) (any, error) values into an Fn that knows its arity, converts
// loosely supplied arguments and reports failures and panics as a
// rop.Result. It holds no pipeline logic of its own.
package core

// Package solo contains single-value, synchronous railway primitives that
// operate on rop.Result. The pipeline runner folds its steps with them:
// Switch keeps the value track, Recover moves a failure back onto it.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Try: call a function (Out, error), converting errors and panics to failures
// - Switch: move from Result[In] to Result[Out] on success
// - Recover: move a failure back to success via a handler
// - Tee: side effect on success
// - Finally: reduce to a concrete value via success/error handlers
package solo

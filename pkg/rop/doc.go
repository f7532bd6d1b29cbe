// Package rop holds the shared vocabulary of flowless: the asynchronous value
// capability (Thenable) and its detector IsAsync, the Callable capability,
// the Result record a step or future settles to, and the library's error
// taxonomy.
//
// The sub-packages build on it:
//   - future: a settle-once asynchronous value implementing Thenable
//   - compose: the pipeline runner and its Catch marker
//   - curry: argument-resolution aware currying
//   - iterate: Range and ForEach helpers
//   - lite: a pipeline run over many inputs on worker lines
//   - solo: railway primitives over Result used by the runner
//   - core: the reflection adapter that lets plain Go functions act as steps
package rop

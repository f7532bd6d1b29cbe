// Package compose runs pipelines of ordinary functions that keep working
// when the values flowing through them are asynchronous.
//
// Compose(step1, ..., stepN) returns a Func. Calling it feeds the arguments
// to step1 and each result to the next step. As long as no argument and no
// result is asynchronous (see rop.IsAsync) the whole run is synchronous and
// no future is ever created. The first asynchronous value switches the rest
// of the run to deferred mode: the remaining steps become continuations and
// the Func returns one *future.Future for the final value.
//
// Failures, whether a returned error, a panic or a rejected asynchronous
// value, travel to the next Marker built with Catch. Its handler receives
// the error and its result becomes the input of the step after the Marker.
// Without a Marker the error is returned, or the future rejects.
//
//	pipeline := compose.Compose(
//		parse,
//		compose.Catch(func(err error) int { return 0 }),
//		lookup,        // may return a *future.Future
//		render,
//	)
//	out, err := pipeline(input)
//	html, err := future.AwaitAs[string](ctx, out)
//
// Every invocation is traced as a flowless.pipeline span and counted by the
// flowless.pipeline.invocations counter of the configured OpenTelemetry
// providers. Debug logs go through package logger.
package compose

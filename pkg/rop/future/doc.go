// Package future implements the asynchronous value the rest of flowless
// reacts to: a settle-once Future satisfying rop.Thenable.
//
// Futures are produced by Go (run a function on its own goroutine), New
// plus Resolve/Reject (settle by hand), FromChan and FromResultChan (bridge
// a channel) and All (join several values). Callers leave the asynchronous
// world with Await, AwaitAs or ToChan.
//
//	f := future.Go(func() (any, error) { return fetchUser(id) })
//	user, err := future.AwaitAs[User](ctx, f)
//
// Any other type implementing rop.Thenable interoperates: Resolve, Await
// and All adopt it the same way they adopt a *Future.
package future

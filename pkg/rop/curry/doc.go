// Package curry turns an n-ary function into a chain of partial
// applications that also waits for asynchronous arguments.
//
// Arguments may be supplied in any grouping:
//
//	c := curry.Curry(func(a, b, c int) int { return (a + b) * c })
//	c.Call(2, 3, 5)                  // 25
//	p, _ := c.Call(2)                // *Curried
//	p.(*curry.Curried).Call(3, 5)    // 25
//
// When one of the collected arguments is asynchronous the result is a
// *future.Future:
//
//	v, _ := c.Call(2, future.Resolved(3), 5) // settles to 25
//
// A *Curried implements rop.Callable, so it can be used directly as a step
// of compose.Compose.
package curry

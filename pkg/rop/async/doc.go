// Package async adapts the Outcome combinators to a single pending
// computation. A Pending is composed lazily: MapAsync, BindAsync,
// EnsureAsync, TapAsync, TapErrorAsync and MapErrorAsync only describe the
// next step, and Await runs the steps strictly one after another.
//
// The wrapped computation is always awaited to completion before a callback
// starts, and a failure short-circuits without invoking the callback.
// Cancellation is the business of the context passed to Await and of the
// computation itself; this package never starts work on its own.
//
// Producers typically look like:
//
//	promise, pending := async.Create[User, error]()
//	go func() {
//	   promise.Fulfill(loadUser(id))
//	}()
//	return pending
package async

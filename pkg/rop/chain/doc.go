// Package chain provides a fluent wrapper around Outcome[T, E]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// It composes Bind, Map, Ensure, Tap and Match behind a convenient
// Chain[T, E] type that also carries a context for the callbacks.
//
// Key operations:
// - Start/FromValue: begin a chain from an Outcome or a value
// - Then: switch to a new Outcome[U, E] via a function
// - ThenTry: call a (U, error) function on chains whose error type is error
// - Map: transform the successful value (T -> U)
// - Ensure: fail the chain when a predicate does not hold
// - Tap/TapError: run side effects without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain

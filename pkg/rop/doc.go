// Package rop defines Outcome[T, E], an immutable value holding either a
// success value of type T or an ordered, non-empty list of errors of type E.
//
// Same-type operations are methods (Ensure, Where, Filter, Tap, TapError,
// GetValueOr...). Operations that change a type parameter live in package
// solo, the Optional type in package option and the asynchronous variants in
// package async.
//
// Misuse such as building a failure without errors or casting a success to
// a failure panics with one of the Err* values declared here; expected
// failures are always returned as data.
package rop

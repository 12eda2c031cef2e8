// Package solo contains single-value, synchronous combinators over
// rop.Outcome[T, E] that change one of its type parameters. Same-type
// operations (Ensure, Where, Tap, GetValueOr...) live on Outcome itself.
//
// Highlights:
// - Map/MapError: transform the value or every accumulated error
// - Bind: switch to another Outcome, never called on a failure
// - Select/SelectMany/SelectManyProject: query-style aliases of Map and Bind
// - Match: reduce an Outcome to a plain value
// - Combine2..Combine5/CombineAll: accumulate errors of several outcomes
// - Try/FromError/FailOnError: bridge Go (value, error) functions
package solo

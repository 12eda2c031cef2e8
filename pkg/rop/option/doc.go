// Package option provides Optional[T], a value that is either present or
// absent, together with its combinators and the conversions to and from
// rop.Outcome.
package option

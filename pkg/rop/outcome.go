package rop

import (
	"fmt"
	"slices"
)

// Outcome holds either a success value of type T or a non-empty, ordered list
// of errors of type E. Instances are immutable: every operation returns a new
// Outcome and error slices are copied on the way in and on the way out.
type Outcome[T, E any] struct {
	value T
	errs  []E
	ok    bool
}

// Success creates a successful Outcome. E comes first so that only the error
// type has to be spelled out: Success[string](42).
func Success[E, T any](v T) Outcome[T, E] {
	return Outcome[T, E]{
		value: v,
		ok:    true,
	}
}

// Failure creates a failed Outcome with at least one error.
func Failure[T, E any](err E, more ...E) Outcome[T, E] {
	errs := make([]E, 0, len(more)+1)
	errs = append(errs, err)
	errs = append(errs, more...)

	return Outcome[T, E]{
		errs: errs,
	}
}

// FailureOf creates a failed Outcome from a slice of errors.
// It panics with ErrEmptyFailure if errs is empty.
func FailureOf[T, E any](errs []E) Outcome[T, E] {
	if len(errs) == 0 {
		panic(ErrEmptyFailure)
	}

	return Outcome[T, E]{
		errs: slices.Clone(errs),
	}
}

// FailureDefault creates a failed Outcome whose single error is the zero value of E.
func FailureDefault[T, E any]() Outcome[T, E] {
	var zero E
	return Failure[T](zero)
}

// CastFailure re-types a failed Outcome to another value type, keeping its errors.
// Casting a successful Outcome is a programming error and panics with ErrSuccessCast.
func CastFailure[U, T, E any](from Outcome[T, E]) Outcome[U, E] {
	if from.ok {
		panic(ErrSuccessCast)
	}

	return Outcome[U, E]{
		errs: slices.Clone(from.errs),
	}
}

func (r Outcome[T, E]) IsSuccess() bool {
	return r.ok
}

func (r Outcome[T, E]) IsFailure() bool {
	return !r.ok && len(r.errs) > 0
}

// IsEmpty reports whether r is the zero Outcome, which no constructor produces.
func (r Outcome[T, E]) IsEmpty() bool {
	return !r.ok && len(r.errs) == 0
}

// Value returns the success value and true, or the zero value and false.
func (r Outcome[T, E]) Value() (T, bool) {
	if !r.ok {
		var zero T
		return zero, false
	}
	return r.value, true
}

// MustValue returns the success value and panics with ErrNoValue otherwise.
func (r Outcome[T, E]) MustValue() T {
	if !r.ok {
		panic(ErrNoValue)
	}
	return r.value
}

// Errors returns a copy of the accumulated errors, nil for a success.
func (r Outcome[T, E]) Errors() []E {
	if r.ok {
		return nil
	}
	return slices.Clone(r.errs)
}

func (r Outcome[T, E]) FirstError() (E, bool) {
	if r.ok || len(r.errs) == 0 {
		var zero E
		return zero, false
	}
	return r.errs[0], true
}

// Ensure turns a success into a failure with err when pred does not hold.
// pred is never evaluated on a failure.
func (r Outcome[T, E]) Ensure(pred func(T) bool, err E) Outcome[T, E] {
	if !r.ok {
		return r
	}

	if pred(r.value) {
		return r
	}

	return Failure[T](err)
}

// Where is the query-syntax spelling of Ensure.
func (r Outcome[T, E]) Where(pred func(T) bool, err E) Outcome[T, E] {
	return r.Ensure(pred, err)
}

// Filter is Where with the zero value of E as the error.
func (r Outcome[T, E]) Filter(pred func(T) bool) Outcome[T, E] {
	var zero E
	return r.Ensure(pred, zero)
}

// Tap runs action on the success value and returns r unchanged.
func (r Outcome[T, E]) Tap(action func(T)) Outcome[T, E] {
	if r.ok {
		action(r.value)
	}
	return r
}

// TapError runs action with a copy of the errors and returns r unchanged.
func (r Outcome[T, E]) TapError(action func([]E)) Outcome[T, E] {
	if !r.ok {
		action(slices.Clone(r.errs))
	}
	return r
}

func (r Outcome[T, E]) GetValueOrDefault() T {
	v, _ := r.Value()
	return v
}

func (r Outcome[T, E]) GetValueOr(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

// GetValueOrElse calls factory only when r is a failure.
func (r Outcome[T, E]) GetValueOrElse(factory func() T) T {
	if r.ok {
		return r.value
	}
	return factory()
}

// With returns a copy of a success carrying v. Failures are returned as is.
func (r Outcome[T, E]) With(v T) Outcome[T, E] {
	if !r.ok {
		return r
	}
	return Success[E](v)
}

func (r Outcome[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return fmt.Sprintf("Failure(%v)", r.errs)
}

// Equal reports whether a and b are in the same state with equal contents.
func Equal[T, E comparable](a, b Outcome[T, E]) bool {
	return EqualFunc(a, b,
		func(x, y T) bool { return x == y },
		func(x, y E) bool { return x == y })
}

// EqualFunc is Equal for types that are not comparable.
func EqualFunc[T, E any](a, b Outcome[T, E], eqValue func(T, T) bool, eqErr func(E, E) bool) bool {
	if a.ok != b.ok {
		return false
	}
	if a.ok {
		return eqValue(a.value, b.value)
	}
	return slices.EqualFunc(a.errs, b.errs, eqErr)
}

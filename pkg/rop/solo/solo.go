package solo

import (
	"github.com/ib-77/ropfx/pkg/rop"
)

// Map transforms the success value. Failures keep their errors and only
// change their value type.
func Map[In, Out, E any](input rop.Outcome[In, E],
	onSuccess func(r In) Out) rop.Outcome[Out, E] {

	if v, ok := input.Value(); ok {
		return rop.Success[E](onSuccess(v))
	}
	return rop.CastFailure[Out](input)
}

// MapError transforms every error of a failure, keeping their order.
func MapError[T, E, F any](input rop.Outcome[T, E],
	onError func(err E) F) rop.Outcome[T, F] {

	if v, ok := input.Value(); ok {
		return rop.Success[F](v)
	}
	if input.IsEmpty() {
		return rop.Outcome[T, F]{}
	}

	errs := input.Errors()
	mapped := make([]F, 0, len(errs))
	for _, e := range errs {
		mapped = append(mapped, onError(e))
	}
	return rop.FailureOf[T](mapped)
}

// Bind switches to the Outcome returned by onSuccess. It is never called on a failure.
func Bind[In, Out, E any](input rop.Outcome[In, E],
	onSuccess func(r In) rop.Outcome[Out, E]) rop.Outcome[Out, E] {

	if v, ok := input.Value(); ok {
		return onSuccess(v)
	}
	return rop.CastFailure[Out](input)
}

func Select[In, Out, E any](input rop.Outcome[In, E], selector func(r In) Out) rop.Outcome[Out, E] {
	return Map(input, selector)
}

func SelectMany[In, Out, E any](input rop.Outcome[In, E],
	selector func(r In) rop.Outcome[Out, E]) rop.Outcome[Out, E] {
	return Bind(input, selector)
}

// SelectManyProject binds to a second Outcome and projects both values into one.
func SelectManyProject[In, Mid, Out, E any](input rop.Outcome[In, E],
	selector func(r In) rop.Outcome[Mid, E],
	project func(r In, m Mid) Out) rop.Outcome[Out, E] {

	return Bind(input, func(r In) rop.Outcome[Out, E] {
		return Map(selector(r), func(m Mid) Out {
			return project(r, m)
		})
	})
}

// Match invokes exactly one of the handlers and returns its result.
func Match[In, E, Out any](input rop.Outcome[In, E],
	onSuccess func(r In) Out,
	onFailure func(errs []E) Out) Out {

	if v, ok := input.Value(); ok {
		return onSuccess(v)
	}
	return onFailure(input.Errors())
}

// Try calls a (value, error) function on the success value and converts a
// returned error into a failure.
func Try[In, Out any](input rop.Outcome[In, error],
	onTryExecute func(r In) (Out, error)) rop.Outcome[Out, error] {

	return Bind(input, func(r In) rop.Outcome[Out, error] {
		return FromError(onTryExecute(r))
	})
}

// FromError lifts a Go (value, error) pair. A joined error becomes one failure
// entry per joined error.
func FromError[T any](v T, err error) rop.Outcome[T, error] {
	if rop.IsNil(err) {
		return rop.Success[error](v)
	}

	errs := rop.GetErrors(err)
	if len(errs) == 0 {
		errs = []error{err}
	}
	return rop.FailureOf[T](errs)
}

// FailOnError turns a success into a failure when maybeErr returns an error.
func FailOnError[T any](input rop.Outcome[T, error],
	maybeErr func(in T) error) rop.Outcome[T, error] {

	return Bind(input, func(r T) rop.Outcome[T, error] {
		return FromError(r, maybeErr(r))
	})
}

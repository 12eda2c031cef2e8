package option

import (
	"github.com/ib-77/ropfx/pkg/rop"
)

func Map[In, Out any](o Optional[In], f func(In) Out) Optional[Out] {
	if v, ok := o.Get(); ok {
		return Some(f(v))
	}
	return None[Out]()
}

// Bind is never called on an absent Optional.
func Bind[In, Out any](o Optional[In], f func(In) Optional[Out]) Optional[Out] {
	if v, ok := o.Get(); ok {
		return f(v)
	}
	return None[Out]()
}

func Select[In, Out any](o Optional[In], selector func(In) Out) Optional[Out] {
	return Map(o, selector)
}

func SelectMany[In, Out any](o Optional[In], selector func(In) Optional[Out]) Optional[Out] {
	return Bind(o, selector)
}

func Match[T, R any](o Optional[T], onSome func(T) R, onNone func() R) R {
	if v, ok := o.Get(); ok {
		return onSome(v)
	}
	return onNone()
}

// ToOutcome maps a present value to a success and an absent one to a failure with err.
func ToOutcome[T, E any](o Optional[T], err E) rop.Outcome[T, E] {
	if v, ok := o.Get(); ok {
		return rop.Success[E](v)
	}
	return rop.Failure[T](err)
}

// FromOutcome drops the errors of a failure.
func FromOutcome[T, E any](r rop.Outcome[T, E]) Optional[T] {
	if v, ok := r.Value(); ok {
		return Some(v)
	}
	return None[T]()
}

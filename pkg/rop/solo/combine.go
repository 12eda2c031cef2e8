package solo

import (
	"github.com/ib-77/ropfx/pkg/rop"
)

type Tuple2[T1, T2 any] struct {
	V1 T1
	V2 T2
}

type Tuple3[T1, T2, T3 any] struct {
	V1 T1
	V2 T2
	V3 T3
}

type Tuple4[T1, T2, T3, T4 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
}

type Tuple5[T1, T2, T3, T4, T5 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
}

// failures is the part of an Outcome combine needs regardless of its value type.
type failures[E any] interface {
	IsSuccess() bool
	IsEmpty() bool
	Errors() []E
}

// collect gathers the errors of every failed input in input order.
// A zero Outcome is neither a success nor a failure and panics with
// rop.ErrEmptyFailure.
func collect[E any](inputs ...failures[E]) []E {
	var errs []E
	for _, in := range inputs {
		if in.IsEmpty() {
			panic(rop.ErrEmptyFailure)
		}
		if !in.IsSuccess() {
			errs = append(errs, in.Errors()...)
		}
	}
	return errs
}

// Combine2 returns both values when both inputs succeed. Otherwise it returns
// the errors of all failed inputs, not only the first one.
func Combine2[T1, T2, E any](r1 rop.Outcome[T1, E], r2 rop.Outcome[T2, E]) rop.Outcome[Tuple2[T1, T2], E] {
	if errs := collect[E](r1, r2); len(errs) > 0 {
		return rop.FailureOf[Tuple2[T1, T2]](errs)
	}
	return rop.Success[E](Tuple2[T1, T2]{r1.MustValue(), r2.MustValue()})
}

func Combine3[T1, T2, T3, E any](r1 rop.Outcome[T1, E], r2 rop.Outcome[T2, E],
	r3 rop.Outcome[T3, E]) rop.Outcome[Tuple3[T1, T2, T3], E] {

	if errs := collect[E](r1, r2, r3); len(errs) > 0 {
		return rop.FailureOf[Tuple3[T1, T2, T3]](errs)
	}
	return rop.Success[E](Tuple3[T1, T2, T3]{r1.MustValue(), r2.MustValue(), r3.MustValue()})
}

func Combine4[T1, T2, T3, T4, E any](r1 rop.Outcome[T1, E], r2 rop.Outcome[T2, E],
	r3 rop.Outcome[T3, E], r4 rop.Outcome[T4, E]) rop.Outcome[Tuple4[T1, T2, T3, T4], E] {

	if errs := collect[E](r1, r2, r3, r4); len(errs) > 0 {
		return rop.FailureOf[Tuple4[T1, T2, T3, T4]](errs)
	}
	return rop.Success[E](Tuple4[T1, T2, T3, T4]{
		r1.MustValue(), r2.MustValue(), r3.MustValue(), r4.MustValue()})
}

func Combine5[T1, T2, T3, T4, T5, E any](r1 rop.Outcome[T1, E], r2 rop.Outcome[T2, E],
	r3 rop.Outcome[T3, E], r4 rop.Outcome[T4, E],
	r5 rop.Outcome[T5, E]) rop.Outcome[Tuple5[T1, T2, T3, T4, T5], E] {

	if errs := collect[E](r1, r2, r3, r4, r5); len(errs) > 0 {
		return rop.FailureOf[Tuple5[T1, T2, T3, T4, T5]](errs)
	}
	return rop.Success[E](Tuple5[T1, T2, T3, T4, T5]{
		r1.MustValue(), r2.MustValue(), r3.MustValue(), r4.MustValue(), r5.MustValue()})
}

// CombineAll accumulates the errors of all failed inputs. When every input
// succeeds it returns the value of the first one, not all of them.
// It panics with *rop.ArityError when called without inputs and with
// rop.ErrEmptyFailure when an input is a zero Outcome.
func CombineAll[T, E any](inputs ...rop.Outcome[T, E]) rop.Outcome[T, E] {
	if len(inputs) == 0 {
		panic(&rop.ArityError{Op: "CombineAll", Got: 0, Min: 1})
	}

	var errs []E
	for _, in := range inputs {
		if in.IsEmpty() {
			panic(rop.ErrEmptyFailure)
		}
		errs = append(errs, in.Errors()...)
	}

	if len(errs) > 0 {
		return rop.FailureOf[T](errs)
	}
	return inputs[0]
}

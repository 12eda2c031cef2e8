package async

import (
	"context"

	"github.com/ib-77/ropfx/pkg/rop"
	"github.com/ib-77/ropfx/pkg/rop/solo"
)

// then awaits p and, on success only, hands the value to onSuccess.
// Failures are re-typed and returned without calling onSuccess.
func then[In, Out, E any](p Pending[In, E],
	onSuccess func(ctx context.Context, v In) (rop.Outcome[Out, E], error)) Pending[Out, E] {

	return Pending[Out, E]{await: func(ctx context.Context) (rop.Outcome[Out, E], error) {
		r, err := p.Await(ctx)
		if err != nil {
			return rop.Outcome[Out, E]{}, err
		}

		v, ok := r.Value()
		if !ok {
			return rop.CastFailure[Out](r), nil
		}
		return onSuccess(ctx, v)
	}}
}

func MapAsync[In, Out, E any](p Pending[In, E],
	onSuccess func(ctx context.Context, r In) Out) Pending[Out, E] {

	return then(p, func(ctx context.Context, v In) (rop.Outcome[Out, E], error) {
		return rop.Success[E](onSuccess(ctx, v)), nil
	})
}

// BindAsync awaits the Pending returned by onSuccess.
func BindAsync[In, Out, E any](p Pending[In, E],
	onSuccess func(ctx context.Context, r In) Pending[Out, E]) Pending[Out, E] {

	return then(p, func(ctx context.Context, v In) (rop.Outcome[Out, E], error) {
		return onSuccess(ctx, v).Await(ctx)
	})
}

func EnsureAsync[T, E any](p Pending[T, E],
	pred func(ctx context.Context, r T) bool, err E) Pending[T, E] {

	return then(p, func(ctx context.Context, v T) (rop.Outcome[T, E], error) {
		if pred(ctx, v) {
			return rop.Success[E](v), nil
		}
		return rop.Failure[T](err), nil
	})
}

func TapAsync[T, E any](p Pending[T, E],
	action func(ctx context.Context, r T)) Pending[T, E] {

	return then(p, func(ctx context.Context, v T) (rop.Outcome[T, E], error) {
		action(ctx, v)
		return rop.Success[E](v), nil
	})
}

func TapErrorAsync[T, E any](p Pending[T, E],
	action func(ctx context.Context, errs []E)) Pending[T, E] {

	return Pending[T, E]{await: func(ctx context.Context) (rop.Outcome[T, E], error) {
		r, err := p.Await(ctx)
		if err != nil {
			return r, err
		}

		if r.IsFailure() {
			action(ctx, r.Errors())
		}
		return r, nil
	}}
}

func MapErrorAsync[T, E, F any](p Pending[T, E],
	onError func(ctx context.Context, err E) F) Pending[T, F] {

	return Pending[T, F]{await: func(ctx context.Context) (rop.Outcome[T, F], error) {
		r, err := p.Await(ctx)
		if err != nil {
			return rop.Outcome[T, F]{}, err
		}

		return solo.MapError(r, func(e E) F {
			return onError(ctx, e)
		}), nil
	}}
}

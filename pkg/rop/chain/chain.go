package chain

import (
	"context"

	"github.com/ib-77/ropfx/pkg/rop"
	"github.com/ib-77/ropfx/pkg/rop/solo"
)

// Chain wraps a rop.Outcome with context to enable fluent chaining
type Chain[T, E any] struct {
	ctx    context.Context
	result rop.Outcome[T, E]
}

// Start creates a new chain from a rop.Outcome
func Start[T, E any](ctx context.Context, result rop.Outcome[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[E, T any](ctx context.Context, value T) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    ctx,
		result: rop.Success[E](value),
	}
}

// Result returns the underlying rop.Outcome
func (c *Chain[T, E]) Result() rop.Outcome[T, E] {
	return c.result
}

// Then chains a function that returns rop.Outcome[U, E]
func Then[T, U, E any](c *Chain[T, E], onSuccess func(context.Context, T) rop.Outcome[U, E]) *Chain[U, E] {
	return &Chain[U, E]{
		ctx: c.ctx,
		result: solo.Bind(c.result, func(v T) rop.Outcome[U, E] {
			return onSuccess(c.ctx, v)
		}),
	}
}

// ThenTry chains a Go style (value, error) function. A returned error
// becomes a failure; a joined error contributes one entry per error.
func ThenTry[T, U any](c *Chain[T, error], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U, error] {
	return &Chain[U, error]{
		ctx: c.ctx,
		result: solo.Try(c.result, func(v T) (U, error) {
			return tryOnSuccess(c.ctx, v)
		}),
	}
}

// Map chains a pure transformation function
func Map[T, U, E any](c *Chain[T, E], onSuccess func(context.Context, T) U) *Chain[U, E] {
	return &Chain[U, E]{
		ctx: c.ctx,
		result: solo.Map(c.result, func(v T) U {
			return onSuccess(c.ctx, v)
		}),
	}
}

// Ensure turns the chain into a failure with err when pred does not hold
func (c *Chain[T, E]) Ensure(pred func(context.Context, T) bool, err E) *Chain[T, E] {
	return &Chain[T, E]{
		ctx: c.ctx,
		result: c.result.Ensure(func(v T) bool {
			return pred(c.ctx, v)
		}, err),
	}
}

// Tap performs a side effect without changing the result
func (c *Chain[T, E]) Tap(onSuccess func(context.Context, T)) *Chain[T, E] {
	return &Chain[T, E]{
		ctx: c.ctx,
		result: c.result.Tap(func(v T) {
			onSuccess(c.ctx, v)
		}),
	}
}

// TapError performs a side effect on failure without changing the result
func (c *Chain[T, E]) TapError(onFailure func(context.Context, []E)) *Chain[T, E] {
	return &Chain[T, E]{
		ctx: c.ctx,
		result: c.result.TapError(func(errs []E) {
			onFailure(c.ctx, errs)
		}),
	}
}

// Finally collapses the chain into a final value using solo.Match
func Finally[T, E, U any](c *Chain[T, E], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, []E) U) U {
	return solo.Match(c.result,
		func(v T) U { return onSuccess(c.ctx, v) },
		func(errs []E) U { return onFailure(c.ctx, errs) })
}

package async

import (
	"context"
	"errors"
	"sync"

	"github.com/ib-77/ropfx/pkg/rop"
)

// ErrNoOutcome is returned by Await when the underlying channel was closed
// without delivering an Outcome.
var ErrNoOutcome = errors.New("async: computation finished without an outcome")

// Pending is a single computation that eventually yields an Outcome.
// Composing a Pending runs nothing; work happens on Await.
type Pending[T, E any] struct {
	await func(ctx context.Context) (rop.Outcome[T, E], error)
}

// Await blocks until the computation is done. The returned error is only
// ever a context error or ErrNoOutcome; failures of the computation itself
// are carried by the Outcome.
func (p Pending[T, E]) Await(ctx context.Context) (rop.Outcome[T, E], error) {
	if p.await == nil {
		return rop.Outcome[T, E]{}, ErrNoOutcome
	}
	return p.await(ctx)
}

// Resolved wraps an Outcome that is already available.
func Resolved[T, E any](r rop.Outcome[T, E]) Pending[T, E] {
	return Pending[T, E]{await: func(context.Context) (rop.Outcome[T, E], error) {
		return r, nil
	}}
}

// FromChan wraps an already running producer. The channel is consumed by
// the first Await.
func FromChan[T, E any](ch <-chan rop.Outcome[T, E]) Pending[T, E] {
	return Pending[T, E]{await: func(ctx context.Context) (rop.Outcome[T, E], error) {
		select {
		case r, ok := <-ch:
			if !ok {
				return rop.Outcome[T, E]{}, ErrNoOutcome
			}
			return r, nil
		case <-ctx.Done():
			return rop.Outcome[T, E]{}, ctx.Err()
		}
	}}
}

type settled[T, E any] struct {
	done     chan struct{}
	settleIt sync.Once
	result   rop.Outcome[T, E]
}

// Promise is the producer side of a Pending created with Create.
type Promise[T, E any] struct {
	s *settled[T, E]
}

// Create returns a Promise and the Pending it completes. Unlike FromChan the
// Pending can be awaited any number of times.
func Create[T, E any]() (Promise[T, E], Pending[T, E]) {
	s := &settled[T, E]{done: make(chan struct{})}

	return Promise[T, E]{s: s}, Pending[T, E]{await: func(ctx context.Context) (rop.Outcome[T, E], error) {
		select {
		case <-s.done:
			return s.result, nil
		case <-ctx.Done():
			return rop.Outcome[T, E]{}, ctx.Err()
		}
	}}
}

// Fulfill completes the Pending. Only the first call has an effect; it
// reports whether this call was the one that settled it.
func (p Promise[T, E]) Fulfill(r rop.Outcome[T, E]) (ok bool) {
	p.s.settleIt.Do(func() {
		ok = true
		p.s.result = r
		close(p.s.done)
	})
	return ok
}

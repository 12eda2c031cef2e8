package option

import (
	"fmt"
	"iter"

	"github.com/ib-77/ropfx/pkg/rop"
)

// Optional holds either a present value of type T or nothing.
// The zero value is absent.
type Optional[T any] struct {
	value   T
	present bool
}

// Absent is the type of the Nothing marker.
type Absent struct{}

// Nothing converts to an absent Optional of any type through FromAbsent.
var Nothing = Absent{}

func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromNullable is absent for nil interfaces, pointers, maps, slices,
// channels and functions, and present for everything else.
func FromNullable[T any](v T) Optional[T] {
	if rop.IsNil(v) {
		return None[T]()
	}
	return Some(v)
}

// FromPtr dereferences p when it is not nil.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func FromAbsent[T any](Absent) Optional[T] {
	return None[T]()
}

func (o Optional[T]) IsSome() bool {
	return o.present
}

func (o Optional[T]) IsNone() bool {
	return !o.present
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Optional[T]) GetValueOrDefault() T {
	return o.value
}

func (o Optional[T]) GetValueOr(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// GetValueOrElse calls factory only when o is absent.
func (o Optional[T]) GetValueOrElse(factory func() T) T {
	if o.present {
		return o.value
	}
	return factory()
}

// Where keeps the value only if pred holds.
func (o Optional[T]) Where(pred func(T) bool) Optional[T] {
	if o.present && pred(o.value) {
		return o
	}
	return None[T]()
}

func (o Optional[T]) IfPresent(action func(T)) {
	if o.present {
		action(o.value)
	}
}

func (o Optional[T]) IfAbsent(action func()) {
	if !o.present {
		action()
	}
}

// Or returns o when present and alt otherwise.
func (o Optional[T]) Or(alt Optional[T]) Optional[T] {
	if o.present {
		return o
	}
	return alt
}

// All yields the value once when present and nothing otherwise.
// Each call returns a fresh sequence.
func (o Optional[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.present {
			yield(o.value)
		}
	}
}

func (o Optional[T]) String() string {
	if o.present {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

func Equal[T comparable](a, b Optional[T]) bool {
	if a.present != b.present {
		return false
	}
	return !a.present || a.value == b.value
}

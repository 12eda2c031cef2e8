package rop

type ValueProvider[T any] interface {
	// Value returns the successful value and whether there is one
	Value() (T, bool)
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

// WithErrors defines an interface for types that can return a value or a list of errors
type WithErrors[T, E any] interface {
	ValueProvider[T]
	// Errors returns the accumulated errors if the operation failed
	Errors() []E
}

var _ WithErrors[int, error] = Outcome[int, error]{}

package rop

import (
	"errors"
	"fmt"
)

// Usage errors. They are raised with panic because they signal a programming
// mistake, never an expected failure.
var (
	ErrEmptyFailure = errors.New("rop: failure requires at least one error")
	ErrSuccessCast  = errors.New("rop: cannot cast a success to a failure")
	ErrNoValue      = errors.New("rop: failure has no value")
	ErrArity        = errors.New("rop: not enough inputs")
)

// ArityError is raised when a variadic combinator gets fewer inputs than it needs.
type ArityError struct {
	Op  string
	Got int
	Min int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("rop: %s needs at least %d input(s), got %d", e.Op, e.Min, e.Got)
}

func (e *ArityError) Is(target error) bool {
	return target == ErrArity
}

package web

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultSuccessCode = http.StatusOK
	defaultFailureCode = http.StatusBadRequest
)

// Option configures how an Outcome is turned into a Response.
type Option[E any] func(*settings[E])

type settings[E any] struct {
	successCode int
	failureCode int
	mapError    func(E) int
	encodeError func(E) any
	logger      *zap.Logger
	newID       func() uuid.UUID
}

func newSettings[E any](opts []Option[E]) *settings[E] {
	s := &settings[E]{
		successCode: defaultSuccessCode,
		failureCode: defaultFailureCode,
		logger:      zap.NewNop(),
		newID:       uuid.New,
		encodeError: EncodeError[E],
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// WithSuccessCode sets the status used for successes. Default 200.
func WithSuccessCode[E any](code int) Option[E] {
	return func(s *settings[E]) { s.successCode = code }
}

// WithFailureCode sets the status used for failures when no mapper is set. Default 400.
func WithFailureCode[E any](code int) Option[E] {
	return func(s *settings[E]) { s.failureCode = code }
}

// WithErrorMapper derives the failure status from the first error.
func WithErrorMapper[E any](mapError func(E) int) Option[E] {
	return func(s *settings[E]) { s.mapError = mapError }
}

// WithErrorEncoder replaces EncodeError when errors are written to the body.
func WithErrorEncoder[E any](encode func(E) any) Option[E] {
	return func(s *settings[E]) {
		if encode != nil {
			s.encodeError = encode
		}
	}
}

func WithLogger[E any](logger *zap.Logger) Option[E] {
	return func(s *settings[E]) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRequestID replaces uuid.New as the source of request ids.
func WithRequestID[E any](newID func() uuid.UUID) Option[E] {
	return func(s *settings[E]) { s.newID = newID }
}

// StatusCoder is implemented by errors that know their HTTP status.
type StatusCoder interface {
	HTTPStatus() int
}

// StatusFromError is an error mapper that uses HTTPStatus when the error
// provides one and fallback otherwise.
func StatusFromError[E any](fallback int) func(E) int {
	return func(err E) int {
		if sc, ok := any(err).(StatusCoder); ok && sc.HTTPStatus() > 0 {
			return sc.HTTPStatus()
		}
		return fallback
	}
}

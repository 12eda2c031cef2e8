package web

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ib-77/ropfx/pkg/rop"
	"github.com/ib-77/ropfx/pkg/rop/async"
)

const RequestIDHeader = "X-Request-Id"

// Envelope is the response body: data on success, errors on failure.
// Errors are rendered through EncodeError unless WithErrorEncoder says otherwise.
type Envelope[T, E any] struct {
	Data   *T  `json:"data,omitempty"`
	Errors []E `json:"errors,omitempty"`

	encode func(E) any
}

func (e Envelope[T, E]) MarshalJSON() ([]byte, error) {
	body := struct {
		Data   *T    `json:"data,omitempty"`
		Errors []any `json:"errors,omitempty"`
	}{Data: e.Data}

	encode := e.encode
	if encode == nil {
		encode = EncodeError[E]
	}
	for _, err := range e.Errors {
		body.Errors = append(body.Errors, encode(err))
	}
	return json.Marshal(body)
}

// EncodeError is the default error encoder. A json.Marshaler is kept as is,
// an error becomes its message and anything else is marshaled unchanged.
func EncodeError[E any](err E) any {
	if rop.IsNil(err) {
		return nil
	}
	switch v := any(err).(type) {
	case json.Marshaler:
		return v
	case error:
		return v.Error()
	}
	return err
}

type Response[T, E any] struct {
	Status    int
	Body      Envelope[T, E]
	RequestID uuid.UUID
}

// ToResponse converts r into a Response. A failure takes its status from the
// configured error mapper applied to its first error, or from the failure
// code when there is no mapper.
func ToResponse[T, E any](r rop.Outcome[T, E], opts ...Option[E]) Response[T, E] {
	return toResponse(r, newSettings(opts))
}

// ToResponseAsync awaits p and converts the result like ToResponse. The error
// is only ever the one returned by p.Await.
func ToResponseAsync[T, E any](ctx context.Context, p async.Pending[T, E],
	opts ...Option[E]) (Response[T, E], error) {

	s := newSettings(opts)
	r, err := p.Await(ctx)
	if err != nil {
		s.logger.Debug("outcome not available", zap.Error(err))
		return Response[T, E]{}, err
	}
	return toResponse(r, s), nil
}

func toResponse[T, E any](r rop.Outcome[T, E], s *settings[E]) Response[T, E] {
	resp := Response[T, E]{RequestID: s.newID()}
	resp.Body.encode = s.encodeError

	if v, ok := r.Value(); ok {
		resp.Status = s.successCode
		resp.Body.Data = &v
		return resp
	}

	resp.Status = s.failureCode
	resp.Body.Errors = r.Errors()
	if first, ok := r.FirstError(); ok && s.mapError != nil {
		resp.Status = s.mapError(first)
	}

	s.logger.Debug("failure response",
		zap.String("request_id", resp.RequestID.String()),
		zap.Int("status", resp.Status),
		zap.Int("errors", len(resp.Body.Errors)))

	return resp
}

// Write encodes resp as JSON.
func Write[T, E any](w http.ResponseWriter, resp Response[T, E]) error {
	w.Header().Set("Content-Type", "application/json")
	if resp.RequestID != uuid.Nil {
		w.Header().Set(RequestIDHeader, resp.RequestID.String())
	}
	w.WriteHeader(resp.Status)
	return json.NewEncoder(w).Encode(resp.Body)
}

// Handler adapts a function producing an Outcome into an http.HandlerFunc.
func Handler[T, E any](produce func(r *http.Request) rop.Outcome[T, E], opts ...Option[E]) http.HandlerFunc {
	s := newSettings(opts)
	return func(w http.ResponseWriter, req *http.Request) {
		write(w, toResponse(produce(req), s), s)
	}
}

// HandlerAsync is Handler for producers that return a Pending. The request
// context bounds the wait; when it ends first the handler answers 503.
func HandlerAsync[T, E any](produce func(r *http.Request) async.Pending[T, E], opts ...Option[E]) http.HandlerFunc {
	s := newSettings(opts)
	return func(w http.ResponseWriter, req *http.Request) {
		r, err := produce(req).Await(req.Context())
		if err != nil {
			s.logger.Warn("request abandoned before outcome", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		write(w, toResponse(r, s), s)
	}
}

func write[T, E any](w http.ResponseWriter, resp Response[T, E], s *settings[E]) {
	if err := Write(w, resp); err != nil {
		s.logger.Error("cannot write response",
			zap.String("request_id", resp.RequestID.String()),
			zap.Error(err))
	}
}

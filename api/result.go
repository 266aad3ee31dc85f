package api

import (
	"encoding/json"
	"fmt"
	"io"
)

// Result is the in-process view of a response envelope: a tagged union
// of Ok(data, meta) and Err(error, meta). Unlike the raw Response, the
// data cannot be read under the error variant.
type Result[T any] struct {
	ok   bool
	data T
	err  *ErrorInfo
	meta *Meta
}

func Ok[T any](data T, meta *Meta) Result[T] {
	return Result[T]{ok: true, data: data, meta: meta}
}

func Err[T any](errInfo *ErrorInfo, meta *Meta) Result[T] {
	if errInfo == nil {
		errInfo = NewError("", "unknown error")
	}
	return Result[T]{err: errInfo, meta: meta}
}

func (r Result[T]) IsOk() bool {
	return r.ok
}

// Data returns the payload and whether the result is the Ok variant.
func (r Result[T]) Data() (T, bool) {
	return r.data, r.ok
}

// Err returns the failure detail, nil for the Ok variant.
func (r Result[T]) Err() *ErrorInfo {
	return r.err
}

func (r Result[T]) Meta() *Meta {
	return r.meta
}

// Get collapses the union into Go's (value, error) convention.
func (r Result[T]) Get() (T, error) {
	if r.ok {
		return r.data, nil
	}
	var zero T
	return zero, r.err
}

// Response converts back to the wire envelope.
func (r Result[T]) Response() *Response[T] {
	if r.ok {
		data := r.data
		return &Response[T]{
			Success: true,
			Data:    &data,
			Meta:    r.meta,
		}
	}
	return &Response[T]{
		Success: false,
		Error:   r.err,
		Meta:    r.meta,
	}
}

// FromResponse validates a decoded envelope and converts it into a
// Result. An invalid envelope (see Response.Validate) is a producer
// bug and is reported as a plain error, not an Err result.
func FromResponse[T any](resp *Response[T]) (Result[T], error) {
	if err := resp.Validate(); err != nil {
		return Result[T]{}, fmt.Errorf("invalid response envelope: %w", err)
	}
	if !resp.Success {
		return Err[T](resp.Error, resp.Meta), nil
	}
	var data T
	if resp.Data != nil {
		data = *resp.Data
	}
	return Ok(data, resp.Meta), nil
}

// Decode reads a JSON envelope and converts it into a Result.
func Decode[T any](r io.Reader) (Result[T], error) {
	var resp Response[T]
	if err := json.NewDecoder(r).Decode(&resp); err != nil {
		return Result[T]{}, fmt.Errorf("failed to decode response: %w", err)
	}
	return FromResponse(&resp)
}

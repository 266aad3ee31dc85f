package api

import (
	"fmt"
	"runtime/debug"
	"sync/atomic"
	"time"
)

// Response is the wire envelope every server call conforms to.
// Exactly one of Data or Error is populated, consistent with Success.
// Prefer converting to a Result via FromResponse instead of branching
// on the fields directly.
type Response[T any] struct {
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
	Data    *T         `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
	Meta    *Meta      `json:"meta,omitempty"`
}

// ErrorInfo carries all producer-side failure detail.
type ErrorInfo struct {
	Message string         `json:"message"`
	Code    string         `json:"code,omitempty"`
	Details map[string]any `json:"details,omitempty"`
	Stack   string         `json:"stack,omitempty"`
}

func NewError(code string, message string) *ErrorInfo {
	return &ErrorInfo{
		Code:    code,
		Message: message,
	}
}

// Error implements the error interface so an ErrorInfo can flow
// through ordinary error returns.
func (e *ErrorInfo) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Code != "" {
		return fmt.Sprintf("%s (code %s)", e.Message, e.Code)
	}
	return e.Message
}

func (e *ErrorInfo) WithDetail(key string, value any) *ErrorInfo {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

var stackTraces atomic.Bool

// SetStackTraces toggles stack capture on error envelopes. Leave off in
// production: Stack must never reach a production response.
func SetStackTraces(enabled bool) {
	stackTraces.Store(enabled)
}

// WithStack records the current stack on the error when stack traces
// are enabled, otherwise it does nothing.
func (e *ErrorInfo) WithStack() *ErrorInfo {
	if stackTraces.Load() {
		e.Stack = string(debug.Stack())
	}
	return e
}

type Meta struct {
	Timestamp  string          `json:"timestamp"`
	RequestID  string          `json:"requestId,omitempty"`
	Pagination *PaginationMeta `json:"pagination,omitempty"`
}

func NewMeta(requestID string) *Meta {
	return &Meta{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		RequestID: requestID,
	}
}

func (m *Meta) WithPagination(p *PaginationMeta) *Meta {
	m.Pagination = p
	return m
}

// Validate checks the producer contract: the error field is present iff
// the envelope is a failure, a failure carries no data, and pagination
// metadata (when present) is internally consistent. A success envelope
// with absent data is tolerated for operations without a payload.
func (r *Response[T]) Validate() error {
	if r.Success {
		if r.Error != nil {
			return fmt.Errorf("success response must not carry error: %s", r.Error.Message)
		}
	} else {
		if r.Error == nil {
			return fmt.Errorf("failure response missing error")
		}
		if r.Data != nil {
			return fmt.Errorf("failure response must not carry data")
		}
	}
	if r.Meta != nil && r.Meta.Pagination != nil {
		if err := r.Meta.Pagination.Validate(); err != nil {
			return err
		}
	}
	return nil
}

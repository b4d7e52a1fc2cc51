// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Structured error values for contract-violation panics.

package api

import "fmt"

// ErrorCode identifies the specific contract a caller violated.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota

	// ErrCodeOutOfRange: slice/split bounds or fatal indexed access past
	// the view length.
	ErrCodeOutOfRange

	// ErrCodeInvalidArgument: malformed construction parameters, e.g. a
	// zero partition count or a non-positive element stride.
	ErrCodeInvalidArgument

	// ErrCodeZeroSized: view construction over a zero-sized element type.
	ErrCodeZeroSized

	// ErrCodeOverflow: integer overflow while combining strides or
	// computing a view extent.
	ErrCodeOverflow

	// ErrCodeConsumed: use of an exclusive view handle after a consuming
	// operation.
	ErrCodeConsumed

	// ErrCodeInvalidated: access through a view whose backing region has
	// been invalidated (arena generation mismatch).
	ErrCodeInvalidated
)

func (c ErrorCode) String() string {
	switch c {
	case ErrCodeOK:
		return "ok"
	case ErrCodeOutOfRange:
		return "out of range"
	case ErrCodeInvalidArgument:
		return "invalid argument"
	case ErrCodeZeroSized:
		return "zero-sized element"
	case ErrCodeOverflow:
		return "overflow"
	case ErrCodeConsumed:
		return "consumed handle"
	case ErrCodeInvalidated:
		return "invalidated region"
	default:
		return "unknown"
	}
}

// Error is the structured value carried by contract-violation panics.
// It satisfies the error interface so recover-based test harnesses can
// inspect it, but the library itself never recovers: every Error indicates
// a caller bug, not an operational failure.
type Error struct {
	Code    ErrorCode
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("strided: %s: %s", e.Code, e.Message)
}

// Violationf builds the Error carried by a contract-violation panic.
func Violationf(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the ErrorCode from a recovered panic value, or ErrCodeOK
// if the value did not originate from this package.
func CodeOf(v any) ErrorCode {
	if e, ok := v.(*Error); ok {
		return e.Code
	}
	return ErrCodeOK
}

package httperr

import (
	"context"
	"errors"
)

// Stable error codes returned by the booking engine.
const (
	CodeInvalidRange     = "invalid_range"
	CodeUnknownClient    = "unknown_client"
	CodeOverlapConflict  = "overlap_conflict"
	CodeNotFound         = "not_found"
	CodeAlreadyCancelled = "already_cancelled"
	CodeDuplicateEmail   = "duplicate_email"
	CodeUnavailable      = "unavailable"

	CodeInvalidRequest    = "invalid_request"
	CodeRequestInProgress = "request_in_progress"
	CodeInternal          = "internal_error"
)

type BusinessError struct {
	Code string
	Err  error
}

func (e BusinessError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Err.Error()
	}
	return e.Code
}

func (e BusinessError) Unwrap() error {
	return e.Err
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// Wrap keeps the underlying cause for logs while exposing only the code to callers.
func Wrap(code string, err error) error {
	return BusinessError{Code: code, Err: err}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// CodeOf returns the business code carried by err, or CodeInternal.
func CodeOf(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return CodeUnavailable
	}
	return CodeInternal
}

package apierr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks a missing entity; the wrapping message names the id.
	ErrNotFound = errors.New("not found")
	// ErrValidation marks out-of-range or malformed input.
	ErrValidation = errors.New("validation error")
	// ErrConflict is reserved for optimistic-concurrency checks.
	ErrConflict = errors.New("conflict")
	// ErrGateway marks an external collaborator failure. Never fatal to the
	// calling transaction.
	ErrGateway = errors.New("gateway error")
	// ErrStorage marks a transaction/commit failure. Always fatal.
	ErrStorage = errors.New("storage error")
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func NotFound(entity string, id fmt.Stringer) error {
	return fmt.Errorf("%s %s: %w", entity, id.String(), ErrNotFound)
}

func Validation(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrValidation)...)
}

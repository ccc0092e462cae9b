package guard

import "errors"

// Code is the classification code carried by every guard error.
const Code = "GUARD_EXCEPTION"

var (
	// ErrGuard matches any error produced by this package via errors.Is.
	ErrGuard = errors.New("guard violation")

	// ErrInvalidRange is returned when min is greater than max.
	ErrInvalidRange = errors.New("invalid range")

	// ErrEmptyValue is returned when a length or magnitude is requested for an empty value.
	ErrEmptyValue = errors.New("empty value")
)

// Error is a precondition violation reported by IsBetween.
// It is immutable once constructed.
type Error struct {
	message string
	err     error
}

func newError(cause error, message string) *Error {
	return &Error{message: message, err: cause}
}

// Code returns the classification code, always the Code constant.
func (e *Error) Code() string {
	return Code
}

// Message returns the stable, human-readable description of the violation.
func (e *Error) Message() string {
	return e.message
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.message
}

// Unwrap returns the condition sentinel (ErrInvalidRange or ErrEmptyValue).
func (e *Error) Unwrap() error {
	return e.err
}

// Is reports whether target is ErrGuard.
func (e *Error) Is(target error) bool {
	return target == ErrGuard
}

// AsGuardError extracts *Error from an error chain.
func AsGuardError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}

	var guardErr *Error
	if errors.As(err, &guardErr) {
		return guardErr, true
	}

	return nil, false
}

func IsGuardError(err error) bool {
	_, ok := AsGuardError(err)
	return ok
}

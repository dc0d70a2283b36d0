package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Error kinds shared by all services. Handlers map these onto HTTP status
// codes; anything not matching one of them is treated as a storage failure.
var (
	ErrNotFound    = errors.New("resource not found")
	ErrForbidden   = errors.New("not authorized")
	ErrInvalid     = errors.New("invalid request")
	ErrCredentials = errors.New("invalid email or password")
)

// DomainError attaches a caller-visible reason to one of the error kinds.
type DomainError struct {
	kind   error
	reason string
}

func (e *DomainError) Error() string { return e.reason }

// Unwrap lets errors.Is match the underlying kind.
func (e *DomainError) Unwrap() error { return e.kind }

// NotFoundError builds a NotFound error with the given reason.
func NotFoundError(format string, args ...interface{}) error {
	return &DomainError{kind: ErrNotFound, reason: fmt.Sprintf(format, args...)}
}

// ForbiddenError builds an Authorization error with the given reason.
func ForbiddenError(format string, args ...interface{}) error {
	return &DomainError{kind: ErrForbidden, reason: fmt.Sprintf(format, args...)}
}

// ValidationError builds a Validation error with the given reason.
func ValidationError(format string, args ...interface{}) error {
	return &DomainError{kind: ErrInvalid, reason: fmt.Sprintf(format, args...)}
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// notFoundOr maps a missing row onto a NotFound error and passes every other
// storage error through untouched.
func notFoundOr(err error, format string, args ...interface{}) error {
	if isRecordNotFound(err) {
		return NotFoundError(format, args...)
	}
	return err
}

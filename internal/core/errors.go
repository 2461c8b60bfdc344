package core

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// ErrorKind classifies specifier parse failures.
type ErrorKind string

const (
	ErrMalformedSpecifier   ErrorKind = "malformed specifier"
	ErrInvalidVersion       ErrorKind = "invalid version"
	ErrInvalidUseDependency ErrorKind = "invalid use dependency"
	ErrConstraintViolation  ErrorKind = "constraint violation"
)

// ParseError reports the first offending byte offset within the input.
// It is attached as the cause of the coded error returned to callers,
// so errors.As can recover the kind and offset.
type ParseError struct {
	Kind   ErrorKind
	Input  string
	Offset int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s at offset %d in %q", e.Kind, e.Reason, e.Offset, e.Input)
}

func parseError(kind ErrorKind, input string, offset int, reason string) error {
	cause := &ParseError{Kind: kind, Input: input, Offset: offset, Reason: reason}
	code := errbuilder.CodeInvalidArgument
	if kind == ErrConstraintViolation {
		code = errbuilder.CodeFailedPrecondition
	}
	return errbuilder.New().
		WithCode(code).
		WithMsg(cause.Error()).
		WithCause(cause)
}

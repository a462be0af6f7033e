// internal/errors/errors.go
package errors

import (
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Kind classifies an FstError the way the caller is expected to react to it.
type Kind string

const (
	Format                Kind = "FormatError"
	IO                    Kind = "IOError"
	TypeMismatch          Kind = "TypeMismatchError"
	PreconditionViolation Kind = "PreconditionError"
)

// Location pinpoints where in a text-format input an error occurred.
type Location struct {
	File   string
	Line   int
	Column int
}

// FstError is the error type returned or panicked across package boundaries.
type FstError struct {
	Kind     Kind
	Message  string
	Location Location
	Cause    error
}

// Error implements the error interface.
func (e *FstError) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s: %s", e.Kind, e.Message))

	if e.Location.File != "" {
		sb.WriteString(fmt.Sprintf("\n  at %s:%d:%d", e.Location.File, e.Location.Line, e.Location.Column))
	}

	if e.Cause != nil {
		sb.WriteString(fmt.Sprintf("\n  caused by: %v", e.Cause))
	}

	return sb.String()
}

// Unwrap exposes the wrapped cause for errors.Is/errors.As.
func (e *FstError) Unwrap() error { return e.Cause }

// New creates a plain FstError with no location or cause.
func New(kind Kind, message string) *FstError {
	return &FstError{Kind: kind, Message: message}
}

// Newf creates an FstError from a format string.
func Newf(kind Kind, format string, args ...interface{}) *FstError {
	return New(kind, fmt.Sprintf(format, args...))
}

// At creates an FstError with a source location attached, for malformed
// text-format input where the offending line/column is known.
func At(kind Kind, file string, line, column int, message string) *FstError {
	return &FstError{
		Kind:     kind,
		Message:  message,
		Location: Location{File: file, Line: line, Column: column},
	}
}

// Wrap attaches a cause to a new FstError. The cause is annotated with
// github.com/pkg/errors so a stack trace survives across the I/O boundary
// it crossed.
func Wrap(kind Kind, cause error, message string) *FstError {
	return &FstError{
		Kind:    kind,
		Message: message,
		Cause:   pkgerrors.WithStack(cause),
	}
}

// WithLocation returns a copy of e with the given source location attached.
func (e *FstError) WithLocation(file string, line, column int) *FstError {
	cp := *e
	cp.Location = Location{File: file, Line: line, Column: column}
	return &cp
}

// IsKind reports whether err is an *FstError of the given kind.
func IsKind(err error, kind Kind) bool {
	fe, ok := err.(*FstError)
	return ok && fe.Kind == kind
}

// Precondition panics with a Precondition-kind FstError. The core data
// model (internal/fst) uses this for programmer errors — operating on a
// non-existent StateId, deleting the start state, and the like — which the
// specification treats as fatal assertions rather than recoverable errors.
func Precondition(format string, args ...interface{}) {
	panic(Newf(PreconditionViolation, format, args...))
}

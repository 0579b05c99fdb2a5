// Package errors wraps the stdlib errors helpers and github.com/pkg/errors behind one import,
// so call sites get errors.Is/As and stack-annotated wrapping from the same package.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns an error that formats as the given text.
func New(text string) error {
	return stderrors.New(text)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Wrap annotates err with a stack trace and message. A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// WithStack annotates err with the caller's stack trace. A nil err stays nil.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

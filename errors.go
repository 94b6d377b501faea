package fpe

import (
	"errors"
	"fmt"
)

var (
	// ErrArity is matched by every *ArityError.
	ErrArity = errors.New("fpe: unsupported arity")

	// ErrComposition is matched by every *CompositionError.
	ErrComposition = errors.New("fpe: invalid composition")

	// ErrBind is matched by every *BindError.
	ErrBind = errors.New("fpe: cannot bind arguments")

	// ErrNotUnary is returned when a composition chain or the identity is
	// called with anything other than a single positional argument.
	ErrNotUnary = errors.New("fpe: composed functions take exactly one argument")

	// ErrNotCallable is returned by Call and CallKw for values that cannot
	// be invoked.
	ErrNotCallable = errors.New("fpe: value is not callable")
)

// ArityError reports a callable that cannot be curried.
//
// It is returned at construction time by Curry, CurryN and Describe, never
// when a curried value is called.
type ArityError struct {
	Name   string
	Reason string
}

func (e *ArityError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("fpe: cannot curry: %s", e.Reason)
	}
	return fmt.Sprintf("fpe: cannot curry %s: %s", e.Name, e.Reason)
}

func (e *ArityError) Unwrap() error { return ErrArity }

// CompositionError reports a composition that cannot be built.
type CompositionError struct {
	Reason string
}

func (e *CompositionError) Error() string {
	return "fpe: cannot compose: " + e.Reason
}

func (e *CompositionError) Unwrap() error { return ErrComposition }

// BindError is returned by a declared Function when the supplied arguments
// do not match its parameter list.
//
// Curried values and chains never produce a BindError themselves: they pass
// it through unchanged from the function they wrap.
type BindError struct {
	Name   string
	Reason string
}

func (e *BindError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Reason)
}

func (e *BindError) Unwrap() error { return ErrBind }

func arityErrorf(name, format string, args ...any) error {
	return &ArityError{Name: name, Reason: fmt.Sprintf(format, args...)}
}

func compositionErrorf(format string, args ...any) error {
	return &CompositionError{Reason: fmt.Sprintf(format, args...)}
}

func bindErrorf(name, format string, args ...any) error {
	return &BindError{Name: name, Reason: fmt.Sprintf(format, args...)}
}

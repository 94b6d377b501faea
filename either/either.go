// Package either implements Either = Left | Right, a result that is one of
// two alternatives. By convention Right holds a successful result and Left
// the reason of a failure.
//
// Either is a Monad and a Semigroup (see package typeclass).
package either

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/KasperOmsK/fpe"
	"github.com/KasperOmsK/fpe/typeclass"
)

// Either holds a Left or a Right value. The zero value is Left(nil).
type Either struct {
	right bool
	value any
}

var (
	_ typeclass.Monad[Either]     = Either{}
	_ typeclass.Semigroup[Either] = Either{}
)

// ErrAlternativeType is returned by FromLeft and FromRight when the
// alternative does not have the type of the wrapped value.
var ErrAlternativeType = errors.New("either: alternative has a different type")

func Left(v any) Either  { return Either{value: v} }
func Right(v any) Either { return Either{right: true, value: v} }

// Pure wraps v in Right, unless v already is an Either.
func Pure(v any) Either {
	if e, ok := v.(Either); ok {
		return e
	}
	return Right(v)
}

// Pure is the package level Pure; the receiver is ignored.
func (Either) Pure(v any) Either { return Pure(v) }

func (e Either) IsLeft() bool  { return !e.right }
func (e Either) IsRight() bool { return e.right }

// Value returns the wrapped value, whichever side it is on.
func (e Either) Value() any { return e.value }

// Fmap maps fn over a Right value. A Left is returned unchanged and fn is
// not called.
func (e Either) Fmap(fn any) (Either, error) {
	if !e.right {
		return e, nil
	}
	v, err := fpe.Call(fn, e.value)
	if err != nil {
		return Either{}, err
	}
	return Right(v), nil
}

// Apply maps the function held by a Right over other. A Left is returned
// unchanged.
func (e Either) Apply(other Either) (Either, error) {
	if !e.right {
		return e, nil
	}
	if !fpe.IsCallable(e.value) {
		return Either{}, fmt.Errorf("%w: Right(%T)", typeclass.ErrNotFunction, e.value)
	}
	return other.Fmap(e.value)
}

// Bind returns fn(v) for Right(v), where fn must return an Either. A Left is
// returned unchanged.
func (e Either) Bind(fn any) (Either, error) {
	if !e.right {
		return e, nil
	}
	out, err := fpe.Call(fn, e.value)
	if err != nil {
		return Either{}, err
	}
	next, ok := out.(Either)
	if !ok {
		return Either{}, fmt.Errorf("%w: bind returned %T, want either.Either", typeclass.ErrWrongType, out)
	}
	return next, nil
}

// Append returns the first Right of e and other, or other when both are
// Left.
func (e Either) Append(other Either) (Either, error) {
	if e.right {
		return e, nil
	}
	return other, nil
}

// Equal reports whether e and other are on the same side with equal values.
func (e Either) Equal(other Either) bool {
	return e.right == other.right && typeclass.Equal(e.value, other.value)
}

func (e Either) String() string {
	if e.right {
		return fmt.Sprintf("Right(%v)", e.value)
	}
	return fmt.Sprintf("Left(%v)", e.value)
}

// Lefts returns the values of the Left elements of es, in order.
func Lefts(es []Either) []any {
	var out []any
	for _, e := range es {
		if !e.right {
			out = append(out, e.value)
		}
	}
	return out
}

// Rights returns the values of the Right elements of es, in order.
func Rights(es []Either) []any {
	var out []any
	for _, e := range es {
		if e.right {
			out = append(out, e.value)
		}
	}
	return out
}

// Fold calls onLeft or onRight with the wrapped value, depending on the side
// of e.
func Fold(onLeft, onRight any, e Either) (any, error) {
	for _, fn := range []any{onLeft, onRight} {
		if !fpe.IsCallable(fn) {
			return nil, fmt.Errorf("%w: %T", fpe.ErrNotCallable, fn)
		}
	}
	if e.right {
		return fpe.Call(onRight, e.value)
	}
	return fpe.Call(onLeft, e.value)
}

// FromLeft returns the value of a Left, or alternative for a Right.
// alternative must have the type of the wrapped value.
func FromLeft(alternative any, e Either) (any, error) {
	return from(false, alternative, e)
}

// FromRight returns the value of a Right, or alternative for a Left.
// alternative must have the type of the wrapped value.
func FromRight(alternative any, e Either) (any, error) {
	return from(true, alternative, e)
}

func from(right bool, alternative any, e Either) (any, error) {
	if reflect.TypeOf(alternative) != reflect.TypeOf(e.value) {
		return nil, fmt.Errorf("%w: %T, want %T", ErrAlternativeType, alternative, e.value)
	}
	if e.right == right {
		return e.value, nil
	}
	return alternative, nil
}

var (
	// CurriedFold is Fold as a curried three-argument function.
	CurriedFold = fpe.Must(fpe.Curry(fpe.Declare("either",
		[]fpe.Param{fpe.Required("onLeft"), fpe.Required("onRight"), fpe.Required("e")},
		func(args []any) (any, error) {
			e, err := asEither(args[2])
			if err != nil {
				return nil, err
			}
			return Fold(args[0], args[1], e)
		})))

	// CurriedFromLeft is FromLeft as a curried two-argument function.
	CurriedFromLeft = fpe.Must(fpe.Curry(fpe.Declare("fromLeft",
		[]fpe.Param{fpe.Required("alternative"), fpe.Required("e")},
		func(args []any) (any, error) {
			e, err := asEither(args[1])
			if err != nil {
				return nil, err
			}
			return FromLeft(args[0], e)
		})))

	// CurriedFromRight is FromRight as a curried two-argument function.
	CurriedFromRight = fpe.Must(fpe.Curry(fpe.Declare("fromRight",
		[]fpe.Param{fpe.Required("alternative"), fpe.Required("e")},
		func(args []any) (any, error) {
			e, err := asEither(args[1])
			if err != nil {
				return nil, err
			}
			return FromRight(args[0], e)
		})))
)

func asEither(v any) (Either, error) {
	e, ok := v.(Either)
	if !ok {
		return Either{}, fmt.Errorf("%w: %T, want either.Either", typeclass.ErrWrongType, v)
	}
	return e, nil
}

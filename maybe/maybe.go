// Package maybe implements the optional value Maybe = Nothing | Just.
//
// Maybe represents a computation that may not produce a result:
//
//	func div(a, b int) maybe.Maybe {
//		if b == 0 {
//			return maybe.Nothing
//		}
//		return maybe.Just(a / b)
//	}
//
// Maybe is a Monad and a Monoid (see package typeclass). Functions passed to
// Fmap, Apply and Bind are any value fpe.Call accepts.
package maybe

import (
	"fmt"

	"github.com/KasperOmsK/fpe"
	"github.com/KasperOmsK/fpe/typeclass"
)

// Maybe is either Nothing or Just a value. The zero value is Nothing.
type Maybe struct {
	just  bool
	value any
}

var (
	_ typeclass.Monad[Maybe]  = Maybe{}
	_ typeclass.Monoid[Maybe] = Maybe{}
)

// Nothing is the Maybe without a value.
var Nothing = Maybe{}

// Just wraps v.
func Just(v any) Maybe { return Maybe{just: true, value: v} }

// Pure wraps v in Just, unless v already is a Maybe.
func Pure(v any) Maybe {
	if m, ok := v.(Maybe); ok {
		return m
	}
	return Just(v)
}

// Pure is the package level Pure; the receiver is ignored.
func (Maybe) Pure(v any) Maybe { return Pure(v) }

func (m Maybe) IsJust() bool    { return m.just }
func (m Maybe) IsNothing() bool { return !m.just }

// Get returns the wrapped value and whether there is one.
func (m Maybe) Get() (any, bool) { return m.value, m.just }

// FromMaybe returns the wrapped value, or def for Nothing.
func (m Maybe) FromMaybe(def any) any {
	if m.just {
		return m.value
	}
	return def
}

// Fmap returns Just(fn(v)) for Just(v) and Nothing for Nothing. fn is not
// called on Nothing.
func (m Maybe) Fmap(fn any) (Maybe, error) {
	if !m.just {
		return m, nil
	}
	v, err := fpe.Call(fn, m.value)
	if err != nil {
		return Nothing, err
	}
	return Just(v), nil
}

// Apply maps the function held by m over other. Nothing applied to anything
// is Nothing.
func (m Maybe) Apply(other Maybe) (Maybe, error) {
	if !m.just {
		return m, nil
	}
	if !fpe.IsCallable(m.value) {
		return Nothing, fmt.Errorf("%w: Just(%T)", typeclass.ErrNotFunction, m.value)
	}
	return other.Fmap(m.value)
}

// Bind returns fn(v) for Just(v), where fn must return a Maybe, and Nothing
// for Nothing.
func (m Maybe) Bind(fn any) (Maybe, error) {
	if !m.just {
		return m, nil
	}
	out, err := fpe.Call(fn, m.value)
	if err != nil {
		return Nothing, err
	}
	next, ok := out.(Maybe)
	if !ok {
		return Nothing, fmt.Errorf("%w: bind returned %T, want maybe.Maybe", typeclass.ErrWrongType, out)
	}
	return next, nil
}

// Append combines two Maybe values. Nothing is the identity, and two Just
// values combine their contents with typeclass.Append.
func (m Maybe) Append(other Maybe) (Maybe, error) {
	switch {
	case !m.just:
		return other, nil
	case !other.just:
		return m, nil
	}
	v, err := typeclass.Append(m.value, other.value)
	if err != nil {
		return Nothing, err
	}
	return Just(v), nil
}

// Empty returns Nothing.
func (Maybe) Empty() Maybe { return Nothing }

// Equal reports whether m and other are both Nothing, or both Just with
// equal values.
func (m Maybe) Equal(other Maybe) bool {
	if m.just != other.just {
		return false
	}
	return !m.just || typeclass.Equal(m.value, other.value)
}

func (m Maybe) String() string {
	if !m.just {
		return "Nothing"
	}
	return fmt.Sprintf("Just(%v)", m.value)
}

// Lift returns fn as a function of Maybe values, for use with fpe.Pipe:
// Nothing passes through and Just(v) becomes Just(fn(v)).
func Lift(fn any) *fpe.Function {
	return fpe.UnaryE("maybe.Lift", func(m Maybe) (Maybe, error) {
		return m.Fmap(fn)
	})
}

// Package typeclass defines the capabilities shared by the containers of this
// module (maybe.Maybe, either.Either) and generic functions written against
// them.
//
// Functions stored in or mapped over a container are any value fpe.Call
// accepts. Capabilities are expressed as interfaces parameterized by the
// implementing type itself, so a helper keeps the concrete type:
//
//	m, err := typeclass.Fmap(inc, maybe.Just(1)) // m is a maybe.Maybe
package typeclass

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/KasperOmsK/fpe"

	"github.com/google/go-cmp/cmp"
)

type (
	// Functor is a container whose content can be mapped.
	//
	// Implementations must satisfy
	//
	//	Fmap(id) == id
	//	Fmap(Compose(f, g)) == Fmap(f) . Fmap(g)
	Functor[F any] interface {
		Fmap(fn any) (F, error)
	}

	// Applicative is a Functor that can lift plain values and apply a
	// contained function to another container.
	//
	// Pure ignores its receiver. Apply is called on a container holding a
	// function.
	Applicative[F any] interface {
		Functor[F]
		Pure(v any) F
		Apply(fa F) (F, error)
	}

	// Monad is an Applicative whose content can be passed to a function
	// returning a new container.
	Monad[F any] interface {
		Applicative[F]
		Bind(fn any) (F, error)
	}

	// Semigroup has an associative operation:
	//
	//	(x <> y) <> z == x <> (y <> z)
	Semigroup[S any] interface {
		Append(other S) (S, error)
	}

	// Monoid is a Semigroup with an identity element.
	Monoid[S any] interface {
		Semigroup[S]
		Empty() S
	}
)

var (
	// ErrEmpty is returned by Mconcat on an empty list.
	ErrEmpty = errors.New("typeclass: empty list")

	// ErrNotSemigroup is returned by Append for values without an
	// associative operation.
	ErrNotSemigroup = errors.New("typeclass: not a semigroup")

	// ErrNotFunction is returned when a container expected to hold a
	// function holds something else.
	ErrNotFunction = errors.New("typeclass: contained value is not callable")

	// ErrWrongType is returned when a function given to Bind does not
	// return the container type.
	ErrWrongType = errors.New("typeclass: unexpected result type")
)

// Fmap maps fn over fa.
func Fmap[F Functor[F]](fn any, fa F) (F, error) {
	return fa.Fmap(fn)
}

// Ap applies the function held by ff to the content of fa.
func Ap[F Applicative[F]](ff, fa F) (F, error) {
	return ff.Apply(fa)
}

// Bind passes the content of m to fn.
func Bind[M Monad[M]](m M, fn any) (M, error) {
	return m.Bind(fn)
}

// LiftA2 applies a two-argument function to the contents of fa and fb:
// Fmap(fn, fa) <*> fb. fn is curried first unless it already is.
func LiftA2[F Applicative[F]](fn any, fa, fb F) (F, error) {
	var zero F
	if !fpe.IsCurried(fn) {
		c, err := fpe.Curry(fn)
		if err != nil {
			return zero, err
		}
		fn = c
	}
	ff, err := fa.Fmap(fn)
	if err != nil {
		return zero, err
	}
	return ff.Apply(fb)
}

// Mconcat folds xs with Append, starting from the identity element. xs must
// not be empty: the identity is taken from its first element.
func Mconcat[S Monoid[S]](xs []S) (S, error) {
	if len(xs) == 0 {
		var zero S
		return zero, ErrEmpty
	}
	acc := xs[0].Empty()
	for _, x := range xs {
		var err error
		if acc, err = acc.Append(x); err != nil {
			return acc, err
		}
	}
	return acc, nil
}

var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// Equal reports whether a and b are deeply equal. Types with an Equal method
// are compared with it; unexported fields are compared like exported ones.
func Equal(a, b any) bool {
	return cmp.Equal(a, b, exportAll)
}

var errorType = reflect.TypeFor[error]()

// Append combines two values of the same semigroup: strings and []any are
// concatenated, and a type T with a method Append(T) (T, error) uses it.
func Append(a, b any) (any, error) {
	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return x + y, nil
		}
	case []any:
		if y, ok := b.([]any); ok {
			out := make([]any, 0, len(x)+len(y))
			return append(append(out, x...), y...), nil
		}
	default:
		if a != nil && reflect.TypeOf(a) == reflect.TypeOf(b) {
			if m := reflect.ValueOf(a).MethodByName("Append"); m.IsValid() && isAppend(m.Type(), reflect.TypeOf(a)) {
				out := m.Call([]reflect.Value{reflect.ValueOf(b)})
				err, _ := out[1].Interface().(error)
				return out[0].Interface(), err
			}
		}
	}
	return nil, fmt.Errorf("%w: cannot append %T and %T", ErrNotSemigroup, a, b)
}

func isAppend(m, t reflect.Type) bool {
	return m.NumIn() == 1 && m.In(0) == t &&
		m.NumOut() == 2 && m.Out(0) == t && m.Out(1) == errorType
}

package fpe

import "fmt"

// Flip returns a two-argument Function calling fn with its arguments
// swapped: Flip(f)(x, y) == f(y, x).
//
// Flip panics if fn is not callable.
func Flip(fn any) *Function {
	c, ok := asCallable(fn)
	if !ok {
		panic(fmt.Sprintf("fpe.Flip: %T is not callable", fn))
	}
	name := fmt.Sprintf("flipped <%s>", nameOf(c))
	return Declare(name, []Param{Required("first"), Required("second")}, func(args []any) (any, error) {
		return c.Apply([]any{args[1], args[0]}, Keywords{})
	})
}

// Const returns a one-argument Function ignoring its argument and
// returning v.
func Const(v any) *Function {
	return Declare("const", []Param{Required("ignored")}, func([]any) (any, error) {
		return v, nil
	})
}

// Ite is the curried if-then-else: Ite(predicate, alternative, value)
// returns value when predicate(value) holds and alternative otherwise.
var Ite = Must(Curry(Declare("ite",
	[]Param{Required("predicate"), Required("alternative"), Required("value")},
	func(args []any) (any, error) {
		ok, err := Call(args[0], args[2])
		if err != nil {
			return nil, err
		}
		holds, isBool := ok.(bool)
		if !isBool {
			return nil, bindErrorf("ite", "predicate returned %T, want bool", ok)
		}
		if holds {
			return args[2], nil
		}
		return args[1], nil
	})))

/*
Package fpe provides currying and function composition for Go, and the
building blocks of a small typeclass hierarchy built on top of them.

Everything in this package speaks one calling convention, Callable: a call
receives positional arguments and named arguments (Keywords) and returns a
value or an error. Plain functions are adapted with Declare, Lift2 to Lift5,
Unary or Target.

# Currying

A Function declared with at least two parameters can be curried. Each call of
the Curried value either completes the call, or returns a new Curried value
holding the arguments received so far:

	sub := fpe.Must(fpe.Curry(fpe.Lift3("sub3", func(x, y, z int) int {
		return x - y - z
	})))

	v, _ := sub.Call(10)             // <curried sub3 1/3 args>
	v, _ = v.(*fpe.Curried).Call(2)  // <curried sub3 2/3 args>
	v, _ = v.(*fpe.Curried).Call(3)  // 5

Trailing parameters declared with Optional can also be supplied by name, and
missing ones are borrowed from their defaults as soon as every parameter
without a default has a value:

	scale := fpe.Must(fpe.Curry(fpe.Declare("scale",
		[]fpe.Param{fpe.Required("x"), fpe.Optional("factor", 2)},
		func(args []any) (any, error) { return args[0].(int) * args[1].(int), nil },
	)))

	scale.Call(21)                                   // 42
	scale.CallKw(fpe.NewKeywords("factor", 3), 14)   // 42

Opaque callables, whose parameters are unknown, are curried with an explicit
arity using CurryN.

# Composition

Pipe(f, g) runs f then g, Compose(f, g) runs g then f. Both return a Chain,
a flat list of steps behaving as a one-argument callable. Every value built
by the package also has PipeWith and ComposeWith methods, and Identity is the
neutral element of both.

# Errors

Construction errors are returned immediately: *ArityError from Curry and
CurryN, *CompositionError from Compose and Pipe. Errors returned by a
wrapped function when it is finally called are passed through unchanged.

All values are immutable and may be shared between goroutines.
*/
package fpe

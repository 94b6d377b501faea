package fpe

import (
	"fmt"
	"reflect"
	"strings"
)

type paramKind uint8

const (
	paramRequired paramKind = iota
	paramOptional
	paramRest
	paramRestNamed
)

// Param declares one parameter of a Function.
type Param struct {
	name string
	kind paramKind
	def  any
}

// Required declares a positional parameter without a default.
func Required(name string) Param { return Param{name: name, kind: paramRequired} }

// Optional declares a positional parameter with a default value. Optional
// parameters must follow every Required one.
func Optional(name string, def any) Param {
	return Param{name: name, kind: paramOptional, def: def}
}

// Rest declares a parameter collecting extra positional arguments as []any.
func Rest(name string) Param { return Param{name: name, kind: paramRest} }

// RestNamed declares a parameter collecting unknown named arguments as
// Keywords.
func RestNamed(name string) Param { return Param{name: name, kind: paramRestNamed} }

// Name returns the parameter name.
func (p Param) Name() string { return p.name }

func (p Param) String() string {
	switch p.kind {
	case paramOptional:
		return fmt.Sprintf("%s=%v", p.name, p.def)
	case paramRest:
		return "*" + p.name
	case paramRestNamed:
		return "**" + p.name
	}
	return p.name
}

// Body is the implementation of a declared Function. It receives one value
// per fixed parameter in declaration order, followed by a []any for a Rest
// parameter and a Keywords for a RestNamed parameter when they are declared.
type Body func(args []any) (any, error)

// Function is a callable with a declared parameter list. It binds
// positional and named arguments the way a function call does and reports
// mismatches as *BindError.
//
// Functions are immutable.
type Function struct {
	name      string
	doc       string
	params    []Param
	fixed     int
	rest      bool
	restNamed bool
	body      Body
}

// Declare creates a Function.
//
// Declare panics on a malformed parameter list: an empty or repeated name, a
// Required parameter after an Optional one, a fixed parameter after Rest or
// RestNamed, Rest after RestNamed, or a nil body.
func Declare(name string, params []Param, body Body) *Function {
	if body == nil {
		panic("fpe.Declare: nil body for " + name)
	}
	f := &Function{
		name:   name,
		params: append([]Param(nil), params...),
		body:   body,
	}
	seen := make(map[string]bool, len(params))
	sawOptional := false
	for _, p := range params {
		if p.name == "" {
			panic("fpe.Declare: empty parameter name in " + name)
		}
		if seen[p.name] {
			panic(fmt.Sprintf("fpe.Declare: duplicate parameter %q in %s", p.name, name))
		}
		seen[p.name] = true

		switch p.kind {
		case paramRequired, paramOptional:
			if f.rest || f.restNamed {
				panic(fmt.Sprintf("fpe.Declare: parameter %q follows a rest parameter in %s", p.name, name))
			}
			if p.kind == paramRequired && sawOptional {
				panic(fmt.Sprintf("fpe.Declare: required parameter %q follows an optional one in %s", p.name, name))
			}
			sawOptional = sawOptional || p.kind == paramOptional
			f.fixed++
		case paramRest:
			if f.rest || f.restNamed {
				panic(fmt.Sprintf("fpe.Declare: misplaced rest parameter %q in %s", p.name, name))
			}
			f.rest = true
		case paramRestNamed:
			if f.restNamed {
				panic(fmt.Sprintf("fpe.Declare: misplaced rest parameter %q in %s", p.name, name))
			}
			f.restNamed = true
		}
	}
	return f
}

// Name returns the declared name.
func (f *Function) Name() string { return f.name }

// Doc returns the documentation attached with WithDoc.
func (f *Function) Doc() string { return f.doc }

// WithDoc returns a copy of f carrying doc.
func (f *Function) WithDoc(doc string) *Function {
	out := *f
	out.doc = doc
	return &out
}

// Params returns the declared parameters.
func (f *Function) Params() []Param {
	return append([]Param(nil), f.params...)
}

// Arity implements Describer.
func (f *Function) Arity() ArityDescriptor {
	var defaults Keywords
	for _, p := range f.params {
		if p.kind == paramOptional {
			defaults = defaults.With(p.name, p.def)
		}
	}
	return ArityDescriptor{
		Required: f.fixed,
		Defaults: defaults,
		OpenEnd:  f.rest || f.restNamed,
	}
}

// Apply binds args and kw to the parameters and runs the body.
func (f *Function) Apply(args []any, kw Keywords) (any, error) {
	bound, err := f.bind(args, kw)
	if err != nil {
		return nil, err
	}
	return f.body(bound)
}

// Call is Apply without named arguments.
func (f *Function) Call(args ...any) (any, error) {
	return f.Apply(args, Keywords{})
}

func (f *Function) bind(args []any, kw Keywords) ([]any, error) {
	bound := make([]any, f.fixed, f.fixed+2)
	set := make([]bool, f.fixed)

	n := min(len(args), f.fixed)
	copy(bound, args[:n])
	for i := range n {
		set[i] = true
	}

	var rest []any
	if len(args) > f.fixed {
		if !f.rest {
			return nil, bindErrorf(f.name, "takes %d positional arguments but %d were given", f.fixed, len(args))
		}
		rest = append(rest, args[f.fixed:]...)
	}

	var extra Keywords
	for name, v := range kw.All() {
		i := f.fixedIndex(name)
		if i < 0 {
			if f.restNamed {
				extra = extra.With(name, v)
				continue
			}
			return nil, bindErrorf(f.name, "unexpected argument %q", name)
		}
		if set[i] {
			return nil, bindErrorf(f.name, "multiple values for argument %q", name)
		}
		bound[i] = v
		set[i] = true
	}

	var missing []string
	for i, p := range f.params[:f.fixed] {
		if set[i] {
			continue
		}
		if p.kind == paramOptional {
			bound[i] = p.def
			continue
		}
		missing = append(missing, p.name)
	}
	if len(missing) > 0 {
		return nil, bindErrorf(f.name, "missing required arguments: %s", strings.Join(missing, ", "))
	}

	if f.rest {
		bound = append(bound, rest)
	}
	if f.restNamed {
		bound = append(bound, extra)
	}
	return bound, nil
}

func (f *Function) fixedIndex(name string) int {
	for i, p := range f.params[:f.fixed] {
		if p.name == name {
			return i
		}
	}
	return -1
}

// Retracted is always zero: a Function holds no arguments.
func (f *Function) Retracted() int { return 0 }

// IsCurried is false: a Function has not been curried yet.
func (f *Function) IsCurried() bool { return false }

// Steps returns f itself.
func (f *Function) Steps() []Callable { return []Callable{f} }

// PipeWith returns Pipe(f, g).
func (f *Function) PipeWith(g any) (*Chain, error) { return Pipe(f, g) }

// ComposeWith returns Compose(f, g).
func (f *Function) ComposeWith(g any) (*Chain, error) { return Compose(f, g) }

func (f *Function) String() string {
	parts := make([]string, len(f.params))
	for i, p := range f.params {
		parts[i] = p.String()
	}
	return fmt.Sprintf("<function %s(%s)>", f.name, strings.Join(parts, ", "))
}

func positional(n int) []Param {
	params := make([]Param, n)
	for i := range params {
		params[i] = Required(fmt.Sprintf("arg%d", i))
	}
	return params
}

// argAs converts args[i] to T, treating nil as the zero value of nilable
// types.
func argAs[T any](name string, args []any, i int) (T, error) {
	var zero T
	if v, ok := args[i].(T); ok {
		return v, nil
	}
	if args[i] == nil {
		switch reflect.TypeFor[T]().Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
			return zero, nil
		}
	}
	return zero, bindErrorf(name, "argument %d is %T, want %v", i, args[i], reflect.TypeFor[T]())
}

// Unary declares a one-argument Function from a typed Go function.
func Unary[A, R any](name string, fn func(A) R) *Function {
	return Declare(name, positional(1), func(args []any) (any, error) {
		a, err := argAs[A](name, args, 0)
		if err != nil {
			return nil, err
		}
		return fn(a), nil
	})
}

// UnaryE is Unary for functions that can fail. The error is returned as is.
func UnaryE[A, R any](name string, fn func(A) (R, error)) *Function {
	return Declare(name, positional(1), func(args []any) (any, error) {
		a, err := argAs[A](name, args, 0)
		if err != nil {
			return nil, err
		}
		return fn(a)
	})
}

// Lift2 declares a two-argument Function from a typed Go function.
func Lift2[A, B, R any](name string, fn func(A, B) R) *Function {
	return Declare(name, positional(2), func(args []any) (any, error) {
		a, err := argAs[A](name, args, 0)
		if err != nil {
			return nil, err
		}
		b, err := argAs[B](name, args, 1)
		if err != nil {
			return nil, err
		}
		return fn(a, b), nil
	})
}

// Lift3 declares a three-argument Function from a typed Go function.
func Lift3[A, B, C, R any](name string, fn func(A, B, C) R) *Function {
	return Declare(name, positional(3), func(args []any) (any, error) {
		a, err := argAs[A](name, args, 0)
		if err != nil {
			return nil, err
		}
		b, err := argAs[B](name, args, 1)
		if err != nil {
			return nil, err
		}
		c, err := argAs[C](name, args, 2)
		if err != nil {
			return nil, err
		}
		return fn(a, b, c), nil
	})
}

// Lift4 declares a four-argument Function from a typed Go function.
func Lift4[A, B, C, D, R any](name string, fn func(A, B, C, D) R) *Function {
	return Declare(name, positional(4), func(args []any) (any, error) {
		a, err := argAs[A](name, args, 0)
		if err != nil {
			return nil, err
		}
		b, err := argAs[B](name, args, 1)
		if err != nil {
			return nil, err
		}
		c, err := argAs[C](name, args, 2)
		if err != nil {
			return nil, err
		}
		d, err := argAs[D](name, args, 3)
		if err != nil {
			return nil, err
		}
		return fn(a, b, c, d), nil
	})
}

// Lift5 declares a five-argument Function from a typed Go function.
func Lift5[A, B, C, D, E, R any](name string, fn func(A, B, C, D, E) R) *Function {
	return Declare(name, positional(5), func(args []any) (any, error) {
		a, err := argAs[A](name, args, 0)
		if err != nil {
			return nil, err
		}
		b, err := argAs[B](name, args, 1)
		if err != nil {
			return nil, err
		}
		c, err := argAs[C](name, args, 2)
		if err != nil {
			return nil, err
		}
		d, err := argAs[D](name, args, 3)
		if err != nil {
			return nil, err
		}
		e, err := argAs[E](name, args, 4)
		if err != nil {
			return nil, err
		}
		return fn(a, b, c, d, e), nil
	})
}

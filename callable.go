package fpe

import (
	"fmt"
	"reflect"
	"runtime"
)

type (
	// Callable is the calling convention shared by everything this package
	// curries or composes: positional arguments plus named arguments.
	Callable interface {
		Apply(args []any, kw Keywords) (any, error)
	}

	// Target adapts a plain function to Callable.
	//
	// A Target is opaque: it does not describe its parameters, so it can only
	// be curried with an explicit arity (see CurryN).
	Target func(args []any, kw Keywords) (any, error)

	// Describer is implemented by callables that declare their parameters.
	Describer interface {
		Arity() ArityDescriptor
	}

	// Value is implemented by every value the engine produces: curried
	// functions, composition chains, the identity and declared functions.
	//
	// PipeWith and ComposeWith stand in for composition operators:
	// f.PipeWith(g) runs f then g, f.ComposeWith(g) runs g then f.
	Value interface {
		Callable
		Name() string
		Retracted() int
		IsCurried() bool
		Steps() []Callable
		PipeWith(g any) (*Chain, error)
		ComposeWith(g any) (*Chain, error)
	}
)

// Apply calls t.
func (t Target) Apply(args []any, kw Keywords) (any, error) {
	return t(args, kw)
}

// ArityDescriptor describes the parameters a callable expects.
//
// Required counts every fixed positional parameter, including those that
// have a default. Defaults holds the defaulted trailing parameters in
// declaration order. OpenEnd marks callables that also collect extra
// positional or named arguments.
type ArityDescriptor struct {
	Required int
	Defaults Keywords
	OpenEnd  bool
}

// NonDefault returns the number of parameters that have no default.
func (d ArityDescriptor) NonDefault() int {
	return d.Required - d.Defaults.Len()
}

// Describe returns the arity descriptor Curry would use for fn.
//
// It fails with an *ArityError when fn is not callable, when fn does not
// declare its parameters, when it accepts a variable number of arguments or
// when it takes fewer than two parameters. Values already produced by the
// engine are treated as taking exactly one argument.
func Describe(fn any) (ArityDescriptor, error) {
	c, ok := asCallable(fn)
	if !ok {
		return ArityDescriptor{}, arityErrorf("", "%T is not callable", fn)
	}
	name := nameOf(c)

	var desc ArityDescriptor
	switch c := c.(type) {
	case *Curried, *Chain, identity:
		desc = ArityDescriptor{Required: 1}
	case Describer:
		desc = c.Arity()
	default:
		return ArityDescriptor{}, arityErrorf(name, "signature cannot be determined, declare the arity with CurryN")
	}

	if desc.OpenEnd {
		return ArityDescriptor{}, arityErrorf(name, "functions with a variable number of arguments need an explicit arity")
	}
	if desc.Required < 2 {
		return ArityDescriptor{}, arityErrorf(name, "functions with less than 2 parameters are not supported, got %d", desc.Required)
	}
	return desc, nil
}

// Call invokes any callable accepted by Curry, Compose or Pipe with the
// given positional arguments.
func Call(fn any, args ...any) (any, error) {
	c, ok := asCallable(fn)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotCallable, fn)
	}
	return c.Apply(args, Keywords{})
}

// CallKw is Call with named arguments.
func CallKw(fn any, kw Keywords, args ...any) (any, error) {
	c, ok := asCallable(fn)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotCallable, fn)
	}
	return c.Apply(args, kw)
}

// IsCallable reports whether v can be passed to Call, Curry or Compose.
func IsCallable(v any) bool {
	_, ok := asCallable(v)
	return ok
}

// IsCurried reports whether v is a value produced by the engine.
func IsCurried(v any) bool {
	val, ok := v.(Value)
	return ok && val.IsCurried()
}

// Must panics if err is non-nil. It is meant for package level
// declarations such as
//
//	var add = fpe.Must(fpe.Curry(fpe.Lift2("add", func(a, b int) int { return a + b })))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// asCallable normalizes the shapes of functions the engine accepts.
func asCallable(v any) (Callable, bool) {
	if v == nil || isNilValue(v) {
		return nil, false
	}
	switch f := v.(type) {
	case Callable:
		return f, true
	case func([]any, Keywords) (any, error):
		return Target(f), true
	case func(any) any:
		return goFunc(f), true
	case func(any) (any, error):
		return goFuncE(f), true
	}
	return nil, false
}

// goFunc and goFuncE adapt one-argument Go functions. They stay func kinded
// so that adapting the same function twice gives the same step.
type (
	goFunc  func(any) any
	goFuncE func(any) (any, error)
)

func (f goFunc) Apply(args []any, kw Keywords) (any, error) {
	if err := unaryArgs(funcName(f), args, kw); err != nil {
		return nil, err
	}
	return f(args[0]), nil
}

func (f goFuncE) Apply(args []any, kw Keywords) (any, error) {
	if err := unaryArgs(funcName(f), args, kw); err != nil {
		return nil, err
	}
	return f(args[0])
}

func unaryArgs(name string, args []any, kw Keywords) error {
	if len(args) != 1 {
		return bindErrorf(name, "takes 1 positional arguments but %d were given", len(args))
	}
	if kw.Len() > 0 {
		return bindErrorf(name, "unexpected argument %q", kw.Names()[0])
	}
	return nil
}

func isNilValue(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// sameCallable reports whether a and b are the same elementary callable.
// Go cannot compare functions, so func, map, slice and pointer values are the
// same when they share an address, even inside structs and interfaces.
func sameCallable(a, b Callable) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return sameValue(reflect.ValueOf(a), reflect.ValueOf(b))
}

func sameValue(a, b reflect.Value) bool {
	if a.Type() != b.Type() {
		return false
	}
	switch a.Kind() {
	case reflect.Func, reflect.Map, reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return a.Pointer() == b.Pointer()
	case reflect.Slice:
		return a.Pointer() == b.Pointer() && a.Len() == b.Len()
	case reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		return sameValue(a.Elem(), b.Elem())
	case reflect.Struct:
		for i := range a.NumField() {
			if !sameValue(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Array:
		for i := range a.Len() {
			if !sameValue(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	}
	return a.Equal(b)
}

func nameOf(c Callable) string {
	if n, ok := c.(interface{ Name() string }); ok {
		return n.Name()
	}
	if reflect.TypeOf(c).Kind() == reflect.Func {
		return funcName(c)
	}
	return fmt.Sprintf("%T", c)
}

func docOf(c Callable) string {
	if d, ok := c.(interface{ Doc() string }); ok {
		return d.Doc()
	}
	return ""
}

func funcName(fn any) string {
	if f := runtime.FuncForPC(reflect.ValueOf(fn).Pointer()); f != nil {
		return f.Name()
	}
	return fmt.Sprintf("%T", fn)
}

package fpe

import (
	"fmt"

	"golang.org/x/exp/slices"
)

type variant uint8

const (
	// positionalVariant accumulates positional arguments of a callable
	// without defaults.
	positionalVariant variant = iota
	// defaultsVariant accumulates positional and named arguments of a
	// callable whose trailing parameters have defaults.
	defaultsVariant
	// fixedVariant accumulates positional arguments toward an arity
	// declared by the caller.
	fixedVariant
)

func (v variant) String() string {
	switch v {
	case positionalVariant:
		return "positional"
	case defaultsVariant:
		return "defaults"
	case fixedVariant:
		return "fixed"
	}
	return fmt.Sprintf("variant(%d)", uint8(v))
}

// Curried is a partial application of a callable.
//
// Calling a Curried value either invokes the wrapped callable, once enough
// arguments have been accumulated, or returns a new Curried value holding
// the longer argument list. A Curried value is never modified, so it can be
// called again and from several goroutines.
type Curried struct {
	variant  variant
	target   Callable
	name     string
	doc      string
	required int
	defaults Keywords
	args     []any
	kw       Keywords
}

// Curry curries fn using its declared parameters.
//
// Functions whose trailing parameters have defaults accept those parameters
// by name as well as by position. Curry fails with an *ArityError when fn
// does not declare its parameters, takes fewer than two or accepts a
// variable number of arguments; see Describe.
func Curry(fn any) (*Curried, error) {
	desc, err := Describe(fn)
	if err != nil {
		return nil, err
	}
	c, _ := asCallable(fn)

	cur := &Curried{
		variant:  positionalVariant,
		target:   c,
		name:     nameOf(c),
		doc:      docOf(c),
		required: desc.Required,
	}
	if desc.Defaults.Len() > 0 {
		cur.variant = defaultsVariant
		cur.defaults = desc.Defaults
		cur.kw = desc.Defaults
	}
	return cur, nil
}

// CurryN curries fn as a function of exactly n positional arguments,
// without looking at its parameters. It is the only way to curry an opaque
// callable such as a Target.
//
// CurryN fails with an *ArityError when n is less than 2 or fn is not
// callable.
func CurryN(n int, fn any) (*Curried, error) {
	c, ok := asCallable(fn)
	if !ok {
		return nil, arityErrorf("", "%T is not callable", fn)
	}
	name := nameOf(c)
	if n < 2 {
		return nil, arityErrorf(name, "number of arguments has to be at least 2, got %d", n)
	}
	doc := docOf(c)
	if doc == "" {
		doc = "curried: " + name
	}
	return &Curried{
		variant:  fixedVariant,
		target:   c,
		name:     name,
		doc:      doc,
		required: n,
	}, nil
}

// Apply accumulates args and kw, invoking the wrapped callable when the
// call is complete. Errors from the wrapped callable are returned as is.
func (c *Curried) Apply(args []any, kw Keywords) (any, error) {
	switch c.variant {
	case positionalVariant, fixedVariant:
		return c.applyPositional(args, kw)
	case defaultsVariant:
		return c.applyDefaults(args, kw)
	}
	panic(fmt.Sprintf("fpe: unknown curried variant %v", c.variant))
}

// Call is Apply without named arguments.
func (c *Curried) Call(args ...any) (any, error) {
	return c.Apply(args, Keywords{})
}

// CallKw is Apply with the arguments in call order.
func (c *Curried) CallKw(kw Keywords, args ...any) (any, error) {
	return c.Apply(args, kw)
}

func (c *Curried) applyPositional(args []any, kw Keywords) (any, error) {
	all := joinArgs(c.args, args)
	if len(all) >= c.required || kw.Len() > 0 {
		return c.target.Apply(all, kw)
	}
	return c.extend(all, c.kw), nil
}

func (c *Curried) applyDefaults(args []any, kw Keywords) (any, error) {
	merged := c.kw.Merge(kw)
	all := joinArgs(c.args, args)

	// Names the defaults do not know about go straight to the target,
	// which decides whether to accept them.
	if kw.Len() > 0 && !kw.SubsetOf(c.defaults) {
		return c.target.Apply(all, merged)
	}

	n := len(all)
	switch {
	case n >= c.required:
		return c.target.Apply(all, kw)
	case n > c.required-c.defaults.Len():
		// Enough positionals for every parameter without a default: borrow
		// only the trailing defaults still missing.
		return c.target.Apply(all, merged.Tail(c.required-n))
	case n+merged.Len() >= c.required:
		return c.target.Apply(all, merged)
	}
	return c.extend(all, merged), nil
}

func (c *Curried) extend(args []any, kw Keywords) *Curried {
	out := *c
	out.args = args
	out.kw = kw
	return &out
}

func joinArgs(acc, args []any) []any {
	out := make([]any, 0, len(acc)+len(args))
	out = append(out, acc...)
	return append(out, args...)
}

// Args returns the accumulated positional arguments.
func (c *Curried) Args() []any { return slices.Clone(c.args) }

// Keywords returns the accumulated named arguments. For a callable with
// defaults this starts out as the declared defaults.
func (c *Curried) Keywords() Keywords { return c.kw }

// Required returns the number of positional parameters of the wrapped
// callable.
func (c *Curried) Required() int { return c.required }

// Retracted returns how many arguments have been accumulated, named ones
// included.
func (c *Curried) Retracted() int { return len(c.args) + c.kw.Len() }

// IsCurried is always true.
func (c *Curried) IsCurried() bool { return true }

// Wrapped returns the callable c invokes once complete.
func (c *Curried) Wrapped() Callable { return c.target }

// Steps returns c itself: a curried value is a single step of a chain.
func (c *Curried) Steps() []Callable { return []Callable{c} }

// Name returns the name of the wrapped callable.
func (c *Curried) Name() string { return c.name }

// Doc returns the documentation of the wrapped callable.
func (c *Curried) Doc() string { return c.doc }

// PipeWith returns Pipe(c, g).
func (c *Curried) PipeWith(g any) (*Chain, error) { return Pipe(c, g) }

// ComposeWith returns Compose(c, g).
func (c *Curried) ComposeWith(g any) (*Chain, error) { return Compose(c, g) }

func (c *Curried) String() string {
	return fmt.Sprintf("<curried %s %d/%d args>", c.name, c.Retracted(), c.required)
}

package fpe

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Chain is a composition of callables behaving as a single one-argument
// callable. Step 0 runs first and each step receives the output of the
// previous one.
//
// Chains are flat: composing a chain with another callable splices its
// steps, so (f | g) | h and f | (g | h) hold the same steps.
type Chain struct {
	steps []Callable
}

// Compose returns the mathematical composition of f and g: the resulting
// chain runs g first, then f.
//
// Compose fails with a *CompositionError when an operand is not callable.
func Compose(f, g any) (*Chain, error) {
	return newChain(g, f)
}

// Pipe returns the pipeline of f and g: the resulting chain runs f first,
// then g.
//
// Pipe fails with a *CompositionError when an operand is not callable.
func Pipe(f, g any) (*Chain, error) {
	return newChain(f, g)
}

// PipeAll pipes every function in fns, left to right. It needs at least two.
func PipeAll(fns ...any) (*Chain, error) {
	if len(fns) < 2 {
		return nil, compositionErrorf("composition must contain at least 2 functions, got %d", len(fns))
	}
	acc, err := Pipe(fns[0], fns[1])
	if err != nil {
		return nil, err
	}
	for _, fn := range fns[2:] {
		if acc, err = Pipe(acc, fn); err != nil {
			return nil, err
		}
	}
	return acc, nil
}

var (
	// CurriedCompose is Compose as a curried two-argument function.
	CurriedCompose = Must(Curry(Declare("compose", []Param{Required("f"), Required("g")},
		func(args []any) (any, error) {
			return chainResult(Compose(args[0], args[1]))
		})))

	// CurriedPipe is Pipe as a curried two-argument function.
	CurriedPipe = Must(Curry(Declare("pipe", []Param{Required("f"), Required("g")},
		func(args []any) (any, error) {
			return chainResult(Pipe(args[0], args[1]))
		})))
)

// chainResult keeps a failed build from returning a typed nil *Chain.
func chainResult(c *Chain, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return c, nil
}

// newChain builds the chain running first then second.
func newChain(first, second any) (*Chain, error) {
	a, ok := asCallable(first)
	if !ok {
		return nil, compositionErrorf("%T is not callable", first)
	}
	b, ok := asCallable(second)
	if !ok {
		return nil, compositionErrorf("%T is not callable", second)
	}

	steps := make([]Callable, 0, 4)
	steps = append(steps, splice(a)...)
	steps = append(steps, splice(b)...)

	if len(steps) < 2 {
		return nil, compositionErrorf("composition must contain at least 2 functions, got %d", len(steps))
	}
	for i, s := range steps {
		if s == nil || isNilValue(s) {
			return nil, compositionErrorf("step %d is not callable", i)
		}
	}
	want := append(Steps(a), Steps(b)...)
	if !slices.EqualFunc(steps, want, sameCallable) {
		return nil, compositionErrorf("composition does not contain its operands in order")
	}
	return &Chain{steps: steps}, nil
}

func splice(c Callable) []Callable {
	if ch, ok := c.(*Chain); ok {
		return ch.steps
	}
	return []Callable{c}
}

// Steps returns the elementary callables of fn in execution order: the
// steps of a chain, or fn itself. It returns nil when fn is not callable.
func Steps(fn any) []Callable {
	c, ok := asCallable(fn)
	if !ok {
		return nil
	}
	if v, ok := c.(Value); ok {
		return v.Steps()
	}
	return []Callable{c}
}

// SameSteps reports whether a and b are made of the same elementary
// callables in the same order once identity steps are dropped. It is how
// the composition laws are checked on constructed values:
//
//	SameSteps(Compose(f, Compose(g, h)), Compose(Compose(f, g), h)) // associativity
//	SameSteps(Compose(Identity, f), f)                              // identity
func SameSteps(a, b any) bool {
	if !IsCallable(a) || !IsCallable(b) {
		return false
	}
	return slices.EqualFunc(withoutIdentity(Steps(a)), withoutIdentity(Steps(b)), sameCallable)
}

func withoutIdentity(steps []Callable) []Callable {
	out := steps[:0:0]
	for _, s := range steps {
		if _, ok := s.(identity); !ok {
			out = append(out, s)
		}
	}
	return out
}

// Apply runs the steps in order. A chain takes a single positional
// argument; anything else fails with ErrNotUnary. The error of a failing
// step is returned as is.
func (c *Chain) Apply(args []any, kw Keywords) (any, error) {
	if len(args) != 1 || kw.Len() != 0 {
		return nil, fmt.Errorf("%w: got %d positional and %d named", ErrNotUnary, len(args), kw.Len())
	}
	x := args[0]
	for _, step := range c.steps {
		var err error
		if x, err = step.Apply([]any{x}, Keywords{}); err != nil {
			return nil, err
		}
	}
	return x, nil
}

// Call runs the chain on x.
func (c *Chain) Call(x any) (any, error) {
	return c.Apply([]any{x}, Keywords{})
}

// Len returns the number of steps.
func (c *Chain) Len() int { return len(c.steps) }

// Steps returns a copy of the steps in execution order.
func (c *Chain) Steps() []Callable { return slices.Clone(c.steps) }

// Retracted is always zero.
func (c *Chain) Retracted() int { return 0 }

// IsCurried is always true.
func (c *Chain) IsCurried() bool { return true }

// Name joins the step names in execution order.
func (c *Chain) Name() string {
	names := make([]string, len(c.steps))
	for i, s := range c.steps {
		names[i] = nameOf(s)
	}
	return strings.Join(names, " | ")
}

// PipeWith returns Pipe(c, g).
func (c *Chain) PipeWith(g any) (*Chain, error) { return Pipe(c, g) }

// ComposeWith returns Compose(c, g).
func (c *Chain) ComposeWith(g any) (*Chain, error) { return Compose(c, g) }

func (c *Chain) String() string {
	return "<chain " + c.Name() + ">"
}

type identity struct{}

// Identity returns its single argument unchanged. It is the neutral element
// of Compose and Pipe.
var Identity = identity{}

func (identity) Apply(args []any, kw Keywords) (any, error) {
	if len(args) != 1 || kw.Len() != 0 {
		return nil, fmt.Errorf("%w: got %d positional and %d named", ErrNotUnary, len(args), kw.Len())
	}
	return args[0], nil
}

// Call returns x.
func (identity) Call(x any) (any, error) { return x, nil }

func (identity) Name() string { return "id" }

func (identity) Retracted() int { return 0 }

func (identity) IsCurried() bool { return true }

func (id identity) Steps() []Callable { return []Callable{id} }

func (id identity) PipeWith(g any) (*Chain, error) { return Pipe(id, g) }

func (id identity) ComposeWith(g any) (*Chain, error) { return Compose(id, g) }

func (identity) String() string { return "<id>" }

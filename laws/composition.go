package laws

import (
	"fmt"

	"github.com/KasperOmsK/fpe"
)

// CheckCompositionAssociativity checks
//
//	Compose(Compose(f, g), h) == Compose(f, Compose(g, h))
//
// on the steps of both chains and on their output for every input.
func (c *Checker) CheckCompositionAssociativity(f, g, h any, inputs []any) error {
	fg, err := fpe.Compose(f, g)
	if err != nil {
		return err
	}
	left, err := fpe.Compose(fg, h)
	if err != nil {
		return err
	}
	gh, err := fpe.Compose(g, h)
	if err != nil {
		return err
	}
	right, err := fpe.Compose(f, gh)
	if err != nil {
		return err
	}

	if !fpe.SameSteps(left, right) {
		return &Violation{
			Law:    CompositionAssociativity,
			Sample: "steps",
			Diff:   fmt.Sprintf("-%v\n+%v", left, right),
		}
	}
	for _, x := range inputs {
		if err := c.sides(CompositionAssociativity, x, callOn(left, x), callOn(right, x)); err != nil {
			return err
		}
	}
	return nil
}

// CheckCompositionIdentity checks that Identity is neutral on both sides of
// Compose and Pipe:
//
//	Compose(Identity, f) == f == Compose(f, Identity)
func (c *Checker) CheckCompositionIdentity(f any, inputs []any) error {
	builds := []func() (*fpe.Chain, error){
		func() (*fpe.Chain, error) { return fpe.Compose(fpe.Identity, f) },
		func() (*fpe.Chain, error) { return fpe.Compose(f, fpe.Identity) },
		func() (*fpe.Chain, error) { return fpe.Pipe(fpe.Identity, f) },
		func() (*fpe.Chain, error) { return fpe.Pipe(f, fpe.Identity) },
	}
	for _, build := range builds {
		chain, err := build()
		if err != nil {
			return err
		}
		if !fpe.SameSteps(chain, f) {
			return &Violation{
				Law:    CompositionIdentity,
				Sample: "steps",
				Diff:   fmt.Sprintf("-%v\n+%v", chain, f),
			}
		}
		for _, x := range inputs {
			if err := c.sides(CompositionIdentity, x, callOn(chain, x), callOn(f, x)); err != nil {
				return err
			}
		}
	}
	return nil
}

// CheckCurryGrouping checks that calling the curried form of fn with args
// gives the same result however args are split into successive calls.
func (c *Checker) CheckCurryGrouping(fn any, args []any) error {
	curried, err := fpe.Curry(fn)
	if err != nil {
		return err
	}
	for _, groups := range groupings(args) {
		err := c.sides(CurryGrouping, groups, callOn(fn, args...), func() (any, error) {
			var acc any = curried
			for _, g := range groups {
				var err error
				if acc, err = fpe.Call(acc, g...); err != nil {
					return nil, err
				}
			}
			return acc, nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func callOn(fn any, args ...any) func() (any, error) {
	return func() (any, error) { return fpe.Call(fn, args...) }
}

// groupings returns every way of splitting args into non-empty consecutive
// groups.
func groupings(args []any) [][][]any {
	if len(args) == 0 {
		return [][][]any{nil}
	}
	var out [][][]any
	for i := 1; i <= len(args); i++ {
		for _, rest := range groupings(args[i:]) {
			out = append(out, append([][]any{args[:i]}, rest...))
		}
	}
	return out
}

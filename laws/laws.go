// Package laws checks the algebraic laws of curried functions, compositions
// and the typeclass instances of this module on sample values.
//
// A law holds on a sample when both sides compare equal with go-cmp. Every
// check returns nil when the law holds, a *Violation when it does not, and
// any other error when one side could not be computed.
package laws

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/KasperOmsK/fpe/either"
	"github.com/KasperOmsK/fpe/maybe"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Law names, as used in Violation.Law and in configuration files.
const (
	CompositionAssociativity = "composition-associativity"
	CompositionIdentity      = "composition-identity"
	CurryGrouping            = "curry-grouping"
	FunctorIdentity          = "functor-identity"
	FunctorComposition       = "functor-composition"
	ApplicativeIdentity      = "applicative-identity"
	ApplicativeComposition   = "applicative-composition"
	ApplicativeHomomorphism  = "applicative-homomorphism"
	ApplicativeInterchange   = "applicative-interchange"
	MonadLeftIdentity        = "monad-left-identity"
	MonadRightIdentity       = "monad-right-identity"
	MonadAssociativity       = "monad-associativity"
	SemigroupAssociativity   = "semigroup-associativity"
	MonoidIdentity           = "monoid-identity"
)

// Names lists every law name.
func Names() []string {
	return []string{
		CompositionAssociativity, CompositionIdentity, CurryGrouping,
		FunctorIdentity, FunctorComposition,
		ApplicativeIdentity, ApplicativeComposition, ApplicativeHomomorphism, ApplicativeInterchange,
		MonadLeftIdentity, MonadRightIdentity, MonadAssociativity,
		SemigroupAssociativity, MonoidIdentity,
	}
}

// ErrViolated is matched by every *Violation.
var ErrViolated = errors.New("laws: law violated")

// Violation reports a law that does not hold on a sample.
type Violation struct {
	Law    string
	Sample any
	Diff   string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("law %s violated on %v (-left +right):\n%s", v.Law, v.Sample, v.Diff)
}

func (v *Violation) Unwrap() error { return ErrViolated }

// Checker compares the two sides of a law.
type Checker struct {
	opts []cmp.Option
}

// New returns a Checker comparing with cmp.Equal and opts. Unexported fields
// are compared, and Maybe and Either values are compared by content so that
// opts such as Tolerance apply inside them.
func New(opts ...cmp.Option) *Checker {
	base := []cmp.Option{
		cmp.Exporter(func(reflect.Type) bool { return true }),
		cmp.Transformer("maybe", func(m maybe.Maybe) []any {
			if v, ok := m.Get(); ok {
				return []any{v}
			}
			return nil
		}),
		cmp.Transformer("either", func(e either.Either) map[bool]any {
			return map[bool]any{e.IsRight(): e.Value()}
		}),
	}
	return &Checker{opts: append(base, opts...)}
}

// Tolerance compares float64 values within an absolute or relative
// tolerance of eps.
func Tolerance(eps float64) cmp.Option {
	return cmp.Comparer(func(a, b float64) bool {
		return scalar.EqualWithinAbsOrRel(a, b, eps, eps)
	})
}

// Equal reports whether a and b are equal under the options of c.
func (c *Checker) Equal(a, b any) bool {
	return cmp.Equal(a, b, c.opts...)
}

func (c *Checker) same(law string, sample, left, right any) error {
	if c.Equal(left, right) {
		return nil
	}
	return &Violation{Law: law, Sample: sample, Diff: cmp.Diff(left, right, c.opts...)}
}

// sides computes both sides of a law. An error on either side fails the
// check, unless both sides fail with the same error.
func (c *Checker) sides(law string, sample any, left, right func() (any, error)) error {
	l, lerr := left()
	r, rerr := right()
	switch {
	case lerr != nil && rerr != nil:
		if lerr.Error() == rerr.Error() {
			return nil
		}
		return &Violation{Law: law, Sample: sample, Diff: fmt.Sprintf("-%v\n+%v", lerr, rerr)}
	case lerr != nil:
		return fmt.Errorf("%s: left side: %w", law, lerr)
	case rerr != nil:
		return fmt.Errorf("%s: right side: %w", law, rerr)
	}
	return c.same(law, sample, l, r)
}

// Ints returns the integers of [from, to) as law samples.
func Ints[T constraints.Integer](from, to T) []any {
	var out []any
	for i := from; i < to; i++ {
		out = append(out, i)
	}
	return out
}

// Floats returns n evenly spaced samples from lo to hi included. n must be
// at least 2.
func Floats(lo, hi float64, n int) []any {
	span := floats.Span(make([]float64, n), lo, hi)
	out := make([]any, n)
	for i, f := range span {
		out[i] = f
	}
	return out
}

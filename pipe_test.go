package fpe_test

import (
	"errors"
	"testing"

	"github.com/KasperOmsK/fpe"

	"github.com/stretchr/testify/require"
)

var (
	inc    = fpe.Unary("inc", func(x int) int { return x + 1 })
	double = fpe.Unary("double", func(x int) int { return x * 2 })
	negate = fpe.Unary("negate", func(x int) int { return -x })

	plus  = fpe.Must(fpe.Curry(fpe.Lift2("plus", func(x, y int) int { return x + y })))
	minus = fpe.Must(fpe.Curry(fpe.Lift2("minus", func(x, y int) int { return y - x })))
	mul   = fpe.Must(fpe.Curry(fpe.Lift2("mul", func(x, y int) int { return x * y })))
)

func TestPipe_RunsLeftToRight(t *testing.T) {
	c := fpe.Must(fpe.Pipe(inc, double))

	require.Equal(t, 2, c.Len())
	require.Equal(t, []fpe.Callable{inc, double}, c.Steps())
	require.Equal(t, 8, call(t, c, 3))
}

func TestCompose_RunsRightToLeft(t *testing.T) {
	c := fpe.Must(fpe.Compose(inc, double))

	require.Equal(t, []fpe.Callable{double, inc}, c.Steps())
	require.Equal(t, 7, call(t, c, 3))
}

func TestComposition_WithPartials(t *testing.T) {
	for x := -5; x <= 5; x++ {
		for y := -5; y <= 5; y++ {
			want := x * ((x + y) - x)

			px := call(t, plus, x)
			mx := call(t, minus, x)
			ux := call(t, mul, x)

			m := fpe.Must(fpe.Must(fpe.Compose(ux, mx)).ComposeWith(px))
			require.Equal(t, want, call(t, m, y))

			p := fpe.Must(fpe.Must(fpe.Pipe(px, mx)).PipeWith(ux))
			require.Equal(t, want, call(t, p, y))

			fm := fpe.Must(fpe.Must(fpe.Compose(mx, px)).PipeWith(ux))
			require.Equal(t, want, call(t, fm, y))

			require.True(t, fpe.SameSteps(m, p))
			require.True(t, fpe.SameSteps(p, fm))
		}
	}
}

func TestComposition_Associativity(t *testing.T) {
	left := fpe.Must(fpe.Compose(fpe.Must(fpe.Compose(inc, double)), negate))
	right := fpe.Must(fpe.Compose(inc, fpe.Must(fpe.Compose(double, negate))))

	require.Equal(t, 3, left.Len())
	require.True(t, fpe.SameSteps(left, right))
	require.Equal(t, []fpe.Callable{negate, double, inc}, left.Steps())
	require.Equal(t, left.Steps(), right.Steps())

	pl := fpe.Must(fpe.Pipe(fpe.Must(fpe.Pipe(inc, double)), negate))
	pr := fpe.Must(fpe.Pipe(inc, fpe.Must(fpe.Pipe(double, negate))))
	require.True(t, fpe.SameSteps(pl, pr))

	for x := -20; x <= 20; x++ {
		require.Equal(t, call(t, left, x), call(t, right, x))
		require.Equal(t, call(t, pl, x), call(t, pr, x))
	}
}

func TestComposition_ChainsAreFlat(t *testing.T) {
	a := fpe.Must(fpe.Pipe(inc, double))
	b := fpe.Must(fpe.Pipe(negate, inc))

	c := fpe.Must(fpe.Pipe(a, b))
	require.Equal(t, []fpe.Callable{inc, double, negate, inc}, c.Steps())
	for _, s := range c.Steps() {
		_, nested := s.(*fpe.Chain)
		require.False(t, nested)
	}

	// Operands are not modified.
	require.Equal(t, 2, a.Len())
	require.Equal(t, 2, b.Len())
}

func TestComposition_IdentityLaws(t *testing.T) {
	for _, f := range []*fpe.Function{inc, double, negate} {
		ml := fpe.Must(fpe.Compose(fpe.Identity, f))
		mr := fpe.Must(fpe.Compose(f, fpe.Identity))
		pl := fpe.Must(fpe.Pipe(fpe.Identity, f))
		pr := fpe.Must(fpe.Pipe(f, fpe.Identity))

		for _, c := range []*fpe.Chain{ml, mr, pl, pr} {
			require.True(t, fpe.SameSteps(c, f), "%v", c)
			for x := -10; x <= 10; x++ {
				require.Equal(t, call(t, f, x), call(t, c, x))
			}
		}
	}

	require.True(t, fpe.SameSteps(fpe.Must(fpe.Pipe(fpe.Identity, fpe.Identity)), fpe.Identity))
	require.False(t, fpe.SameSteps(fpe.Must(fpe.Pipe(inc, fpe.Identity)), double))
}

func TestComposition_GoFunctions(t *testing.T) {
	upper := func(x any) any { return x.(string) + "!" }
	parse := func(x any) (any, error) {
		if x == "" {
			return nil, errors.New("empty")
		}
		return len(x.(string)), nil
	}

	c := fpe.Must(fpe.Pipe(upper, parse))
	require.Equal(t, 4, call(t, c, "abc"))

	c = fpe.Must(fpe.Pipe(parse, upper))
	_, err := c.Call("")
	require.EqualError(t, err, "empty")
}

func TestComposition_GoFunctionLaws(t *testing.T) {
	f := func(x any) any { return x.(int) + 1 }
	g := func(x any) any { return x.(int) * 2 }
	h := func(x any) (any, error) { return -x.(int), nil }

	left := fpe.Must(fpe.Compose(fpe.Must(fpe.Compose(f, g)), h))
	right := fpe.Must(fpe.Compose(f, fpe.Must(fpe.Compose(g, h))))
	require.True(t, fpe.SameSteps(left, right))
	require.Equal(t, call(t, left, 5), call(t, right, 5))

	require.True(t, fpe.SameSteps(fpe.Must(fpe.Compose(fpe.Identity, f)), f))
	require.True(t, fpe.SameSteps(fpe.Must(fpe.Pipe(h, fpe.Identity)), h))
	require.True(t, fpe.SameSteps(f, f))
	require.False(t, fpe.SameSteps(f, g))

	_, err := fpe.Call(f)
	require.ErrorIs(t, err, fpe.ErrBind)
	_, err = fpe.CallKw(h, fpe.NewKeywords("x", 1), 1)
	require.ErrorIs(t, err, fpe.ErrBind)
}

// boxed holds another callable; it is comparable only when inner is.
type boxed struct {
	inner fpe.Callable
}

func (b boxed) Apply(args []any, kw fpe.Keywords) (any, error) { return b.inner.Apply(args, kw) }

// table maps an index to a value.
type table []int

func (t table) Apply(args []any, _ fpe.Keywords) (any, error) { return t[args[0].(int)], nil }

// scaled carries a function field, so it is never comparable.
type scaled struct {
	fn func(int) int
	by int
}

func (s scaled) Apply(args []any, _ fpe.Keywords) (any, error) { return s.fn(args[0].(int)) * s.by, nil }

func TestComposition_ValueCallables(t *testing.T) {
	b := boxed{inner: fpe.Target(func(args []any, _ fpe.Keywords) (any, error) { return args[0], nil })}
	tbl := table{10, 20, 30}
	sc := scaled{fn: func(x int) int { return x + 1 }, by: 3}

	for _, fn := range []fpe.Callable{b, tbl, sc} {
		c, err := fpe.Pipe(fn, fpe.Identity)
		require.NoError(t, err, "%T", fn)
		require.True(t, fpe.SameSteps(c, fn), "%T", fn)
		require.True(t, fpe.SameSteps(fpe.Must(fpe.Compose(fpe.Identity, fn)), fn), "%T", fn)

		left := fpe.Must(fpe.Pipe(fpe.Must(fpe.Pipe(fn, inc)), fn))
		right := fpe.Must(fpe.Pipe(fn, fpe.Must(fpe.Pipe(inc, fn))))
		require.True(t, fpe.SameSteps(left, right), "%T", fn)
	}

	require.Equal(t, 20, call(t, fpe.Must(fpe.Pipe(tbl, fpe.Identity)), 1))
	require.Equal(t, 9, call(t, fpe.Must(fpe.Pipe(sc, fpe.Identity)), 2))

	// Equal contents at different addresses are different steps.
	require.False(t, fpe.SameSteps(tbl, table{10, 20, 30}))
	require.False(t, fpe.SameSteps(tbl, tbl[:2]))
	require.False(t, fpe.SameSteps(sc, scaled{fn: sc.fn, by: 4}))
	require.True(t, fpe.SameSteps(sc, scaled{fn: sc.fn, by: 3}))
	require.False(t, fpe.SameSteps(b, boxed{inner: inc}))
}

func TestComposition_Errors(t *testing.T) {
	cases := map[string]func() (*fpe.Chain, error){
		"non-callable right":  func() (*fpe.Chain, error) { return fpe.Pipe(inc, 42) },
		"non-callable left":   func() (*fpe.Chain, error) { return fpe.Compose("f", inc) },
		"nil operand":         func() (*fpe.Chain, error) { return fpe.Pipe(nil, inc) },
		"nil function":        func() (*fpe.Chain, error) { return fpe.Pipe((*fpe.Function)(nil), inc) },
		"nil go func":         func() (*fpe.Chain, error) { return fpe.Pipe(inc, (func(any) any)(nil)) },
		"empty chain operand": func() (*fpe.Chain, error) { return fpe.Pipe(&fpe.Chain{}, inc) },
		"single function":     func() (*fpe.Chain, error) { return fpe.PipeAll(inc) },
	}

	for name, build := range cases {
		t.Run(name, func(t *testing.T) {
			c, err := build()
			require.Nil(t, c)
			require.ErrorIs(t, err, fpe.ErrComposition)

			var compErr *fpe.CompositionError
			require.ErrorAs(t, err, &compErr)
		})
	}
}

func TestChain_IsUnary(t *testing.T) {
	c := fpe.Must(fpe.Pipe(inc, double))

	_, err := fpe.Call(c, 1, 2)
	require.ErrorIs(t, err, fpe.ErrNotUnary)

	_, err = fpe.CallKw(c, fpe.NewKeywords("x", 1), 1)
	require.ErrorIs(t, err, fpe.ErrNotUnary)

	_, err = fpe.Call(fpe.Identity)
	require.ErrorIs(t, err, fpe.ErrNotUnary)
}

func TestChain_StepErrorsPropagate(t *testing.T) {
	errBoom := errors.New("boom")
	fail := fpe.UnaryE("fail", func(int) (int, error) { return 0, errBoom })

	c := fpe.Must(fpe.PipeAll(inc, fail, double))
	_, err := c.Call(1)
	require.True(t, err == errBoom, "got %v", err)

	// A step receiving the wrong type reports it through the step itself.
	c = fpe.Must(fpe.Pipe(fpe.Const("text"), inc))
	_, err = c.Call(1)
	require.ErrorIs(t, err, fpe.ErrBind)
}

func TestChain_CurriedStepsKeepAccumulating(t *testing.T) {
	sum3 := fpe.Must(fpe.Curry(fpe.Lift3("sum3", func(a, b, c int) int { return a + b + c })))

	c := fpe.Must(fpe.Pipe(inc, sum3))
	partial := call(t, c, 1)
	require.IsType(t, &fpe.Curried{}, partial)
	require.Equal(t, []any{2}, partial.(*fpe.Curried).Args())
	require.Equal(t, 2+3+4, call(t, partial, 3, 4))
}

func TestChain_Metadata(t *testing.T) {
	c := fpe.Must(fpe.PipeAll(inc, double, negate))

	require.Equal(t, "inc | double | negate", c.Name())
	require.Equal(t, "<chain inc | double | negate>", c.String())
	require.Equal(t, 0, c.Retracted())
	require.True(t, c.IsCurried())
	require.True(t, fpe.IsCurried(fpe.Identity))
	require.Equal(t, []fpe.Callable{inc}, fpe.Steps(inc))
	require.Nil(t, fpe.Steps(3))
}

func TestCurriedComposeAndPipe(t *testing.T) {
	withInc := call(t, fpe.CurriedCompose, inc)
	require.IsType(t, &fpe.Curried{}, withInc)

	c := call(t, withInc, double).(*fpe.Chain)
	require.Equal(t, []fpe.Callable{double, inc}, c.Steps())

	p := call(t, fpe.CurriedPipe, inc, double).(*fpe.Chain)
	require.Equal(t, []fpe.Callable{inc, double}, p.Steps())

	v, err := fpe.Call(fpe.CurriedPipe, inc, 3)
	require.ErrorIs(t, err, fpe.ErrComposition)
	require.Nil(t, v)

	v, err = fpe.Call(fpe.CurriedCompose, "f", inc)
	require.ErrorIs(t, err, fpe.ErrComposition)
	require.Nil(t, v)
}

func TestValueOperators(t *testing.T) {
	values := []fpe.Value{inc, plus, fpe.Identity, fpe.Must(fpe.Pipe(inc, inc))}

	for _, v := range values {
		p, err := v.PipeWith(double)
		require.NoError(t, err)
		require.Equal(t, append(v.Steps(), double), p.Steps())

		c, err := v.ComposeWith(double)
		require.NoError(t, err)
		require.Equal(t, append([]fpe.Callable{double}, v.Steps()...), c.Steps())
	}
}

package laws

import (
	"fmt"

	"github.com/KasperOmsK/fpe"
	"github.com/KasperOmsK/fpe/typeclass"
)

// Functor checks fmap id == id and fmap (f . g) == fmap f . fmap g on fa.
func Functor[F typeclass.Functor[F]](c *Checker, fa F, f, g any) error {
	err := c.sides(FunctorIdentity, fa,
		func() (any, error) { return fa.Fmap(fpe.Identity) },
		func() (any, error) { return fa, nil })
	if err != nil {
		return err
	}

	fg, err := fpe.Compose(f, g)
	if err != nil {
		return err
	}
	return c.sides(FunctorComposition, fa,
		func() (any, error) { return fa.Fmap(fg) },
		func() (any, error) {
			ga, err := fa.Fmap(g)
			if err != nil {
				return nil, err
			}
			return ga.Fmap(f)
		})
}

// Applicative checks the four applicative laws:
//
//	identity:     pure id <*> v == v
//	composition:  pure (.) <*> u <*> w <*> v == u <*> (w <*> v)
//	homomorphism: pure f <*> pure x == pure (f x)
//	interchange:  w <*> pure x == pure ($ x) <*> w
//
// u and w hold functions, f is a plain function and x a plain value.
func Applicative[F typeclass.Applicative[F]](c *Checker, v, u, w F, f, x any) error {
	err := c.sides(ApplicativeIdentity, v,
		func() (any, error) { return v.Pure(fpe.Identity).Apply(v) },
		func() (any, error) { return v, nil })
	if err != nil {
		return err
	}

	err = c.sides(ApplicativeComposition, v,
		func() (any, error) {
			acc, err := v.Pure(fpe.CurriedCompose).Apply(u)
			if err != nil {
				return nil, err
			}
			if acc, err = acc.Apply(w); err != nil {
				return nil, err
			}
			return acc.Apply(v)
		},
		func() (any, error) {
			wv, err := w.Apply(v)
			if err != nil {
				return nil, err
			}
			return u.Apply(wv)
		})
	if err != nil {
		return err
	}

	err = c.sides(ApplicativeHomomorphism, x,
		func() (any, error) { return v.Pure(f).Apply(v.Pure(x)) },
		func() (any, error) {
			fx, err := fpe.Call(f, x)
			if err != nil {
				return nil, err
			}
			return v.Pure(fx), nil
		})
	if err != nil {
		return err
	}

	applyTo := fpe.UnaryE(fmt.Sprintf("($ %v)", x), func(fn any) (any, error) {
		return fpe.Call(fn, x)
	})
	return c.sides(ApplicativeInterchange, x,
		func() (any, error) { return w.Apply(v.Pure(x)) },
		func() (any, error) { return v.Pure(applyTo).Apply(w) })
}

// Monad checks the three monad laws on m, with k and h functions returning
// an F and x a plain value:
//
//	left identity:  pure x >>= k == k x
//	right identity: m >>= pure == m
//	associativity:  m >>= (\y -> k y >>= h) == (m >>= k) >>= h
func Monad[F typeclass.Monad[F]](c *Checker, m F, k, h, x any) error {
	err := c.sides(MonadLeftIdentity, x,
		func() (any, error) { return m.Pure(x).Bind(k) },
		func() (any, error) { return fpe.Call(k, x) })
	if err != nil {
		return err
	}

	pure := fpe.Unary("pure", func(y any) F { return m.Pure(y) })
	err = c.sides(MonadRightIdentity, m,
		func() (any, error) { return m.Bind(pure) },
		func() (any, error) { return m, nil })
	if err != nil {
		return err
	}

	kThenH := fpe.UnaryE("k >=> h", func(y any) (F, error) {
		var zero F
		ky, err := fpe.Call(k, y)
		if err != nil {
			return zero, err
		}
		next, ok := ky.(F)
		if !ok {
			return zero, fmt.Errorf("%w: %T", typeclass.ErrWrongType, ky)
		}
		return next.Bind(h)
	})
	return c.sides(MonadAssociativity, m,
		func() (any, error) { return m.Bind(kThenH) },
		func() (any, error) {
			mk, err := m.Bind(k)
			if err != nil {
				return nil, err
			}
			return mk.Bind(h)
		})
}

// Semigroup checks (x <> y) <> z == x <> (y <> z).
func Semigroup[S typeclass.Semigroup[S]](c *Checker, x, y, z S) error {
	return c.sides(SemigroupAssociativity, []S{x, y, z},
		func() (any, error) {
			xy, err := x.Append(y)
			if err != nil {
				return nil, err
			}
			return xy.Append(z)
		},
		func() (any, error) {
			yz, err := y.Append(z)
			if err != nil {
				return nil, err
			}
			return x.Append(yz)
		})
}

// Monoid checks that Empty is neutral on both sides of Append.
func Monoid[S typeclass.Monoid[S]](c *Checker, x S) error {
	err := c.sides(MonoidIdentity, x,
		func() (any, error) { return x.Empty().Append(x) },
		func() (any, error) { return x, nil })
	if err != nil {
		return err
	}
	return c.sides(MonoidIdentity, x,
		func() (any, error) { return x.Append(x.Empty()) },
		func() (any, error) { return x, nil })
}

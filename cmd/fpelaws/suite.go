package main

import (
	"errors"

	"github.com/KasperOmsK/fpe/either"
	"github.com/KasperOmsK/fpe/internal/config"
	"github.com/KasperOmsK/fpe/internal/logging"
	"github.com/KasperOmsK/fpe/laws"
	"github.com/KasperOmsK/fpe/maybe"
)

// result holds the outcome of one law over the whole suite.
type result struct {
	law      string
	checked  int
	failures []error
}

func (r *result) ok() bool { return len(r.failures) == 0 }

type suite struct {
	cfg     *config.Config
	log     *logging.Logger
	checker *laws.Checker
	fns     catalog
	results map[string]*result
}

func newSuite(cfg *config.Config, log *logging.Logger, fns catalog) *suite {
	checker := laws.New()
	if cfg.Tolerance > 0 {
		checker = laws.New(laws.Tolerance(cfg.Tolerance))
	}
	s := &suite{cfg: cfg, log: log, checker: checker, fns: fns, results: map[string]*result{}}
	for _, law := range cfg.Laws {
		s.results[law] = &result{law: law}
	}
	return s
}

// wants reports whether any of names is configured.
func (s *suite) wants(names ...string) bool {
	for _, n := range names {
		if s.cfg.Checks(n) {
			return true
		}
	}
	return false
}

// record files the outcome of one check covering the laws in group. A
// violation counts against its own law; any other error counts against the
// first configured law of the group.
func (s *suite) record(sample string, err error, group ...string) {
	var v *laws.Violation
	violated := ""
	if errors.As(err, &v) {
		violated = v.Law
	}
	first := true
	for _, law := range group {
		r, ok := s.results[law]
		if !ok {
			continue
		}
		r.checked++
		switch {
		case err == nil:
		case violated != "":
			if violated == law {
				r.failures = append(r.failures, err)
			}
		case first:
			r.failures = append(r.failures, err)
		}
		first = false
	}
	if err != nil {
		s.log.Debugf("%s: %v", sample, err)
	} else {
		s.log.Tracef("%s: ok", sample)
	}
}

func (s *suite) inputs(d domain) []any {
	var out []any
	switch d {
	case ints:
		for _, x := range s.cfg.Inputs.Ints {
			out = append(out, x)
		}
	case floats:
		for _, x := range s.cfg.Inputs.Floats {
			out = append(out, x)
		}
	case strs:
		for _, x := range s.cfg.Inputs.Strings {
			out = append(out, x)
		}
	}
	return out
}

// run checks every configured law and returns the results in the order of
// the configuration.
func (s *suite) run() []*result {
	for _, d := range []domain{ints, floats, strs} {
		s.composition(d)
		s.curry(d)
		s.functor(d)
		s.applicative(d)
	}
	s.monad()
	s.semigroup()

	out := make([]*result, 0, len(s.cfg.Laws))
	for _, law := range s.cfg.Laws {
		r := s.results[law]
		s.log.Infof("%s: %d checks, %d failures", law, r.checked, len(r.failures))
		out = append(out, r)
	}
	return out
}

func (s *suite) composition(d domain) {
	fs := s.fns.of(d, unary)
	xs := s.inputs(d)
	if s.wants(laws.CompositionAssociativity) {
		for i, f := range fs {
			g, h := fs[(i+1)%len(fs)], fs[(i+2)%len(fs)]
			err := s.checker.CheckCompositionAssociativity(f.fn, g.fn, h.fn, xs)
			s.record(f.name+" . "+g.name+" . "+h.name, err, laws.CompositionAssociativity)
		}
	}
	if s.wants(laws.CompositionIdentity) {
		for _, f := range fs {
			s.record("id . "+f.name, s.checker.CheckCompositionIdentity(f.fn, xs), laws.CompositionIdentity)
		}
	}
}

func (s *suite) curry(d domain) {
	if !s.wants(laws.CurryGrouping) {
		return
	}
	xs := s.inputs(d)
	for _, f := range s.fns.of(d, ternary) {
		for i := 0; i+3 <= len(xs); i++ {
			s.record(f.name, s.checker.CheckCurryGrouping(f.fn, xs[i:i+3]), laws.CurryGrouping)
		}
	}
}

func (s *suite) functor(d domain) {
	group := []string{laws.FunctorIdentity, laws.FunctorComposition}
	if !s.wants(group...) {
		return
	}
	fs := s.fns.of(d, unary)
	for i, f := range fs {
		g := fs[(i+1)%len(fs)]
		sample := "fmap " + f.name + " " + g.name
		s.record(sample, laws.Functor(s.checker, maybe.Nothing, f.fn, g.fn), group...)
		s.record(sample, laws.Functor(s.checker, either.Left("e"), f.fn, g.fn), group...)
		for _, x := range s.inputs(d) {
			s.record(sample, laws.Functor(s.checker, maybe.Just(x), f.fn, g.fn), group...)
			s.record(sample, laws.Functor(s.checker, either.Right(x), f.fn, g.fn), group...)
		}
	}
}

func (s *suite) applicative(d domain) {
	group := []string{
		laws.ApplicativeIdentity, laws.ApplicativeComposition,
		laws.ApplicativeHomomorphism, laws.ApplicativeInterchange,
	}
	if !s.wants(group...) {
		return
	}
	fs := s.fns.of(d, unary)
	for i, f := range fs {
		g := fs[(i+1)%len(fs)]
		sample := "ap " + f.name + " " + g.name
		for _, x := range s.inputs(d) {
			u, w := maybe.Just(f.fn), maybe.Just(g.fn)
			s.record(sample, laws.Applicative(s.checker, maybe.Just(x), u, w, f.fn, x), group...)
			s.record(sample, laws.Applicative(s.checker, maybe.Nothing, u, w, f.fn, x), group...)

			eu, ew := either.Right(f.fn), either.Right(g.fn)
			s.record(sample, laws.Applicative(s.checker, either.Right(x), eu, ew, f.fn, x), group...)
			s.record(sample, laws.Applicative(s.checker, either.Left(x), eu, either.Left("w"), f.fn, x), group...)
		}
	}
}

func (s *suite) monad() {
	group := []string{laws.MonadLeftIdentity, laws.MonadRightIdentity, laws.MonadAssociativity}
	if !s.wants(group...) {
		return
	}
	xs := s.inputs(ints)
	ks := s.fns.of(ints, maybeKleisli)
	for i, k := range ks {
		h := ks[(i+1)%len(ks)]
		sample := k.name + " >=> " + h.name
		for _, x := range xs {
			s.record(sample, laws.Monad(s.checker, maybe.Just(x), k.fn, h.fn, x), group...)
			s.record(sample, laws.Monad(s.checker, maybe.Nothing, k.fn, h.fn, x), group...)
		}
	}
	es := s.fns.of(ints, eitherKleisli)
	for i, k := range es {
		h := es[(i+1)%len(es)]
		sample := k.name + " >=> " + h.name
		for _, x := range xs {
			s.record(sample, laws.Monad(s.checker, either.Right(x), k.fn, h.fn, x), group...)
			s.record(sample, laws.Monad(s.checker, either.Left("e"), k.fn, h.fn, x), group...)
		}
	}
}

func (s *suite) semigroup() {
	if !s.wants(laws.SemigroupAssociativity, laws.MonoidIdentity) {
		return
	}
	ms := []maybe.Maybe{maybe.Nothing}
	var es []either.Either
	for _, x := range s.inputs(strs) {
		ms = append(ms, maybe.Just(x))
		es = append(es, either.Left(x), either.Right(x))
	}

	for _, x := range ms {
		s.record("mempty <> "+x.String(), laws.Monoid(s.checker, x), laws.MonoidIdentity)
		for _, y := range ms {
			for _, z := range ms {
				s.record("<> on Maybe", laws.Semigroup(s.checker, x, y, z), laws.SemigroupAssociativity)
			}
		}
	}
	for _, x := range es {
		for _, y := range es {
			for _, z := range es {
				s.record("<> on Either", laws.Semigroup(s.checker, x, y, z), laws.SemigroupAssociativity)
			}
		}
	}
}

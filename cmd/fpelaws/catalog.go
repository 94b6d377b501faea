package main

import (
	"fmt"
	"strings"

	"github.com/KasperOmsK/fpe"
	"github.com/KasperOmsK/fpe/either"
	"github.com/KasperOmsK/fpe/maybe"
)

// domain is the type of values a catalog function accepts.
type domain string

const (
	ints    domain = "int"
	floats  domain = "float"
	strs    domain = "string"
	nothing domain = ""
)

type kind int

const (
	unary kind = iota
	ternary
	maybeKleisli
	eitherKleisli
)

type entry struct {
	name   string
	domain domain
	kind   kind
	fn     any
}

// catalog lists the functions the laws are checked on.
type catalog []entry

func defaultCatalog() catalog {
	return catalog{
		{"inc", ints, unary, fpe.Unary("inc", func(x int) int { return x + 1 })},
		{"double", ints, unary, fpe.Unary("double", func(x int) int { return x * 2 })},
		{"square", ints, unary, fpe.Unary("square", func(x int) int { return x * x })},
		{"negate", ints, unary, fpe.Unary("negate", func(x int) int { return -x })},
		{"third", floats, unary, fpe.Unary("third", func(x float64) float64 { return x / 3 })},
		{"scale", floats, unary, fpe.Unary("scale", func(x float64) float64 { return x * 2.5 })},
		{"shift", floats, unary, fpe.Unary("shift", func(x float64) float64 { return x + 0.1 })},
		{"shout", strs, unary, fpe.Unary("shout", strings.ToUpper)},
		{"exclaim", strs, unary, fpe.Unary("exclaim", func(s string) string { return s + "!" })},
		{"bracket", strs, unary, fpe.Unary("bracket", func(s string) string { return "[" + s + "]" })},

		{"add3", ints, ternary, fpe.Lift3("add3", func(a, b, c int) int { return a + b + c })},
		{"fma", floats, ternary, fpe.Lift3("fma", func(a, b, c float64) float64 { return a*b + c })},
		{"join3", strs, ternary, fpe.Lift3("join3", func(a, b, c string) string { return a + b + c })},

		{"halve", ints, maybeKleisli, fpe.Unary("halve", func(x int) maybe.Maybe {
			if x%2 != 0 {
				return maybe.Nothing
			}
			return maybe.Just(x / 2)
		})},
		{"positive", ints, maybeKleisli, fpe.Unary("positive", func(x int) maybe.Maybe {
			if x <= 0 {
				return maybe.Nothing
			}
			return maybe.Just(x)
		})},
		{"checkEven", ints, eitherKleisli, fpe.Unary("checkEven", func(x int) either.Either {
			if x%2 != 0 {
				return either.Left(fmt.Sprintf("%d is odd", x))
			}
			return either.Right(x)
		})},
		{"shrink", ints, eitherKleisli, fpe.Unary("shrink", func(x int) either.Either {
			return either.Right(x / 3)
		})},
	}
}

// only returns the entries named in names, in catalog order. An empty names
// keeps the whole catalog.
func (c catalog) only(names []string) (catalog, error) {
	if len(names) == 0 {
		return c, nil
	}
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}
	var out catalog
	for _, e := range c {
		if wanted[e.name] {
			out = append(out, e)
			delete(wanted, e.name)
		}
	}
	for _, n := range names {
		if wanted[n] {
			return nil, fmt.Errorf("unknown function %q", n)
		}
	}
	return out, nil
}

func (c catalog) of(d domain, k kind) []entry {
	var out []entry
	for _, e := range c {
		if e.kind == k && (d == nothing || e.domain == d) {
			out = append(out, e)
		}
	}
	return out
}

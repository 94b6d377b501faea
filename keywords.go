package fpe

import (
	"fmt"
	"iter"
	"strings"
)

// Keywords is an immutable ordered mapping of argument names to values.
//
// Order is insertion order. Every method that changes the mapping returns a
// new Keywords value and leaves the receiver untouched, so a Keywords value
// can be shared freely. The zero value is an empty mapping.
type Keywords struct {
	names  []string
	values []any
}

// NewKeywords builds a mapping from alternating name/value pairs:
//
//	NewKeywords("x", 1, "y", 2)
//
// NewKeywords panics if kv has odd length or if a name is not a string.
// A repeated name overrides the earlier value but keeps its position.
func NewKeywords(kv ...any) Keywords {
	if len(kv)%2 != 0 {
		panic("fpe.NewKeywords: odd number of arguments")
	}
	var k Keywords
	for i := 0; i < len(kv); i += 2 {
		name, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("fpe.NewKeywords: argument %d is %T, not a name", i, kv[i]))
		}
		k = k.With(name, kv[i+1])
	}
	return k
}

// Len returns the number of entries.
func (k Keywords) Len() int { return len(k.names) }

// Names returns the names in order.
func (k Keywords) Names() []string {
	return append([]string(nil), k.names...)
}

func (k Keywords) index(name string) int {
	for i, n := range k.names {
		if n == name {
			return i
		}
	}
	return -1
}

// Get returns the value bound to name.
func (k Keywords) Get(name string) (any, bool) {
	if i := k.index(name); i >= 0 {
		return k.values[i], true
	}
	return nil, false
}

// Has reports whether name is bound.
func (k Keywords) Has(name string) bool { return k.index(name) >= 0 }

// With returns a copy of k with name bound to v. An existing name keeps its
// position; a new one is appended.
func (k Keywords) With(name string, v any) Keywords {
	out := k.clone(1)
	if i := out.index(name); i >= 0 {
		out.values[i] = v
		return out
	}
	out.names = append(out.names, name)
	out.values = append(out.values, v)
	return out
}

// Merge returns k overridden by other.
func (k Keywords) Merge(other Keywords) Keywords {
	if other.Len() == 0 {
		return k
	}
	out := k.clone(other.Len())
	for i, name := range other.names {
		if j := out.index(name); j >= 0 {
			out.values[j] = other.values[i]
			continue
		}
		out.names = append(out.names, name)
		out.values = append(out.values, other.values[i])
	}
	return out
}

// Tail returns the last n entries. n larger than Len returns everything and
// a non-positive n returns an empty mapping.
func (k Keywords) Tail(n int) Keywords {
	if n <= 0 {
		return Keywords{}
	}
	if n >= k.Len() {
		return k
	}
	start := k.Len() - n
	return Keywords{
		names:  append([]string(nil), k.names[start:]...),
		values: append([]any(nil), k.values[start:]...),
	}
}

// SubsetOf reports whether every name in k is also bound in other.
func (k Keywords) SubsetOf(other Keywords) bool {
	for _, name := range k.names {
		if !other.Has(name) {
			return false
		}
	}
	return true
}

// All iterates over the entries in order.
func (k Keywords) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for i, name := range k.names {
			if !yield(name, k.values[i]) {
				return
			}
		}
	}
}

func (k Keywords) String() string {
	parts := make([]string, 0, k.Len())
	for name, v := range k.All() {
		parts = append(parts, fmt.Sprintf("%s=%v", name, v))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (k Keywords) clone(extra int) Keywords {
	out := Keywords{
		names:  make([]string, len(k.names), len(k.names)+extra),
		values: make([]any, len(k.values), len(k.values)+extra),
	}
	copy(out.names, k.names)
	copy(out.values, k.values)
	return out
}

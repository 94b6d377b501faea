// Package seq provides curried helpers over sequences.
//
// Every helper takes the sequence last, so partial applications compose with
// fpe.Pipe:
//
//	evens := fpe.Must(fpe.PipeAll(
//		fpe.Must(seq.Filter.Call(isEven)),
//		fpe.Must(seq.Take.Call(3)),
//	))
//
// Helpers accept a Stream, an iter.Seq[any] or any slice or array. Lazy
// helpers return a Stream; folds and lookups consume their input and return a
// plain value.
package seq

import (
	"errors"
	"fmt"
	"iter"
	"reflect"

	"github.com/KasperOmsK/fpe"
	"github.com/KasperOmsK/fpe/internal/iterx"
	"github.com/KasperOmsK/fpe/typeclass"

	"golang.org/x/exp/constraints"
)

// Stream is a lazy sequence of values. An item paired with a non-nil error
// ends the stream.
type Stream = iter.Seq2[any, error]

// Split holds the two halves produced by Variants.
type Split struct {
	Match Stream
	Rest  Stream
}

// Error reports the item a function failed on while a Stream was consumed.
type Error struct {
	Item   any
	Reason error
}

func (e *Error) Error() string {
	return fmt.Sprintf("seq: item %v: %v", e.Item, e.Reason)
}

func (e *Error) Unwrap() error { return e.Reason }

var (
	// ErrEmpty is returned by Foldl1 and Foldr1 on an empty sequence.
	ErrEmpty = errors.New("seq: empty sequence")

	// ErrNotIterable is returned when a helper receives something that is
	// not a sequence.
	ErrNotIterable = errors.New("seq: value is not iterable")

	// ErrNotPredicate is returned when a predicate does not return a bool.
	ErrNotPredicate = errors.New("seq: predicate must return a bool")
)

// From converts v to a Stream.
func From(v any) (Stream, error) {
	switch s := v.(type) {
	case Stream:
		return s, nil
	case func(func(any, error) bool):
		return s, nil
	case iter.Seq[any]:
		return iterx.WithErrors(s), nil
	case func(func(any) bool):
		return iterx.WithErrors(s), nil
	case []any:
		return iterx.WithErrors(iterx.FromSlice(s)), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return func(yield func(any, error) bool) {
			for i := range rv.Len() {
				if !yield(rv.Index(i).Interface(), nil) {
					return
				}
			}
		}, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrNotIterable, v)
}

// Slice drains v into a slice, returning the first error met.
func Slice(v any) ([]any, error) {
	s, err := From(v)
	if err != nil {
		return nil, err
	}
	return iterx.Collect(s)
}

// Range yields the integers in [from, to).
func Range[T constraints.Integer](from, to T) iter.Seq[any] {
	return func(yield func(any) bool) {
		for i := from; i < to; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

var (
	// Map(fn, xs) yields fn(x) for every x of xs.
	Map = curried("map", []string{"fn", "xs"}, func(args []any) (any, error) {
		fn := args[0]
		return transform(fn, args[1], func(x any, yield func(any, error) bool) bool {
			y, err := fpe.Call(fn, x)
			if err != nil {
				return fail(yield, x, err)
			}
			return yield(y, nil)
		})
	})

	// Filter(predicate, xs) yields the items of xs satisfying predicate.
	Filter = curried("filter", []string{"predicate", "xs"}, func(args []any) (any, error) {
		pred := args[0]
		return transform(pred, args[1], func(x any, yield func(any, error) bool) bool {
			ok, err := holds(pred, x)
			if err != nil {
				return fail(yield, x, err)
			}
			return !ok || yield(x, nil)
		})
	})

	// FlatMap(fn, xs) yields the items of the sequences returned by fn, in
	// order.
	FlatMap = curried("flatMap", []string{"fn", "xs"}, func(args []any) (any, error) {
		fn := args[0]
		return transform(fn, args[1], func(x any, yield func(any, error) bool) bool {
			inner, err := fpe.Call(fn, x)
			if err != nil {
				return fail(yield, x, err)
			}
			return yieldAll(inner, x, yield)
		})
	})

	// Flatten(xs) yields the items of every sequence of xs.
	Flatten = fpe.Declare("flatten", []fpe.Param{fpe.Required("xs")}, func(args []any) (any, error) {
		xs, err := From(args[0])
		if err != nil {
			return nil, err
		}
		return lazy(xs, func(x any, yield func(any, error) bool) bool {
			return yieldAll(x, x, yield)
		}), nil
	})

	// Collect(predicate, fn, xs) yields fn(x) for the items of xs satisfying
	// predicate.
	Collect = curried("collect", []string{"predicate", "fn", "xs"}, func(args []any) (any, error) {
		pred, fn := args[0], args[1]
		if !fpe.IsCallable(pred) {
			return nil, fmt.Errorf("%w: %T", fpe.ErrNotCallable, pred)
		}
		return transform(fn, args[2], func(x any, yield func(any, error) bool) bool {
			ok, err := holds(pred, x)
			if err != nil {
				return fail(yield, x, err)
			}
			if !ok {
				return true
			}
			y, err := fpe.Call(fn, x)
			if err != nil {
				return fail(yield, x, err)
			}
			return yield(y, nil)
		})
	})

	// Variants(predicate, xs) splits xs into the items satisfying predicate
	// and the others. Each half evaluates predicate on its own.
	Variants = curried("variants", []string{"predicate", "xs"}, func(args []any) (any, error) {
		pred := args[0]
		half := func(want bool) (Stream, error) {
			return transform(pred, args[1], func(x any, yield func(any, error) bool) bool {
				ok, err := holds(pred, x)
				if err != nil {
					return fail(yield, x, err)
				}
				return ok != want || yield(x, nil)
			})
		}
		match, err := half(true)
		if err != nil {
			return nil, err
		}
		rest, err := half(false)
		if err != nil {
			return nil, err
		}
		return Split{Match: match, Rest: rest}, nil
	})

	// Take(n, xs) yields the first n items of xs.
	Take = curried("take", []string{"n", "xs"}, func(args []any) (any, error) {
		n, err := count(args[0])
		if err != nil {
			return nil, err
		}
		xs, err := From(args[1])
		if err != nil {
			return nil, err
		}
		return Stream(func(yield func(any, error) bool) {
			if n == 0 {
				return
			}
			seen := 0
			for x, err := range xs {
				if !yield(x, err) || err != nil {
					return
				}
				if seen++; seen == n {
					return
				}
			}
		}), nil
	})

	// Drop(n, xs) skips the first n items of xs and yields the rest.
	Drop = curried("drop", []string{"n", "xs"}, func(args []any) (any, error) {
		n, err := count(args[0])
		if err != nil {
			return nil, err
		}
		xs, err := From(args[1])
		if err != nil {
			return nil, err
		}
		return Stream(func(yield func(any, error) bool) {
			skipped := 0
			for x, err := range xs {
				if err == nil && skipped < n {
					skipped++
					continue
				}
				if !yield(x, err) || err != nil {
					return
				}
			}
		}), nil
	})

	// TakeWhile(predicate, xs) yields items of xs until predicate fails.
	TakeWhile = curried("takeWhile", []string{"predicate", "xs"}, func(args []any) (any, error) {
		pred := args[0]
		return transform(pred, args[1], func(x any, yield func(any, error) bool) bool {
			ok, err := holds(pred, x)
			if err != nil {
				return fail(yield, x, err)
			}
			return ok && yield(x, nil)
		})
	})

	// DropWhile(predicate, xs) skips items of xs while predicate holds and
	// yields everything after.
	DropWhile = curried("dropWhile", []string{"predicate", "xs"}, func(args []any) (any, error) {
		pred := args[0]
		xs, err := source(pred, args[1])
		if err != nil {
			return nil, err
		}
		return Stream(func(yield func(any, error) bool) {
			dropping := true
			for x, err := range xs {
				if err != nil {
					yield(nil, err)
					return
				}
				if dropping {
					ok, err := holds(pred, x)
					if err != nil {
						fail(yield, x, err)
						return
					}
					if ok {
						continue
					}
					dropping = false
				}
				if !yield(x, nil) {
					return
				}
			}
		}), nil
	})

	// Chunk(size, xs) yields the items of xs in slices of size items. The
	// last slice may be shorter.
	Chunk = curried("chunk", []string{"size", "xs"}, func(args []any) (any, error) {
		size, err := count(args[0])
		if err != nil {
			return nil, err
		}
		if size == 0 {
			return nil, fmt.Errorf("seq: chunk size must be positive")
		}
		xs, err := From(args[1])
		if err != nil {
			return nil, err
		}
		return Stream(func(yield func(any, error) bool) {
			// Every chunk owns its backing array so callers can retain it.
			accum := make([]any, 0, size)
			for x, err := range xs {
				if err != nil {
					yield(nil, err)
					return
				}
				if len(accum) >= size {
					if !yield(accum, nil) {
						return
					}
					accum = make([]any, 0, size)
				}
				accum = append(accum, x)
			}
			if len(accum) > 0 {
				yield(accum, nil)
			}
		}), nil
	})

	// GroupBy(key, xs) yields runs of consecutive items of xs with the same
	// key as slices. It does not reorder xs:
	//
	//	A, A, B, B, A  ->  [A, A], [B, B], [A]
	GroupBy = curried("groupBy", []string{"key", "xs"}, func(args []any) (any, error) {
		key := args[0]
		if !fpe.IsCallable(key) {
			return nil, fmt.Errorf("%w: %T", fpe.ErrNotCallable, key)
		}
		xs, err := From(args[1])
		if err != nil {
			return nil, err
		}
		return Stream(func(yield func(any, error) bool) {
			var accum []any
			var current any
			for x, err := range xs {
				if err != nil {
					yield(nil, err)
					return
				}
				k, err := fpe.Call(key, x)
				if err != nil {
					fail(yield, x, err)
					return
				}
				if len(accum) > 0 && !typeclass.Equal(k, current) {
					if !yield(accum, nil) {
						return
					}
					accum = nil
				}
				current = k
				accum = append(accum, x)
			}
			if len(accum) > 0 {
				yield(accum, nil)
			}
		}), nil
	})

	// ZipWith(fn, xs, ys) yields fn(x, y) for the pairs of items of xs and
	// ys, stopping with the shortest.
	ZipWith = curried("zipWith", []string{"fn", "xs", "ys"}, func(args []any) (any, error) {
		fn := args[0]
		ys, err := From(args[2])
		if err != nil {
			return nil, err
		}
		xs, err := source(fn, args[1])
		if err != nil {
			return nil, err
		}
		return Stream(func(yield func(any, error) bool) {
			next, stop := iter.Pull2(ys)
			defer stop()
			for x, err := range xs {
				if err != nil {
					yield(nil, err)
					return
				}
				y, err, ok := next()
				if !ok {
					return
				}
				if err != nil {
					yield(nil, err)
					return
				}
				z, err := fpe.Call(fn, x, y)
				if err != nil {
					fail(yield, []any{x, y}, err)
					return
				}
				if !yield(z, nil) {
					return
				}
			}
		}), nil
	})

	// ZipPad(pad, xs, ys) pairs the items of xs and ys as []any{x, y} until
	// both are exhausted, filling in pad for the shorter one.
	ZipPad = curried("zipPad", []string{"pad", "xs", "ys"}, func(args []any) (any, error) {
		return zipLongest(pair, args[0], args[1], args[2])
	})

	// ZipWithPad(fn, pad, xs, ys) is ZipPad with fn(x, y) applied to every
	// pair.
	ZipWithPad = curried("zipWithPad", []string{"fn", "pad", "xs", "ys"}, func(args []any) (any, error) {
		if !fpe.IsCallable(args[0]) {
			return nil, fmt.Errorf("%w: %T", fpe.ErrNotCallable, args[0])
		}
		return zipLongest(args[0], args[1], args[2], args[3])
	})

	// Accumulate(fn, xs) yields the running results of folding xs from the
	// left, starting from its first item: x0, fn(x0, x1), fn(fn(x0, x1), x2)...
	Accumulate = curried("accumulate", []string{"fn", "xs"}, func(args []any) (any, error) {
		fn := args[0]
		xs, err := source(fn, args[1])
		if err != nil {
			return nil, err
		}
		return Stream(func(yield func(any, error) bool) {
			var acc any
			started := false
			for x, err := range xs {
				if err != nil {
					yield(nil, err)
					return
				}
				if !started {
					acc, started = x, true
				} else if acc, err = fpe.Call(fn, acc, x); err != nil {
					fail(yield, x, err)
					return
				}
				if !yield(acc, nil) {
					return
				}
			}
		}), nil
	})

	// Foldl(fn, init, xs) reduces xs from the left:
	// fn(fn(fn(init, x0), x1), x2).
	Foldl = curried("foldl", []string{"fn", "init", "xs"}, func(args []any) (any, error) {
		xs, err := From(args[2])
		if err != nil {
			return nil, err
		}
		return fold(args[0], args[1], xs)
	})

	// Foldl1(fn, xs) is Foldl using the first item of xs as initial value.
	Foldl1 = curried("foldl1", []string{"fn", "xs"}, func(args []any) (any, error) {
		xs, err := From(args[1])
		if err != nil {
			return nil, err
		}
		next, stop := iter.Pull2(xs)
		defer stop()
		first, err, ok := next()
		if !ok {
			return nil, ErrEmpty
		}
		if err != nil {
			return nil, err
		}
		return fold(args[0], first, func(yield func(any, error) bool) {
			for {
				x, err, ok := next()
				if !ok || !yield(x, err) {
					return
				}
			}
		})
	})

	// Foldr(fn, init, xs) reduces xs from the right:
	// fn(fn(fn(init, x2), x1), x0).
	Foldr = curried("foldr", []string{"fn", "init", "xs"}, func(args []any) (any, error) {
		items, err := Slice(args[2])
		if err != nil {
			return nil, err
		}
		return fold(args[0], args[1], iterx.WithErrors(iterx.Backward(items)))
	})

	// Foldr1(fn, xs) is Foldr using the last item of xs as initial value.
	Foldr1 = curried("foldr1", []string{"fn", "xs"}, func(args []any) (any, error) {
		items, err := Slice(args[1])
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return nil, ErrEmpty
		}
		last := len(items) - 1
		return fold(args[0], items[last], iterx.WithErrors(iterx.Backward(items[:last])))
	})

	// Elem(item, xs) reports whether item occurs in xs.
	Elem = curried("elem", []string{"item", "xs"}, func(args []any) (any, error) {
		xs, err := From(args[1])
		if err != nil {
			return nil, err
		}
		for x, err := range xs {
			if err != nil {
				return nil, err
			}
			if typeclass.Equal(x, args[0]) {
				return true, nil
			}
		}
		return false, nil
	})

	// Count(predicate, xs) returns the number of items of xs satisfying
	// predicate.
	Count = curried("count", []string{"predicate", "xs"}, func(args []any) (any, error) {
		matching, err := Filter.Call(args[0], args[1])
		if err != nil {
			return nil, err
		}
		items, err := iterx.Collect(matching.(Stream))
		return len(items), err
	})
)

func curried(name string, params []string, body fpe.Body) *fpe.Curried {
	ps := make([]fpe.Param, len(params))
	for i, p := range params {
		ps[i] = fpe.Required(p)
	}
	return fpe.Must(fpe.Curry(fpe.Declare(name, ps, body)))
}

// source checks that fn is callable and converts v to a Stream.
func source(fn, v any) (Stream, error) {
	if !fpe.IsCallable(fn) {
		return nil, fmt.Errorf("%w: %T", fpe.ErrNotCallable, fn)
	}
	return From(v)
}

// transform checks fn and runs step over the items of v.
func transform(fn, v any, step func(x any, yield func(any, error) bool) bool) (Stream, error) {
	xs, err := source(fn, v)
	if err != nil {
		return nil, err
	}
	return lazy(xs, step), nil
}

// lazy returns a Stream running step on every item of xs. step returns false
// to stop the stream.
func lazy(xs Stream, step func(x any, yield func(any, error) bool) bool) Stream {
	return func(yield func(any, error) bool) {
		for x, err := range xs {
			if err != nil {
				yield(nil, err)
				return
			}
			if !step(x, yield) {
				return
			}
		}
	}
}

func fail(yield func(any, error) bool, item any, err error) bool {
	yield(nil, &Error{Item: item, Reason: err})
	return false
}

func yieldAll(v, item any, yield func(any, error) bool) bool {
	inner, err := From(v)
	if err != nil {
		return fail(yield, item, err)
	}
	for y, err := range inner {
		if !yield(y, err) || err != nil {
			return false
		}
	}
	return true
}

var pair = fpe.Target(func(args []any, _ fpe.Keywords) (any, error) {
	return []any{args[0], args[1]}, nil
})

func zipLongest(fn, pad, xv, yv any) (Stream, error) {
	xs, err := From(xv)
	if err != nil {
		return nil, err
	}
	ys, err := From(yv)
	if err != nil {
		return nil, err
	}
	return Stream(func(yield func(any, error) bool) {
		nextX, stopX := iter.Pull2(xs)
		defer stopX()
		nextY, stopY := iter.Pull2(ys)
		defer stopY()

		var xDone, yDone bool
		pull := func(next func() (any, error, bool), done *bool) (any, error) {
			if *done {
				return pad, nil
			}
			v, err, ok := next()
			if !ok {
				*done = true
				return pad, nil
			}
			return v, err
		}
		for {
			x, err := pull(nextX, &xDone)
			if err != nil {
				yield(nil, err)
				return
			}
			y, err := pull(nextY, &yDone)
			if err != nil {
				yield(nil, err)
				return
			}
			if xDone && yDone {
				return
			}
			z, err := fpe.Call(fn, x, y)
			if err != nil {
				fail(yield, []any{x, y}, err)
				return
			}
			if !yield(z, nil) {
				return
			}
		}
	}), nil
}

func fold(fn, acc any, xs Stream) (any, error) {
	if !fpe.IsCallable(fn) {
		return nil, fmt.Errorf("%w: %T", fpe.ErrNotCallable, fn)
	}
	for x, err := range xs {
		if err != nil {
			return nil, err
		}
		if acc, err = fpe.Call(fn, acc, x); err != nil {
			return nil, &Error{Item: x, Reason: err}
		}
	}
	return acc, nil
}

func holds(pred, x any) (bool, error) {
	v, err := fpe.Call(pred, x)
	if err != nil {
		return false, err
	}
	ok, isBool := v.(bool)
	if !isBool {
		return false, fmt.Errorf("%w, got %T", ErrNotPredicate, v)
	}
	return ok, nil
}

func count(v any) (int, error) {
	n, ok := v.(int)
	if !ok || n < 0 {
		return 0, fmt.Errorf("seq: count must be a non-negative int, got %v", v)
	}
	return n, nil
}


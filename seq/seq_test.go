package seq_test

import (
	"errors"
	"fmt"
	"iter"
	"strings"
	"testing"

	"github.com/KasperOmsK/fpe"
	"github.com/KasperOmsK/fpe/seq"

	"github.com/stretchr/testify/require"
)

var (
	isEven = func(x any) any { return x.(int)%2 == 0 }
	double = func(x any) any { return x.(int) * 2 }
	add    = fpe.Lift2("add", func(a, b int) int { return a + b })
	sub    = fpe.Lift2("sub", func(a, b int) int { return a - b })
)

func seqOf(vals ...any) iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, v := range vals {
			if !yield(v) {
				return
			}
		}
	}
}

// run completes fn with args and drains the resulting Stream.
func run(t *testing.T, fn *fpe.Curried, args ...any) ([]any, error) {
	t.Helper()
	out, err := fn.Call(args...)
	require.NoError(t, err)
	return seq.Slice(out)
}

func values(t *testing.T, fn *fpe.Curried, args ...any) []any {
	t.Helper()
	vals, err := run(t, fn, args...)
	require.NoError(t, err)
	return vals
}

func result(t *testing.T, fn *fpe.Curried, args ...any) any {
	t.Helper()
	out, err := fn.Call(args...)
	require.NoError(t, err)
	return out
}

func TestFrom(t *testing.T) {
	for _, in := range []any{
		[]any{1, 2, 3},
		[]int{1, 2, 3},
		[3]int{1, 2, 3},
		seqOf(1, 2, 3),
		seq.Range(1, 4),
	} {
		vals, err := seq.Slice(in)
		require.NoError(t, err)
		require.Len(t, vals, 3)
		require.EqualValues(t, 1, vals[0])
	}

	_, err := seq.From(42)
	require.ErrorIs(t, err, seq.ErrNotIterable)
}

func TestMap_TransformsValues(t *testing.T) {
	require.Equal(t, []any{2, 4, 6}, values(t, seq.Map, double, seqOf(1, 2, 3)))
}

func TestMap_ForwardsErrors(t *testing.T) {
	errOdd := errors.New("odd")
	failOdd := func(x any) (any, error) {
		if x.(int)%2 != 0 {
			return nil, errOdd
		}
		return x, nil
	}

	vals, err := run(t, seq.Map, failOdd, []int{2, 4, 5, 6})
	require.Nil(t, vals)
	require.ErrorIs(t, err, errOdd)

	var seqErr *seq.Error
	require.ErrorAs(t, err, &seqErr)
	require.Equal(t, 5, seqErr.Item)
}

func TestMap_IsLazy(t *testing.T) {
	calls := 0
	counting := func(x any) any {
		calls++
		return x
	}

	out := result(t, seq.Map, counting, []int{1, 2, 3})
	require.Equal(t, 0, calls)

	for range out.(seq.Stream) {
		break
	}
	require.Equal(t, 1, calls)
}

func TestFilter_FiltersCorrectly(t *testing.T) {
	require.Equal(t, []any{2, 4}, values(t, seq.Filter, isEven, seqOf(1, 2, 3, 4, 5)))
}

func TestFilter_RejectsNonBoolPredicate(t *testing.T) {
	_, err := run(t, seq.Filter, double, []int{1})
	require.ErrorIs(t, err, seq.ErrNotPredicate)
}

func TestFlatMap_FlattensInOrder(t *testing.T) {
	twice := func(x any) any { return []int{x.(int), x.(int) * 10} }

	require.Equal(t, []any{1, 10, 2, 20, 3, 30}, values(t, seq.FlatMap, twice, seqOf(1, 2, 3)))
}

func TestFlatten(t *testing.T) {
	split := func(x any) any { return strings.Split(x.(string), ",") }

	nested := result(t, seq.Map, split, []string{"A,B,C", "D,E,F"})
	flat, err := seq.Flatten.Call(nested)
	require.NoError(t, err)

	v1, err := seq.Slice(flat)
	require.NoError(t, err)
	v2 := values(t, seq.FlatMap, split, []string{"A,B,C", "D,E,F"})

	require.Equal(t, v1, v2)
	require.Equal(t, []any{"A", "B", "C", "D", "E", "F"}, v1)

	flat, err = seq.Flatten.Call([]any{1})
	require.NoError(t, err)
	_, err = seq.Slice(flat)
	require.ErrorIs(t, err, seq.ErrNotIterable)
}

func TestChunk_GroupsCorrectly(t *testing.T) {
	require.Equal(t, []any{
		[]any{1, 2},
		[]any{3, 4},
		[]any{5},
	}, values(t, seq.Chunk, 2, seqOf(1, 2, 3, 4, 5)))
}

func TestChunk_ChunksAreIndependent(t *testing.T) {
	chunks := values(t, seq.Chunk, 2, []int{1, 2, 3, 4})

	first := chunks[0].([]any)
	first[0] = 100
	require.Equal(t, []any{3, 4}, chunks[1])
}

func TestChunk_InvalidChunkSize(t *testing.T) {
	for _, size := range []any{0, -1, "2"} {
		_, err := seq.Chunk.Call(size, []int{1, 2, 3})
		require.Error(t, err, "size %v", size)
	}
}

func TestGroupBy(t *testing.T) {
	letters := []string{"A", "A", "B", "B", "A", "C", "C", "C"}

	groups := values(t, seq.GroupBy, fpe.Identity, letters)
	require.Equal(t, []any{
		[]any{"A", "A"},
		[]any{"B", "B"},
		[]any{"A"},
		[]any{"C", "C", "C"},
	}, groups)

	byTens := func(x any) any { return x.(int) / 10 }
	require.Len(t, values(t, seq.GroupBy, byTens, seq.Range(0, 100)), 10)
	require.Empty(t, values(t, seq.GroupBy, byTens, []int{}))

	boxedKey := func(x any) any { return holder{[]int{x.(int) % 2}} }
	require.Len(t, values(t, seq.GroupBy, boxedKey, []int{1, 3, 2, 4, 5}), 3)
}

func TestTakeDrop(t *testing.T) {
	require.Equal(t, []any{0, 1, 2}, values(t, seq.Take, 3, seq.Range(0, 10)))
	require.Equal(t, []any{0, 1}, values(t, seq.Take, 5, []int{0, 1}))
	require.Empty(t, values(t, seq.Take, 0, []int{0, 1}))

	require.Equal(t, []any{7, 8, 9}, values(t, seq.Drop, 7, seq.Range(0, 10)))
	require.Empty(t, values(t, seq.Drop, 3, []int{0, 1}))

	_, err := seq.Take.Call(-1, []int{1})
	require.Error(t, err)
}

func TestTakeWhileDropWhile(t *testing.T) {
	small := func(x any) any { return x.(int) < 3 }
	in := []int{1, 2, 3, 1, 2}

	require.Equal(t, []any{1, 2}, values(t, seq.TakeWhile, small, in))
	require.Equal(t, []any{3, 1, 2}, values(t, seq.DropWhile, small, in))

	// A stream can be iterated more than once.
	dropped := result(t, seq.DropWhile, small, in)
	for range 2 {
		vals, err := seq.Slice(dropped)
		require.NoError(t, err)
		require.Equal(t, []any{3, 1, 2}, vals)
	}
}

func TestFolds(t *testing.T) {
	in := []int{3, 4, 14, 21}

	require.Equal(t, 42, result(t, seq.Foldl, add, 0, in))
	require.Equal(t, 42, result(t, seq.Foldl1, add, in))
	require.Equal(t, 42, result(t, seq.Foldr, add, 0, in))
	require.Equal(t, 42, result(t, seq.Foldr1, add, in))

	// (1-2)-2 from the left, (2-2)-1 from the right.
	require.Equal(t, -3, result(t, seq.Foldl1, sub, []int{1, 2, 2}))
	require.Equal(t, -1, result(t, seq.Foldr1, sub, []int{1, 2, 2}))

	require.Equal(t, 7, result(t, seq.Foldl, add, 7, []int{}))
	require.Equal(t, 7, result(t, seq.Foldr, add, 7, []int{}))

	_, err := seq.Foldl1.Call(add, []int{})
	require.ErrorIs(t, err, seq.ErrEmpty)
	_, err = seq.Foldr1.Call(add, []int{})
	require.ErrorIs(t, err, seq.ErrEmpty)

	_, err = seq.Foldl.Call(add, 0, []any{1, "x"})
	require.ErrorIs(t, err, fpe.ErrBind)
}

func TestFoldl_PartialsAreReusable(t *testing.T) {
	sum := result(t, seq.Foldl, add, 0)

	for n := range 5 {
		got, err := fpe.Call(sum, seq.Range(0, n))
		require.NoError(t, err)
		require.Equal(t, n*(n-1)/2, got)
	}
}

func TestCollect(t *testing.T) {
	require.Equal(t, []any{4, 8}, values(t, seq.Collect, isEven, double, seq.Range(1, 5)))
}

func TestVariants(t *testing.T) {
	out := result(t, seq.Variants, isEven, seq.Range(0, 6))
	split := out.(seq.Split)

	match, err := seq.Slice(split.Match)
	require.NoError(t, err)
	rest, err := seq.Slice(split.Rest)
	require.NoError(t, err)

	require.Equal(t, []any{0, 2, 4}, match)
	require.Equal(t, []any{1, 3, 5}, rest)
}

func TestZipWith(t *testing.T) {
	require.Equal(t, []any{11, 22}, values(t, seq.ZipWith, add, []int{1, 2, 3}, []int{10, 20}))

	pair := func(args []any, _ fpe.Keywords) (any, error) {
		return fmt.Sprint(args...), nil
	}
	require.Equal(t, []any{"a1", "b2"}, values(t, seq.ZipWith, pair, []string{"a", "b"}, []int{1, 2}))
}

func TestZipPad(t *testing.T) {
	require.Equal(t, []any{
		[]any{1, "a"},
		[]any{2, "b"},
		[]any{3, "-"},
	}, values(t, seq.ZipPad, "-", []int{1, 2, 3}, []string{"a", "b"}))
	require.Equal(t, []any{[]any{0, 9}}, values(t, seq.ZipPad, 0, []int{}, []int{9}))
	require.Empty(t, values(t, seq.ZipPad, 0, []int{}, []int{}))

	require.Equal(t, []any{11, 22, 3}, values(t, seq.ZipWithPad, add, 0, []int{1, 2, 3}, []int{10, 20}))

	_, err := seq.ZipWithPad.Call("add", 0, []int{1}, []int{2})
	require.ErrorIs(t, err, fpe.ErrNotCallable)

	_, err = run(t, seq.ZipWithPad, add, "0", []int{1}, []int{})
	var seqErr *seq.Error
	require.ErrorAs(t, err, &seqErr)
	require.Equal(t, []any{1, "0"}, seqErr.Item)
}

func TestAccumulate(t *testing.T) {
	require.Equal(t, []any{1, 3, 6, 10}, values(t, seq.Accumulate, add, []int{1, 2, 3, 4}))
	require.Equal(t, []any{5, 4, 2}, values(t, seq.Accumulate, sub, []int{5, 1, 2}))
	require.Empty(t, values(t, seq.Accumulate, add, []int{}))

	running := fpe.Must(seq.Accumulate.Call(add))
	got, err := seq.Slice(fpe.Must(fpe.Call(running, seq.Range(1, 4))))
	require.NoError(t, err)
	require.Equal(t, []any{1, 3, 6}, got)
}

// holder is comparable by type but not always by value.
type holder struct {
	v any
}

func TestElemCount(t *testing.T) {
	require.Equal(t, true, result(t, seq.Elem, 3, []int{1, 2, 3}))
	require.Equal(t, false, result(t, seq.Elem, "3", []int{1, 2, 3}))
	require.Equal(t, true, result(t, seq.Elem, []int{1}, [][]int{{0}, {1}}))

	// Items whose dynamic contents cannot be compared with ==.
	require.Equal(t, true, result(t, seq.Elem, holder{[]int{1}}, []any{holder{[]int{0}}, holder{[]int{1}}}))
	require.Equal(t, false, result(t, seq.Elem, holder{map[string]int{"a": 1}}, []any{holder{[]int{1}}}))

	require.Equal(t, 3, result(t, seq.Count, isEven, seq.Range(0, 6)))
}

func TestPipeline(t *testing.T) {
	evens := fpe.Must(fpe.PipeAll(
		fpe.Must(seq.Filter.Call(isEven)),
		fpe.Must(seq.Map.Call(double)),
		fpe.Must(seq.Take.Call(3)),
		fpe.Must(seq.Foldl.Call(add, 0)),
	))

	got, err := evens.Call(seq.Range(0, 100))
	require.NoError(t, err)
	require.Equal(t, (0+2+4)*2, got)
}

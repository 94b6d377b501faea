package iterx

import (
	"iter"
)

func FromSlice[T any](in []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range in {
			if !yield(item) {
				break
			}
		}
	}
}

// Backward iterates over in from the last item to the first.
func Backward[T any](in []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(in) - 1; i >= 0; i-- {
			if !yield(in[i]) {
				break
			}
		}
	}
}

// WithErrors pairs every item of in with a nil error.
func WithErrors[T any](in iter.Seq[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for item := range in {
			if !yield(item, nil) {
				break
			}
		}
	}
}

// Collect drains in, stopping at the first non-nil error.
func Collect[T any](in iter.Seq2[T, error]) ([]T, error) {
	var out []T
	for item, err := range in {
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

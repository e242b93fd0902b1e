package iterx

import (
	"iter"
)

// Seq yields the elements of items in order. Items are read when the
// sequence is ranged over, not when Seq is called.
func Seq[T any](items []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}

// Collect drains seq into a new slice. A nil seq yields an empty slice.
func Collect[T any](seq iter.Seq[T]) []T {
	out := make([]T, 0)
	if seq == nil {
		return out
	}
	for item := range seq {
		out = append(out, item)
	}
	return out
}

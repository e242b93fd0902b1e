// Package arrays provides pipeline stages over slices.
//
// Every function returns a stage (a function of the slice) with its
// configuration bound first:
//
//	halfpipe.Pipe2(
//		[]string{"ab", "cde"},
//		arrays.Map(func(s string, _ int) int { return len(s) }),
//		arrays.Filter(func(n int, _ int) bool { return n > 2 }),
//	) // -> [3]
//
// No stage modifies the slice it receives.
package arrays

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/exp/constraints"

	"github.com/halfpipe-go/halfpipe"
	"github.com/halfpipe-go/halfpipe/internal/iterx"
)

type (

	// MapFunc transforms an element, given its index, into a value of type Out.
	MapFunc[In, Out any] func(item In, index int) Out

	// Predicate reports whether an element, given its index, is selected.
	Predicate[T any] func(item T, index int) bool

	// Reducer folds an element into the accumulator.
	Reducer[In, Acc any] func(acc Acc, item In, index int) Acc
)

// Map transforms each element with fn.
func Map[T, R any](fn MapFunc[T, R]) func([]T) []R {
	return func(array []T) []R {
		return lo.Map(array, fn)
	}
}

// Filter keeps the elements for which fn returns true.
func Filter[T any](fn Predicate[T]) func([]T) []T {
	return func(array []T) []T {
		return lo.Filter(array, fn)
	}
}

// FlatMap maps each element to a slice and concatenates the results.
func FlatMap[T, R any](fn MapFunc[T, []R]) func([]T) []R {
	return func(array []T) []R {
		return lo.FlatMap(array, fn)
	}
}

// Flat concatenates a slice of slices one level deep.
func Flat[T any]() func([][]T) []T {
	return func(array [][]T) []T {
		return lo.Flatten(array)
	}
}

// Flatten is an alias for Flat.
func Flatten[T any]() func([][]T) []T {
	return Flat[T]()
}

// Reduce folds the slice from the first element to the last, seeding the
// accumulator with the first element.
//
// The returned stage panics on an empty slice; use ReduceFrom when the slice
// may be empty.
func Reduce[T any](fn Reducer[T, T]) func([]T) T {
	return func(array []T) T {
		if len(array) == 0 {
			panic("arrays.Reduce: empty slice with no initial value")
		}
		return lo.Reduce(array[1:], func(acc T, item T, index int) T {
			return fn(acc, item, index+1)
		}, array[0])
	}
}

// ReduceFrom folds the slice from the first element to the last, seeding the
// accumulator with the result of initial. initial is called once per stage
// invocation.
func ReduceFrom[I, O any](fn Reducer[I, O], initial func() O) func([]I) O {
	return func(array []I) O {
		return lo.Reduce(array, fn, initial())
	}
}

// ReduceRight folds the slice from the last element to the first, seeding the
// accumulator with the last element.
//
// The returned stage panics on an empty slice.
func ReduceRight[T any](fn Reducer[T, T]) func([]T) T {
	return func(array []T) T {
		if len(array) == 0 {
			panic("arrays.ReduceRight: empty slice with no initial value")
		}
		last := len(array) - 1
		return lo.ReduceRight(array[:last], fn, array[last])
	}
}

// ReduceRightFrom folds the slice from the last element to the first, seeding
// the accumulator with the result of initial.
func ReduceRightFrom[I, O any](fn Reducer[I, O], initial func() O) func([]I) O {
	return func(array []I) O {
		return lo.ReduceRight(array, fn, initial())
	}
}

// Get returns the element at index. Negative indices count back from the end
// of the slice, so -1 is the last element. Out of range indices give None.
func Get[T any](index int) func([]T) mo.Option[T] {
	return GetWith(func([]T) int { return index })
}

// GetWith is Get with the index computed from the slice.
func GetWith[T any](index func([]T) int) func([]T) mo.Option[T] {
	return func(array []T) mo.Option[T] {
		item, err := lo.Nth(array, index(array))
		if err != nil {
			return mo.None[T]()
		}
		return mo.Some(item)
	}
}

// First returns the first element, or None for an empty slice.
func First[T any]() func([]T) mo.Option[T] {
	return Get[T](0)
}

// Last returns the last element, or None for an empty slice.
func Last[T any]() func([]T) mo.Option[T] {
	return Get[T](-1)
}

// Size returns the length of the slice.
func Size[T any]() func([]T) int {
	return func(array []T) int {
		return len(array)
	}
}

// Find returns the first element matching fn.
func Find[T any](fn func(T) bool) func([]T) mo.Option[T] {
	return func(array []T) mo.Option[T] {
		item, ok := lo.Find(array, fn)
		return mo.TupleToOption(item, ok)
	}
}

// Some reports whether any element matches fn.
func Some[T any](fn func(T) bool) func([]T) bool {
	return func(array []T) bool {
		return lo.SomeBy(array, fn)
	}
}

// Every reports whether all elements match fn. It is true for an empty slice.
func Every[T any](fn func(T) bool) func([]T) bool {
	return func(array []T) bool {
		return lo.EveryBy(array, fn)
	}
}

// ForEach calls fn for each element and passes the slice on unchanged.
func ForEach[T any](fn func(T, int)) func([]T) []T {
	return func(array []T) []T {
		lo.ForEach(array, fn)
		return array
	}
}

// Reverse returns a reversed copy of the slice.
func Reverse[T any]() func([]T) []T {
	return func(array []T) []T {
		out := slices.Clone(array)
		slices.Reverse(out)
		return out
	}
}

// Sort returns a copy of the slice sorted by cmp, which follows the
// slices.SortFunc convention. The sort is stable.
func Sort[T any](cmp func(a, b T) int) func([]T) []T {
	return func(array []T) []T {
		out := slices.Clone(array)
		slices.SortStableFunc(out, cmp)
		return out
	}
}

// SortOrdered returns a copy of the slice in ascending order.
func SortOrdered[T constraints.Ordered]() func([]T) []T {
	return Sort(func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	})
}

// Concat returns a new slice holding the elements of the input followed by
// the elements of each of others.
func Concat[T any](others ...[]T) func([]T) []T {
	return func(array []T) []T {
		all := make([][]T, 0, len(others)+1)
		all = append(all, array)
		all = append(all, others...)
		return lo.Flatten(all)
	}
}

// Join formats each element with fmt.Sprint and joins them with sep.
func Join[T any](sep string) func([]T) string {
	join := halfpipe.Invoker1(strings.Join)(sep)
	return func(array []T) string {
		return join(lo.Map(array, func(item T, _ int) string {
			return fmt.Sprint(item)
		}))
	}
}

// From collects seq into a new slice.
func From[T any](seq iter.Seq[T]) []T {
	return iterx.Collect(seq)
}

// Seq returns a stage exposing the slice as an iter.Seq, for handing a
// pipeline's result to range loops and iterator consumers.
func Seq[T any]() func([]T) iter.Seq[T] {
	return iterx.Seq[T]
}

// Of returns a new slice holding items.
func Of[T any](items ...T) []T {
	return append(make([]T, 0, len(items)), items...)
}

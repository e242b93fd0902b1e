// Package sets provides a map-backed Set type and pipeline stages over it.
package sets

import (
	"github.com/samber/lo"

	"github.com/halfpipe-go/halfpipe"
)

// Set is an unordered collection of distinct values.
type Set[T comparable] map[T]struct{}

// Of returns a set holding items. Duplicates are collapsed.
func Of[T comparable](items ...T) Set[T] {
	return lo.SliceToMap(items, func(item T) (T, struct{}) {
		return item, struct{}{}
	})
}

// Has reports whether v is in the set.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Size returns the number of elements.
func (s Set[T]) Size() int {
	return len(s)
}

// Values returns the elements in unspecified order.
func (s Set[T]) Values() []T {
	return lo.Keys(s)
}

// Size returns a stage giving the number of elements.
func Size[T comparable]() func(Set[T]) int {
	return halfpipe.NoArgs(Set[T].Size)
}

// Has returns a stage reporting whether v is in the set.
func Has[T comparable](v T) func(Set[T]) bool {
	return halfpipe.Invoker1(Set[T].Has)(v)
}

// Values returns a stage listing the elements.
func Values[T comparable]() func(Set[T]) []T {
	return halfpipe.NoArgs(Set[T].Values)
}

// ForEach calls fn with each element and passes the set on unchanged.
func ForEach[T comparable](fn func(T)) func(Set[T]) Set[T] {
	return func(s Set[T]) Set[T] {
		for v := range s {
			fn(v)
		}
		return s
	}
}

// Package maps provides pipeline stages over Go maps.
//
// Iteration order of Keys, Values, Entries and ForEach follows Go map
// iteration and is not specified. Use SortedKeys when order matters.
package maps

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/exp/constraints"

	"github.com/halfpipe-go/halfpipe"
	"github.com/halfpipe-go/halfpipe/arrays"
)

// Get returns the value stored under key, or None when the key is absent.
func Get[K comparable, V any](key K) func(map[K]V) mo.Option[V] {
	return func(m map[K]V) mo.Option[V] {
		v, ok := m[key]
		return mo.TupleToOption(v, ok)
	}
}

// Size returns the number of entries.
func Size[K comparable, V any]() func(map[K]V) int {
	return func(m map[K]V) int {
		return len(m)
	}
}

// Keys returns the keys of the map.
func Keys[K comparable, V any]() func(map[K]V) []K {
	return func(m map[K]V) []K {
		return lo.Keys(m)
	}
}

// SortedKeys returns the keys of the map in ascending order.
func SortedKeys[K constraints.Ordered, V any]() func(map[K]V) []K {
	return func(m map[K]V) []K {
		return halfpipe.Pipe2(m, Keys[K, V](), arrays.SortOrdered[K]())
	}
}

// Values returns the values of the map.
func Values[K comparable, V any]() func(map[K]V) []V {
	return func(m map[K]V) []V {
		return lo.Values(m)
	}
}

// Entries returns the key/value pairs of the map.
func Entries[K comparable, V any]() func(map[K]V) []lo.Entry[K, V] {
	return func(m map[K]V) []lo.Entry[K, V] {
		return lo.Entries(m)
	}
}

// Has reports whether the map holds key.
func Has[K comparable, V any](key K) func(map[K]V) bool {
	return halfpipe.Invoker1(lo.HasKey[K, V])(key)
}

// ForEach calls fn with each value and key, and passes the map on unchanged.
func ForEach[K comparable, V any](fn func(V, K)) func(map[K]V) map[K]V {
	return func(m map[K]V) map[K]V {
		for k, v := range m {
			fn(v, k)
		}
		return m
	}
}

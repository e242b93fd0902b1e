// Package rx adapts ro observables to halfpipe pipelines.
//
// ro operators already have the stage shape
// func(ro.Observable[T]) ro.Observable[R], so they compose with halfpipe.Pipe
// directly:
//
//	out := halfpipe.Pipe3(
//		rx.Of(1, 2, 3, 4),
//		rx.Filter(func(n int) bool { return n%2 == 0 }),
//		rx.Map(func(n int) int { return n * 10 }),
//		rx.ToSlice[int](),
//	) // -> Ok([20 40])
//
// This package adds terminal stages that leave the observable world.
package rx

import (
	"sync"

	"github.com/samber/mo"
	"github.com/samber/ro"
)

// Of emits values, then completes.
func Of[T any](values ...T) ro.Observable[T] {
	return ro.Just(values...)
}

// From emits the elements of items, then completes.
func From[T any](items []T) ro.Observable[T] {
	return ro.FromSlice(items)
}

// Map transforms each emitted value.
func Map[T, R any](fn func(T) R) func(ro.Observable[T]) ro.Observable[R] {
	return ro.Map(fn)
}

// Filter forwards the values for which predicate returns true.
func Filter[T any](predicate func(T) bool) func(ro.Observable[T]) ro.Observable[T] {
	return ro.Filter(predicate)
}

// Subscribe returns a terminal stage subscribing onNext to the observable.
// Errors and completion are ignored; use ToSlice to observe them.
func Subscribe[T any](onNext func(T)) func(ro.Observable[T]) ro.Subscription {
	return func(obs ro.Observable[T]) ro.Subscription {
		return obs.Subscribe(ro.NewObserver(onNext, func(error) {}, func() {}))
	}
}

// ToSlice returns a terminal stage that collects every emitted value.
//
// The stage blocks until the observable completes or errors, and returns the
// first error as a failed result.
func ToSlice[T any]() func(ro.Observable[T]) mo.Result[[]T] {
	return func(obs ro.Observable[T]) mo.Result[[]T] {
		var (
			mu     sync.Mutex
			values = make([]T, 0)
			err    error
			done   = make(chan struct{})
			once   sync.Once
		)
		finish := func() { once.Do(func() { close(done) }) }

		obs.Subscribe(ro.NewObserver(
			func(v T) {
				mu.Lock()
				values = append(values, v)
				mu.Unlock()
			},
			func(e error) {
				mu.Lock()
				err = e
				mu.Unlock()
				finish()
			},
			finish,
		))
		<-done

		mu.Lock()
		defer mu.Unlock()
		return mo.TupleToResult(values, err)
	}
}

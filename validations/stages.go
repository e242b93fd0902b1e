package validations

import (
	"github.com/samber/mo"

	"github.com/halfpipe-go/halfpipe"
)

// Map applies fn to a success value.
func Map[E, T, V any](fn func(T) V) func(Validation[E, T]) Validation[E, V] {
	return Bimap(halfpipe.Identity[E], fn)
}

// SuccessMap is an alias for Map.
func SuccessMap[E, T, V any](fn func(T) V) func(Validation[E, T]) Validation[E, V] {
	return Map[E](fn)
}

// FlatMap applies fn to a success value and returns its validation.
// Failures pass through unchanged.
func FlatMap[E, T, V any](fn func(T) Validation[E, V]) func(Validation[E, T]) Validation[E, V] {
	return Cata(func(failures []E) Validation[E, V] {
		return fail[E, V](failures)
	}, fn)
}

// Bind is an alias for FlatMap.
func Bind[E, T, V any](fn func(T) Validation[E, V]) func(Validation[E, T]) Validation[E, V] {
	return FlatMap(fn)
}

// Chain is an alias for FlatMap.
func Chain[E, T, V any](fn func(T) Validation[E, V]) func(Validation[E, T]) Validation[E, V] {
	return FlatMap(fn)
}

// SuccessFlatMap is an alias for FlatMap.
func SuccessFlatMap[E, T, V any](fn func(T) Validation[E, V]) func(Validation[E, T]) Validation[E, V] {
	return FlatMap(fn)
}

// Cata folds the validation: onFail receives all failures, onSuccess the
// success value.
func Cata[E, T, V any](onFail func([]E) V, onSuccess func(T) V) func(Validation[E, T]) V {
	return func(v Validation[E, T]) V {
		if v.failed {
			return onFail(v.Failures())
		}
		return onSuccess(v.value)
	}
}

// Bimap maps each failure with onFail, or the success value with onSuccess.
func Bimap[E, T, E2, T2 any](onFail func(E) E2, onSuccess func(T) T2) func(Validation[E, T]) Validation[E2, T2] {
	return func(v Validation[E, T]) Validation[E2, T2] {
		if !v.failed {
			return Success[E2](onSuccess(v.value))
		}
		failures := make([]E2, 0, len(v.failures))
		for _, f := range v.failures {
			failures = append(failures, onFail(f))
		}
		return fail[E2, T2](failures)
	}
}

// MapBoth is an alias for Bimap.
func MapBoth[E, T, E2, T2 any](onFail func(E) E2, onSuccess func(T) T2) func(Validation[E, T]) Validation[E2, T2] {
	return Bimap(onFail, onSuccess)
}

// FailMap maps each failure with fn.
func FailMap[E, T, E2 any](fn func(E) E2) func(Validation[E, T]) Validation[E2, T] {
	return Bimap(fn, halfpipe.Identity[T])
}

// IsSuccess reports whether the validation succeeded.
func IsSuccess[E, T any]() func(Validation[E, T]) bool {
	return halfpipe.NoArgs(Validation[E, T].IsSuccess)
}

// IsFail reports whether the validation failed.
func IsFail[E, T any]() func(Validation[E, T]) bool {
	return halfpipe.NoArgs(Validation[E, T].IsFail)
}

// Failures returns the failures of the validation; nil on success.
func Failures[E, T any]() func(Validation[E, T]) []E {
	return halfpipe.NoArgs(Validation[E, T].Failures)
}

// SuccessValue returns the success value and panics on a failure.
func SuccessValue[E, T any]() func(Validation[E, T]) T {
	return halfpipe.NoArgs(Validation[E, T].SuccessValue)
}

// ToEither converts the validation to Right of its value, or Left of its
// failures.
func ToEither[E, T any]() func(Validation[E, T]) mo.Either[[]E, T] {
	return Cata(mo.Left[[]E, T], mo.Right[[]E, T])
}

// ToMaybe returns Some of a success value and None for a failure.
func ToMaybe[E, T any]() func(Validation[E, T]) mo.Option[T] {
	return func(v Validation[E, T]) mo.Option[T] {
		value, ok := v.Get()
		return mo.TupleToOption(value, ok)
	}
}

// Acc drops the success value and keeps only the outcome, so validations of
// different types can be combined with Combine.
func Acc[E, T any]() func(Validation[E, T]) Validation[E, struct{}] {
	return Map[E](func(T) struct{} { return struct{}{} })
}

// Ap applies the function held by fn to the value of the validation.
//
// When both fail the failures of fn come first, followed by those of the
// validation.
func Ap[E, T, V any](fn Validation[E, func(T) V]) func(Validation[E, T]) Validation[E, V] {
	return func(v Validation[E, T]) Validation[E, V] {
		if !fn.failed && !v.failed {
			return Success[E](fn.value(v.value))
		}
		return fail[E, V](append(fn.Failures(), v.Failures()...))
	}
}

// Combine succeeds with all values when every validation succeeds, and
// otherwise fails with the failures of every failed validation, in order.
func Combine[E, T any](vals ...Validation[E, T]) Validation[E, []T] {
	values := make([]T, 0, len(vals))
	var failures []E
	failed := false
	for _, v := range vals {
		if v.failed {
			failed = true
			failures = append(failures, v.failures...)
			continue
		}
		values = append(values, v.value)
	}
	if failed {
		return fail[E, []T](failures)
	}
	return Success[E](values)
}

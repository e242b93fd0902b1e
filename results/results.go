// Package results provides pipeline stages for mo.Result, the error-carrying
// counterpart of an Either whose Left is an error.
package results

import (
	"github.com/samber/mo"

	"github.com/halfpipe-go/halfpipe"
)

// Ok wraps a successful value.
func Ok[T any](v T) mo.Result[T] {
	return mo.Ok(v)
}

// Err wraps a failure.
func Err[T any](err error) mo.Result[T] {
	return mo.Err[T](err)
}

// FromTuple builds a result from Go's value, error pair.
func FromTuple[T any](v T, err error) mo.Result[T] {
	return mo.TupleToResult(v, err)
}

// Try runs fn and captures its value or error.
func Try[T any](fn func() (T, error)) mo.Result[T] {
	return mo.Try(fn)
}

// Map applies fn to a successful value.
func Map[T, U any](fn func(T) U) func(mo.Result[T]) mo.Result[U] {
	return FlatMap(func(v T) mo.Result[U] {
		return mo.Ok(fn(v))
	})
}

// FlatMap applies fn to a successful value and returns its result.
func FlatMap[T, U any](fn func(T) mo.Result[U]) func(mo.Result[T]) mo.Result[U] {
	return func(r mo.Result[T]) mo.Result[U] {
		v, err := r.Get()
		if err != nil {
			return mo.Err[U](err)
		}
		return fn(v)
	}
}

// MapErr applies fn to the error of a failed result.
func MapErr[T any](fn func(error) error) func(mo.Result[T]) mo.Result[T] {
	return func(r mo.Result[T]) mo.Result[T] {
		if err := r.Error(); err != nil {
			return mo.Err[T](fn(err))
		}
		return r
	}
}

// Cata folds the result with onErr or onOk.
func Cata[T, V any](onErr func(error) V, onOk func(T) V) func(mo.Result[T]) V {
	return func(r mo.Result[T]) V {
		v, err := r.Get()
		if err != nil {
			return onErr(err)
		}
		return onOk(v)
	}
}

// IsOk reports whether the result succeeded.
func IsOk[T any]() func(mo.Result[T]) bool {
	return halfpipe.NoArgs(mo.Result[T].IsOk)
}

// IsError reports whether the result failed.
func IsError[T any]() func(mo.Result[T]) bool {
	return halfpipe.NoArgs(mo.Result[T].IsError)
}

// OrElse returns the successful value or fallback.
func OrElse[T any](fallback T) func(mo.Result[T]) T {
	return halfpipe.Invoker1(mo.Result[T].OrElse)(fallback)
}

// OrError unpacks the result into Go's value, error pair, so it can end a
// TryPipe.
func OrError[T any]() func(mo.Result[T]) (T, error) {
	return func(r mo.Result[T]) (T, error) {
		return r.Get()
	}
}

// ToEither converts the result to an Either holding the error on the Left.
func ToEither[T any]() func(mo.Result[T]) mo.Either[error, T] {
	return halfpipe.NoArgs(mo.Result[T].ToEither)
}

// ToMaybe returns Some of a successful value and None for a failure.
func ToMaybe[T any]() func(mo.Result[T]) mo.Option[T] {
	return Cata(func(error) mo.Option[T] { return mo.None[T]() }, mo.Some[T])
}

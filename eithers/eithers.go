// Package eithers provides constructors and pipeline stages for mo.Either.
//
// Right is the success side: Map, FlatMap and the conversions act on it and
// pass a Left through untouched.
package eithers

import (
	"errors"
	"fmt"

	"github.com/samber/mo"

	"github.com/halfpipe-go/halfpipe"
)

// ErrPanic marks a Left produced by Attempt from a recovered panic.
var ErrPanic = errors.New("eithers: recovered panic")

// Left builds a Left.
func Left[L, R any](v L) mo.Either[L, R] {
	return mo.Left[L, R](v)
}

// Right builds a Right.
func Right[L, R any](v R) mo.Either[L, R] {
	return mo.Right[L, R](v)
}

// Attempt runs fn and returns its value as Right, or its error as Left.
//
// A panic inside fn is recovered and returned as a Left wrapping ErrPanic,
// and the panic value itself when that value is an error.
func Attempt[R any](fn func() (R, error)) (out mo.Either[error, R]) {
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok {
				out = mo.Left[error, R](fmt.Errorf("%w: %w", ErrPanic, err))
				return
			}
			out = mo.Left[error, R](fmt.Errorf("%w: %v", ErrPanic, r))
		}
	}()

	v, err := fn()
	if err != nil {
		return mo.Left[error, R](err)
	}
	return mo.Right[error, R](v)
}

// FromZero returns Left(left) for the zero value of R and Right(v) otherwise.
func FromZero[L any, R comparable](left L, v R) mo.Either[L, R] {
	var zero R
	if v == zero {
		return mo.Left[L, R](left)
	}
	return mo.Right[L, R](v)
}

// FromPointer returns Left(left) for a nil pointer and Right(*p) otherwise.
func FromPointer[L, R any](left L, p *R) mo.Either[L, R] {
	if p == nil {
		return mo.Left[L, R](left)
	}
	return mo.Right[L, R](*p)
}

// Combine returns a stage collecting the Right values of a slice of eithers.
// The first Left found turns the whole result into Left(left).
func Combine[L, R any](left L) func([]mo.Either[L, R]) mo.Either[L, []R] {
	return func(eithers []mo.Either[L, R]) mo.Either[L, []R] {
		out := make([]R, 0, len(eithers))
		for _, e := range eithers {
			v, ok := e.Right()
			if !ok {
				return mo.Left[L, []R](left)
			}
			out = append(out, v)
		}
		return mo.Right[L, []R](out)
	}
}

// Cata folds the either with onLeft or onRight.
func Cata[L, R, V any](onLeft func(L) V, onRight func(R) V) func(mo.Either[L, R]) V {
	return func(e mo.Either[L, R]) V {
		if v, ok := e.Right(); ok {
			return onRight(v)
		}
		return onLeft(e.MustLeft())
	}
}

// FlatMapBoth folds both sides into a new either.
func FlatMapBoth[L, R, L2, R2 any](
	onLeft func(L) mo.Either[L2, R2],
	onRight func(R) mo.Either[L2, R2]) func(mo.Either[L, R]) mo.Either[L2, R2] {

	return Cata(onLeft, onRight)
}

// Map applies fn to a Right value.
func Map[L, R, R2 any](fn func(R) R2) func(mo.Either[L, R]) mo.Either[L, R2] {
	return Bimap(halfpipe.Identity[L], fn)
}

// RightMap is an alias for Map.
func RightMap[L, R, R2 any](fn func(R) R2) func(mo.Either[L, R]) mo.Either[L, R2] {
	return Map[L](fn)
}

// FlatMap applies fn to a Right value and returns its either.
func FlatMap[L, R, R2 any](fn func(R) mo.Either[L, R2]) func(mo.Either[L, R]) mo.Either[L, R2] {
	return FlatMapBoth(mo.Left[L, R2], fn)
}

// RightFlatMap is an alias for FlatMap.
func RightFlatMap[L, R, R2 any](fn func(R) mo.Either[L, R2]) func(mo.Either[L, R]) mo.Either[L, R2] {
	return FlatMap(fn)
}

// LeftMap applies fn to a Left value.
func LeftMap[L, R, L2 any](fn func(L) L2) func(mo.Either[L, R]) mo.Either[L2, R] {
	return Bimap(fn, halfpipe.Identity[R])
}

// LeftFlatMap applies fn to a Left value and returns its either.
func LeftFlatMap[L, R, L2 any](fn func(L) mo.Either[L2, R]) func(mo.Either[L, R]) mo.Either[L2, R] {
	return FlatMapBoth(fn, mo.Right[L2, R])
}

// Bimap applies onLeft or onRight to whichever side is set.
func Bimap[L, R, L2, R2 any](onLeft func(L) L2, onRight func(R) R2) func(mo.Either[L, R]) mo.Either[L2, R2] {
	return Cata(
		func(l L) mo.Either[L2, R2] { return mo.Left[L2, R2](onLeft(l)) },
		func(r R) mo.Either[L2, R2] { return mo.Right[L2, R2](onRight(r)) },
	)
}

// MapBoth is an alias for Bimap.
func MapBoth[L, R, L2, R2 any](onLeft func(L) L2, onRight func(R) R2) func(mo.Either[L, R]) mo.Either[L2, R2] {
	return Bimap(onLeft, onRight)
}

// IsLeft reports whether the either is a Left.
func IsLeft[L, R any]() func(mo.Either[L, R]) bool {
	return halfpipe.NoArgs(mo.Either[L, R].IsLeft)
}

// IsRight reports whether the either is a Right.
func IsRight[L, R any]() func(mo.Either[L, R]) bool {
	return halfpipe.NoArgs(mo.Either[L, R].IsRight)
}

// LeftValue returns the Left value and panics on a Right.
func LeftValue[L, R any]() func(mo.Either[L, R]) L {
	return halfpipe.NoArgs(mo.Either[L, R].MustLeft)
}

// RightValue returns the Right value and panics on a Left.
func RightValue[L, R any]() func(mo.Either[L, R]) R {
	return halfpipe.NoArgs(mo.Either[L, R].MustRight)
}

// ToMaybe returns Some of a Right value and None for a Left.
func ToMaybe[L, R any]() func(mo.Either[L, R]) mo.Option[R] {
	return func(e mo.Either[L, R]) mo.Option[R] {
		v, ok := e.Right()
		return mo.TupleToOption(v, ok)
	}
}

// Swap exchanges the sides.
func Swap[L, R any]() func(mo.Either[L, R]) mo.Either[R, L] {
	return halfpipe.NoArgs(mo.Either[L, R].Swap)
}

// Flip is an alias for Swap.
func Flip[L, R any]() func(mo.Either[L, R]) mo.Either[R, L] {
	return Swap[L, R]()
}

// ToValue returns whichever value is set, for eithers whose sides share a type.
func ToValue[T any]() func(mo.Either[T, T]) T {
	return Cata(halfpipe.Identity[T], halfpipe.Identity[T])
}

// OrError unpacks an either holding an error on the Left into Go's
// value, error pair.
func OrError[R any]() func(mo.Either[error, R]) (R, error) {
	return func(e mo.Either[error, R]) (R, error) {
		if v, ok := e.Right(); ok {
			return v, nil
		}
		var zero R
		return zero, e.MustLeft()
	}
}

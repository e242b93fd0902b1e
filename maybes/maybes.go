// Package maybes provides constructors and pipeline stages for mo.Option.
//
// Stages that keep the element type forward to the mo.Option methods through
// the halfpipe invokers; stages that change it are implemented here because
// Go methods cannot introduce type parameters.
package maybes

import (
	"errors"
	"math"
	"reflect"

	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/halfpipe-go/halfpipe"
)

// ErrNone is returned by OrError when the option is empty and no error was
// supplied.
var ErrNone = errors.New("maybes: value is absent")

// Some wraps v.
func Some[T any](v T) mo.Option[T] {
	return mo.Some(v)
}

// None returns an empty option.
func None[T any]() mo.Option[T] {
	return mo.None[T]()
}

// FromZero returns None for the zero value of T and Some(v) otherwise.
func FromZero[T comparable](v T) mo.Option[T] {
	return mo.EmptyableToOption(v)
}

// Of is an alias for FromZero.
func Of[T comparable](v T) mo.Option[T] {
	return FromZero(v)
}

// FromPointer returns None for a nil pointer and Some(*p) otherwise.
func FromPointer[T any](p *T) mo.Option[T] {
	return mo.PointerToOption(p)
}

// FromTuple builds an option from the comma-ok idiom.
func FromTuple[T any](v T, ok bool) mo.Option[T] {
	return mo.TupleToOption(v, ok)
}

// FromPredicate returns Some(v) when predicate holds for v, None otherwise.
func FromPredicate[T any](predicate func(T) bool, v T) mo.Option[T] {
	return mo.TupleToOption(v, predicate(v))
}

// FromNaN returns None for NaN and the infinities, Some(v) otherwise.
func FromNaN(v float64) mo.Option[float64] {
	return FromPredicate(func(f float64) bool {
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	}, v)
}

// Combine returns Some of all the values when every option is present, and
// None as soon as one is absent.
func Combine[T any](options ...mo.Option[T]) mo.Option[[]T] {
	out := make([]T, 0, len(options))
	for _, o := range options {
		v, ok := o.Get()
		if !ok {
			return mo.None[[]T]()
		}
		out = append(out, v)
	}
	return mo.Some(out)
}

// CombineFrom is Combine over FromZero of each value.
func CombineFrom[T comparable](values ...T) mo.Option[[]T] {
	return Combine(lo.Map(values, func(v T, _ int) mo.Option[T] {
		return FromZero(v)
	})...)
}

// Combine2 pairs two options of different types.
func Combine2[A, B any](a mo.Option[A], b mo.Option[B]) mo.Option[lo.Tuple2[A, B]] {
	va, okA := a.Get()
	vb, okB := b.Get()
	return mo.TupleToOption(lo.T2(va, vb), okA && okB)
}

// Combine3 groups three options of different types.
func Combine3[A, B, C any](a mo.Option[A], b mo.Option[B], c mo.Option[C]) mo.Option[lo.Tuple3[A, B, C]] {
	va, okA := a.Get()
	vb, okB := b.Get()
	vc, okC := c.Get()
	return mo.TupleToOption(lo.T3(va, vb, vc), okA && okB && okC)
}

// Map applies fn to a present value.
func Map[T, U any](fn func(T) U) func(mo.Option[T]) mo.Option[U] {
	return func(o mo.Option[T]) mo.Option[U] {
		v, ok := o.Get()
		if !ok {
			return mo.None[U]()
		}
		return mo.Some(fn(v))
	}
}

// MapPresent applies fn to a present value and keeps the result only when fn
// reports it as present.
func MapPresent[T, U any](fn func(T) (U, bool)) func(mo.Option[T]) mo.Option[U] {
	return FlatMap(func(v T) mo.Option[U] {
		u, ok := fn(v)
		return mo.TupleToOption(u, ok)
	})
}

// FlatMapFrom is an alias for MapPresent.
func FlatMapFrom[T, U any](fn func(T) (U, bool)) func(mo.Option[T]) mo.Option[U] {
	return MapPresent(fn)
}

// FlatMap applies fn to a present value and returns its option.
func FlatMap[T, U any](fn func(T) mo.Option[U]) func(mo.Option[T]) mo.Option[U] {
	return func(o mo.Option[T]) mo.Option[U] {
		v, ok := o.Get()
		if !ok {
			return mo.None[U]()
		}
		return fn(v)
	}
}

// Filter keeps a present value only when predicate holds for it.
func Filter[T any](predicate func(T) bool) func(mo.Option[T]) mo.Option[T] {
	return FlatMap(func(v T) mo.Option[T] {
		return FromPredicate(predicate, v)
	})
}

// Unless keeps a present value only when predicate does not hold for it.
func Unless[T any](predicate func(T) bool) func(mo.Option[T]) mo.Option[T] {
	return Filter(func(v T) bool {
		return !predicate(v)
	})
}

// Tap calls fn with a present value and passes the option on unchanged.
func Tap[T any](fn func(T)) func(mo.Option[T]) mo.Option[T] {
	return func(o mo.Option[T]) mo.Option[T] {
		if v, ok := o.Get(); ok {
			fn(v)
		}
		return o
	}
}

// IfPresent is an alias for Tap.
func IfPresent[T any](fn func(T)) func(mo.Option[T]) mo.Option[T] {
	return Tap(fn)
}

// Cata folds the option: onNone for an empty option, onSome for a present
// value.
func Cata[T, R any](onNone func() R, onSome func(T) R) func(mo.Option[T]) R {
	return func(o mo.Option[T]) R {
		if v, ok := o.Get(); ok {
			return onSome(v)
		}
		return onNone()
	}
}

// OrSome returns the present value or fallback.
func OrSome[T any](fallback T) func(mo.Option[T]) T {
	return halfpipe.Invoker1(mo.Option[T].OrElse)(fallback)
}

// DefaultTo is an alias for OrSome.
func DefaultTo[T any](fallback T) func(mo.Option[T]) T {
	return OrSome(fallback)
}

// OrSomeWith returns the present value or the result of fallback, which is
// only called for an empty option.
func OrSomeWith[T any](fallback func() T) func(mo.Option[T]) T {
	return Cata(fallback, halfpipe.Identity[T])
}

// DefaultWith is an alias for OrSomeWith.
func DefaultWith[T any](fallback func() T) func(mo.Option[T]) T {
	return OrSomeWith(fallback)
}

// OrZero returns the present value or the zero value of T.
func OrZero[T any]() func(mo.Option[T]) T {
	return halfpipe.NoArgs(mo.Option[T].OrEmpty)
}

// ToValue is an alias for OrZero.
func ToValue[T any]() func(mo.Option[T]) T {
	return OrZero[T]()
}

// OrPointer returns a pointer to a copy of the present value, or nil.
func OrPointer[T any]() func(mo.Option[T]) *T {
	return Cata(func() *T { return nil }, func(v T) *T { return &v })
}

// OrElse returns the option itself when present and fallback otherwise.
func OrElse[T any](fallback mo.Option[T]) func(mo.Option[T]) mo.Option[T] {
	return OrElseWith(func() mo.Option[T] { return fallback })
}

// OrElseWith returns the option itself when present and the result of
// fallback otherwise.
func OrElseWith[T any](fallback func() mo.Option[T]) func(mo.Option[T]) mo.Option[T] {
	return func(o mo.Option[T]) mo.Option[T] {
		if o.IsPresent() {
			return o
		}
		return fallback()
	}
}

// OrElseFrom is OrElseWith with the fallback value passed through FromZero.
func OrElseFrom[T comparable](fallback func() T) func(mo.Option[T]) mo.Option[T] {
	return OrElseWith(func() mo.Option[T] { return FromZero(fallback()) })
}

// OrError returns the present value, or err for an empty option. A nil err
// is replaced by ErrNone.
func OrError[T any](err error) func(mo.Option[T]) (T, error) {
	if err == nil {
		err = ErrNone
	}
	return OrErrorWith[T](func() error { return err })
}

// OrErrorWith is OrError with the error built only when needed.
func OrErrorWith[T any](errFn func() error) func(mo.Option[T]) (T, error) {
	return func(o mo.Option[T]) (T, error) {
		if v, ok := o.Get(); ok {
			return v, nil
		}
		var zero T
		return zero, errFn()
	}
}

// MustGet returns the present value and panics for an empty option.
func MustGet[T any]() func(mo.Option[T]) T {
	return halfpipe.NoArgs(mo.Option[T].MustGet)
}

// ToBoolean reports whether the option is present and, when predicate is not
// nil, whether predicate holds for its value.
func ToBoolean[T any](predicate func(T) bool) func(mo.Option[T]) bool {
	if predicate == nil {
		return IsSome[T]()
	}
	return func(o mo.Option[T]) bool {
		return Filter(predicate)(o).IsPresent()
	}
}

// IsSome reports whether the option holds a value.
func IsSome[T any]() func(mo.Option[T]) bool {
	return halfpipe.NoArgs(mo.Option[T].IsPresent)
}

// IsPresent is an alias for IsSome.
func IsPresent[T any]() func(mo.Option[T]) bool {
	return IsSome[T]()
}

// IsNone reports whether the option is empty.
func IsNone[T any]() func(mo.Option[T]) bool {
	return halfpipe.NoArgs(mo.Option[T].IsAbsent)
}

// IsEqualTo reports whether the option holds a value equal to v.
func IsEqualTo[T comparable](v T) func(mo.Option[T]) bool {
	return IsEqualToWith(func() T { return v })
}

// IsEqualToWith reports whether the option holds a value equal to the result
// of fn. fn is only called for a present option.
func IsEqualToWith[T comparable](fn func() T) func(mo.Option[T]) bool {
	return ToBoolean(func(got T) bool { return got == fn() })
}

// Matches reports whether the option holds a value deeply equal to v.
func Matches[T any](v T) func(mo.Option[T]) bool {
	return MatchesWith(func() T { return v })
}

// MatchesWith is Matches with the expected value computed by fn.
func MatchesWith[T any](fn func() T) func(mo.Option[T]) bool {
	return ToBoolean(func(got T) bool { return reflect.DeepEqual(got, fn()) })
}

// IsEqualWith reports whether a and b are both empty, or both present with
// values considered equal by eq.
func IsEqualWith[T any](eq func(T, T) bool, a, b mo.Option[T]) bool {
	va, okA := a.Get()
	vb, okB := b.Get()
	if !okA || !okB {
		return okA == okB
	}
	return eq(va, vb)
}

// IsEqual is IsEqualWith using ==.
func IsEqual[T comparable](a, b mo.Option[T]) bool {
	return IsEqualWith(func(x, y T) bool { return x == y }, a, b)
}

// ToEither converts the option to Right of its value, or Left(left) when
// empty.
func ToEither[L, T any](left L) func(mo.Option[T]) mo.Either[L, T] {
	return Cata(func() mo.Either[L, T] {
		return mo.Left[L, T](left)
	}, mo.Right[L, T])
}

// ToResult converts the option to Ok of its value, or Err(err) when empty.
func ToResult[T any](err error) func(mo.Option[T]) mo.Result[T] {
	return func(o mo.Option[T]) mo.Result[T] {
		v, e := OrError[T](err)(o)
		return mo.TupleToResult(v, e)
	}
}

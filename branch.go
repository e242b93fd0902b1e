package halfpipe

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Case pairs a condition with the function producing the result when the
// condition holds. Used by SwitchCase.
type Case[R any] struct {
	When func() bool
	Then func() R
}

// IfElse returns a stage that applies pass when cond holds for the input and
// fail otherwise.
func IfElse[V, R any](cond func(V) bool, pass, fail func(V) R) func(V) R {
	return func(value V) R {
		if cond(value) {
			return pass(value)
		}
		return fail(value)
	}
}

// IfThen is IfElse with a fail branch that returns the input unchanged.
func IfThen[V any](cond func(V) bool, pass func(V) V) func(V) V {
	return IfElse(cond, pass, Identity[V])
}

// Always lifts a constant into a condition usable by IfElse and IfThen.
func Always[V any](b bool) func(V) bool {
	return func(V) bool {
		return b
	}
}

// SwitchCase evaluates cases in order and returns the result of the first
// one whose condition holds. It returns None when no case matches.
//
// Conditions after the first match are not evaluated.
func SwitchCase[R any](cases ...Case[R]) mo.Option[R] {
	for _, c := range cases {
		if c.When() {
			return mo.Some(c.Then())
		}
	}
	return mo.None[R]()
}

// Identity returns its input.
func Identity[T any](v T) T {
	return v
}

// IsTruthy reports whether v differs from the zero value of its type.
func IsTruthy[T comparable](v T) bool {
	return lo.IsNotEmpty(v)
}

// IsFalsy reports whether v is the zero value of its type.
func IsFalsy[T comparable](v T) bool {
	return lo.IsEmpty(v)
}

// Package validations provides a Validation container that accumulates
// failures, and pipeline stages over it.
//
// Unlike an Either, combining two failed validations keeps the failures of
// both, which makes it suited to checking every field of an input and
// reporting all problems at once.
package validations

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Validation holds either a success value or a list of failures.
//
// The zero value is a success holding the zero value of T.
type Validation[E, T any] struct {
	value    T
	failures []E
	failed   bool
}

// Success builds a successful validation.
func Success[E, T any](v T) Validation[E, T] {
	return Validation[E, T]{value: v}
}

// Fail builds a failed validation holding err followed by more.
func Fail[E, T any](err E, more ...E) Validation[E, T] {
	failures := make([]E, 0, len(more)+1)
	failures = append(failures, err)
	return fail[E, T](append(failures, more...))
}

// fail takes ownership of failures, which must not be empty.
func fail[E, T any](failures []E) Validation[E, T] {
	return Validation[E, T]{
		failures: failures,
		failed:   true,
	}
}

// FromTruthy returns Success(v) when v is not the zero value of T, and
// Fail(err) otherwise.
func FromTruthy[E any, T comparable](err E, v T) Validation[E, T] {
	var zero T
	if v == zero {
		return Fail[E, T](err)
	}
	return Success[E](v)
}

// FromStruct validates s with validate and returns Success(s), or a failure
// per field error. An error that is not a field error, such as passing a
// non-struct, becomes the only failure.
func FromStruct[T any](validate *validator.Validate, s T) Validation[error, T] {
	err := validate.Struct(s)
	if err == nil {
		return Success[error](s)
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Fail[error, T](err)
	}

	failures := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		failures = append(failures, fe)
	}
	return fail[error, T](failures)
}

// IsSuccess reports whether the validation succeeded.
func (v Validation[E, T]) IsSuccess() bool {
	return !v.failed
}

// IsFail reports whether the validation failed.
func (v Validation[E, T]) IsFail() bool {
	return v.failed
}

// Get returns the success value and true, or the zero value and false.
func (v Validation[E, T]) Get() (T, bool) {
	if v.failed {
		var zero T
		return zero, false
	}
	return v.value, true
}

// SuccessValue returns the success value and panics on a failure.
func (v Validation[E, T]) SuccessValue() T {
	if v.failed {
		panic("validations: SuccessValue called on a failed validation")
	}
	return v.value
}

// Failures returns a copy of the failures; nil on success.
func (v Validation[E, T]) Failures() []E {
	if !v.failed {
		return nil
	}
	return append(make([]E, 0, len(v.failures)), v.failures...)
}

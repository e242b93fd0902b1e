package validations_test

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/samber/mo"
	"github.com/stretchr/testify/require"

	"github.com/halfpipe-go/halfpipe"
	"github.com/halfpipe-go/halfpipe/validations"
)

type signup struct {
	Email string `validate:"required,email"`
	Age   int    `validate:"gte=18"`
}

func TestConstructors(t *testing.T) {
	ok := validations.Success[string](1)
	require.True(t, ok.IsSuccess())
	require.False(t, ok.IsFail())
	require.Equal(t, 1, ok.SuccessValue())
	require.Nil(t, ok.Failures())

	failed := validations.Fail[string, int]("a", "b")
	require.True(t, failed.IsFail())
	require.Equal(t, []string{"a", "b"}, failed.Failures())
	require.Panics(t, func() { failed.SuccessValue() })

	_, present := failed.Get()
	require.False(t, present)

	require.True(t, validations.FromTruthy("empty", "").IsFail())
	require.Equal(t, "x", validations.FromTruthy("empty", "x").SuccessValue())
}

func TestFail_KeepsEveryFailure(t *testing.T) {
	more := []string{"b", "c"}
	failed := validations.Fail[string, int]("a", more...)
	more[0] = "z"

	count := validations.Cata(
		func(failures []string) int { return len(failures) },
		func(int) int { return 0 },
	)

	require.Equal(t, []string{"a", "b", "c"}, failed.Failures())
	require.Equal(t, 3, count(failed))
	require.Equal(t, 1, count(validations.Fail[string, int]("only")))
}

func TestFromStruct(t *testing.T) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	ok := validations.FromStruct(validate, signup{Email: "a@b.io", Age: 30})
	require.True(t, ok.IsSuccess())

	failed := validations.FromStruct(validate, signup{Email: "nope", Age: 3})
	require.True(t, failed.IsFail())

	fields := halfpipe.Pipe2(
		failed,
		validations.Failures[error, signup](),
		func(errs []error) []string {
			out := make([]string, 0, len(errs))
			for _, err := range errs {
				out = append(out, err.(validator.FieldError).Field())
			}
			return out
		},
	)
	require.Equal(t, []string{"Email", "Age"}, fields)

	notStruct := validations.FromStruct(validate, 42)
	require.Len(t, notStruct.Failures(), 1)
}

func TestMapFlatMap(t *testing.T) {
	out := halfpipe.Pipe2(
		validations.Success[string]("abc"),
		validations.Map[string](strings.ToUpper),
		validations.FlatMap(func(s string) validations.Validation[string, int] {
			return validations.FromTruthy("empty", len(s))
		}),
	)
	require.Equal(t, 3, out.SuccessValue())

	calls := 0
	failed := halfpipe.Pipe2(
		validations.Fail[string, string]("bad input"),
		validations.SuccessMap[string](func(s string) string { calls++; return s }),
		validations.Chain(func(s string) validations.Validation[string, int] {
			calls++
			return validations.Success[string](len(s))
		}),
	)
	require.Equal(t, []string{"bad input"}, failed.Failures())
	require.Equal(t, 0, calls)
}

func TestCataBimapFailMap(t *testing.T) {
	describe := validations.Cata(
		func(errs []string) string { return strings.Join(errs, ";") },
		func(n int) string { return "ok" },
	)
	require.Equal(t, "ok", describe(validations.Success[string](1)))
	require.Equal(t, "a;b", describe(validations.Fail[string, int]("a", "b")))

	both := validations.MapBoth(strings.ToUpper, func(n int) int { return n + 1 })
	require.Equal(t, 2, both(validations.Success[string](1)).SuccessValue())
	require.Equal(t, []string{"A"}, both(validations.Fail[string, int]("a")).Failures())

	lengths := validations.FailMap[string, int](func(s string) int { return len(s) })
	require.Equal(t, []int{2, 3}, lengths(validations.Fail[string, int]("ab", "cde")).Failures())
}

func TestPredicatesAndConversions(t *testing.T) {
	ok := validations.Success[string](5)
	failed := validations.Fail[string, int]("x")

	require.True(t, validations.IsSuccess[string, int]()(ok))
	require.True(t, validations.IsFail[string, int]()(failed))
	require.Equal(t, 5, validations.SuccessValue[string, int]()(ok))
	require.Equal(t, []string{"x"}, validations.Failures[string, int]()(failed))

	require.Equal(t, 5, validations.ToEither[string, int]()(ok).MustRight())
	require.Equal(t, []string{"x"}, validations.ToEither[string, int]()(failed).MustLeft())

	require.Equal(t, mo.Some(5), validations.ToMaybe[string, int]()(ok))
	require.True(t, validations.ToMaybe[string, int]()(failed).IsAbsent())

	require.True(t, validations.Acc[string, int]()(ok).IsSuccess())
	require.Equal(t, []string{"x"}, validations.Acc[string, int]()(failed).Failures())
}

func TestAp_AccumulatesFailures(t *testing.T) {
	double := validations.Success[string](func(n int) int { return n * 2 })
	require.Equal(t, 8, validations.Ap(double)(validations.Success[string](4)).SuccessValue())

	badFn := validations.Fail[string, func(int) int]("fn")
	require.Equal(t, []string{"fn", "value"}, validations.Ap(badFn)(validations.Fail[string, int]("value")).Failures())
	require.Equal(t, []string{"value"}, validations.Ap(double)(validations.Fail[string, int]("value")).Failures())
}

func TestCombine(t *testing.T) {
	all := validations.Combine(
		validations.Success[string](1),
		validations.Success[string](2),
	)
	require.Equal(t, []int{1, 2}, all.SuccessValue())

	mixed := validations.Combine(
		validations.Fail[string, int]("first"),
		validations.Success[string](2),
		validations.Fail[string, int]("second", "third"),
	)
	require.Equal(t, []string{"first", "second", "third"}, mixed.Failures())

	outcome := validations.Combine(
		validations.Acc[string, string]()(validations.FromTruthy("name required", "")),
		validations.Acc[string, int]()(validations.FromTruthy("age required", 0)),
	)
	require.Equal(t, []string{"name required", "age required"}, outcome.Failures())
}

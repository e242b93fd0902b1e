package halfpipe_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/halfpipe-go/halfpipe"
	"github.com/halfpipe-go/halfpipe/arrays"
)

func TestPipe_NoStagesIsIdentity(t *testing.T) {
	require.Equal(t, 5, halfpipe.Pipe(5))
	require.Equal(t, "x", halfpipe.PipeAny("x"))
}

func TestPipe_AppendsInOrder(t *testing.T) {
	out := halfpipe.Pipe("a",
		func(s string) string { return s + "b" },
		func(s string) string { return s + "c" },
	)

	require.Equal(t, "abc", out)
}

func TestPipe2_ChangesTypes(t *testing.T) {
	out := halfpipe.Pipe2(
		[]int{1, 2, 3},
		arrays.Map(func(x int, _ int) int { return x * 2 }),
		arrays.Filter(func(x int, _ int) bool { return x > 2 }),
	)

	require.Equal(t, []int{4, 6}, out)
}

func TestPipe_PanickingStageStopsThePipe(t *testing.T) {
	counter := 0

	require.PanicsWithError(t, "boom", func() {
		halfpipe.Pipe(1,
			func(x int) int { return x + 1 },
			func(int) int { panic(errors.New("boom")) },
			func(x int) int { counter++; return x + 1 },
		)
	})
	require.Equal(t, 0, counter)

	require.PanicsWithError(t, "boom", func() {
		halfpipe.Pipe3(1,
			func(x int) int { return x + 1 },
			func(int) string { panic(errors.New("boom")) },
			func(s string) string { counter++; return s },
		)
	})
	require.Equal(t, 0, counter)
}

func TestPipeN_MatchesNestedCalls(t *testing.T) {
	inc := func(x int) int { return x + 1 }

	require.Equal(t, 1, halfpipe.Pipe1(0, inc))
	require.Equal(t, 2, halfpipe.Pipe2(0, inc, inc))
	require.Equal(t, 3, halfpipe.Pipe3(0, inc, inc, inc))
	require.Equal(t, 4, halfpipe.Pipe4(0, inc, inc, inc, inc))
	require.Equal(t, 5, halfpipe.Pipe5(0, inc, inc, inc, inc, inc))
	require.Equal(t, 6, halfpipe.Pipe6(0, inc, inc, inc, inc, inc, inc))
	require.Equal(t, 7, halfpipe.Pipe7(0, inc, inc, inc, inc, inc, inc, inc))
	require.Equal(t, 8, halfpipe.Pipe8(0, inc, inc, inc, inc, inc, inc, inc, inc))
	require.Equal(t, 9, halfpipe.Pipe9(0, inc, inc, inc, inc, inc, inc, inc, inc, inc))
	require.Equal(t, 10, halfpipe.Pipe10(0, inc, inc, inc, inc, inc, inc, inc, inc, inc, inc))
}

func TestPipe_SideEffectOrderIsTheSameForEveryForm(t *testing.T) {
	record := func(log *[]int, id int) func(int) int {
		return func(x int) int {
			*log = append(*log, id)
			return x*10 + id
		}
	}

	var typed, variadic, untyped []int

	a := halfpipe.Pipe4(0, record(&typed, 1), record(&typed, 2), record(&typed, 3), record(&typed, 4))
	b := halfpipe.Pipe(0, record(&variadic, 1), record(&variadic, 2), record(&variadic, 3), record(&variadic, 4))

	anyStages := make([]halfpipe.Stage[any, any], 0, 4)
	for id := 1; id <= 4; id++ {
		stage := record(&untyped, id)
		anyStages = append(anyStages, func(v any) any { return stage(v.(int)) })
	}
	c := halfpipe.PipeAny(0, anyStages...)

	require.Equal(t, 1234, a)
	require.Equal(t, a, b)
	require.Equal(t, a, c)
	require.Equal(t, []int{1, 2, 3, 4}, typed)
	require.Equal(t, typed, variadic)
	require.Equal(t, typed, untyped)
}

func TestPipeAny_LongChain(t *testing.T) {
	stages := make([]halfpipe.Stage[any, any], 0, 25)
	for range 24 {
		stages = append(stages, func(v any) any { return v.(int) + 1 })
	}
	stages = append(stages, func(v any) any { return strconv.Itoa(v.(int)) })

	require.Equal(t, "24", halfpipe.PipeAny(0, stages...))
}

func TestPipeLaws(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("no stages is identity", prop.ForAll(
		func(x int) bool {
			return halfpipe.Pipe(x) == x
		},
		gen.Int(),
	))

	properties.Property("one stage is application", prop.ForAll(
		func(x, k int) bool {
			f := func(v int) int { return v*k + 1 }
			return halfpipe.Pipe(x, f) == f(x) && halfpipe.Pipe1(x, f) == f(x)
		},
		gen.Int(), gen.Int(),
	))

	properties.Property("stages compose left to right", prop.ForAll(
		func(x int, ks []int) bool {
			stages := make([]halfpipe.Stage[int, int], 0, len(ks))
			for _, k := range ks {
				stages = append(stages, func(v int) int { return v*2 + k })
			}

			want := x
			for _, k := range ks {
				want = want*2 + k
			}
			return halfpipe.Pipe(x, stages...) == want
		},
		gen.IntRange(-1000, 1000), gen.SliceOf(gen.IntRange(-10, 10)),
	))

	properties.Property("two stages nest", prop.ForAll(
		func(s string) bool {
			f := func(v string) int { return len(v) }
			g := func(n int) string { return strconv.Itoa(n) }
			return halfpipe.Pipe2(s, f, g) == g(f(s))
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

package halfpipe

type (

	// Stage is a single unary transformation passed to a pipe.
	Stage[In, Out any] func(in In) Out

	// TryStage is a stage that may fail.
	//
	// A non-nil error stops the pipe it runs in.
	TryStage[In, Out any] func(in In) (Out, error)
)

// Pipe threads value through stages from left to right and returns the
// result of the last stage.
//
// With no stages Pipe returns value unchanged.
//
// Stages run synchronously, in order, exactly once. A stage that panics is
// not recovered: the panic reaches the caller and the remaining stages never
// run.
func Pipe[T any](value T, stages ...Stage[T, T]) T {
	for _, stage := range stages {
		value = stage(value)
	}
	return value
}

// PipeAny is the untyped form of Pipe, for chains that are assembled at
// runtime or are longer than Pipe10 allows.
//
// Adjacent stages are not type checked; a stage receiving a value of an
// unexpected type typically panics on its type assertion.
func PipeAny(value any, stages ...Stage[any, any]) any {
	for _, stage := range stages {
		value = stage(value)
	}
	return value
}

// Pipe1 returns f1(value).
func Pipe1[A, B any](value A, f1 func(A) B) B {
	return f1(value)
}

// Pipe2 returns f2(f1(value)).
func Pipe2[A, B, C any](value A, f1 func(A) B, f2 func(B) C) C {
	return f2(f1(value))
}

// Pipe3 threads value through three stages.
func Pipe3[A, B, C, D any](value A, f1 func(A) B, f2 func(B) C, f3 func(C) D) D {
	return f3(f2(f1(value)))
}

// Pipe4 threads value through four stages.
func Pipe4[A, B, C, D, E any](
	value A,
	f1 func(A) B,
	f2 func(B) C,
	f3 func(C) D,
	f4 func(D) E) E {

	return f4(f3(f2(f1(value))))
}

// Pipe5 threads value through five stages.
func Pipe5[A, B, C, D, E, F any](
	value A,
	f1 func(A) B,
	f2 func(B) C,
	f3 func(C) D,
	f4 func(D) E,
	f5 func(E) F) F {

	return f5(f4(f3(f2(f1(value)))))
}

// Pipe6 threads value through six stages.
func Pipe6[A, B, C, D, E, F, G any](
	value A,
	f1 func(A) B,
	f2 func(B) C,
	f3 func(C) D,
	f4 func(D) E,
	f5 func(E) F,
	f6 func(F) G) G {

	return f6(Pipe5(value, f1, f2, f3, f4, f5))
}

// Pipe7 threads value through seven stages.
func Pipe7[A, B, C, D, E, F, G, H any](
	value A,
	f1 func(A) B,
	f2 func(B) C,
	f3 func(C) D,
	f4 func(D) E,
	f5 func(E) F,
	f6 func(F) G,
	f7 func(G) H) H {

	return f7(Pipe6(value, f1, f2, f3, f4, f5, f6))
}

// Pipe8 threads value through eight stages.
func Pipe8[A, B, C, D, E, F, G, H, I any](
	value A,
	f1 func(A) B,
	f2 func(B) C,
	f3 func(C) D,
	f4 func(D) E,
	f5 func(E) F,
	f6 func(F) G,
	f7 func(G) H,
	f8 func(H) I) I {

	return f8(Pipe7(value, f1, f2, f3, f4, f5, f6, f7))
}

// Pipe9 threads value through nine stages.
func Pipe9[A, B, C, D, E, F, G, H, I, J any](
	value A,
	f1 func(A) B,
	f2 func(B) C,
	f3 func(C) D,
	f4 func(D) E,
	f5 func(E) F,
	f6 func(F) G,
	f7 func(G) H,
	f8 func(H) I,
	f9 func(I) J) J {

	return f9(Pipe8(value, f1, f2, f3, f4, f5, f6, f7, f8))
}

// Pipe10 threads value through ten stages. Longer chains can be split into
// nested pipes or built with PipeAny.
func Pipe10[A, B, C, D, E, F, G, H, I, J, K any](
	value A,
	f1 func(A) B,
	f2 func(B) C,
	f3 func(C) D,
	f4 func(D) E,
	f5 func(E) F,
	f6 func(F) G,
	f7 func(G) H,
	f8 func(H) I,
	f9 func(I) J,
	f10 func(J) K) K {

	return f10(Pipe9(value, f1, f2, f3, f4, f5, f6, f7, f8, f9))
}

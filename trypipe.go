package halfpipe

// TryPipe threads value through stages that may fail.
//
// The first non-nil error stops the pipe and is returned unchanged together
// with the zero value of T. Stages after the failing one never run.
func TryPipe[T any](value T, stages ...TryStage[T, T]) (T, error) {
	for _, stage := range stages {
		next, err := stage(value)
		if err != nil {
			var zero T
			return zero, err
		}
		value = next
	}
	return value, nil
}

// TryPipe1 returns f1(value).
func TryPipe1[A, B any](value A, f1 func(A) (B, error)) (B, error) {
	return f1(value)
}

// TryPipe2 threads value through two fallible stages.
func TryPipe2[A, B, C any](value A, f1 func(A) (B, error), f2 func(B) (C, error)) (C, error) {
	b, err := f1(value)
	if err != nil {
		var zero C
		return zero, err
	}
	return f2(b)
}

// TryPipe3 threads value through three fallible stages.
func TryPipe3[A, B, C, D any](
	value A,
	f1 func(A) (B, error),
	f2 func(B) (C, error),
	f3 func(C) (D, error)) (D, error) {

	c, err := TryPipe2(value, f1, f2)
	if err != nil {
		var zero D
		return zero, err
	}
	return f3(c)
}

// TryPipe4 threads value through four fallible stages.
func TryPipe4[A, B, C, D, E any](
	value A,
	f1 func(A) (B, error),
	f2 func(B) (C, error),
	f3 func(C) (D, error),
	f4 func(D) (E, error)) (E, error) {

	d, err := TryPipe3(value, f1, f2, f3)
	if err != nil {
		var zero E
		return zero, err
	}
	return f4(d)
}

// TryPipe5 threads value through five fallible stages.
func TryPipe5[A, B, C, D, E, F any](
	value A,
	f1 func(A) (B, error),
	f2 func(B) (C, error),
	f3 func(C) (D, error),
	f4 func(D) (E, error),
	f5 func(E) (F, error)) (F, error) {

	e, err := TryPipe4(value, f1, f2, f3, f4)
	if err != nil {
		var zero F
		return zero, err
	}
	return f5(e)
}

// Lift turns an infallible stage into a TryStage so it can sit in a TryPipe.
func Lift[In, Out any](fn func(In) Out) TryStage[In, Out] {
	return func(in In) (Out, error) {
		return fn(in), nil
	}
}

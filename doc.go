/*
Package halfpipe composes data transformations left to right.

A pipe takes a seed value and a list of stages, unary functions, and threads
the value through them in order:

	halfpipe.Pipe2("a",
		func(s string) string { return s + "b" },
		func(s string) string { return s + "c" },
	) // -> "abc"

Three forms are provided:

  - Pipe, for any number of stages that share one type.
  - Pipe1 to Pipe10, whose adjacent stage types are checked by the compiler.
  - PipeAny, an untyped loop for chains assembled at runtime.

TryPipe and TryPipe1 to TryPipe5 do the same for stages returning
(value, error) and stop at the first error, returning it unchanged.

Stages run synchronously and exactly once, in order. A pipe never recovers a
panic: a panicking stage stops the pipe and the panic reaches the caller.

The subpackages produce stages for common containers, with their
configuration bound first:

	halfpipe.Pipe3(
		[]string{"ab", "", "cde"},
		arrays.Filter(func(s string, _ int) bool { return halfpipe.IsTruthy(s) }),
		arrays.Map(func(s string, _ int) int { return len(s) }),
		arrays.Get[int](-1),
	) // -> Some(3)

  - arrays, maps, sets and objects wrap slices, maps, sets and structs.
  - maybes, eithers and results wrap mo.Option, mo.Either and mo.Result.
  - validations provides an error-accumulating Validation.
  - rx adapts ro observables.

The invokers (Invoker0 to Invoker3, InvokerN, NoArgs) turn a method
expression into a stage, binding arguments before the target:

	upper := halfpipe.NoArgs(strings.ToUpper)
	has := halfpipe.Invoker1(sets.Set[int].Has)(3)
*/
package halfpipe

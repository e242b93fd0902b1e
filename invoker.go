package halfpipe

// The invokers turn an operation whose first parameter is the target into a
// curried stage: arguments are bound first, the target last.
//
// The operation is usually a method expression, so the target's capability
// is checked by the compiler:
//
//	upper := halfpipe.Invoker0(strings.ToUpper)()
//	str := halfpipe.NoArgs(fmt.Stringer.String)
//	has := halfpipe.Invoker1(sets.Set[int].Has)

// Invoker0 binds an operation that takes no arguments besides the target.
func Invoker0[T, R any](op func(T) R) func() func(T) R {
	return func() func(T) R {
		return func(target T) R {
			return op(target)
		}
	}
}

// NoArgs is Invoker0(op)().
func NoArgs[T, R any](op func(T) R) func(T) R {
	return Invoker0(op)()
}

// Invoker1 binds an operation taking one argument.
func Invoker1[T, A, R any](op func(T, A) R) func(A) func(T) R {
	return func(a A) func(T) R {
		return func(target T) R {
			return op(target, a)
		}
	}
}

// Invoker2 binds an operation taking two arguments.
func Invoker2[T, A1, A2, R any](op func(T, A1, A2) R) func(A1, A2) func(T) R {
	return func(a1 A1, a2 A2) func(T) R {
		return func(target T) R {
			return op(target, a1, a2)
		}
	}
}

// Invoker3 binds an operation taking three arguments.
func Invoker3[T, A1, A2, A3, R any](op func(T, A1, A2, A3) R) func(A1, A2, A3) func(T) R {
	return func(a1 A1, a2 A2, a3 A3) func(T) R {
		return func(target T) R {
			return op(target, a1, a2, a3)
		}
	}
}

// InvokerN binds a variadic operation.
//
// The arguments are copied when bound; changing the caller's slice
// afterwards does not affect the returned stage.
func InvokerN[T, A, R any](op func(T, ...A) R) func(...A) func(T) R {
	return func(args ...A) func(T) R {
		bound := append([]A(nil), args...)
		return func(target T) R {
			return op(target, bound...)
		}
	}
}

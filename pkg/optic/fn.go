package optic

// Unit is the informationless type.
type Unit = struct{}

// Identity returns its argument unchanged.
func Identity[A any](a A) A {
	return a
}

// Always returns a function that ignores its argument and yields b.
func Always[A, B any](b B) func(A) B {
	return func(A) B { return b }
}

// Comp is left to right composition: Comp(f, g)(x) == g(f(x)).
func Comp[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

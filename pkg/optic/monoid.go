package optic

// Monoid is the accumulation dictionary for effect-free folds and for
// sequencing embedded computations across multi-target visits. Instances
// must satisfy the usual identity and associativity laws; the library does
// not verify them (see the laws package for property helpers).
type Monoid[R any] struct {
	Empty  func() R
	Concat func(R, R) R
}

// Number covers the numeric core types Sum accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// SliceMonoid appends, with nil-free empty.
func SliceMonoid[E any]() Monoid[[]E] {
	return Monoid[[]E]{
		Empty:  func() []E { return []E{} },
		Concat: func(a, b []E) []E { return append(a, b...) },
	}
}

// Sum adds.
func Sum[N Number]() Monoid[N] {
	return Monoid[N]{
		Empty:  func() N { var zero N; return zero },
		Concat: func(a, b N) N { return a + b },
	}
}

// Text concatenates.
func Text() Monoid[string] {
	return Monoid[string]{
		Empty:  func() string { return "" },
		Concat: func(a, b string) string { return a + b },
	}
}

// First keeps the first non-nil pointer; Empty is nil. Used for
// first-target queries such as Preview.
func First[E any]() Monoid[*E] {
	return Monoid[*E]{
		Empty: func() *E { return nil },
		Concat: func(a, b *E) *E {
			if a != nil {
				return a
			}
			return b
		},
	}
}

// Last keeps the last non-nil pointer; Empty is nil.
func Last[E any]() Monoid[*E] {
	return Monoid[*E]{
		Empty: func() *E { return nil },
		Concat: func(a, b *E) *E {
			if b != nil {
				return b
			}
			return a
		},
	}
}

// All conjoins; Any disjoins.
func All() Monoid[bool] {
	return Monoid[bool]{
		Empty:  func() bool { return true },
		Concat: func(a, b bool) bool { return a && b },
	}
}

func Any() Monoid[bool] {
	return Monoid[bool]{
		Empty:  func() bool { return false },
		Concat: func(a, b bool) bool { return a || b },
	}
}

// Actions sequences thunks left to right. This is the stock computation
// monoid for Effect-backed visits that only produce side effects.
func Actions() Monoid[func()] {
	return Monoid[func()]{
		Empty: func() func() { return func() {} },
		Concat: func(f, g func()) func() {
			return func() { f(); g() }
		},
	}
}

// Trivial is the unit monoid.
func Trivial() Monoid[Unit] {
	return Monoid[Unit]{
		Empty:  func() Unit { return Unit{} },
		Concat: func(Unit, Unit) Unit { return Unit{} },
	}
}

package optic

// Ident is the write-capable container: a transparent wrapper around exactly
// one payload value. Sets and overs run an optic at Ident, so the rebuilt
// whole passes straight through with no indirection.
type Ident[A any] struct {
	v A
}

// NewIdent wraps a payload.
func NewIdent[A any](a A) Ident[A] {
	return Ident[A]{v: a}
}

// Unwrap returns the payload.
func (i Ident[A]) Unwrap() A {
	return i.v
}

// Rewrap lifts a plain function over the wrapper: Rewrap(f) is pointwise
// equal to NewIdent of f of Unwrap.
func Rewrap[A, B any](f func(A) B) func(Ident[A]) Ident[B] {
	return func(i Ident[A]) Ident[B] {
		return NewIdent(f(i.Unwrap()))
	}
}

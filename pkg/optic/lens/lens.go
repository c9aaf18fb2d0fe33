package lens

import (
	"github.com/ricree/lens/pkg/optic"
)

// Lens focuses exactly one A inside an S; writing a B there rebuilds a T.
type Lens[S, T, A, B any] struct {
	Get func(S) A
	Put func(S, B) T
}

// Simple is a lens that neither changes the whole's type nor the part's.
type Simple[S, A any] = Lens[S, S, A, A]

func Make[S, T, A, B any](get func(S) A, put func(S, B) T) Lens[S, T, A, B] {
	return Lens[S, T, A, B]{Get: get, Put: put}
}

// Of builds a Simple lens; the common case for struct fields.
func Of[S, A any](get func(S) A, put func(S, A) S) Simple[S, A] {
	return Make(get, put)
}

// Instantiate fixes the lens at one container. The resulting optic visits
// the focus, then maps the rebuild over whatever the update produced; for a
// phantom container the rebuild is provably never called.
func Instantiate[FB, FT, S, T, A, B any](l Lens[S, T, A, B], fmap optic.Mapper[B, T, FB, FT]) optic.Optic[S, T, A, B, FB, FT] {
	return func(fn func(A) FB) func(S) FT {
		return func(s S) FT {
			return fmap(func(b B) T { return l.Put(s, b) }, fn(l.Get(s)))
		}
	}
}

// Compose nests inner inside outer: the composite reads through both
// getters and writes back through both putters.
func Compose[S, T, A, B, X, Y any](outer Lens[S, T, A, B], inner Lens[A, B, X, Y]) Lens[S, T, X, Y] {
	return Lens[S, T, X, Y]{
		Get: func(s S) X {
			return inner.Get(outer.Get(s))
		},
		Put: func(s S, y Y) T {
			return outer.Put(s, inner.Put(outer.Get(s), y))
		},
	}
}

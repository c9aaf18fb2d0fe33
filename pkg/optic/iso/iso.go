package iso

import (
	"github.com/ricree/lens/pkg/optic"
	"github.com/ricree/lens/pkg/optic/lens"
)

// Iso relates two shapes through a conversion pair.
type Iso[S, T, A, B any] struct {
	Forward  func(S) A
	Backward func(B) T
}

// Simple is an iso between exactly two types.
type Simple[S, A any] = Iso[S, S, A, A]

func Make[S, T, A, B any](forward func(S) A, backward func(B) T) Iso[S, T, A, B] {
	return Iso[S, T, A, B]{Forward: forward, Backward: backward}
}

// Reverse swaps the directions: viewing through Reverse(i) is i.Backward.
func Reverse[S, T, A, B any](i Iso[S, T, A, B]) Iso[B, A, T, S] {
	return Iso[B, A, T, S]{Forward: i.Backward, Backward: i.Forward}
}

// Instantiate fixes the iso at one container: fmap(Backward) after the
// update after Forward.
func Instantiate[FB, FT, S, T, A, B any](i Iso[S, T, A, B], fmap optic.Mapper[B, T, FB, FT]) optic.Optic[S, T, A, B, FB, FT] {
	return func(fn func(A) FB) func(S) FT {
		return func(s S) FT {
			return fmap(i.Backward, fn(i.Forward(s)))
		}
	}
}

// MapFn is the iso fixed at the plain-function target: no container at all,
// just Backward of fn of Forward.
func MapFn[S, T, A, B any](i Iso[S, T, A, B], fn func(A) B) func(S) T {
	return optic.Comp(i.Forward, optic.Comp(fn, i.Backward))
}

// ToLens forgets that the backward direction ignores the original whole.
func ToLens[S, T, A, B any](i Iso[S, T, A, B]) lens.Lens[S, T, A, B] {
	return lens.Make(i.Forward, func(_ S, b B) T {
		return i.Backward(b)
	})
}

// ComposeLens nests a lens inside an iso.
func ComposeLens[S, T, A, B, X, Y any](outer Iso[S, T, A, B], inner lens.Lens[A, B, X, Y]) lens.Lens[S, T, X, Y] {
	return lens.Compose(ToLens(outer), inner)
}

// Compose nests isos.
func Compose[S, T, A, B, X, Y any](outer Iso[S, T, A, B], inner Iso[A, B, X, Y]) Iso[S, T, X, Y] {
	return Iso[S, T, X, Y]{
		Forward:  optic.Comp(outer.Forward, inner.Forward),
		Backward: optic.Comp(inner.Backward, outer.Backward),
	}
}

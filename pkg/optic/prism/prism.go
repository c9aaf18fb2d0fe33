package prism

import (
	"github.com/samber/mo"

	"github.com/ricree/lens/pkg/optic"
)

// Prism focuses at most one A inside an S. Match reports either the focus
// (right) or the already-final fallback whole (left); Build embeds a new
// part back into a whole.
type Prism[S, T, A, B any] struct {
	Match func(S) mo.Either[T, A]
	Build func(B) T
}

func Make[S, T, A, B any](match func(S) mo.Either[T, A], build func(B) T) Prism[S, T, A, B] {
	return Prism[S, T, A, B]{Match: match, Build: build}
}

// Simple builds a monomorphic prism from an optional match: a failed match
// falls back to the original whole unchanged.
func Simple[S, A any](match func(S) mo.Option[A], build func(A) S) Prism[S, S, A, A] {
	return Prism[S, S, A, A]{
		Match: func(s S) mo.Either[S, A] {
			if a, ok := match(s).Get(); ok {
				return mo.Right[S](a)
			}
			return mo.Left[S, A](s)
		},
		Build: build,
	}
}

// Instantiate fixes the prism at one container. A matched focus is visited
// like a lens focus; a failed match never calls the update and lifts the
// fallback with the container's Pure.
func Instantiate[FB, FT, S, T, A, B any](p Prism[S, T, A, B], fmap optic.Mapper[B, T, FB, FT], pure optic.Pure[T, FT]) optic.Optic[S, T, A, B, FB, FT] {
	return func(fn func(A) FB) func(S) FT {
		return func(s S) FT {
			e := p.Match(s)
			if a, ok := e.Right(); ok {
				return fmap(p.Build, fn(a))
			}
			t, _ := e.Left()
			return pure(t)
		}
	}
}

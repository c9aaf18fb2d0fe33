package indexed

import (
	"github.com/ricree/lens/pkg/optic"
)

// Over rewrites every target of an index-aware optic, handing the update
// its index.
func Over[I, S, T, A, B any](
	o IOptic[I, S, T, A, B, optic.Ident[B], optic.Ident[T]],
	fn func(I, A) B,
	s S,
) T {
	return o(func(i I, a A) optic.Ident[B] { return optic.NewIdent(fn(i, a)) })(s).Unwrap()
}

// FoldMap folds every target together with its index into the monoid.
func FoldMap[R, I, S, T, A, B any](
	o IOptic[I, S, T, A, B, optic.Const[R, B], optic.Const[R, T]],
	fn func(I, A) R,
	s S,
) R {
	return o(func(i I, a A) optic.Const[R, B] { return optic.NewConst[B](fn(i, a)) })(s).Tag()
}

package op

import (
	"github.com/samber/mo"

	"github.com/ricree/lens/pkg/optic"
	"github.com/ricree/lens/pkg/optic/iso"
	"github.com/ricree/lens/pkg/optic/lens"
	"github.com/ricree/lens/pkg/optic/prism"
)

// View reads the focus of a lens by running it at Const[A]: the update
// tags each visited element with itself and the tag falls out unchanged.
func View[S, T, A, B any](l lens.Lens[S, T, A, B], s S) A {
	o := lens.Instantiate(l, optic.ConstMapper[A, B, T]())
	return o(func(a A) optic.Const[A, B] { return optic.NewConst[B](a) })(s).Tag()
}

// Over rewrites the focus of a lens by running it at Ident.
func Over[S, T, A, B any](l lens.Lens[S, T, A, B], f func(A) B, s S) T {
	o := lens.Instantiate(l, optic.IdentMapper[B, T]())
	return o(func(a A) optic.Ident[B] { return optic.NewIdent(f(a)) })(s).Unwrap()
}

// Set replaces the focus of a lens.
func Set[S, T, A, B any](l lens.Lens[S, T, A, B], b B, s S) T {
	return Over(l, optic.Always[A](b), s)
}

// Perform visits the focus of a lens with an action and recovers the
// action's computation, by running the lens at Effect.
func Perform[R, S, T, A, B any](l lens.Lens[S, T, A, B], act func(A) R, s S) R {
	o := lens.Instantiate(l, optic.EffectMapper[R, B, T]())
	return o(func(a A) optic.Effect[R, B] { return optic.Embed[B](act(a)) })(s).Run()
}

// ViewIso reads through an iso; equal to the iso's Forward.
func ViewIso[S, T, A, B any](i iso.Iso[S, T, A, B], s S) A {
	o := iso.Instantiate(i, optic.ConstMapper[A, B, T]())
	return o(func(a A) optic.Const[A, B] { return optic.NewConst[B](a) })(s).Tag()
}

// ReverseGet reads through the reversed iso; equal to the iso's Backward.
func ReverseGet[S, T, A, B any](i iso.Iso[S, T, A, B], b B) T {
	return ViewIso(iso.Reverse(i), b)
}

// OverIso rewrites through an iso at Ident.
func OverIso[S, T, A, B any](i iso.Iso[S, T, A, B], f func(A) B, s S) T {
	o := iso.Instantiate(i, optic.IdentMapper[B, T]())
	return o(func(a A) optic.Ident[B] { return optic.NewIdent(f(a)) })(s).Unwrap()
}

// Preview reads the focus of a prism, if the whole decomposes. Runs the
// prism at Const with the first-target monoid; a failed match contributes
// the neutral (absent) element.
func Preview[S, T, A, B any](p prism.Prism[S, T, A, B], s S) mo.Option[A] {
	m := optic.First[A]()
	o := prism.Instantiate(p, optic.ConstMapper[*A, B, T](), optic.ConstPure[*A, T](m))
	ptr := o(func(a A) optic.Const[*A, B] { return optic.NewConst[B](&a) })(s).Tag()
	if ptr == nil {
		return mo.None[A]()
	}
	return mo.Some(*ptr)
}

// Matches reports whether the prism's focus is present.
func Matches[S, T, A, B any](p prism.Prism[S, T, A, B], s S) bool {
	return Preview(p, s).IsPresent()
}

// OverPrism rewrites the focus of a prism when present; a failed match
// yields the fallback whole untouched.
func OverPrism[S, T, A, B any](p prism.Prism[S, T, A, B], f func(A) B, s S) T {
	o := prism.Instantiate(p, optic.IdentMapper[B, T](), optic.IdentPure[T]())
	return o(func(a A) optic.Ident[B] { return optic.NewIdent(f(a)) })(s).Unwrap()
}

// SetPrism replaces the focus of a prism when present.
func SetPrism[S, T, A, B any](p prism.Prism[S, T, A, B], b B, s S) T {
	return OverPrism(p, optic.Always[A](b), s)
}

// FoldMap folds every target of an instantiated optic into the monoid.
func FoldMap[R, S, T, A, B any](
	o optic.Optic[S, T, A, B, optic.Const[R, B], optic.Const[R, T]],
	f func(A) R,
	s S,
) R {
	return o(func(a A) optic.Const[R, B] { return optic.NewConst[B](f(a)) })(s).Tag()
}

// Collect gathers every target of an instantiated optic, in visit order.
func Collect[S, T, A, B any](
	o optic.Optic[S, T, A, B, optic.Const[[]A, B], optic.Const[[]A, T]],
	s S,
) []A {
	return o(func(a A) optic.Const[[]A, B] { return optic.NewConst[B]([]A{a}) })(s).Tag()
}

// OverOptic rewrites every target of an instantiated optic.
func OverOptic[S, T, A, B any](
	o optic.Optic[S, T, A, B, optic.Ident[B], optic.Ident[T]],
	f func(A) B,
	s S,
) T {
	return o(func(a A) optic.Ident[B] { return optic.NewIdent(f(a)) })(s).Unwrap()
}

// SetOptic replaces every target of an instantiated optic.
func SetOptic[S, T, A, B any](
	o optic.Optic[S, T, A, B, optic.Ident[B], optic.Ident[T]],
	b B,
	s S,
) T {
	return OverOptic(o, optic.Always[A](b), s)
}

// PerformAll visits every target with an action and combines the embedded
// computations as the optic's Effect dictionaries dictate.
func PerformAll[R, S, T, A, B any](
	o optic.Optic[S, T, A, B, optic.Effect[R, B], optic.Effect[R, T]],
	act func(A) R,
	s S,
) R {
	return o(func(a A) optic.Effect[R, B] { return optic.Embed[B](act(a)) })(s).Run()
}

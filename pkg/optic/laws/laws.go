package laws

import (
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"

	"github.com/ricree/lens/pkg/optic"
	"github.com/ricree/lens/pkg/optic/iso"
	"github.com/ricree/lens/pkg/optic/lens"
	"github.com/ricree/lens/pkg/optic/op"
	"github.com/ricree/lens/pkg/optic/prism"
)

// ForLens checks the three classic lens laws on generated values.
func ForLens[S, A any](l lens.Simple[S, A], genS, genA gopter.Gen, eqS func(S, S) bool, eqA func(A, A) bool) *gopter.Properties {
	p := gopter.NewProperties(nil)

	p.Property("get-put: writing back what was read changes nothing", prop.ForAll(
		func(s S) bool {
			return eqS(op.Set(l, op.View(l, s), s), s)
		}, genS))

	p.Property("put-get: reading after a write yields the written value", prop.ForAll(
		func(s S, a A) bool {
			return eqA(op.View(l, op.Set(l, a, s)), a)
		}, genS, genA))

	p.Property("put-put: the second write wins", prop.ForAll(
		func(s S, a1, a2 A) bool {
			return eqS(op.Set(l, a2, op.Set(l, a1, s)), op.Set(l, a2, s))
		}, genS, genA, genA))

	return p
}

// ForIso checks both round trips of a conversion pair, and that viewing
// through the iso and its reverse equals the pair itself.
func ForIso[S, A any](i iso.Simple[S, A], genS, genA gopter.Gen, eqS func(S, S) bool, eqA func(A, A) bool) *gopter.Properties {
	p := gopter.NewProperties(nil)

	p.Property("backward after forward is identity", prop.ForAll(
		func(s S) bool {
			return eqS(i.Backward(i.Forward(s)), s)
		}, genS))

	p.Property("forward after backward is identity", prop.ForAll(
		func(a A) bool {
			return eqA(i.Forward(i.Backward(a)), a)
		}, genA))

	p.Property("view equals forward", prop.ForAll(
		func(s S) bool {
			return eqA(op.ViewIso(i, s), i.Forward(s))
		}, genS))

	p.Property("reverse view equals backward", prop.ForAll(
		func(a A) bool {
			return eqS(op.ViewIso(iso.Reverse(i), a), i.Backward(a))
		}, genA))

	return p
}

// ForPrism checks the partial round trips of a projection.
func ForPrism[S, A any](pr prism.Prism[S, S, A, A], genS, genA gopter.Gen, eqS func(S, S) bool, eqA func(A, A) bool) *gopter.Properties {
	p := gopter.NewProperties(nil)

	p.Property("match after build yields the built focus", prop.ForAll(
		func(a A) bool {
			got, ok := pr.Match(pr.Build(a)).Right()
			return ok && eqA(got, a)
		}, genA))

	p.Property("build after match reproduces the whole", prop.ForAll(
		func(s S) bool {
			a, ok := pr.Match(s).Right()
			if !ok {
				return true
			}
			return eqS(pr.Build(a), s)
		}, genS))

	p.Property("preview agrees with match", prop.ForAll(
		func(s S) bool {
			fromOptic, okOptic := op.Preview(pr, s).Get()
			fromMatch, okMatch := pr.Match(s).Right()
			if okOptic != okMatch {
				return false
			}
			return !okOptic || eqA(fromOptic, fromMatch)
		}, genS))

	return p
}

// ForConst checks the coercion laws of the effect-free container.
func ForConst[R any](genR gopter.Gen, eqR func(R, R) bool) *gopter.Properties {
	p := gopter.NewProperties(nil)

	p.Property("retag round trip preserves the tag", prop.ForAll(
		func(r R) bool {
			c := optic.NewConst[string](r)
			return eqR(optic.Retag[string](optic.Retag[int](c)).Tag(), r)
		}, genR))

	p.Property("retag twice equals retag once", prop.ForAll(
		func(r R) bool {
			c := optic.NewConst[string](r)
			twice := optic.Retag[bool](optic.Retag[int](c))
			once := optic.Retag[bool](c)
			return eqR(twice.Tag(), once.Tag())
		}, genR))

	return p
}

// ForIdent checks the unwrap laws of the write-capable container, and that
// the representation fast path agrees with the safe pair. Rewrap is checked
// pointwise against each supplied function.
func ForIdent[A any](genA gopter.Gen, eqA func(A, A) bool, fns ...func(A) A) *gopter.Properties {
	p := gopter.NewProperties(nil)

	p.Property("unwrap after construct is identity", prop.ForAll(
		func(a A) bool {
			return eqA(optic.NewIdent(a).Unwrap(), a)
		}, genA))

	p.Property("fast path agrees with unwrap", prop.ForAll(
		func(a A) bool {
			i := optic.NewIdent(a)
			return eqA(*optic.UnsafePayload(&i), i.Unwrap())
		}, genA))

	p.Property("rewrap equals construct after apply after unwrap", prop.ForAll(
		func(a A) bool {
			for _, f := range fns {
				i := optic.NewIdent(a)
				if !eqA(optic.Rewrap(f)(i).Unwrap(), f(i.Unwrap())) {
					return false
				}
			}
			return true
		}, genA))

	return p
}

// ForEffect checks the embed/recover round trip of the effect-combining
// container.
func ForEffect[R any](genR gopter.Gen, eqR func(R, R) bool) *gopter.Properties {
	p := gopter.NewProperties(nil)

	p.Property("recover after embed is identity", prop.ForAll(
		func(r R) bool {
			return eqR(optic.Embed[string](r).Run(), r)
		}, genR))

	p.Property("embed after recover reproduces the container", prop.ForAll(
		func(r R) bool {
			e := optic.Embed[string](r)
			return eqR(optic.Embed[string](e.Run()).Run(), e.Run())
		}, genR))

	return p
}

// ForMonoid checks identity and associativity of an accumulation
// dictionary.
func ForMonoid[R any](m optic.Monoid[R], genR gopter.Gen, eqR func(R, R) bool) *gopter.Properties {
	p := gopter.NewProperties(nil)

	p.Property("left and right identity", prop.ForAll(
		func(r R) bool {
			return eqR(m.Concat(m.Empty(), r), r) && eqR(m.Concat(r, m.Empty()), r)
		}, genR))

	p.Property("associativity", prop.ForAll(
		func(a, b, c R) bool {
			return eqR(m.Concat(m.Concat(a, b), c), m.Concat(a, m.Concat(b, c)))
		}, genR, genR, genR))

	return p
}

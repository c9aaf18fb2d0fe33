package traverse

import (
	"cmp"
	"slices"

	"github.com/samber/lo"

	"github.com/ricree/lens/pkg/optic"
)

// Each visits every element of a slice in order.
func Each[FB, FBS, A, B any](
	pure optic.Pure[[]B, FBS],
	lift optic.Lift2[FBS, FB, FBS, []B, B, []B],
) optic.Optic[[]A, []B, A, B, FB, FBS] {
	return func(fn func(A) FB) func([]A) FBS {
		return func(as []A) FBS {
			acc := pure(make([]B, 0, len(as)))
			for _, a := range as {
				acc = lift(func(bs []B, b B) []B { return append(bs, b) }, acc, fn(a))
			}
			return acc
		}
	}
}

// Values visits every map value, in sorted key order so folds and effect
// sequencing are deterministic.
func Values[FW, FM any, K cmp.Ordered, V, W any](
	pure optic.Pure[map[K]W, FM],
	lift optic.Lift2[FM, FW, FM, map[K]W, W, map[K]W],
) optic.Optic[map[K]V, map[K]W, V, W, FW, FM] {
	return func(fn func(V) FW) func(map[K]V) FM {
		return func(m map[K]V) FM {
			keys := lo.Keys(m)
			slices.Sort(keys)

			acc := pure(make(map[K]W, len(m)))
			for _, k := range keys {
				k := k
				acc = lift(func(out map[K]W, w W) map[K]W {
					out[k] = w
					return out
				}, acc, fn(m[k]))
			}
			return acc
		}
	}
}

// Keys visits every map key, in sorted order. Writing two keys to the same
// value collapses them; the later sorted key wins.
func Keys[FL, FM any, K cmp.Ordered, L comparable, V any](
	pure optic.Pure[map[L]V, FM],
	lift optic.Lift2[FM, FL, FM, map[L]V, L, map[L]V],
) optic.Optic[map[K]V, map[L]V, K, L, FL, FM] {
	return func(fn func(K) FL) func(map[K]V) FM {
		return func(m map[K]V) FM {
			keys := lo.Keys(m)
			slices.Sort(keys)

			acc := pure(make(map[L]V, len(m)))
			for _, k := range keys {
				v := m[k]
				acc = lift(func(out map[L]V, l L) map[L]V {
					out[l] = v
					return out
				}, acc, fn(k))
			}
			return acc
		}
	}
}

// Filtered visits the slice elements matching pred; the rest are carried
// through the container's Pure untouched, so they contribute nothing to a
// fold and survive a rewrite unchanged.
func Filtered[FB, FAS, A any](
	pred func(A) bool,
	pure optic.Pure[[]A, FAS],
	pureElem optic.Pure[A, FB],
	lift optic.Lift2[FAS, FB, FAS, []A, A, []A],
) optic.Optic[[]A, []A, A, A, FB, FAS] {
	return func(fn func(A) FB) func([]A) FAS {
		return func(as []A) FAS {
			acc := pure(make([]A, 0, len(as)))
			for _, a := range as {
				visit := fn
				if !pred(a) {
					visit = pureElem
				}
				acc = lift(func(out []A, a A) []A { return append(out, a) }, acc, visit(a))
			}
			return acc
		}
	}
}

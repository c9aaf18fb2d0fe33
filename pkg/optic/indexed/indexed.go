package indexed

import (
	"cmp"
	"slices"

	"github.com/samber/lo"

	"github.com/ricree/lens/pkg/optic"
)

// IOptic is the index-aware optic shape: the update function receives the
// element's index along with the element.
type IOptic[I, S, T, A, B, FB, FT any] func(fn func(I, A) FB) func(S) FT

// Discarding adapts a plain update function to an index-aware call site by
// ignoring the index. Discarding(fn)(i, a) == fn(a) for every i.
func Discarding[I, A, FB any](fn func(A) FB) func(I, A) FB {
	return func(_ I, a A) FB {
		return fn(a)
	}
}

// ToPlain collapses an index-aware optic into a plain one.
func ToPlain[I, S, T, A, B, FB, FT any](o IOptic[I, S, T, A, B, FB, FT]) optic.Optic[S, T, A, B, FB, FT] {
	return func(fn func(A) FB) func(S) FT {
		return o(Discarding[I](fn))
	}
}

// Compose nests a plain optic inside an index-aware one; the index of the
// outer layer is threaded to the innermost update.
func Compose[I, S, T, A, B, X, Y, FY, FB, FT any](
	outer IOptic[I, S, T, A, B, FB, FT],
	inner optic.Optic[A, B, X, Y, FY, FB],
) IOptic[I, S, T, X, Y, FY, FT] {
	return func(fn func(I, X) FY) func(S) FT {
		return outer(func(i I, a A) FB {
			return inner(func(x X) FY { return fn(i, x) })(a)
		})
	}
}

// Each visits slice elements with their positions.
func Each[FB, FBS, A, B any](
	pure optic.Pure[[]B, FBS],
	lift optic.Lift2[FBS, FB, FBS, []B, B, []B],
) IOptic[int, []A, []B, A, B, FB, FBS] {
	return func(fn func(int, A) FB) func([]A) FBS {
		return func(as []A) FBS {
			acc := pure(make([]B, 0, len(as)))
			for i, a := range as {
				acc = lift(func(bs []B, b B) []B { return append(bs, b) }, acc, fn(i, a))
			}
			return acc
		}
	}
}

// MapValues visits map values with their keys, in sorted key order.
func MapValues[FW, FM any, K cmp.Ordered, V, W any](
	pure optic.Pure[map[K]W, FM],
	lift optic.Lift2[FM, FW, FM, map[K]W, W, map[K]W],
) IOptic[K, map[K]V, map[K]W, V, W, FW, FM] {
	return func(fn func(K, V) FW) func(map[K]V) FM {
		return func(m map[K]V) FM {
			keys := lo.Keys(m)
			slices.Sort(keys)

			acc := pure(make(map[K]W, len(m)))
			for _, k := range keys {
				k := k
				acc = lift(func(out map[K]W, w W) map[K]W {
					out[k] = w
					return out
				}, acc, fn(k, m[k]))
			}
			return acc
		}
	}
}

package indexed

import (
	"fmt"
	"testing"

	"github.com/ricree/lens/pkg/optic"
)

func TestDiscarding_IgnoresIndex(t *testing.T) {
	t.Parallel()
	fn := func(n int) optic.Ident[int] { return optic.NewIdent(n + 1) }

	wrapped := Discarding[string](fn)
	for _, idx := range []string{"", "a", "zzz"} {
		if got, want := wrapped(idx, 4).Unwrap(), fn(4).Unwrap(); got != want {
			t.Fatalf("expected discarding adapter to behave like the plain function, got %v want %v", got, want)
		}
	}
}

func TestEach_OverReceivesPositions(t *testing.T) {
	t.Parallel()
	o := Each[optic.Ident[int], optic.Ident[[]int], int, int](
		optic.IdentPure[[]int](),
		optic.IdentLift2[[]int, int, []int](),
	)

	got := Over(o, func(i, n int) int { return n + i }, []int{10, 10, 10})
	if len(got) != 3 || got[0] != 10 || got[1] != 11 || got[2] != 12 {
		t.Fatalf("expected [10 11 12], got %v", got)
	}
}

func TestEach_FoldMapPairsIndexWithElement(t *testing.T) {
	t.Parallel()
	m := optic.Text()
	o := Each[optic.Const[string, string], optic.Const[string, []string], string, string](
		optic.ConstPure[string, []string](m),
		optic.ConstLift2[string, []string, string, []string](m),
	)

	got := FoldMap(o, func(i int, s string) string { return fmt.Sprintf("%d%s", i, s) }, []string{"a", "b"})
	if got != "0a1b" {
		t.Fatalf("expected 0a1b, got %q", got)
	}
}

func TestToPlain_MatchesPlainTraversal(t *testing.T) {
	t.Parallel()
	o := Each[optic.Ident[int], optic.Ident[[]int], int, int](
		optic.IdentPure[[]int](),
		optic.IdentLift2[[]int, int, []int](),
	)

	plain := ToPlain(o)
	got := plain(func(n int) optic.Ident[int] { return optic.NewIdent(n * 3) })([]int{1, 2}).Unwrap()
	if len(got) != 2 || got[0] != 3 || got[1] != 6 {
		t.Fatalf("expected [3 6], got %v", got)
	}
}

func TestMapValues_OverReceivesKeys(t *testing.T) {
	t.Parallel()
	o := MapValues[optic.Ident[string], optic.Ident[map[string]string], string, string, string](
		optic.IdentPure[map[string]string](),
		optic.IdentLift2[map[string]string, string, map[string]string](),
	)

	got := Over(o, func(k, v string) string { return k + "=" + v }, map[string]string{"x": "1", "y": "2"})
	if got["x"] != "x=1" || got["y"] != "y=2" || len(got) != 2 {
		t.Fatalf("expected keys threaded into values, got %v", got)
	}
}

func TestCompose_ThreadsOuterIndexToInnerTargets(t *testing.T) {
	t.Parallel()
	outer := Each[optic.Ident[[]int], optic.Ident[[][]int], []int, []int](
		optic.IdentPure[[][]int](),
		optic.IdentLift2[[][]int, []int, [][]int](),
	)
	inner := optic.Optic[[]int, []int, int, int, optic.Ident[int], optic.Ident[[]int]](
		func(fn func(int) optic.Ident[int]) func([]int) optic.Ident[[]int] {
			return func(ns []int) optic.Ident[[]int] {
				out := make([]int, len(ns))
				for i, n := range ns {
					out[i] = fn(n).Unwrap()
				}
				return optic.NewIdent(out)
			}
		})

	o := Compose(outer, inner)
	got := Over(o, func(row, n int) int { return n + row*100 }, [][]int{{1, 2}, {3}})
	if got[0][0] != 1 || got[0][1] != 2 || got[1][0] != 103 {
		t.Fatalf("expected the row index added to inner elements, got %v", got)
	}
}

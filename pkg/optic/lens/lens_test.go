package lens

import (
	"testing"

	"github.com/ricree/lens/pkg/optic"
)

type port struct {
	number int
	name   string
}

type endpoint struct {
	host string
	port port
}

func portNumber() Simple[port, int] {
	return Of(
		func(p port) int { return p.number },
		func(p port, n int) port { p.number = n; return p },
	)
}

func endpointPort() Simple[endpoint, port] {
	return Of(
		func(e endpoint) port { return e.port },
		func(e endpoint, p port) endpoint { e.port = p; return e },
	)
}

func TestInstantiate_ConstReadsFocus(t *testing.T) {
	t.Parallel()
	l := portNumber()

	o := Instantiate(l, optic.ConstMapper[int, int, port]())
	got := o(func(n int) optic.Const[int, int] { return optic.NewConst[int](n) })(port{number: 8080}).Tag()
	if got != 8080 {
		t.Fatalf("expected 8080, got %v", got)
	}
}

func TestInstantiate_ConstNeverRebuilds(t *testing.T) {
	t.Parallel()
	rebuilt := false
	l := Make(
		func(p port) int { return p.number },
		func(p port, n int) port { rebuilt = true; p.number = n; return p },
	)

	o := Instantiate(l, optic.ConstMapper[int, int, port]())
	o(func(n int) optic.Const[int, int] { return optic.NewConst[int](n) })(port{number: 1})
	if rebuilt {
		t.Fatalf("a read specialization must not invoke the putter")
	}
}

func TestInstantiate_IdentRewrites(t *testing.T) {
	t.Parallel()
	l := portNumber()

	o := Instantiate(l, optic.IdentMapper[int, port]())
	got := o(func(n int) optic.Ident[int] { return optic.NewIdent(n + 1) })(port{number: 80, name: "http"}).Unwrap()
	if got.number != 81 || got.name != "http" {
		t.Fatalf("expected number 81 with name kept, got %+v", got)
	}
}

func TestInstantiate_EffectCarriesComputation(t *testing.T) {
	t.Parallel()
	l := portNumber()

	o := Instantiate(l, optic.EffectMapper[string, int, port]())
	got := o(func(n int) optic.Effect[string, int] {
		if n == 443 {
			return optic.Embed[int]("secure")
		}
		return optic.Embed[int]("plain")
	})(port{number: 443}).Run()
	if got != "secure" {
		t.Fatalf("expected the embedded computation to be recovered, got %q", got)
	}
}

func TestCompose_ReadsAndWritesThroughBothLayers(t *testing.T) {
	t.Parallel()
	l := Compose(endpointPort(), portNumber())
	e := endpoint{host: "db", port: port{number: 5432, name: "pg"}}

	o := Instantiate(l, optic.ConstMapper[int, int, endpoint]())
	if got := o(func(n int) optic.Const[int, int] { return optic.NewConst[int](n) })(e).Tag(); got != 5432 {
		t.Fatalf("expected 5432, got %v", got)
	}

	w := Instantiate(l, optic.IdentMapper[int, endpoint]())
	out := w(func(n int) optic.Ident[int] { return optic.NewIdent(n + 1) })(e).Unwrap()
	if out.port.number != 5433 || out.host != "db" || out.port.name != "pg" {
		t.Fatalf("expected only the inner focus to change, got %+v", out)
	}
}

func TestMake_PolymorphicUpdateChangesType(t *testing.T) {
	t.Parallel()
	// A lens whose write replaces the focused string with an int, changing
	// the type of the whole.
	l := Make(
		func(s []string) string { return s[0] },
		func(s []string, n int) []int { return []int{n, len(s)} },
	)

	o := Instantiate(l, optic.IdentMapper[int, []int]())
	got := o(func(h string) optic.Ident[int] { return optic.NewIdent(len(h)) })([]string{"head", "tail"}).Unwrap()
	if len(got) != 2 || got[0] != 4 || got[1] != 2 {
		t.Fatalf("expected [4 2], got %v", got)
	}
}

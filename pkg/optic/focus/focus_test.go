package focus

import (
	"testing"

	"github.com/ricree/lens/pkg/optic/lens"
)

type address struct {
	city string
	zip  string
}

type person struct {
	name string
	home address
}

func homeL() lens.Simple[person, address] {
	return lens.Of(
		func(p person) address { return p.home },
		func(p person, a address) person { p.home = a; return p },
	)
}

func cityL() lens.Simple[address, string] {
	return lens.Of(
		func(a address) string { return a.city },
		func(a address, c string) address { a.city = c; return a },
	)
}

func TestOn_IdentityPath(t *testing.T) {
	t.Parallel()
	p := person{name: "ada"}

	f := On(p)
	if f.Get() != p {
		t.Fatalf("expected the subject itself, got %+v", f.Get())
	}
	if f.Subject() != p {
		t.Fatalf("expected the bound subject unchanged")
	}
}

func TestZoom_GetThroughTwoLayers(t *testing.T) {
	t.Parallel()
	p := person{name: "ada", home: address{city: "london", zip: "e1"}}

	f := Zoom(Zoom(On(p), homeL()), cityL())
	if got := f.Get(); got != "london" {
		t.Fatalf("expected london, got %q", got)
	}
}

func TestZoom_SetRebuildsWholeSubject(t *testing.T) {
	t.Parallel()
	p := person{name: "ada", home: address{city: "london", zip: "e1"}}

	got := Zoom(Zoom(On(p), homeL()), cityL()).Set("paris")
	if got.home.city != "paris" || got.home.zip != "e1" || got.name != "ada" {
		t.Fatalf("expected only the city replaced, got %+v", got)
	}
}

func TestOver_RewritesFocus(t *testing.T) {
	t.Parallel()
	p := person{home: address{city: "nyc"}}

	got := Zoom(Zoom(On(p), homeL()), cityL()).Over(func(c string) string { return c + "!" })
	if got.home.city != "nyc!" {
		t.Fatalf("expected nyc!, got %+v", got)
	}
}

package wrapped

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

type userID string

func TestInt64_DurationRoundTrip(t *testing.T) {
	t.Parallel()
	i := Int64[time.Duration]()

	d := 1500 * time.Millisecond
	if got := i.Forward(d); got != int64(1500*time.Millisecond) {
		t.Fatalf("expected the raw nanosecond count, got %v", got)
	}
	if got := i.Backward(i.Forward(d)); got != d {
		t.Fatalf("expected round trip to preserve the duration, got %v", got)
	}
}

func TestText_NamedStringRoundTrip(t *testing.T) {
	t.Parallel()
	i := Text[userID]()

	id := userID("u-7")
	if got := i.Forward(id); got != "u-7" {
		t.Fatalf("expected u-7, got %q", got)
	}
	if got := i.Backward("u-9"); got != userID("u-9") {
		t.Fatalf("expected userID u-9, got %q", got)
	}
}

func TestUUIDBytes_RoundTrip(t *testing.T) {
	t.Parallel()
	i := UUIDBytes()
	u := uuid.New()

	if got := i.Backward(i.Forward(u)); got != u {
		t.Fatalf("expected round trip to preserve the uuid, got %v", got)
	}
}

func TestUUIDText_MatchAndBuild(t *testing.T) {
	t.Parallel()
	p := UUIDText()
	u := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	got, ok := p.Match(u.String()).Right()
	if !ok || got != u {
		t.Fatalf("expected the parsed uuid, got ok=%v %v", ok, got)
	}
	if built := p.Build(u); built != "6ba7b810-9dad-11d1-80b4-00c04fd430c8" {
		t.Fatalf("expected the canonical text form, got %q", built)
	}
}

func TestUUIDText_FailedParseFallsBack(t *testing.T) {
	t.Parallel()
	p := UUIDText()

	s, ok := p.Match("not-a-uuid").Left()
	if !ok || s != "not-a-uuid" {
		t.Fatalf("expected the original string as fallback, got ok=%v %q", ok, s)
	}
}

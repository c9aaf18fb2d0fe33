package wrapped

import (
	"github.com/google/uuid"
	"github.com/samber/mo"

	"github.com/ricree/lens/pkg/optic/iso"
	"github.com/ricree/lens/pkg/optic/prism"
)

// Int64 relates a named int64 wrapper to its representation.
func Int64[W ~int64]() iso.Simple[W, int64] {
	return iso.Make(
		func(w W) int64 { return int64(w) },
		func(n int64) W { return W(n) },
	)
}

// Text relates a named string wrapper to its representation.
func Text[W ~string]() iso.Simple[W, string] {
	return iso.Make(
		func(w W) string { return string(w) },
		func(s string) W { return W(s) },
	)
}

// UUIDBytes relates a uuid to its 16-byte array.
func UUIDBytes() iso.Simple[uuid.UUID, [16]byte] {
	return iso.Make(
		func(u uuid.UUID) [16]byte { return [16]byte(u) },
		func(b [16]byte) uuid.UUID { return uuid.UUID(b) },
	)
}

// UUIDText focuses the uuid inside a string, when the string parses.
// Building renders the canonical lower-case form.
func UUIDText() prism.Prism[string, string, uuid.UUID, uuid.UUID] {
	return prism.Simple(
		func(s string) mo.Option[uuid.UUID] {
			u, err := uuid.Parse(s)
			if err != nil {
				return mo.None[uuid.UUID]()
			}
			return mo.Some(u)
		},
		func(u uuid.UUID) string { return u.String() },
	)
}

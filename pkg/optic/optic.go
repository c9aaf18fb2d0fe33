package optic

// Optic is the traversal-shaped function every accessor in this module
// reduces to: lift an update on the part (A -> FB) into an update on the
// whole (S -> FT). FB and FT are the same container applied to B and T;
// the container is fixed per call site, so one reusable optic serves as a
// getter, a setter, or an action runner depending on which container the
// caller instantiates it with.
type Optic[S, T, A, B, FB, FT any] func(fn func(A) FB) func(S) FT

// ComposeOptic nests inner inside outer. Both must be instantiated at the
// same container; the composite focuses the inner targets reachable through
// the outer ones.
func ComposeOptic[S, T, A, B, X, Y, FY, FB, FT any](
	outer Optic[S, T, A, B, FB, FT],
	inner Optic[A, B, X, Y, FY, FB],
) Optic[S, T, X, Y, FY, FT] {
	return func(fn func(X) FY) func(S) FT {
		return outer(inner(fn))
	}
}

package optic

// Mapper lifts a pure function over a container: the functor dictionary.
type Mapper[B, T, FB, FT any] func(f func(B) T, fb FB) FT

// Pure injects a plain value into a container: the applicative unit.
type Pure[T, FT any] func(t T) FT

// Lift2 combines two container values with a binary function: the
// applicative combine used by multi-target optics to merge sibling visits.
type Lift2[FX, FY, FZ, X, Y, Z any] func(f func(X, Y) Z, fx FX, fy FY) FZ

// ConstMapper ignores the function and retags: the payload is phantom, so
// mapping over it is the coercion rule.
func ConstMapper[R, B, T any]() Mapper[B, T, Const[R, B], Const[R, T]] {
	return func(_ func(B) T, c Const[R, B]) Const[R, T] {
		return Retag[T](c)
	}
}

// IdentMapper applies the function to the wrapped payload.
func IdentMapper[B, T any]() Mapper[B, T, Ident[B], Ident[T]] {
	return func(f func(B) T, i Ident[B]) Ident[T] {
		return NewIdent(f(i.Unwrap()))
	}
}

// EffectMapper ignores the function and carries the embedded computation.
func EffectMapper[R, B, T any]() Mapper[B, T, Effect[R, B], Effect[R, T]] {
	return func(_ func(B) T, e Effect[R, B]) Effect[R, T] {
		return RunAs[T](e)
	}
}

// ConstPure discards the value and yields the fold's neutral element.
func ConstPure[R, T any](m Monoid[R]) Pure[T, Const[R, T]] {
	return func(T) Const[R, T] {
		return NoEffect[T](m)
	}
}

// IdentPure wraps.
func IdentPure[T any]() Pure[T, Ident[T]] {
	return NewIdent[T]
}

// EffectPure discards the value and embeds the no-op computation.
func EffectPure[R, T any](m Monoid[R]) Pure[T, Effect[R, T]] {
	return func(T) Effect[R, T] {
		return Embed[T](m.Empty())
	}
}

// ConstLift2 ignores the function and concatenates tags.
func ConstLift2[R, X, Y, Z any](m Monoid[R]) Lift2[Const[R, X], Const[R, Y], Const[R, Z], X, Y, Z] {
	return func(_ func(X, Y) Z, cx Const[R, X], cy Const[R, Y]) Const[R, Z] {
		return NewConst[Z](m.Concat(cx.Tag(), cy.Tag()))
	}
}

// IdentLift2 applies the function to both payloads.
func IdentLift2[X, Y, Z any]() Lift2[Ident[X], Ident[Y], Ident[Z], X, Y, Z] {
	return func(f func(X, Y) Z, ix Ident[X], iy Ident[Y]) Ident[Z] {
		return NewIdent(f(ix.Unwrap(), iy.Unwrap()))
	}
}

// EffectLift2 ignores the function and sequences the embedded computations
// through the caller's monoid.
func EffectLift2[R, X, Y, Z any](m Monoid[R]) Lift2[Effect[R, X], Effect[R, Y], Effect[R, Z], X, Y, Z] {
	return func(_ func(X, Y) Z, ex Effect[R, X], ey Effect[R, Y]) Effect[R, Z] {
		return Embed[Z](m.Concat(ex.Run(), ey.Run()))
	}
}

package optic

// Const is the effect-free container: it stores only the accumulated tag R,
// the payload type A is phantom. Reads and folds run an optic at Const, so
// the update function's result is ignored structurally and only tags flow
// out.
type Const[R, A any] struct {
	tag R
}

// NewConst wraps a tag. The payload type is supplied explicitly since no
// payload value exists to infer it from.
func NewConst[A, R any](r R) Const[R, A] {
	return Const[R, A]{tag: r}
}

// Tag returns the accumulated value.
func (c Const[R, A]) Tag() R {
	return c.tag
}

// Retag reinterprets the payload type of an effect-free container in
// constant time. No payload is stored, so nothing is traversed or rebuilt.
//
// Laws: Retag[A](c) == c when c is already at A, and retagging twice equals
// retagging once to the final type.
func Retag[B, R, A any](c Const[R, A]) Const[R, B] {
	return Const[R, B]{tag: c.tag}
}

// NoEffect is the do-nothing effect-free value: the retagged pure of unit,
// i.e. a Const carrying the monoid's identity element. A read that visits
// zero targets yields exactly this value.
func NoEffect[A, R any](m Monoid[R]) Const[R, A] {
	return Retag[A](NewConst[Unit](m.Empty()))
}

package optic

// Effect is the effect-combining container: it wraps an unrelated
// computation of type R and ignores its own payload type entirely. Running
// an optic at Effect makes the optic machinery carry the caller's
// computation out of the visit; the optic itself never inspects R, so any
// evaluation strategy the caller encodes in R (lazy thunk, result value,
// channel) passes through untouched.
type Effect[R, A any] struct {
	run R
}

// Embed wraps a computation. Embed and Run are mutual inverses.
func Embed[A, R any](m R) Effect[R, A] {
	return Effect[R, A]{run: m}
}

// Run recovers the embedded computation.
func (e Effect[R, A]) Run() R {
	return e.run
}

// RunAs reinterprets the phantom payload type, the Effect analog of Retag.
func RunAs[B, R, A any](e Effect[R, A]) Effect[R, B] {
	return Effect[R, B]{run: e.run}
}

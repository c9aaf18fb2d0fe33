package optic

// Tagged is the effect-free capability: the container exposes only an
// accumulated tag, its payload type is phantom and safe to reinterpret.
type Tagged[R any] interface {
	// Tag returns the accumulated value
	Tag() R
}

// Wrapper is the write-capable capability: the container is structurally
// just its single payload, exposed and fully replaceable.
type Wrapper[A any] interface {
	// Unwrap returns the payload
	Unwrap() A
}

// Runner is the effect-combining capability: the container is a recoverable
// embedding of an unrelated computation.
type Runner[R any] interface {
	// Run recovers the embedded computation
	Run() R
}

var (
	_ Tagged[int]     = Const[int, string]{}
	_ Wrapper[string] = Ident[string]{}
	_ Runner[int]     = Effect[int, string]{}
)

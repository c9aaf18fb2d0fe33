package optic

import "unsafe"

// Representation-level fast path for the canonical write-capable container.
//
// Ident[A] is a struct whose only field has type A, so its memory layout is
// byte-identical to A. The two functions below reinterpret that memory
// instead of going through NewIdent/Unwrap. They are valid for Ident and
// nothing else; any other write-capable type must use the constructor and
// destructor pair. Keep every representation cast in this file.

// UnsafePayload views an Ident's memory as its payload.
// Agrees with Unwrap for every value.
func UnsafePayload[A any](i *Ident[A]) *A {
	return (*A)(unsafe.Pointer(i))
}

// UnsafeWrap views a payload's memory as an Ident.
// Agrees with NewIdent for every value.
func UnsafeWrap[A any](a *A) *Ident[A] {
	return (*Ident[A])(unsafe.Pointer(a))
}

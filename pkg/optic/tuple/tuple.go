package tuple

import (
	"github.com/ricree/lens/pkg/optic/lens"
)

type T2[A, B any] struct {
	Fst A
	Snd B
}

func NewT2[A, B any](a A, b B) T2[A, B] {
	return T2[A, B]{Fst: a, Snd: b}
}

type T3[A, B, C any] struct {
	Fst A
	Snd B
	Trd C
}

func NewT3[A, B, C any](a A, b B, c C) T3[A, B, C] {
	return T3[A, B, C]{Fst: a, Snd: b, Trd: c}
}

// First2 focuses the first slot of a pair.
func First2[A, B, X any]() lens.Lens[T2[A, B], T2[X, B], A, X] {
	return lens.Make(
		func(t T2[A, B]) A { return t.Fst },
		func(t T2[A, B], x X) T2[X, B] { return T2[X, B]{Fst: x, Snd: t.Snd} },
	)
}

// Second2 focuses the second slot of a pair.
func Second2[A, B, X any]() lens.Lens[T2[A, B], T2[A, X], B, X] {
	return lens.Make(
		func(t T2[A, B]) B { return t.Snd },
		func(t T2[A, B], x X) T2[A, X] { return T2[A, X]{Fst: t.Fst, Snd: x} },
	)
}

// First3, Second3 and Third3 focus the slots of a triple.
func First3[A, B, C, X any]() lens.Lens[T3[A, B, C], T3[X, B, C], A, X] {
	return lens.Make(
		func(t T3[A, B, C]) A { return t.Fst },
		func(t T3[A, B, C], x X) T3[X, B, C] { return T3[X, B, C]{Fst: x, Snd: t.Snd, Trd: t.Trd} },
	)
}

func Second3[A, B, C, X any]() lens.Lens[T3[A, B, C], T3[A, X, C], B, X] {
	return lens.Make(
		func(t T3[A, B, C]) B { return t.Snd },
		func(t T3[A, B, C], x X) T3[A, X, C] { return T3[A, X, C]{Fst: t.Fst, Snd: x, Trd: t.Trd} },
	)
}

func Third3[A, B, C, X any]() lens.Lens[T3[A, B, C], T3[A, B, X], C, X] {
	return lens.Make(
		func(t T3[A, B, C]) C { return t.Trd },
		func(t T3[A, B, C], x X) T3[A, B, X] { return T3[A, B, X]{Fst: t.Fst, Snd: t.Snd, Trd: x} },
	)
}

// Swap2 relates a pair to its mirror image.
func Swap2[A, B any](t T2[A, B]) T2[B, A] {
	return T2[B, A]{Fst: t.Snd, Snd: t.Fst}
}

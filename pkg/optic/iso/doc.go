// Package iso builds bidirectional optics from a forward/backward function
// pair.
//
// - Make: build an Iso from Forward/Backward
// - Reverse: swap the two directions
// - Instantiate: fix the iso at a container (fmap backward after forward)
// - MapFn: the plain-function target, Backward of fn of Forward
// - ToLens: use an iso wherever a lens is expected
//
// The round-trip laws hold only when the supplied pair are true inverses;
// that is the caller's responsibility (see the laws package for property
// suites that check supplied pairs on generated values).
package iso

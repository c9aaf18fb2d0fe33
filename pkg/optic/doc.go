// Package optic contains the effect containers and dictionaries that every
// optic in this module is specialized with. An optic is a single function
// shape, Optic[S, T, A, B, FB, FT], that turns an update on a part into an
// update on the whole; which capability the call site gets (read, write,
// run an action) is decided entirely by the container chosen for FB/FT.
//
// Containers:
// - Const: effect-free, payload is phantom; powers reads and folds
// - Ident: write-capable, a transparent wrapper; powers sets and overs
// - Effect: effect-combining, wraps an unrelated computation; powers visits
//
// Dictionaries (Mapper, Pure, Lift2, Monoid) carry the evidence Go's type
// system cannot resolve on its own; each container ships its canonical
// dictionary constructors so call sites pick a capability by picking a
// dictionary.
//
// Constructors for reusable optics live in the subpackages (lens, iso,
// prism, traverse, indexed); call-site helpers live in op; focus offers a
// fluent wrapper; laws offers property-based law suites.
package optic

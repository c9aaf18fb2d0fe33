// Package traverse builds multi-target optics over slices and maps by
// applicative folding: each element visit is combined with the partial
// result through a Lift2 dictionary, starting from Pure of the empty
// container.
//
// - Each: every element of a slice, in slice order
// - Values: every value of a map, keys visited in sorted order
// - Keys: every key of a map
// - Filtered: slice elements matching a predicate; the rest pass through
//
// Run at Const the fold collects tags; at Ident it rebuilds the container;
// at Effect it sequences the embedded computations. Visiting zero targets
// yields Pure of the empty container, i.e. the neutral element.
package traverse

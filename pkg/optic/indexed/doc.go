// Package indexed adds a key or position coordinate to the optic shape:
// an IOptic hands the update function the index alongside each element.
//
// - Discarding: the default instance adapting a plain update function to an
//   index-aware call site by ignoring the index
// - ToPlain: collapse an IOptic to a plain Optic via Discarding
// - Each: slice elements with their positions
// - MapValues: map values with their keys
//
// Plain call sites need no special casing: wrap the function with
// Discarding and every index-aware optic accepts it.
package indexed

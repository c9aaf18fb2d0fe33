// Package prism builds partial optics: the forward direction may report
// that the whole does not decompose into the focus, in which case the
// update is skipped and a fallback whole flows out instead. This is a
// data-level branch, not an error path.
//
// - Make: build a Prism from Match (mo.Either: fallback or focus) and Build
// - Simple: build from an mo.Option match when S==T
// - Instantiate: fix the prism at a container; the fallback branch goes
//   through the container's Pure
package prism

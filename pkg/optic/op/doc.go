// Package op holds the call-site specializations: each helper picks the
// container that grants exactly the capability it needs and instantiates
// the optic there.
//
// - View/ViewIso/Preview: read, via Const (no write capability in scope)
// - Set/Over and the iso/prism variants: write, via Ident
// - Perform/PerformAll: run an embedded computation per visit, via Effect
// - FoldMap/Collect: fold all targets of an instantiated optic, via Const
//   with a Monoid
//
// The lens/iso/prism helpers take the structured relation and specialize it
// internally; the *Optic helpers take an already instantiated optic, which
// is how composed pipelines (lens into traversal and so on) are consumed.
package op

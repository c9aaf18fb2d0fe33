// Package focus provides a minimal fluent wrapper binding a subject value
// to a simple lens path.
//
// - On: start a focus at the subject itself
// - Zoom: compose one lens deeper
// - Get/Set/Over: read or rewrite the current focus
//
// It parallels the free functions in package op but keeps call sites
// readable when a path is walked step by step.
package focus

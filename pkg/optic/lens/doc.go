// Package lens builds single-target optics from a getter and a putter.
//
// - Make: build a Lens from Get/Put
// - Instantiate: fix the lens at a container via a Mapper dictionary
// - Compose: nest lenses
// - Simple: the monomorphic S==T, A==B shape most struct fields use
//
// A Lens holds the defining pair; the call-site helpers in package op pick
// the container (Const to read, Ident to write, Effect to run an action)
// and go through Instantiate, so a lens written once serves every role.
package lens

package focus

import (
	"github.com/ricree/lens/pkg/optic/lens"
	"github.com/ricree/lens/pkg/optic/op"
)

// Focus binds a subject to a lens path into it.
type Focus[S, A any] struct {
	subject S
	path    lens.Simple[S, A]
}

// On starts a focus at the subject itself, with the identity path.
func On[S any](s S) Focus[S, S] {
	return Focus[S, S]{
		subject: s,
		path: lens.Of(
			func(s S) S { return s },
			func(_ S, s S) S { return s },
		),
	}
}

// Zoom composes one lens deeper into the subject.
func Zoom[S, A, X any](f Focus[S, A], next lens.Simple[A, X]) Focus[S, X] {
	return Focus[S, X]{
		subject: f.subject,
		path:    lens.Compose(f.path, next),
	}
}

// Get reads the current focus.
func (f Focus[S, A]) Get() A {
	return op.View(f.path, f.subject)
}

// Set replaces the current focus and returns the rebuilt subject.
func (f Focus[S, A]) Set(a A) S {
	return op.Set(f.path, a, f.subject)
}

// Over rewrites the current focus and returns the rebuilt subject.
func (f Focus[S, A]) Over(fn func(A) A) S {
	return op.Over(f.path, fn, f.subject)
}

// Subject returns the bound value unchanged.
func (f Focus[S, A]) Subject() S {
	return f.subject
}

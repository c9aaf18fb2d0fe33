// Package tuple provides small product types and field lenses over them.
// Updating a field may change its type, so the lenses are polymorphic:
// setting an int into the first slot of a T2[string, bool] yields a
// T2[int, bool].
package tuple

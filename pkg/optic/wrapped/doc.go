// Package wrapped adapts newtype-style wrappers to their underlying
// representations.
//
// - Int64/Text: isos for any named type whose core type is int64 or string
//   (time.Duration, id and name newtypes), via plain Go conversions
// - UUIDBytes: iso between a uuid and its 16-byte array
// - UUIDText: projection from string to uuid; parsing may fail, so this is
//   a prism, not an iso
package wrapped

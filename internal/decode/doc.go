// Package decode drives a caller-supplied Visitor over a parsed
// document. It is the only polymorphic seam of the codec: the
// Deserializer owns the lookahead and dispatches token shapes to the
// Visitor, which owns value construction. No intermediate tree is
// built here.
package decode

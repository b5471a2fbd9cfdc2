// Package token defines the lexical token model for the ycf format.
// Invariants:
//   - Tokens never own text. Token.Span is the only link back to the
//     source; callers re-slice the owning buffer on demand.
//   - Whitespace and comments are ordinary tokens, not trivia. The
//     parser decides whether to skip them, because dotted key paths
//     make adjacency grammatically significant.
//   - Exactly the identifiers `true`, `false` and `null` are
//     reclassified as keywords after lexing; every other identifier
//     stays Ident.
package token

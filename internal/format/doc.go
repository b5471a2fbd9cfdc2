// Package format normalizes document layout working purely on the
// token stream: one entry per line, nested containers indented,
// comments preserved. It never reorders entries and refuses to format
// files that do not parse.
package format

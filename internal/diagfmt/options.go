package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto keeps the path as it was given.
	PathModeAuto PathMode = iota
	PathModeAbsolute
	PathModeBasename
)

// PrettyOpts configures pretty-printing of parse errors.
type PrettyOpts struct {
	Color    bool
	PathMode PathMode
	// Width ограничивает ширину строки контекста, 0 — не ограничено
	Width int
}

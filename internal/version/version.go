package version

import (
	"strings"

	"github.com/fatih/color"
)

// Build metadata for the ycf CLI, overridable at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)
)

// Colored renders the semantic version with each component highlighted;
// falls back to the plain string when the version is not dotted.
func Colored() string {
	rest := Version
	var suffix string
	if i := strings.IndexAny(rest, "-+"); i >= 0 {
		rest, suffix = rest[:i], rest[i:]
	}
	parts := strings.Split(rest, ".")
	if len(parts) != 3 {
		return Version
	}
	return majorColor.Sprint(parts[0]) + "." +
		minorColor.Sprint(parts[1]) + "." +
		patchColor.Sprint(parts[2]) + suffix
}

// Full returns the colored version plus any commit and date metadata.
func Full() string {
	var b strings.Builder
	b.WriteString(Colored())
	if GitCommit != "" {
		b.WriteString(" (")
		b.WriteString(GitCommit)
		b.WriteString(")")
	}
	if BuildDate != "" {
		b.WriteString(" built ")
		b.WriteString(BuildDate)
	}
	return b.String()
}

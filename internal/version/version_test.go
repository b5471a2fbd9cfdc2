package version

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestColored(t *testing.T) {
	// Без цвета сборка должна совпадать с исходной строкой
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	origVersion := Version
	defer func() { Version = origVersion }()

	Version = "1.2.3"
	if got := Colored(); got != "1.2.3" {
		t.Errorf("Colored() = %q, want 1.2.3", got)
	}

	Version = "0.1.0-dev"
	if got := Colored(); got != "0.1.0-dev" {
		t.Errorf("Colored() = %q, want 0.1.0-dev", got)
	}

	// Не тройная версия отдаётся как есть
	Version = "snapshot"
	if got := Colored(); got != "snapshot" {
		t.Errorf("Colored() = %q, want snapshot", got)
	}
}

func TestFull(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	origCommit, origDate := GitCommit, BuildDate
	defer func() { GitCommit, BuildDate = origCommit, origDate }()

	GitCommit = "abc123"
	BuildDate = "2026-01-15T10:30:00Z"

	got := Full()
	if !strings.Contains(got, "(abc123)") {
		t.Errorf("Full() = %q, missing commit", got)
	}
	if !strings.Contains(got, "built 2026-01-15T10:30:00Z") {
		t.Errorf("Full() = %q, missing build date", got)
	}

	GitCommit, BuildDate = "", ""
	if got := Full(); strings.Contains(got, "(") || strings.Contains(got, "built") {
		t.Errorf("Full() with empty metadata = %q", got)
	}
}

// Package snapshot provides assertions over rendered TUI output. Output is
// compared as plain text with ANSI styling stripped.
package snapshot

import (
	"regexp"
	"strings"
	"testing"

	"github.com/muesli/ansi"
)

var (
	ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)
	oscRegex  = regexp.MustCompile(`\x1b\]8;;[^\x1b]*\x1b\\`)
)

// Snap provides snapshot assertions for one test
type Snap struct {
	t *testing.T
}

// New creates a new Snap instance for the given test
func New(t *testing.T) *Snap {
	return &Snap{t: t}
}

// AssertContains checks that actual output contains the expected substring
func (s *Snap) AssertContains(actual, substr string) {
	s.t.Helper()
	normalized := normalizeOutput(actual)
	if !strings.Contains(normalized, substr) {
		s.t.Errorf("Output does not contain expected substring.\nExpected to contain: %q\nActual:\n%s", substr, normalized)
	}
}

// AssertNotContains checks that actual output does NOT contain the substring
func (s *Snap) AssertNotContains(actual, substr string) {
	s.t.Helper()
	normalized := normalizeOutput(actual)
	if strings.Contains(normalized, substr) {
		s.t.Errorf("Output unexpectedly contains substring: %q\nActual:\n%s", substr, normalized)
	}
}

// AssertSize checks that every line of actual is exactly width cells wide
// and that there are exactly height lines.
func (s *Snap) AssertSize(actual string, width, height int) {
	s.t.Helper()
	lines := strings.Split(actual, "\n")
	if len(lines) != height {
		s.t.Errorf("expected %d lines, got %d\nActual:\n%s", height, len(lines), normalizeOutput(actual))
	}
	for i, line := range lines {
		if w := ansi.PrintableRuneWidth(line); w != width {
			s.t.Errorf("line %d is %d cells wide, expected %d: %q", i, w, width, StripANSI(line))
		}
	}
}

// AssertRowContains checks that line y of actual contains substr.
func (s *Snap) AssertRowContains(actual string, y int, substr string) {
	s.t.Helper()
	row := Row(actual, y)
	if !strings.Contains(row, substr) {
		s.t.Errorf("row %d does not contain %q: %q", y, substr, row)
	}
}

// normalizeOutput strips ANSI codes and normalizes whitespace for comparison
func normalizeOutput(s string) string {
	s = StripANSI(s)

	// Normalize line endings
	s = strings.ReplaceAll(s, "\r\n", "\n")

	// Remove trailing whitespace from each line
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	return strings.Join(lines, "\n")
}

// StripANSI removes all ANSI escape codes from a string
func StripANSI(s string) string {
	s = ansiRegex.ReplaceAllString(s, "")
	return oscRegex.ReplaceAllString(s, "")
}

// Lines returns the line count of the rendered output (useful for height tests)
func Lines(s string) int {
	return len(strings.Split(StripANSI(s), "\n"))
}

// Width returns the maximum line width of the rendered output in cells
func Width(s string) int {
	maxWidth := 0
	for _, line := range strings.Split(s, "\n") {
		if w := ansi.PrintableRuneWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

// Row returns line y of the output without styling, or "" when out of range.
func Row(s string, y int) string {
	lines := strings.Split(StripANSI(s), "\n")
	if y < 0 || y >= len(lines) {
		return ""
	}
	return lines[y]
}

// Cell returns the rune drawn at column x of line y, or 0 when out of range.
func Cell(s string, x, y int) rune {
	col := 0
	for _, r := range Row(s, y) {
		if col == x {
			return r
		}
		col += ansi.PrintableRuneWidth(string(r))
		if col > x {
			return 0
		}
	}
	return 0
}

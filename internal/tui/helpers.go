package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ────────────────────────────────────────────────────────────
// String helpers
// ────────────────────────────────────────────────────────────

// clip cuts s to at most maxLen runes. Text past the edge is dropped,
// not wrapped.
func clip(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}

// padRight fills s with spaces up to width cells.
func padRight(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// fitLines lays text out in a width x height cell grid: extra lines are
// dropped, short lines and missing lines are padded with spaces.
func fitLines(text string, width, height int) []string {
	if height <= 0 {
		return nil
	}
	src := strings.Split(text, "\n")
	lines := make([]string, height)
	for i := range lines {
		var line string
		if i < len(src) {
			line = clip(src[i], width)
		}
		lines[i] = padRight(line, width)
	}
	return lines
}

// blank returns a width x height block of spaces.
func blank(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	return strings.Join(fitLines("", width, height), "\n")
}

// clamp restricts val to [lo, hi].
func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

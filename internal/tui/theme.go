package tui

import "github.com/charmbracelet/lipgloss"

// ────────────────────────────────────────────────────────────
// Color Palette
// ────────────────────────────────────────────────────────────
//
// Header and footer keep the terminal's default colors; only page
// content is forced to white.

var colorWhite = lipgloss.Color("15")

// ────────────────────────────────────────────────────────────
// Component Styles
// ────────────────────────────────────────────────────────────

// Frame
var frameStyle = lipgloss.NewStyle().Margin(1)

// Header and footer chrome
var (
	chromeStyle = lipgloss.NewStyle()

	titleStyle = lipgloss.NewStyle()
)

// Page content
var contentStyle = lipgloss.NewStyle().
	Foreground(colorWhite)

package tui

import (
	"fmt"
	"strings"

	"github.com/Mr-Dark-debug/termwallet/internal/navigation"
	"github.com/charmbracelet/lipgloss"
)

const (
	appTitle     = "terminal wallet"
	headerHeight = 3
	footerHeight = 3
	frameMargin  = 1
)

// layout holds the row count of each region inside the margin.
type layout struct {
	width   int
	header  int
	content int
	footer  int
}

// computeLayout splits a width x height screen into header, content and
// footer. Fixed regions shrink only when the screen is too short to hold
// them; content never goes negative.
func computeLayout(width, height int) layout {
	innerW := max(width-2*frameMargin, 0)
	innerH := max(height-2*frameMargin, 0)

	header := clamp(headerHeight, 0, innerH)
	footer := clamp(footerHeight, 0, innerH-header)

	return layout{
		width:   innerW,
		header:  header,
		content: innerH - header - footer,
		footer:  footer,
	}
}

// renderFrame draws the full screen for page.
//
//	 ┌terminal wallet──────────┐
//	 │                         │
//	 └─────────────────────────┘
//	 ┌─────────────────────────┐
//	 │solana at your fingertips│
//	 │                         │
//	 └─────────────────────────┘
//	 ┌─────────────────────────┐
//	 │press q to quit          │
//	 └─────────────────────────┘
func renderFrame(page navigation.Page, width, height int) string {
	l := computeLayout(width, height)
	if l.width == 0 || l.header+l.content+l.footer == 0 {
		return blank(width, height)
	}

	var regions []string
	for _, r := range []string{
		renderHeader(l.width, l.header),
		renderContent(page, l.width, l.content),
		renderFooter(l.width, l.footer),
	} {
		if r != "" {
			regions = append(regions, r)
		}
	}

	return frameStyle.Render(strings.Join(regions, "\n"))
}

func renderHeader(width, height int) string {
	return renderBox(appTitle, "", width, height, chromeStyle, chromeStyle)
}

func renderContent(page navigation.Page, width, height int) string {
	return renderBox("", page.Content(), width, height, contentStyle, contentStyle)
}

func renderFooter(width, height int) string {
	h := keys.Quit.Help()
	return renderBox("", fmt.Sprintf("press %s to %s", h.Key, h.Desc), width, height, chromeStyle, chromeStyle)
}

// renderBox draws body inside a normal border with title set into the top
// edge. The result is exactly width x height cells; body is clipped.
func renderBox(title, body string, width, height int, edge, text lipgloss.Style) string {
	if width < 2 || height < 2 {
		return blank(width, height)
	}

	b := lipgloss.NormalBorder()
	innerW := width - 2

	label := clip(title, innerW)
	top := edge.Render(b.TopLeft) +
		titleStyle.Render(label) +
		edge.Render(strings.Repeat(b.Top, innerW-lipgloss.Width(label))+b.TopRight)

	lines := make([]string, 0, height)
	lines = append(lines, top)
	for _, line := range fitLines(body, innerW, height-2) {
		lines = append(lines, edge.Render(b.Left)+text.Render(line)+edge.Render(b.Right))
	}
	lines = append(lines, edge.Render(b.BottomLeft+strings.Repeat(b.Bottom, innerW)+b.BottomRight))

	return strings.Join(lines, "\n")
}

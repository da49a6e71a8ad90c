// Package navigation holds the only state the wallet shell keeps: which
// page is on screen.
package navigation

import (
	"fmt"
	"strings"
)

// Page is one of the screens the shell can show.
type Page int

const (
	Welcome Page = iota
	Home
)

// Pages lists every page in declaration order.
var Pages = []Page{Welcome, Home}

func (p Page) String() string {
	switch p {
	case Welcome:
		return "welcome"
	case Home:
		return "home"
	default:
		return fmt.Sprintf("page(%d)", int(p))
	}
}

// Valid reports whether p is a declared page.
func (p Page) Valid() bool {
	return p == Welcome || p == Home
}

// Content returns the body text rendered for the page.
func (p Page) Content() string {
	switch p {
	case Home:
		return "welcome home\nyour wallets are here"
	default:
		return "solana at your fingertips\n\nPress h to go home"
	}
}

// ParsePage resolves a page by name, ignoring case and surrounding space.
func ParsePage(name string) (Page, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "welcome":
		return Welcome, nil
	case "home":
		return Home, nil
	default:
		return Welcome, fmt.Errorf("unknown page %q (want welcome or home)", name)
	}
}

// Command termwallet shows a Solana wallet shell in the terminal.
//
// Usage:
//
//	termwallet [flags]
//	termwallet version
//
// Flags:
//
//	--config     Path to config file (default: ~/.config/termwallet/config.yml)
//	--log-file   Write logs to this file (default: no logging)
//	--log-level  debug, info, warn or error (default: info)
//
// Keys: h home, w welcome, q quit.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Mr-Dark-debug/termwallet/internal/terminal"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		if errors.Is(err, terminal.ErrNotTerminal) {
			fmt.Fprintln(os.Stderr, "Error: termwallet must be run in an interactive terminal")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

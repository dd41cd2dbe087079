// SPDX-License-Identifier: MIT

// Command hanzisquare finds squares of Chinese characters that share
// components along rows and columns.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/hanzisquare/internal/cmd"
)

func main() {
	// Interrupting a long solve ends the current round; the best square
	// found so far is still printed.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "hanzisquare:", err)
		stop()
		os.Exit(1)
	}
}

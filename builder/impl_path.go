// SPDX-License-Identifier: MIT
// Package: hanzisquare/builder
//
// impl_path.go - Path(n): a chain of n noise components.
//
// Contract:
//   • n ≥ 2 (else ErrTooSmall).
//   • Emits (N0,N1), (N1,N2), … (N(n-2),N(n-1)).
//   • A path has no 4-cycle, so its largest square has side 1.
//
// Complexity: O(n).

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor for a chain of n components.
func Path(n int) Constructor {
	return func(tb *TableBuilder, cfg builderConfig) error {
		if n < minPathNodes {
			return builderErrorf(methodPath, fmt.Sprintf("n=%d (must be ≥ %d)", n, minPathNodes), ErrTooSmall)
		}
		for i := 0; i+1 < n; i++ {
			a := fmt.Sprintf("%s%d", cfg.noisePrefix, i)
			b := fmt.Sprintf("%s%d", cfg.noisePrefix, i+1)
			if err := tb.Add(cfg.charFn(a, b), a, b); err != nil {
				return builderErrorf(methodPath, "Add", err)
			}
		}

		return nil
	}
}

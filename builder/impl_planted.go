// SPDX-License-Identifier: MIT
// Package: hanzisquare/builder
//
// impl_planted.go - PlantedSquare(k): a complete k×k square.
//
// Contract:
//   • k ≥ 1 (else ErrTooSmall).
//   • Rows "<row><i>", columns "<col><j>", i,j = 0..k-1.
//   • Emits one character per (row_i, col_j), labelled cfg.charFn(row_i, col_j),
//     in row-major order.
//
// Complexity: O(k²) time and space.

package builder

import "fmt"

const (
	methodPlantedSquare = "PlantedSquare"
	minSquareSide       = 1
)

// PlantedSquare returns a Constructor for a complete k×k square.
func PlantedSquare(k int) Constructor {
	return func(tb *TableBuilder, cfg builderConfig) error {
		if k < minSquareSide {
			return builderErrorf(methodPlantedSquare, fmt.Sprintf("k=%d (must be ≥ %d)", k, minSquareSide), ErrTooSmall)
		}
		for i := 0; i < k; i++ {
			row := fmt.Sprintf("%s%d", cfg.rowPrefix, i)
			for j := 0; j < k; j++ {
				col := fmt.Sprintf("%s%d", cfg.colPrefix, j)
				if err := tb.Add(cfg.charFn(row, col), row, col); err != nil {
					return builderErrorf(methodPlantedSquare, "Add", err)
				}
			}
		}

		return nil
	}
}

// PlantedRows returns the row labels PlantedSquare(k) emits under bopts.
func PlantedRows(k int, bopts ...BuilderOption) []string {
	cfg := newBuilderConfig(bopts...)

	return labels(cfg.rowPrefix, k)
}

// PlantedCols returns the column labels PlantedSquare(k) emits under bopts.
func PlantedCols(k int, bopts ...BuilderOption) []string {
	cfg := newBuilderConfig(bopts...)

	return labels(cfg.colPrefix, k)
}

func labels(prefix string, k int) []string {
	out := make([]string, 0, k)
	for i := 0; i < k; i++ {
		out = append(out, fmt.Sprintf("%s%d", prefix, i))
	}

	return out
}

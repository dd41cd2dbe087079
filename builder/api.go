// SPDX-License-Identifier: MIT
// Package: hanzisquare/builder
//
// api.go - the BuildTable orchestrator and the TableBuilder sink.
//
// Design contract:
//   - One orchestrator: BuildTable(bopts, cons...). Resolves cfg, runs cons in order.
//   - Determinism: same options, seed and constructor order ⇒ identical tables.
//   - Constructors never panic; they return wrapped sentinels.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hanzisquare/decomp"
)

// Constructor appends decompositions to tb using the resolved config.
type Constructor func(tb *TableBuilder, cfg builderConfig) error

// TableBuilder accumulates entries in emission order and rejects duplicate
// characters.
type TableBuilder struct {
	entries decomp.Table
	chars   map[string]struct{}
}

// Add appends char → (a, b).
func (tb *TableBuilder) Add(char, a, b string) error {
	if _, dup := tb.chars[char]; dup {
		return fmt.Errorf("%q: %w", char, ErrDuplicateChar)
	}
	tb.chars[char] = struct{}{}
	tb.entries = append(tb.entries, decomp.Entry{Char: char, Pair: decomp.Pair{a, b}})

	return nil
}

// Len returns the number of entries so far.
func (tb *TableBuilder) Len() int { return len(tb.entries) }

// BuildTable resolves the builder configuration from bopts and applies every
// constructor in order. The first constructor error is returned wrapped as
// "BuildTable: %w".
func BuildTable(bopts []BuilderOption, cons ...Constructor) (decomp.Table, error) {
	cfg := newBuilderConfig(bopts...)
	tb := &TableBuilder{chars: make(map[string]struct{})}
	for _, c := range cons {
		if err := c(tb, cfg); err != nil {
			return nil, fmt.Errorf("BuildTable: %w", err)
		}
	}

	return tb.entries, nil
}

// SPDX-License-Identifier: MIT
// Package: hanzisquare/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng         = nil    (pure/deterministic unless seeded)
//   • row/col     = "R" / "C"
//   • noise       = "N"
//   • charFn      = "<prefix>字<i>_<j>" style synthetic labels

package builder

import (
	"fmt"
	"math/rand"
)

type builderConfig struct {
	// RNG for stochastic constructors; nil means no randomness.
	rng *rand.Rand

	// Component prefixes for planted rows/columns and noise components.
	rowPrefix   string
	colPrefix   string
	noisePrefix string

	// charFn names the character composed by components a and b.
	charFn func(a, b string) string
}

const (
	defaultRowPrefix   = "R"
	defaultColPrefix   = "C"
	defaultNoisePrefix = "N"
)

// defaultCharFn labels the pair (a, b) as "字(a+b)".
func defaultCharFn(a, b string) string { return fmt.Sprintf("字(%s+%s)", a, b) }

// newBuilderConfig applies options in order over the defaults; empty
// prefixes fall back to the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rowPrefix:   defaultRowPrefix,
		colPrefix:   defaultColPrefix,
		noisePrefix: defaultNoisePrefix,
		charFn:      defaultCharFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rowPrefix == "" {
		cfg.rowPrefix = defaultRowPrefix
	}
	if cfg.colPrefix == "" {
		cfg.colPrefix = defaultColPrefix
	}
	if cfg.noisePrefix == "" {
		cfg.noisePrefix = defaultNoisePrefix
	}

	return cfg
}

// SPDX-License-Identifier: MIT
// Package: hanzisquare/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs;
//     constructors themselves return sentinel errors.
//   • Determinism is explicit: randomness only through WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes the resolved builderConfig.
type BuilderOption func(*builderConfig)

// WithSeed creates a seeded *rand.Rand (reproducible fixtures).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithPrefixes sets the component prefixes of planted rows, planted columns
// and noise components. Empty values keep the defaults.
func WithPrefixes(row, col, noise string) BuilderOption {
	return func(c *builderConfig) {
		c.rowPrefix, c.colPrefix, c.noisePrefix = row, col, noise
	}
}

// WithCharScheme overrides the character label of a component pair.
// Panics on nil.
func WithCharScheme(fn func(a, b string) string) BuilderOption {
	if fn == nil {
		panic("builder: WithCharScheme(nil)")
	}
	return func(c *builderConfig) { c.charFn = fn }
}

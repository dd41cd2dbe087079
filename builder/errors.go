// SPDX-License-Identifier: MIT
// Package: hanzisquare/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach method context with %w (see builderErrorf).
//   • Constructors never panic; option constructors (WithX) may.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooSmall indicates a size parameter below the constructor's minimum.
var ErrTooSmall = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic constructor without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrDuplicateChar indicates two constructors emitted the same character.
var ErrDuplicateChar = errors.New("builder: duplicate character")

// builderErrorf prefixes err with the method name: "<method>: <detail>: <err>".
func builderErrorf(method, detail string, err error) error {
	return fmt.Errorf("%s: %s: %w", method, detail, err)
}

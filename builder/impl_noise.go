// SPDX-License-Identifier: MIT
// Package: hanzisquare/builder
//
// impl_noise.go - RandomNoise(m, pool): m random decompositions.
//
// Contract:
//   • m ≥ 0, pool ≥ 2 (else ErrTooSmall); requires cfg.rng (else ErrNeedRandSource).
//   • Components are drawn from "<noise>0".."<noise><pool-1>"; a pair is
//     never a self pair, and pairs already emitted (in either order) are
//     redrawn, so every noise character owns both of its arcs.
//   • m is capped at the number of distinct unordered pairs.
//
// Determinism: identical for the same seed and emission order.

package builder

import "fmt"

const (
	methodRandomNoise = "RandomNoise"
	minNoisePool      = 2
)

// RandomNoise returns a Constructor emitting m random decompositions.
func RandomNoise(m, pool int) Constructor {
	return func(tb *TableBuilder, cfg builderConfig) error {
		if m < 0 || pool < minNoisePool {
			return builderErrorf(methodRandomNoise, fmt.Sprintf("m=%d pool=%d", m, pool), ErrTooSmall)
		}
		if cfg.rng == nil {
			return builderErrorf(methodRandomNoise, "rng", ErrNeedRandSource)
		}
		if maxPairs := pool * (pool - 1) / 2; m > maxPairs {
			m = maxPairs
		}

		type pair struct{ a, b int }
		used := make(map[pair]bool, m)
		for emitted := 0; emitted < m; {
			a, b := cfg.rng.Intn(pool), cfg.rng.Intn(pool)
			if a == b {
				continue
			}
			key := pair{min(a, b), max(a, b)}
			if used[key] {
				continue
			}
			used[key] = true

			na := fmt.Sprintf("%s%d", cfg.noisePrefix, a)
			nb := fmt.Sprintf("%s%d", cfg.noisePrefix, b)
			if err := tb.Add(cfg.charFn(na, nb), na, nb); err != nil {
				return builderErrorf(methodRandomNoise, "Add", err)
			}
			emitted++
		}

		return nil
	}
}

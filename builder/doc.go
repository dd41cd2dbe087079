// SPDX-License-Identifier: MIT

// Package builder synthesises decomposition tables with known structure.
//
// Real decomposition tables are large and their optimal squares unknown, so
// tests and benchmarks use synthetic ones instead:
//
//	PlantedSquare(k)       a complete k×k square (optimum ≥ k)
//	Path(n)                a chain of components (optimum exactly 1)
//	RandomNoise(m, pool)   m random decompositions over a component pool
//
// Constructors compose through BuildTable and are fully deterministic for a
// given seed:
//
//	t, err := builder.BuildTable(
//		[]builder.BuilderOption{builder.WithSeed(7)},
//		builder.PlantedSquare(3),
//		builder.RandomNoise(10, 8),
//	)
package builder

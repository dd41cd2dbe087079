// SPDX-License-Identifier: MIT

package square

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hanzisquare/graph"
)

// Enumerate runs up to iterations sequential searches. Round k cuts off the
// squares of rounds 0..k-1 (and their mirrors), so the results are distinct.
// The loop stops early when a round finds no square or ctx is done.
//
// Rounds are strictly sequential: each model depends on every earlier answer.
func Enumerate(ctx context.Context, g *graph.Graph, iterations int, opts ...Option) ([]Result, error) {
	var (
		results = make([]Result, 0, iterations)
		found   []Solution
	)
	for round := 0; round < iterations; round++ {
		roundOpts := make([]Option, 0, len(opts)+1)
		roundOpts = append(roundOpts, opts...)
		roundOpts = append(roundOpts, WithCutoffs(found...))

		m, err := New(g, roundOpts...)
		if err != nil {
			return results, err
		}
		res, err := m.Solve(ctx)
		if err != nil {
			return results, fmt.Errorf("round %d: %w", round, err)
		}
		results = append(results, res)
		m.opts.Logger.Info("enumeration round", "round", round, "size", len(res.Rows), "status", res.Status.String())

		if res.Empty() || ctx.Err() != nil {
			break
		}
		found = append(found, res.Solution)
	}

	return results, nil
}

// SPDX-License-Identifier: MIT

package graph

// Arc is an ordered component pair. Every arc of a Graph is labelled by the
// character that decomposes into exactly From followed by To.
type Arc struct {
	From string
	To   string
}

// Reverse returns the arc with its endpoints swapped.
func (a Arc) Reverse() Arc { return Arc{From: a.To, To: a.From} }

// Option configures Build.
type Option func(*config)

type config struct {
	clearNodes bool
}

// WithClearNodes removes, after construction, every character that is itself
// a component from the character index. Arcs are untouched; only the
// per-character bookkeeping shrinks. This trades fidelity (a radical may well
// be composable) for a smaller model.
func WithClearNodes(enabled bool) Option {
	return func(c *config) { c.clearNodes = enabled }
}

// Graph is the decomposition graph: components as nodes, arcs labelled by
// the characters they compose, and a character → arcs index.
//
// A Graph is immutable after Build and safe for concurrent readers.
type Graph struct {
	// nodes in first-seen order; nodeIdx maps a node back to its position.
	nodes   []string
	nodeIdx map[string]int

	// arcs maps an ordered pair to its label; arcOrder keeps registration order.
	arcs     map[Arc]string
	arcOrder []Arc

	// chars in first-registration order; charArcs holds the arcs each one won.
	chars    []string
	charArcs map[string][]Arc

	// forward[i] lists j for every arc (i,j); backward[j] lists i.
	forward  map[string][]string
	backward map[string][]string
}

// SPDX-License-Identifier: MIT

package graph

// Nodes returns the components in first-seen order. The position of a node
// in this slice is its stable index.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// NodeCount returns the number of components.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// HasNode reports whether n is a component of the graph.
func (g *Graph) HasNode(n string) bool {
	_, ok := g.nodeIdx[n]

	return ok
}

// NodeIndex returns the stable index of n, or -1 when n is unknown.
func (g *Graph) NodeIndex(n string) int {
	if i, ok := g.nodeIdx[n]; ok {
		return i
	}

	return -1
}

// Label returns the character composed by the ordered pair (from, to).
func (g *Graph) Label(from, to string) (string, bool) {
	c, ok := g.arcs[Arc{From: from, To: to}]

	return c, ok
}

// HasArc reports whether (from, to) is an arc.
func (g *Graph) HasArc(from, to string) bool {
	_, ok := g.arcs[Arc{From: from, To: to}]

	return ok
}

// Arcs returns every arc in registration order.
func (g *Graph) Arcs() []Arc {
	out := make([]Arc, len(g.arcOrder))
	copy(out, g.arcOrder)

	return out
}

// ArcCount returns the number of arcs.
func (g *Graph) ArcCount() int { return len(g.arcOrder) }

// Chars returns the indexed characters in registration order.
func (g *Graph) Chars() []string {
	out := make([]string, len(g.chars))
	copy(out, g.chars)

	return out
}

// CharArcs returns the arcs owned by char; nil when char is not indexed.
func (g *Graph) CharArcs(char string) []Arc {
	arcs, ok := g.charArcs[char]
	if !ok {
		return nil
	}
	out := make([]Arc, len(arcs))
	copy(out, arcs)

	return out
}

// Forward returns every j such that (n, j) is an arc.
func (g *Graph) Forward(n string) []string {
	return append([]string(nil), g.forward[n]...)
}

// Backward returns every i such that (i, n) is an arc.
func (g *Graph) Backward(n string) []string {
	return append([]string(nil), g.backward[n]...)
}

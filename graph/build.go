// SPDX-License-Identifier: MIT

package graph

import "github.com/katalvlaran/hanzisquare/decomp"

// Build constructs the decomposition graph of t.
//
// For every entry char → (a, b) the arcs (a, b) and (b, a) are registered
// with label char, because a character may be read row-first or column-first
// in a square. An ordered pair that is already labelled keeps its first
// label; the later character simply does not own that arc. A self pair (a, a)
// yields a single arc.
//
// Complexity: O(|t|) time and space.
func Build(t decomp.Table, opts ...Option) *Graph {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph{
		nodes:    make([]string, 0, len(t)),
		nodeIdx:  make(map[string]int, len(t)),
		arcs:     make(map[Arc]string, 2*len(t)),
		arcOrder: make([]Arc, 0, 2*len(t)),
		charArcs: make(map[string][]Arc, len(t)),
		forward:  make(map[string][]string),
		backward: make(map[string][]string),
	}

	for _, e := range t {
		a, b := e.Pair[0], e.Pair[1]
		g.addNode(a)
		g.addNode(b)
		for _, arc := range [2]Arc{{From: a, To: b}, {From: b, To: a}} {
			if _, taken := g.arcs[arc]; taken {
				continue
			}
			g.addArc(arc, e.Char)
		}
	}

	if cfg.clearNodes {
		g.clearNodes()
	}

	return g
}

func (g *Graph) addNode(n string) {
	if _, ok := g.nodeIdx[n]; ok {
		return
	}
	g.nodeIdx[n] = len(g.nodes)
	g.nodes = append(g.nodes, n)
}

func (g *Graph) addArc(arc Arc, char string) {
	g.arcs[arc] = char
	g.arcOrder = append(g.arcOrder, arc)
	if _, ok := g.charArcs[char]; !ok {
		g.chars = append(g.chars, char)
	}
	g.charArcs[char] = append(g.charArcs[char], arc)
	g.forward[arc.From] = append(g.forward[arc.From], arc.To)
	g.backward[arc.To] = append(g.backward[arc.To], arc.From)
}

// clearNodes drops radicals from the character index.
func (g *Graph) clearNodes() {
	kept := g.chars[:0]
	for _, c := range g.chars {
		if _, isNode := g.nodeIdx[c]; isNode {
			delete(g.charArcs, c)
			continue
		}
		kept = append(kept, c)
	}
	g.chars = kept
}

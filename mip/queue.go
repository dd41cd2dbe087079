// SPDX-License-Identifier: MIT

package mip

import "container/heap"

// bbNode is an open subproblem: tightened bounds plus the relaxation value
// of its parent, which bounds every solution below it.
type bbNode struct {
	lb, ub []float64
	bound  float64 // minimisation form
	depth  int
	seq    int
}

// nodeQueue orders open nodes best-bound first; ties go to the deeper node,
// then to the earlier one, which keeps runs reproducible.
type nodeQueue []*bbNode

func (q nodeQueue) Len() int { return len(q) }
func (q nodeQueue) Less(i, j int) bool {
	if q[i].bound != q[j].bound {
		return q[i].bound < q[j].bound
	}
	if q[i].depth != q[j].depth {
		return q[i].depth > q[j].depth
	}

	return q[i].seq < q[j].seq
}
func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *nodeQueue) Push(x any)  { *q = append(*q, x.(*bbNode)) }
func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]

	return it
}

func (q *nodeQueue) push(n *bbNode) { heap.Push(q, n) }
func (q *nodeQueue) pop() *bbNode  { return heap.Pop(q).(*bbNode) }

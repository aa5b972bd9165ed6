// SPDX-License-Identifier: MIT

package shortestpath

import (
	"fmt"

	"github.com/katalvlaran/pathboard/graphstore"
)

// Run computes shortest distances from source to every node of m.
//
// Steps:
//  1. Validate source against m.Order().
//  2. cost[source] = 0, every other cost = NoEdge, parents = ParentNone.
//  3. Repeatedly finalise the lowest-cost unvisited node (lowest index on
//     ties); stop early once that cost is NoEdge.
//  4. Relax each still-unvisited neighbour with a strict "<".
//
// The result is computed in full before Run returns.
func Run(m Matrix, source graphstore.NodeIndex) (*Result, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil matrix", ErrInvalidSource)
	}
	n := m.Order()
	if source < 0 || int(source) >= n {
		return nil, fmt.Errorf("%w: %d (nodes: %d)", ErrInvalidSource, source, n)
	}

	r := &runner{m: m, n: n}
	r.init(source)
	r.process()

	return &Result{
		Source: source,
		Cost:   r.cost,
		Parent: r.parent,
		Order:  r.order,
	}, nil
}

// runner holds the mutable state of one query.
type runner struct {
	m       Matrix
	n       int
	cost    []graphstore.Weight
	parent  []graphstore.NodeIndex
	visited []bool
	order   []graphstore.NodeIndex
}

func (r *runner) init(source graphstore.NodeIndex) {
	r.cost = make([]graphstore.Weight, r.n)
	r.parent = make([]graphstore.NodeIndex, r.n)
	r.visited = make([]bool, r.n)
	r.order = make([]graphstore.NodeIndex, 0, r.n)
	for v := range r.cost {
		r.cost[v] = graphstore.NoEdge
		r.parent[v] = ParentNone
	}
	r.cost[source] = 0
	r.parent[source] = ParentSource
}

// process finalises one node per iteration until none is reachable.
func (r *runner) process() {
	for len(r.order) < r.n {
		u, ok := r.nextMin()
		if !ok {
			return // remaining nodes are unreachable
		}
		r.visited[u] = true
		r.order = append(r.order, u)
		r.relax(u)
	}
}

// nextMin scans unvisited nodes in ascending order; the first strict
// minimum wins, so equal costs resolve to the lowest index.
func (r *runner) nextMin() (graphstore.NodeIndex, bool) {
	best := graphstore.NoEdge
	found := graphstore.NodeIndex(-1)
	for v := 0; v < r.n; v++ {
		if r.visited[v] {
			continue
		}
		if r.cost[v] < best {
			best = r.cost[v]
			found = graphstore.NodeIndex(v)
		}
	}

	return found, best.Finite()
}

func (r *runner) relax(u graphstore.NodeIndex) {
	base := r.cost[u]
	var v graphstore.NodeIndex
	for v = 0; int(v) < r.n; v++ {
		if r.visited[v] {
			continue
		}
		w := r.m.WeightOf(u, v)
		if !w.Finite() {
			continue
		}
		// saturate instead of overflowing past NoEdge
		if w >= graphstore.NoEdge-base {
			continue
		}
		if alt := base + w; alt < r.cost[v] {
			r.cost[v] = alt
			r.parent[v] = u
		}
	}
}

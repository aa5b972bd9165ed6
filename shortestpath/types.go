// SPDX-License-Identifier: MIT

package shortestpath

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathboard/graphstore"
)

// Sentinel errors returned by Run and Result helpers.
var (
	// ErrInvalidSource indicates the source is not a node of the matrix.
	ErrInvalidSource = errors.New("shortestpath: invalid source node")

	// ErrUnreachable indicates Path was asked for a node with no path.
	ErrUnreachable = errors.New("shortestpath: node unreachable from source")
)

// Parent markers stored in Result.Parent.
const (
	// ParentNone marks a node the search never reached.
	ParentNone graphstore.NodeIndex = -1

	// ParentSource marks the query source itself.
	ParentSource graphstore.NodeIndex = -2
)

// Matrix is the read-only view the engine needs. graphstore.Snapshot and
// graphstore.Store both satisfy it.
type Matrix interface {
	// Order returns the number of nodes n.
	Order() int

	// WeightOf returns the edge weight or graphstore.NoEdge.
	WeightOf(i, j graphstore.NodeIndex) graphstore.Weight
}

// Result is a complete single-source answer.
type Result struct {
	// Source is the query origin.
	Source graphstore.NodeIndex

	// Cost[v] is the shortest distance to v, graphstore.NoEdge if unreachable.
	Cost []graphstore.Weight

	// Parent[v] is the predecessor of v, ParentSource or ParentNone.
	Parent []graphstore.NodeIndex

	// Order lists nodes in the order they were finalised.
	Order []graphstore.NodeIndex
}

// Len returns the number of nodes covered by r.
func (r *Result) Len() int { return len(r.Cost) }

// Reachable reports whether v has a path from the source.
func (r *Result) Reachable(v graphstore.NodeIndex) bool {
	return v >= 0 && int(v) < len(r.Parent) && r.Parent[v] != ParentNone
}

// Path returns the node sequence source → … → v.
// The parent chain is collected child-first and then reversed.
func (r *Result) Path(v graphstore.NodeIndex) ([]graphstore.NodeIndex, error) {
	if v < 0 || int(v) >= len(r.Parent) {
		return nil, fmt.Errorf("%w: %d", graphstore.ErrNodeNotFound, v)
	}
	if r.Parent[v] == ParentNone {
		return nil, fmt.Errorf("%w: %d", ErrUnreachable, v)
	}

	path := []graphstore.NodeIndex{}
	for cur := v; cur != ParentSource; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

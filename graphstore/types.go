// SPDX-License-Identifier: MIT

package graphstore

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by Store and the weight helpers.
var (
	// ErrNodeNotFound indicates a node index outside [0, n).
	ErrNodeNotFound = errors.New("graphstore: node not found")

	// ErrInvalidWeight indicates a weight that is not a finite non-negative integer.
	ErrInvalidWeight = errors.New("graphstore: weight must be a non-negative integer")

	// ErrDuplicateEdge indicates an edge already connects the requested pair.
	ErrDuplicateEdge = errors.New("graphstore: edge already exists")

	// ErrNoSuchEdge indicates a reweight of a pair that is not connected.
	ErrNoSuchEdge = errors.New("graphstore: no such edge")

	// ErrBadDivisor indicates a non-positive or non-finite weight divisor.
	ErrBadDivisor = errors.New("graphstore: weight divisor must be positive")
)

// NodeIndex identifies a node by its creation order.
type NodeIndex int

// Weight is an edge weight. Finite weights are non-negative.
type Weight int64

// NoEdge marks an absent edge and doubles as "infinite distance" for
// shortest-path costs. It is never a valid stored weight.
const NoEdge Weight = math.MaxInt64

// Finite reports whether w is a real weight rather than NoEdge.
func (w Weight) Finite() bool { return w != NoEdge }

// String renders NoEdge as "inf".
func (w Weight) String() string {
	if w == NoEdge {
		return "inf"
	}

	return fmt.Sprintf("%d", int64(w))
}

// Point is an on-screen position. The store never keeps positions; they
// only feed DerivedWeight.
type Point struct {
	X, Y float64
}

// Edge is an undirected connection with A < B.
type Edge struct {
	A, B   NodeIndex
	Weight Weight
}

// EdgeKey returns the canonical {min, max} ordering of an unordered pair.
func EdgeKey(i, j NodeIndex) (NodeIndex, NodeIndex) {
	if i > j {
		return j, i
	}

	return i, j
}

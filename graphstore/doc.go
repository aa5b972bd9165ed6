// SPDX-License-Identifier: MIT

// Package graphstore owns the authoritative state of a pathboard drawing:
// the set of placed nodes and the symmetric weight matrix between them.
//
// Model:
//
//   - Nodes are identified by NodeIndex, assigned sequentially from 0 by
//     AddNode and never reused until Reset.
//   - Edges are undirected. Their weights live in a dense n×n matrix with a
//     zero diagonal; absent edges hold the NoEdge sentinel (math.MaxInt64).
//   - The matrix is built lazily. AddNode only bumps the node count;
//     EnsureMatrix (called when edge authoring is switched on and before
//     every edge insertion) rebuilds the matrix when its dimension no longer
//     matches the node count, discarding whatever it held before.
//
// Errors:
//
//   - ErrNodeNotFound   an index outside [0, n).
//   - ErrInvalidWeight  a negative, non-finite, fractional or non-numeric weight.
//   - ErrDuplicateEdge  AddEdge on a pair that is already connected.
//   - ErrNoSuchEdge     SetWeight on a pair that is not connected.
//
// Every failing operation leaves the store untouched.
//
// Thread safety:
//
//	Store guards its state with a sync.RWMutex. Snapshot returns an
//	immutable copy so long-running readers never hold the lock.
//
// Complexity:
//
//   - AddNode, AddEdge, SetWeight, WeightOf: O(1) (AddEdge O(n²) when it
//     triggers a rebuild).
//   - EnsureMatrix, Snapshot, Edges: O(n²).
package graphstore

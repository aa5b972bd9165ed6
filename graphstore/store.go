// SPDX-License-Identifier: MIT

package graphstore

import (
	"fmt"
	"sync"
)

// Store is the single source of truth for nodes and edge weights.
// The zero value is not usable; construct with New.
type Store struct {
	mu sync.RWMutex

	n   int    // number of created nodes
	mat *dense // nil until first EnsureMatrix; may lag behind n
}

// New returns an empty Store.
func New() *Store {
	return &Store{}
}

// AddNode appends the next sequential node and returns its index.
// The matrix is not resized here; see EnsureMatrix.
// Complexity: O(1).
func (s *Store) AddNode() NodeIndex {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := NodeIndex(s.n)
	s.n++

	return idx
}

// Order returns the number of created nodes.
func (s *Store) Order() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.n
}

// EnsureMatrix rebuilds the matrix as n×n (zero diagonal, NoEdge elsewhere)
// when it is missing or its dimension differs from the node count. Any edges
// held by a mis-sized matrix are discarded. A correctly sized matrix is left
// as is.
// Complexity: O(n²) on rebuild, O(1) otherwise.
func (s *Store) EnsureMatrix() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureLocked()
}

// ensureLocked reports whether a rebuild happened. Caller holds mu.
func (s *Store) ensureLocked() bool {
	if s.mat != nil && s.mat.n == s.n {
		return false
	}
	s.mat = newDense(s.n)

	return true
}

// AddEdge connects i and j with weight w.
//
// Validation order:
//  1. both indices must be in [0, n) (ErrNodeNotFound);
//  2. i == j is accepted as a no-op;
//  3. w must be non-negative and finite (ErrInvalidWeight);
//  4. the pair must not already be connected (ErrDuplicateEdge).
//
// The matrix is (re)built first if it is missing or mis-sized.
// Complexity: O(1), O(n²) on rebuild.
func (s *Store) AddEdge(i, j NodeIndex, w Weight) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkPair(i, j); err != nil {
		return err
	}
	if i == j {
		return nil
	}
	if err := validateWeight(w); err != nil {
		return err
	}
	s.ensureLocked()
	if s.mat.at(i, j).Finite() {
		return fmt.Errorf("%w: %d-%d", ErrDuplicateEdge, i, j)
	}
	s.mat.setSym(i, j, w)

	return nil
}

// SetWeight overwrites the weight of an existing edge in both directions.
// It fails with ErrNoSuchEdge if i and j are not connected, including i == j.
// Complexity: O(1).
func (s *Store) SetWeight(i, j NodeIndex, w Weight) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkPair(i, j); err != nil {
		return err
	}
	if err := validateWeight(w); err != nil {
		return err
	}
	if i == j || !s.mat.at(i, j).Finite() {
		return fmt.Errorf("%w: %d-%d", ErrNoSuchEdge, i, j)
	}
	s.mat.setSym(i, j, w)

	return nil
}

// WeightOf returns the weight between i and j, or NoEdge when they are not
// connected. WeightOf(i, i) is 0 for any node covered by the matrix.
// Complexity: O(1).
func (s *Store) WeightOf(i, j NodeIndex) Weight {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.mat.at(i, j)
}

// HasEdge reports whether i and j (i != j) are connected.
func (s *Store) HasEdge(i, j NodeIndex) bool {
	return i != j && s.WeightOf(i, j).Finite()
}

// Edges lists every edge once, ordered by (A, B) ascending with A < B.
// Complexity: O(n²).
func (s *Store) Edges() []Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := s.mat.order()
	out := make([]Edge, 0, n)
	var i, j NodeIndex
	for i = 0; int(i) < n; i++ {
		for j = i + 1; int(j) < n; j++ {
			if w := s.mat.at(i, j); w.Finite() {
				out = append(out, Edge{A: i, B: j, Weight: w})
			}
		}
	}

	return out
}

// Reset drops every node and the matrix. The next AddNode returns 0.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.n = 0
	s.mat = nil
}

// Snapshot returns an immutable copy of the current state.
// Complexity: O(n²).
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return &Snapshot{n: s.n, mat: s.mat.clone()}
}

// checkPair validates both indices against n. Caller holds mu.
func (s *Store) checkPair(i, j NodeIndex) error {
	if i < 0 || int(i) >= s.n {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, i)
	}
	if j < 0 || int(j) >= s.n {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, j)
	}

	return nil
}

// Snapshot is a read-only view of a Store at one point in time.
// It satisfies shortestpath.Matrix.
type Snapshot struct {
	n   int
	mat *dense
}

// Order returns the node count captured by the snapshot.
func (s *Snapshot) Order() int { return s.n }

// WeightOf returns the captured weight between i and j, or NoEdge.
func (s *Snapshot) WeightOf(i, j NodeIndex) Weight { return s.mat.at(i, j) }

// SPDX-License-Identifier: MIT

package graphstore

// dense is a square row-major weight matrix. Entries start as NoEdge off
// the diagonal and 0 on it.
type dense struct {
	n    int      // order
	data []Weight // n*n entries, row-major
}

// newDense allocates an n×n matrix with a zero diagonal and NoEdge elsewhere.
// Complexity: O(n²).
func newDense(n int) *dense {
	m := &dense{n: n, data: make([]Weight, n*n)}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j {
				m.data[i*n+j] = NoEdge
			}
		}
	}

	return m
}

// order returns n, treating a nil matrix as 0×0.
func (m *dense) order() int {
	if m == nil {
		return 0
	}

	return m.n
}

// at returns the (i, j) entry, or NoEdge outside the matrix.
func (m *dense) at(i, j NodeIndex) Weight {
	n := m.order()
	if i < 0 || j < 0 || int(i) >= n || int(j) >= n {
		return NoEdge
	}

	return m.data[int(i)*n+int(j)]
}

// setSym writes w at (i, j) and (j, i). Callers validate bounds.
func (m *dense) setSym(i, j NodeIndex, w Weight) {
	m.data[int(i)*m.n+int(j)] = w
	m.data[int(j)*m.n+int(i)] = w
}

// clone returns a deep copy; nil stays nil.
func (m *dense) clone() *dense {
	if m == nil {
		return nil
	}
	data := make([]Weight, len(m.data))
	copy(data, m.data)

	return &dense{n: m.n, data: data}
}

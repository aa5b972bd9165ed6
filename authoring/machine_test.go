// SPDX-License-Identifier: MIT

package authoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathboard/authoring"
	"github.com/katalvlaran/pathboard/graphstore"
)

// layout is a fixed position table.
type layout map[graphstore.NodeIndex]graphstore.Point

func (l layout) Position(i graphstore.NodeIndex) (graphstore.Point, bool) {
	p, ok := l[i]
	return p, ok
}

// setup places nodes at the given positions and returns an inactive machine.
func setup(t *testing.T, pts ...graphstore.Point) (*graphstore.Store, *authoring.Machine) {
	t.Helper()
	s := graphstore.New()
	l := layout{}
	for _, p := range pts {
		l[s.AddNode()] = p
	}

	return s, authoring.New(s, l, 10)
}

func TestToggle_InsufficientNodes(t *testing.T) {
	_, m := setup(t, graphstore.Point{})
	err := m.Toggle(true)
	assert.ErrorIs(t, err, authoring.ErrInsufficientNodes)
	assert.False(t, m.Active())
}

func TestToggle_BuildsMatrix(t *testing.T) {
	s, m := setup(t, graphstore.Point{}, graphstore.Point{X: 30, Y: 40})
	require.NoError(t, m.Toggle(true))
	assert.True(t, m.Active())
	assert.Equal(t, graphstore.Weight(0), s.WeightOf(1, 1))
	assert.Equal(t, graphstore.NoEdge, s.WeightOf(0, 1))
}

func TestSelect_CreatesEdge(t *testing.T) {
	s, m := setup(t, graphstore.Point{}, graphstore.Point{X: 30, Y: 40})
	require.NoError(t, m.Toggle(true))

	tr, err := m.Select(0)
	require.NoError(t, err)
	assert.Equal(t, authoring.OutcomeFirstPicked, tr.Outcome)
	p, ok := m.Pending()
	assert.True(t, ok)
	assert.Equal(t, graphstore.NodeIndex(0), p)

	tr, err = m.Select(1)
	require.NoError(t, err)
	assert.Equal(t, authoring.Transition{Outcome: authoring.OutcomeEdgeCreated, From: 0, To: 1, Weight: 5}, tr)
	assert.Equal(t, graphstore.Weight(5), s.WeightOf(1, 0))

	_, ok = m.Pending()
	assert.False(t, ok)
}

func TestSelect_DuplicateClearsPick(t *testing.T) {
	s, m := setup(t, graphstore.Point{}, graphstore.Point{X: 30, Y: 40})
	require.NoError(t, m.Toggle(true))
	require.NoError(t, s.AddEdge(0, 1, 2))

	_, err := m.Select(1)
	require.NoError(t, err)
	tr, err := m.Select(0)
	require.NoError(t, err)
	assert.Equal(t, authoring.OutcomeEdgeDuplicate, tr.Outcome)
	assert.Equal(t, graphstore.Weight(2), s.WeightOf(0, 1))

	// next click starts a fresh pair
	tr, err = m.Select(0)
	require.NoError(t, err)
	assert.Equal(t, authoring.OutcomeFirstPicked, tr.Outcome)
}

func TestSelect_SelfSelectionCancels(t *testing.T) {
	s, m := setup(t, graphstore.Point{}, graphstore.Point{X: 10})
	require.NoError(t, m.Toggle(true))

	_, err := m.Select(1)
	require.NoError(t, err)
	tr, err := m.Select(1)
	require.NoError(t, err)
	assert.Equal(t, authoring.OutcomeSelfSelection, tr.Outcome)
	assert.Empty(t, s.Edges())
	_, ok := m.Pending()
	assert.False(t, ok)
}

func TestSelect_ModeInactive(t *testing.T) {
	_, m := setup(t, graphstore.Point{}, graphstore.Point{X: 10})
	_, err := m.Select(0)
	assert.ErrorIs(t, err, authoring.ErrModeInactive)
}

func TestSelect_UnknownNodeDropsPick(t *testing.T) {
	_, m := setup(t, graphstore.Point{}, graphstore.Point{X: 10})
	require.NoError(t, m.Toggle(true))
	_, err := m.Select(0)
	require.NoError(t, err)

	_, err = m.Select(7)
	assert.ErrorIs(t, err, graphstore.ErrNodeNotFound)
	_, ok := m.Pending()
	assert.False(t, ok)
}

func TestSelect_MissingPosition(t *testing.T) {
	s := graphstore.New()
	s.AddNode()
	s.AddNode()
	m := authoring.New(s, layout{0: {}}, 10)
	require.NoError(t, m.Toggle(true))

	_, err := m.Select(0)
	require.NoError(t, err)
	_, err = m.Select(1)
	assert.ErrorIs(t, err, graphstore.ErrNodeNotFound)
	assert.Empty(t, s.Edges())
}

func TestToggle_ClearsPendingPick(t *testing.T) {
	_, m := setup(t, graphstore.Point{}, graphstore.Point{X: 10})
	require.NoError(t, m.Toggle(true))
	_, err := m.Select(0)
	require.NoError(t, err)

	require.NoError(t, m.Toggle(false))
	require.NoError(t, m.Toggle(true))
	_, ok := m.Pending()
	assert.False(t, ok)
}

func TestToggle_ReenterAfterNewNodeDiscardsEdges(t *testing.T) {
	s, m := setup(t, graphstore.Point{}, graphstore.Point{X: 10})
	require.NoError(t, m.Toggle(true))
	_, _ = m.Select(0)
	_, _ = m.Select(1)
	require.True(t, s.HasEdge(0, 1))
	require.NoError(t, m.Toggle(false))

	s.AddNode()
	require.NoError(t, m.Toggle(true))
	assert.False(t, s.HasEdge(0, 1))
}

func TestReset(t *testing.T) {
	_, m := setup(t, graphstore.Point{}, graphstore.Point{X: 10})
	require.NoError(t, m.Toggle(true))
	_, _ = m.Select(0)
	m.Reset()
	assert.False(t, m.Active())
	_, ok := m.Pending()
	assert.False(t, ok)
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "edge_created", authoring.OutcomeEdgeCreated.String())
	assert.Equal(t, "self_selection", authoring.OutcomeSelfSelection.String())
	assert.Equal(t, "unknown", authoring.Outcome(42).String())
}

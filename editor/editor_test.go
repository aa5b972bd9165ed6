// SPDX-License-Identifier: MIT

package editor_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathboard/authoring"
	"github.com/katalvlaran/pathboard/editor"
	"github.com/katalvlaran/pathboard/graphstore"
	"github.com/katalvlaran/pathboard/pathrender"
	"github.com/katalvlaran/pathboard/shortestpath"
)

// connect selects a then b in edge mode and returns the transition.
func connect(t *testing.T, ed *editor.Editor, a, b graphstore.NodeIndex) authoring.Transition {
	t.Helper()
	_, err := ed.SelectNodeForEdge(a)
	require.NoError(t, err)
	tr, err := ed.SelectNodeForEdge(b)
	require.NoError(t, err)

	return tr
}

// diamond places four nodes and wires 0-1:4, 0-2:1, 2-1:1, 1-3:1.
func diamond(t *testing.T, opts ...editor.Option) *editor.Editor {
	t.Helper()
	ed := editor.New(append([]editor.Option{editor.WithStepDelay(0)}, opts...)...)
	for _, p := range []graphstore.Point{{X: 0}, {X: 40}, {X: 10}, {X: 50}} {
		_, err := ed.CreateNode(p)
		require.NoError(t, err)
	}
	require.NoError(t, ed.ToggleEdgeAuthoring(true))
	for _, e := range [][2]graphstore.NodeIndex{{0, 1}, {0, 2}, {2, 1}, {1, 3}} {
		require.Equal(t, authoring.OutcomeEdgeCreated, connect(t, ed, e[0], e[1]).Outcome)
	}
	require.NoError(t, ed.EditWeight(0, 1, 4))
	require.NoError(t, ed.EditWeight(0, 2, 1))
	require.NoError(t, ed.EditWeight(1, 2, 1))
	require.NoError(t, ed.EditWeight(1, 3, 1))

	return ed
}

func TestEditor_CreateNodeSequential(t *testing.T) {
	ed := editor.New()
	for want := 0; want < 5; want++ {
		idx, err := ed.CreateNode(graphstore.Point{X: float64(want)})
		require.NoError(t, err)
		assert.Equal(t, graphstore.NodeIndex(want), idx)
	}
	assert.Equal(t, 5, ed.Order())
	assert.Len(t, ed.Positions(), 5)
}

func TestEditor_CreateNodeCapacity(t *testing.T) {
	ed := editor.New(editor.WithMaxNodes(2))
	_, _ = ed.CreateNode(graphstore.Point{})
	_, _ = ed.CreateNode(graphstore.Point{})
	_, err := ed.CreateNode(graphstore.Point{})
	assert.ErrorIs(t, err, editor.ErrNodeCapacityExceeded)
	assert.Equal(t, 2, ed.Order())
}

func TestEditor_CreateNodeBlockedInEdgeMode(t *testing.T) {
	ed := editor.New()
	_, _ = ed.CreateNode(graphstore.Point{})
	_, _ = ed.CreateNode(graphstore.Point{X: 10})
	require.NoError(t, ed.ToggleEdgeAuthoring(true))

	_, err := ed.CreateNode(graphstore.Point{})
	assert.ErrorIs(t, err, editor.ErrAuthoringActive)

	require.NoError(t, ed.ToggleEdgeAuthoring(false))
	idx, err := ed.CreateNode(graphstore.Point{})
	require.NoError(t, err)
	assert.Equal(t, graphstore.NodeIndex(2), idx)
}

func TestEditor_ToggleNeedsTwoNodes(t *testing.T) {
	ed := editor.New()
	assert.ErrorIs(t, ed.ToggleEdgeAuthoring(true), authoring.ErrInsufficientNodes)
	assert.False(t, ed.AuthoringActive())
}

func TestEditor_DerivedWeightAndDuplicate(t *testing.T) {
	ed := editor.New(editor.WithWeightDivisor(5))
	_, _ = ed.CreateNode(graphstore.Point{X: 0, Y: 0})
	_, _ = ed.CreateNode(graphstore.Point{X: 30, Y: 40})
	require.NoError(t, ed.ToggleEdgeAuthoring(true))

	tr := connect(t, ed, 0, 1)
	assert.Equal(t, authoring.OutcomeEdgeCreated, tr.Outcome)
	assert.Equal(t, graphstore.Weight(10), ed.WeightOf(0, 1))

	tr = connect(t, ed, 1, 0)
	assert.Equal(t, authoring.OutcomeEdgeDuplicate, tr.Outcome)
	assert.Equal(t, graphstore.Weight(10), ed.WeightOf(1, 0))
}

func TestEditor_EditWeightText(t *testing.T) {
	ed := editor.New()
	_, _ = ed.CreateNode(graphstore.Point{})
	_, _ = ed.CreateNode(graphstore.Point{X: 100})
	require.NoError(t, ed.ToggleEdgeAuthoring(true))
	connect(t, ed, 0, 1)
	require.Equal(t, graphstore.Weight(10), ed.WeightOf(0, 1))

	require.NoError(t, ed.EditWeightText(1, 0, " 7 "))
	assert.Equal(t, graphstore.Weight(7), ed.WeightOf(0, 1))

	assert.ErrorIs(t, ed.EditWeightText(0, 1, "-3"), graphstore.ErrInvalidWeight)
	assert.ErrorIs(t, ed.EditWeightText(0, 1, "seven"), graphstore.ErrInvalidWeight)
	assert.Equal(t, graphstore.Weight(7), ed.WeightOf(0, 1))
}

func TestEditor_EditWeightMissingEdge(t *testing.T) {
	ed := editor.New()
	_, _ = ed.CreateNode(graphstore.Point{})
	_, _ = ed.CreateNode(graphstore.Point{})
	assert.ErrorIs(t, ed.EditWeight(0, 1, 3), graphstore.ErrNoSuchEdge)
}

func TestEditor_FindShortestPath(t *testing.T) {
	ed := diamond(t)

	res, err := ed.Query(0)
	require.NoError(t, err)
	assert.Equal(t, []graphstore.Weight{0, 2, 1, 3}, res.Cost)
	assert.Equal(t, []graphstore.NodeIndex{shortestpath.ParentSource, 2, 0, 1}, res.Parent)

	steps, err := ed.FindShortestPath(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"0 --> 0", "1 --> 0 2 1", "2 --> 0 2", "3 --> 0 2 1 3"}, pathrender.Lines(steps.Steps))
}

func TestEditor_ReweightDoesNotRerunQuery(t *testing.T) {
	ed := diamond(t)
	before, err := ed.FindShortestPath(0)
	require.NoError(t, err)

	require.NoError(t, ed.EditWeight(0, 1, 1))
	assert.Equal(t, []string{"0 --> 0", "1 --> 0 2 1", "2 --> 0 2", "3 --> 0 2 1 3"}, pathrender.Lines(before.Steps))

	after, err := ed.FindShortestPath(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"0 --> 0", "1 --> 0 1", "2 --> 0 2", "3 --> 0 1 3"}, pathrender.Lines(after.Steps))
}

func TestEditor_InvalidSource(t *testing.T) {
	ed := diamond(t)
	_, err := ed.FindShortestPath(4)
	assert.ErrorIs(t, err, shortestpath.ErrInvalidSource)
	_, err = ed.FindShortestPath(-1)
	assert.ErrorIs(t, err, shortestpath.ErrInvalidSource)
}

func TestEditor_Reset(t *testing.T) {
	ed := diamond(t)
	ed.Reset()

	assert.Equal(t, 0, ed.Order())
	assert.False(t, ed.AuthoringActive())
	assert.Empty(t, ed.Edges())
	assert.Empty(t, ed.Positions())
	for src := graphstore.NodeIndex(0); src < 4; src++ {
		_, err := ed.FindShortestPath(src)
		assert.ErrorIs(t, err, shortestpath.ErrInvalidSource)
	}

	idx, err := ed.CreateNode(graphstore.Point{})
	require.NoError(t, err)
	assert.Equal(t, graphstore.NodeIndex(0), idx)
}

func TestEditor_PlayDeliversAllSteps(t *testing.T) {
	ed := diamond(t)
	steps, err := ed.FindShortestPath(0)
	require.NoError(t, err)

	var got []pathrender.Step
	err = ed.Play(context.Background(), steps, editor.SinkFunc(func(_ context.Context, st pathrender.Step) error {
		got = append(got, st)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, steps.Steps, got)
}

func TestEditor_PlayStopsOnSinkError(t *testing.T) {
	ed := diamond(t)
	steps, err := ed.FindShortestPath(0)
	require.NoError(t, err)

	boom := errors.New("boom")
	calls := 0
	err = ed.Play(context.Background(), steps, editor.SinkFunc(func(context.Context, pathrender.Step) error {
		calls++
		return boom
	}))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestEditor_PlayCancelledByReset(t *testing.T) {
	ed := diamond(t, editor.WithStepDelay(time.Hour))
	steps, err := ed.FindShortestPath(0)
	require.NoError(t, err)

	first := make(chan struct{}, len(steps.Steps))
	done := make(chan error, 1)
	go func() {
		done <- ed.Play(context.Background(), steps, editor.SinkFunc(func(context.Context, pathrender.Step) error {
			first <- struct{}{}
			return nil
		}))
	}()

	// the leading labels are delivered before the first highlight pause
	select {
	case <-first:
	case <-time.After(5 * time.Second):
		t.Fatal("no step delivered")
	}
	ed.Reset()

	select {
	case err = <-done:
		assert.ErrorIs(t, err, editor.ErrPlaybackCancelled)
	case <-time.After(5 * time.Second):
		t.Fatal("playback not cancelled")
	}

	// the drawing is usable again
	idx, err := ed.CreateNode(graphstore.Point{})
	require.NoError(t, err)
	assert.Equal(t, graphstore.NodeIndex(0), idx)
}

func TestEditor_ResetBeforePlayCancels(t *testing.T) {
	ed := diamond(t)
	p, err := ed.FindShortestPath(0)
	require.NoError(t, err)
	ed.Reset()

	emitted := 0
	err = ed.Play(context.Background(), p, editor.SinkFunc(func(context.Context, pathrender.Step) error {
		emitted++
		return nil
	}))
	assert.ErrorIs(t, err, editor.ErrPlaybackCancelled)
	assert.Zero(t, emitted)
}

func TestEditor_QueryAfterResetPlays(t *testing.T) {
	ed := diamond(t)
	ed.Reset()
	_, err := ed.CreateNode(graphstore.Point{})
	require.NoError(t, err)

	p, err := ed.FindShortestPath(0)
	require.NoError(t, err)
	var got []string
	err = ed.Play(context.Background(), p, editor.SinkFunc(func(_ context.Context, st pathrender.Step) error {
		got = append(got, st.Text)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"0 --> 0"}, got)
}

func TestEditor_PlayCancelledByContext(t *testing.T) {
	ed := diamond(t, editor.WithStepDelay(time.Hour))
	steps, err := ed.FindShortestPath(0)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err = ed.Play(ctx, steps, editor.SinkFunc(func(context.Context, pathrender.Step) error { return nil }))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestOptions(t *testing.T) {
	def := editor.DefaultOptions()
	assert.Equal(t, 12, def.MaxNodes)
	assert.Equal(t, 600*time.Millisecond, def.StepDelay)
	assert.Equal(t, graphstore.DefaultWeightDivisor, def.WeightDivisor)

	ed := editor.New(editor.WithMaxNodes(0), editor.WithWeightDivisor(-1), editor.WithStepDelay(-time.Second), editor.WithLogger(nil))
	assert.Equal(t, 12, ed.Options().MaxNodes)
	assert.Equal(t, graphstore.DefaultWeightDivisor, ed.Options().WeightDivisor)
	assert.Equal(t, 600*time.Millisecond, ed.Options().StepDelay)
	assert.NotNil(t, ed.Options().Logger)
}

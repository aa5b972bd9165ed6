// SPDX-License-Identifier: MIT

package editor

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/katalvlaran/pathboard/authoring"
	"github.com/katalvlaran/pathboard/graphstore"
	"github.com/katalvlaran/pathboard/pathrender"
	"github.com/katalvlaran/pathboard/shortestpath"
)

// Sink receives presentation steps during Play.
type Sink interface {
	Emit(ctx context.Context, step pathrender.Step) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, step pathrender.Step) error

// Emit calls f.
func (f SinkFunc) Emit(ctx context.Context, step pathrender.Step) error { return f(ctx, step) }

// Editor owns one drawing. Construct with New.
type Editor struct {
	mu   sync.Mutex
	opts Options
	log  *slog.Logger

	store     *graphstore.Store
	positions layout
	auth      *authoring.Machine

	// reset is closed and replaced by Reset to stop in-flight playback.
	reset chan struct{}
}

// layout holds node positions by index.
type layout []graphstore.Point

// Position implements authoring.Layout.
func (l *layout) Position(i graphstore.NodeIndex) (graphstore.Point, bool) {
	if i < 0 || int(i) >= len(*l) {
		return graphstore.Point{}, false
	}

	return (*l)[i], true
}

// New returns an empty Editor.
func New(opts ...Option) *Editor {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &Editor{
		opts:  cfg,
		log:   cfg.Logger,
		store: graphstore.New(),
		reset: make(chan struct{}),
	}
	e.auth = authoring.New(e.store, &e.positions, cfg.WeightDivisor)

	return e
}

// Options returns the effective configuration.
func (e *Editor) Options() Options { return e.opts }

// CreateNode places a node at p and returns its index.
func (e *Editor) CreateNode(p graphstore.Point) (graphstore.NodeIndex, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.auth.Active() {
		e.log.Info("node placement rejected", "reason", "edge mode active")
		return 0, ErrAuthoringActive
	}
	if n := e.store.Order(); n >= e.opts.MaxNodes {
		e.log.Info("node placement rejected", "reason", "capacity", "max", e.opts.MaxNodes)
		return 0, fmt.Errorf("%w: max %d", ErrNodeCapacityExceeded, e.opts.MaxNodes)
	}

	idx := e.store.AddNode()
	e.positions = append(e.positions, p)
	e.log.Debug("node created", "index", idx, "x", p.X, "y", p.Y)

	return idx, nil
}

// ToggleEdgeAuthoring turns edge mode on or off.
func (e *Editor) ToggleEdgeAuthoring(on bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.auth.Toggle(on); err != nil {
		e.log.Info("edge mode rejected", "error", err)
		return err
	}
	e.log.Debug("edge mode", "on", on)

	return nil
}

// AuthoringActive reports whether edge mode is on.
func (e *Editor) AuthoringActive() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.auth.Active()
}

// SelectNodeForEdge feeds a node click to the authoring machine.
func (e *Editor) SelectNodeForEdge(i graphstore.NodeIndex) (authoring.Transition, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	tr, err := e.auth.Select(i)
	if err != nil {
		e.log.Info("node selection rejected", "node", i, "error", err)
		return tr, err
	}
	switch tr.Outcome {
	case authoring.OutcomeEdgeCreated:
		e.log.Debug("edge created", "from", tr.From, "to", tr.To, "weight", int64(tr.Weight))
	case authoring.OutcomeEdgeDuplicate:
		e.log.Info("edge already exists", "from", tr.From, "to", tr.To)
	}

	return tr, nil
}

// EditWeight overwrites the weight of an existing edge.
func (e *Editor) EditWeight(i, j graphstore.NodeIndex, w graphstore.Weight) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.store.SetWeight(i, j, w); err != nil {
		e.log.Info("reweight rejected", "from", i, "to", j, "error", err)
		return err
	}
	e.log.Debug("edge reweighted", "from", i, "to", j, "weight", int64(w))

	return nil
}

// EditWeightText parses raw user input and reweights the edge.
func (e *Editor) EditWeightText(i, j graphstore.NodeIndex, raw string) error {
	w, err := graphstore.ParseWeight(raw)
	if err != nil {
		e.log.Info("reweight rejected", "from", i, "to", j, "input", raw)
		return err
	}

	return e.EditWeight(i, j, w)
}

// Presentation is a rendered query bound to the drawing it was computed
// from. A Reset after the query cancels its playback, even one that has
// not started yet.
type Presentation struct {
	Source graphstore.NodeIndex
	Steps  []pathrender.Step

	reset <-chan struct{}
}

// FindShortestPath runs a query from source and renders it. The whole
// result is computed before this returns.
func (e *Editor) FindShortestPath(source graphstore.NodeIndex) (*Presentation, error) {
	res, reset, err := e.query(source)
	if err != nil {
		return nil, err
	}

	return &Presentation{Source: source, Steps: pathrender.Render(res), reset: reset}, nil
}

// Query runs Dijkstra from source over a snapshot of the drawing.
func (e *Editor) Query(source graphstore.NodeIndex) (*shortestpath.Result, error) {
	res, _, err := e.query(source)

	return res, err
}

// query takes the snapshot and the current reset channel under one lock,
// so the result and its cancellation refer to the same drawing.
func (e *Editor) query(source graphstore.NodeIndex) (*shortestpath.Result, <-chan struct{}, error) {
	e.mu.Lock()
	snap := e.store.Snapshot()
	reset := e.reset
	e.mu.Unlock()

	res, err := shortestpath.Run(snap, source)
	if err != nil {
		e.log.Info("query rejected", "source", source, "error", err)
		return nil, nil, err
	}
	e.log.Debug("query done", "source", source, "visited", len(res.Order))

	return res, reset, nil
}

// Play delivers p's steps to sink in order, pausing StepDelay before each
// highlight. It stops with ctx.Err() when ctx ends, with
// ErrPlaybackCancelled when the drawing p was computed from has been
// reset, or with the first sink error. A Presentation built by hand is
// bound to the drawing current when Play is called.
func (e *Editor) Play(ctx context.Context, p *Presentation, sink Sink) error {
	if p == nil {
		return nil
	}

	e.mu.Lock()
	reset := p.reset
	if reset == nil {
		reset = e.reset
	}
	delay := e.opts.StepDelay
	e.mu.Unlock()

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for _, st := range p.Steps {
		if st.Kind == pathrender.KindHighlight && delay > 0 {
			if timer == nil {
				timer = time.NewTimer(delay)
			} else {
				timer.Reset(delay)
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-reset:
				return ErrPlaybackCancelled
			case <-timer.C:
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-reset:
			return ErrPlaybackCancelled
		default:
		}
		if err := sink.Emit(ctx, st); err != nil {
			return err
		}
	}

	return nil
}

// Reset clears the drawing and cancels any playback in progress.
func (e *Editor) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	close(e.reset)
	e.reset = make(chan struct{})
	e.store.Reset()
	e.auth.Reset()
	e.positions = e.positions[:0]
	e.log.Debug("drawing reset")
}

// Order returns the number of placed nodes.
func (e *Editor) Order() int { return e.store.Order() }

// WeightOf returns the current weight between i and j or graphstore.NoEdge.
func (e *Editor) WeightOf(i, j graphstore.NodeIndex) graphstore.Weight {
	return e.store.WeightOf(i, j)
}

// Edges lists the current edges.
func (e *Editor) Edges() []graphstore.Edge { return e.store.Edges() }

// Positions returns a copy of the node positions by index.
func (e *Editor) Positions() []graphstore.Point {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]graphstore.Point, len(e.positions))
	copy(out, e.positions)

	return out
}

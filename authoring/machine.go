// SPDX-License-Identifier: MIT

// Package authoring pairs two node selections into one edge-creation
// request.
//
// The machine has two states. Idle waits for a first endpoint; OnePicked(i)
// waits for the second. The second selection always returns the machine to
// Idle, whether the edge was created, rejected as a duplicate, or cancelled
// by picking the same node twice. Switching the mode on or off also drops
// any pending pick.
//
// Edge weights are derived from the endpoints' positions via
// graphstore.DerivedWeight; positions come from a Layout supplied by the
// embedding application.
package authoring

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathboard/graphstore"
)

// Sentinel errors.
var (
	// ErrInsufficientNodes indicates the mode was requested with fewer than two nodes.
	ErrInsufficientNodes = errors.New("authoring: at least two nodes are required to add edges")

	// ErrModeInactive indicates a selection arrived while the mode is off.
	ErrModeInactive = errors.New("authoring: edge mode is off")
)

// Store is the subset of graphstore.Store the machine drives.
type Store interface {
	Order() int
	EnsureMatrix()
	AddEdge(i, j graphstore.NodeIndex, w graphstore.Weight) error
}

// Layout resolves a node's on-screen position.
type Layout interface {
	Position(i graphstore.NodeIndex) (graphstore.Point, bool)
}

// Outcome names the result of one Select call.
type Outcome int

const (
	// OutcomeFirstPicked means the machine moved Idle → OnePicked.
	OutcomeFirstPicked Outcome = iota
	// OutcomeEdgeCreated means a new edge was stored.
	OutcomeEdgeCreated
	// OutcomeEdgeDuplicate means the pair was already connected.
	OutcomeEdgeDuplicate
	// OutcomeSelfSelection means the same node was picked twice.
	OutcomeSelfSelection
)

var outcomeNames = [...]string{"first_picked", "edge_created", "edge_duplicate", "self_selection"}

// String implements fmt.Stringer.
func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "unknown"
	}

	return outcomeNames[o]
}

// Transition reports what a Select call did.
type Transition struct {
	Outcome Outcome

	// From is the first endpoint; To is set once the pair is complete.
	From, To graphstore.NodeIndex

	// Weight is the derived weight (OutcomeEdgeCreated only).
	Weight graphstore.Weight
}

// Machine is the edge-authoring state machine. It is not safe for
// concurrent use; the editor serialises access.
type Machine struct {
	store   Store
	layout  Layout
	divisor float64

	active  bool
	picked  bool
	pending graphstore.NodeIndex
}

// New builds an inactive machine. divisor scales pixel distance into
// weights; non-positive values fall back to graphstore.DefaultWeightDivisor.
func New(store Store, layout Layout, divisor float64) *Machine {
	if divisor <= 0 {
		divisor = graphstore.DefaultWeightDivisor
	}

	return &Machine{store: store, layout: layout, divisor: divisor}
}

// Active reports whether edge mode is on.
func (m *Machine) Active() bool { return m.active }

// Pending returns the first endpoint while in OnePicked.
func (m *Machine) Pending() (graphstore.NodeIndex, bool) { return m.pending, m.picked }

// Toggle switches edge mode. Turning it on needs at least two nodes and
// sizes the store's matrix; a failed request changes nothing. Both
// directions clear any pending pick.
func (m *Machine) Toggle(on bool) error {
	if on {
		if n := m.store.Order(); n < 2 {
			return fmt.Errorf("%w: have %d", ErrInsufficientNodes, n)
		}
		m.store.EnsureMatrix()
	}
	m.active = on
	m.clear()

	return nil
}

// Select feeds one node click into the machine.
//
//   - mode off: ErrModeInactive, nothing changes;
//   - unknown node: graphstore.ErrNodeNotFound, pending pick dropped;
//   - Idle: remember i, OutcomeFirstPicked;
//   - OnePicked(i) with j == i: OutcomeSelfSelection;
//   - OnePicked(i) with j != i: AddEdge with the derived weight, reporting
//     OutcomeEdgeCreated or OutcomeEdgeDuplicate.
//
// After a second selection the machine is Idle again, even on error.
func (m *Machine) Select(j graphstore.NodeIndex) (Transition, error) {
	if !m.active {
		return Transition{}, ErrModeInactive
	}
	if j < 0 || int(j) >= m.store.Order() {
		m.clear()
		return Transition{}, fmt.Errorf("%w: %d", graphstore.ErrNodeNotFound, j)
	}
	if !m.picked {
		m.pending, m.picked = j, true
		return Transition{Outcome: OutcomeFirstPicked, From: j, To: j}, nil
	}

	i := m.pending
	m.clear()
	tr := Transition{From: i, To: j}
	if i == j {
		tr.Outcome = OutcomeSelfSelection
		return tr, nil
	}

	w, err := m.derive(i, j)
	if err != nil {
		return tr, err
	}
	err = m.store.AddEdge(i, j, w)
	switch {
	case errors.Is(err, graphstore.ErrDuplicateEdge):
		tr.Outcome = OutcomeEdgeDuplicate
		return tr, nil
	case err != nil:
		return tr, err
	}
	tr.Outcome = OutcomeEdgeCreated
	tr.Weight = w

	return tr, nil
}

// Reset turns the mode off and returns to Idle.
func (m *Machine) Reset() {
	m.active = false
	m.clear()
}

func (m *Machine) clear() {
	m.picked = false
	m.pending = 0
}

func (m *Machine) derive(i, j graphstore.NodeIndex) (graphstore.Weight, error) {
	a, ok := m.layout.Position(i)
	if !ok {
		return 0, fmt.Errorf("%w: no position for %d", graphstore.ErrNodeNotFound, i)
	}
	b, ok := m.layout.Position(j)
	if !ok {
		return 0, fmt.Errorf("%w: no position for %d", graphstore.ErrNodeNotFound, j)
	}

	return graphstore.DerivedWeight(a, b, m.divisor)
}

// SPDX-License-Identifier: MIT

package wsfeed

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathboard/graphstore"
	"github.com/katalvlaran/pathboard/pathrender"
)

// Client operations.
const (
	OpCreateNode      = "create_node"
	OpToggleAuthoring = "toggle_authoring"
	OpSelect          = "select"
	OpEditWeight      = "edit_weight"
	OpFindPath        = "find_path"
	OpReset           = "reset"
	OpState           = "state"
)

// Server message types.
const (
	TypeAck   = "ack"
	TypeError = "error"
	TypeStep  = "step"
	TypeDone  = "done"
	TypeState = "state"
)

// ErrMissingField is returned to the client when a command lacks a node
// index it needs.
var ErrMissingField = errors.New("wsfeed: missing field")

// Command is one client request. Node indices are pointers so that an
// absent field is told apart from node 0.
type Command struct {
	Op     string  `json:"op"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	On     bool    `json:"on,omitempty"`
	Node   *int    `json:"node,omitempty"`
	A      *int    `json:"a,omitempty"`
	B      *int    `json:"b,omitempty"`
	Raw    string  `json:"raw,omitempty"`
	Source *int    `json:"source,omitempty"`
}

// index dereferences a required node field.
func index(name string, v *int) (graphstore.NodeIndex, error) {
	if v == nil {
		return 0, fmt.Errorf("%w: %s", ErrMissingField, name)
	}

	return graphstore.NodeIndex(*v), nil
}

// Message is one server notification.
type Message struct {
	Type    string        `json:"type"`
	Op      string        `json:"op,omitempty"`
	Node    *int          `json:"node,omitempty"`
	Outcome string        `json:"outcome,omitempty"`
	Weight  *int64        `json:"weight,omitempty"`
	Error   string        `json:"error,omitempty"`
	Step    *StepMessage  `json:"step,omitempty"`
	Edges   []EdgeMessage `json:"edges,omitempty"`
	Nodes   []NodeMessage `json:"nodes,omitempty"`
}

// StepMessage mirrors pathrender.Step on the wire.
type StepMessage struct {
	Kind  string       `json:"kind"`
	Node  int          `json:"node"`
	Text  string       `json:"text,omitempty"`
	Final bool         `json:"final,omitempty"`
	Edge  *EdgeMessage `json:"edge,omitempty"`
}

// EdgeMessage is an undirected edge with A < B.
type EdgeMessage struct {
	A      int   `json:"a"`
	B      int   `json:"b"`
	Weight int64 `json:"weight"`
}

// NodeMessage is a placed node.
type NodeMessage struct {
	Index int     `json:"index"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

func stepMessage(st pathrender.Step) *StepMessage {
	m := &StepMessage{Kind: st.Kind.String(), Node: int(st.Node), Text: st.Text, Final: st.Final}
	if st.Kind == pathrender.KindHighlight {
		e := edgeMessage(st.Edge)
		m.Edge = &e
	}

	return m
}

func edgeMessage(e graphstore.Edge) EdgeMessage {
	return EdgeMessage{A: int(e.A), B: int(e.B), Weight: int64(e.Weight)}
}

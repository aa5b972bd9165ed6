// SPDX-License-Identifier: MIT

// Package pathrender turns a shortest-path Result into the ordered sequence
// of presentation steps a front end animates: one growing text label per
// node and one highlight per tree edge.
//
// Labels read ancestor-first ("3 --> 0 2 1 3"), hops are emitted in the same
// order, and each edge is highlighted at most once per Render call even when
// it lies on the path of several nodes.
package pathrender

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/pathboard/graphstore"
	"github.com/katalvlaran/pathboard/shortestpath"
)

// Kind distinguishes label updates from edge highlights.
type Kind int

const (
	// KindLabel carries the current text of a node's path line.
	KindLabel Kind = iota
	// KindHighlight marks one tree edge as part of a shortest path.
	KindHighlight
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindLabel:
		return "label"
	case KindHighlight:
		return "highlight"
	default:
		return "unknown"
	}
}

// Unreachable is the label suffix for nodes with no path.
const Unreachable = "unreachable"

// Step is one unit of presentation output.
type Step struct {
	Kind Kind

	// Node is the node whose line is being written. Set for both kinds.
	Node graphstore.NodeIndex

	// Text is the full label so far (KindLabel only).
	Text string

	// Final is true on the last label step of a node's line.
	Final bool

	// Edge is the highlighted pair with A < B (KindHighlight only).
	Edge graphstore.Edge
}

// Render converts res into presentation steps, visiting nodes in ascending
// index order:
//
//   - the source yields one final label "s --> s";
//   - an unreachable node yields one final label "v --> unreachable";
//   - any other node yields, per hop along source → … → v, a label step with
//     the hop appended, followed by a highlight step for that hop's edge if
//     the edge has not been highlighted earlier in this call.
//
// Edge weights in highlight steps are taken from res costs (child minus
// parent), so they match the weights the query actually used.
func Render(res *shortestpath.Result) []Step {
	if res == nil {
		return nil
	}
	src := res.Source
	head := func(v graphstore.NodeIndex) string {
		return strconv.Itoa(int(v)) + " --> "
	}

	steps := make([]Step, 0, 2*res.Len())
	seen := make(map[[2]graphstore.NodeIndex]struct{}, res.Len())
	chain := make([]graphstore.NodeIndex, 0, res.Len())

	var v graphstore.NodeIndex
	for v = 0; int(v) < res.Len(); v++ {
		switch {
		case v == src:
			steps = append(steps, Step{Kind: KindLabel, Node: v, Text: head(v) + strconv.Itoa(int(src)), Final: true})
			continue
		case res.Parent[v] == shortestpath.ParentNone:
			steps = append(steps, Step{Kind: KindLabel, Node: v, Text: head(v) + Unreachable, Final: true})
			continue
		}

		// collect v → … → child-of-source, then walk it backwards
		chain = chain[:0]
		for cur := v; cur != src; cur = res.Parent[cur] {
			chain = append(chain, cur)
		}

		var b strings.Builder
		b.WriteString(head(v))
		b.WriteString(strconv.Itoa(int(src)))
		for k := len(chain) - 1; k >= 0; k-- {
			hop := chain[k]
			b.WriteByte(' ')
			b.WriteString(strconv.Itoa(int(hop)))
			steps = append(steps, Step{Kind: KindLabel, Node: v, Text: b.String(), Final: k == 0})

			p := res.Parent[hop]
			lo, hi := graphstore.EdgeKey(p, hop)
			if _, dup := seen[[2]graphstore.NodeIndex{lo, hi}]; dup {
				continue
			}
			seen[[2]graphstore.NodeIndex{lo, hi}] = struct{}{}
			e := graphstore.Edge{A: lo, B: hi, Weight: res.Cost[hop] - res.Cost[p]}
			steps = append(steps, Step{Kind: KindHighlight, Node: v, Edge: e})
		}
	}

	return steps
}

// Lines returns the final label of every node in ascending order.
func Lines(steps []Step) []string {
	out := []string{}
	for _, s := range steps {
		if s.Kind == KindLabel && s.Final {
			out = append(out, s.Text)
		}
	}

	return out
}

// Highlights returns the highlighted edges in emission order.
func Highlights(steps []Step) []graphstore.Edge {
	out := []graphstore.Edge{}
	for _, s := range steps {
		if s.Kind == KindHighlight {
			out = append(out, s.Edge)
		}
	}

	return out
}

// SPDX-License-Identifier: MIT

// Package editor is the API surface a pathboard front end talks to.
//
// An Editor owns one drawing: the graphstore.Store, the authoring.Machine,
// and the node positions (presentation state the store never sees). All
// mutations are serialised through the Editor, so a front end may call it
// from several goroutines, e.g. one reading user events and one animating
// a path.
//
// Operations:
//
//   - CreateNode(p)             place a node; fails past MaxNodes or in edge mode.
//   - ToggleEdgeAuthoring(on)   enter/leave edge mode (needs ≥ 2 nodes).
//   - SelectNodeForEdge(i)      feed a node click to the authoring machine.
//   - EditWeight / EditWeightText  reweight an existing edge.
//   - FindShortestPath(s)       run Dijkstra and render the full step list.
//   - Play(ctx, p, sink)        deliver steps with a delay before each edge highlight.
//   - Reset()                   clear everything and cancel in-flight playback.
//
// Reweighting never re-runs a query; callers ask again.
package editor

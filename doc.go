// SPDX-License-Identifier: MIT

// Package pathboard is the core of an interactive shortest-path editor:
// users place nodes, connect them with edges weighted by on-screen
// distance, and watch Dijkstra's answer drawn hop by hop.
//
// Layout:
//
//	graphstore/   nodes and the symmetric weight matrix (single source of truth)
//	authoring/    two-click edge creation state machine
//	shortestpath/ O(n²) linear-scan Dijkstra with lowest-index tie-break
//	pathrender/   ancestor-first path labels and once-per-edge highlights
//	editor/       the front-end facade: node cap, edge mode, paced playback, reset
//	wsfeed/       WebSocket session speaking JSON commands and steps
//	chart/        go-echarts HTML snapshot of a drawing
//	cmd/pathboard HTTP host for the WebSocket feed
//
// Quick example:
//
//	edges: 0─1 (4), 0─2 (1), 2─1 (1), 1─3 (1)
//
// From 0 the cheapest route to 3 is 0 → 2 → 1 → 3 with cost 3.
package pathboard

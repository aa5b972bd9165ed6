// SPDX-License-Identifier: MIT

// Package chart renders a pathboard drawing as a standalone go-echarts HTML
// page: nodes at their placed positions, edges labelled with weights, and
// shortest-path edges highlighted.
package chart

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/pathboard/graphstore"
)

const (
	edgeColor      = "rgba(120, 120, 120, 0.6)"
	highlightColor = "rgba(64, 224, 208, 0.8)"
	sourceColor    = "rgba(128, 128, 128, 0.8)"
	nodeColor      = "rgba(255, 127, 80, 0.8)"
)

// Scene is everything the chart shows.
type Scene struct {
	Title      string
	Positions  []graphstore.Point
	Edges      []graphstore.Edge
	Highlights []graphstore.Edge

	// Source is marked differently when HasSource is set.
	Source    graphstore.NodeIndex
	HasSource bool
}

// Render writes the HTML page for s to w.
func Render(w io.Writer, s Scene) error {
	if w == nil {
		return fmt.Errorf("chart: nil writer")
	}

	return Graph(s).Render(w)
}

// Graph builds the echarts graph series for s.
func Graph(s Scene) *charts.Graph {
	title := s.Title
	if title == "" {
		title = "pathboard"
	}

	g := charts.NewGraph()
	g.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Height:    "100vh",
			Width:     "100vw",
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	g.AddSeries(
		"drawing",
		nodes(s),
		links(s),
		charts.WithGraphChartOpts(opts.GraphChart{
			Layout:    "none",
			Roam:      opts.Bool(true),
			Draggable: opts.Bool(false),
		}),
		charts.WithLabelOpts(opts.Label{
			Show:     opts.Bool(true),
			Position: "inside",
		}),
	)

	return g
}

func nodes(s Scene) []opts.GraphNode {
	out := make([]opts.GraphNode, 0, len(s.Positions))
	for i, p := range s.Positions {
		color := nodeColor
		if s.HasSource && graphstore.NodeIndex(i) == s.Source {
			color = sourceColor
		}
		out = append(out, opts.GraphNode{
			Name:      strconv.Itoa(i),
			X:         float32(p.X),
			Y:         float32(p.Y),
			ItemStyle: &opts.ItemStyle{Color: color},
		})
	}

	return out
}

func links(s Scene) []opts.GraphLink {
	hot := make(map[[2]graphstore.NodeIndex]bool, len(s.Highlights))
	for _, e := range s.Highlights {
		a, b := graphstore.EdgeKey(e.A, e.B)
		hot[[2]graphstore.NodeIndex{a, b}] = true
	}

	out := make([]opts.GraphLink, 0, len(s.Edges))
	for _, e := range s.Edges {
		a, b := graphstore.EdgeKey(e.A, e.B)
		style := &opts.LineStyle{Color: edgeColor, Width: 3}
		if hot[[2]graphstore.NodeIndex{a, b}] {
			style = &opts.LineStyle{Color: highlightColor, Width: 8}
		}
		out = append(out, opts.GraphLink{
			Source:    strconv.Itoa(int(a)),
			Target:    strconv.Itoa(int(b)),
			Value:     float32(e.Weight),
			LineStyle: style,
			Label:     &opts.EdgeLabel{Show: opts.Bool(true), Formatter: "{c}"},
		})
	}

	return out
}

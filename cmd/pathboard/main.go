// SPDX-License-Identifier: MIT

// Command pathboard hosts the graph editor core for a browser front end.
//
// Usage:
//
//	pathboard [-config pathboard.yaml]            serve /ws and /chart until interrupted
//	pathboard -render out.html [-source 0]         write a sample drawing and exit
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/katalvlaran/pathboard/chart"
	"github.com/katalvlaran/pathboard/editor"
	"github.com/katalvlaran/pathboard/graphstore"
	"github.com/katalvlaran/pathboard/internal/config"
	"github.com/katalvlaran/pathboard/internal/logging"
	"github.com/katalvlaran/pathboard/pathrender"
	"github.com/katalvlaran/pathboard/wsfeed"
)

func main() {
	cfgPath := flag.String("config", "", "path to a YAML config file")
	render := flag.String("render", "", "write a sample drawing as HTML to this file and exit")
	source := flag.Int("source", 0, "query source for -render")
	flag.Parse()

	cfg, used, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logging.New(cfg.Logging)
	if used != "" {
		log.Info("config loaded", "path", used)
	}

	newEditor := func() *editor.Editor {
		return editor.New(
			editor.WithMaxNodes(cfg.Editor.MaxNodes),
			editor.WithWeightDivisor(cfg.Editor.WeightDivisor),
			editor.WithStepDelay(cfg.Editor.StepDelay),
			editor.WithLogger(log),
		)
	}

	if *render != "" {
		if err = renderSample(*render, graphstore.NodeIndex(*source), newEditor()); err != nil {
			log.Error("render failed", "error", err)
			os.Exit(1)
		}
		log.Info("sample written", "path", *render)
		return
	}

	if err = serve(cfg.Server.Addr, newEditor, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func serve(addr string, newEditor func() *editor.Editor, log *slog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", wsfeed.NewHandler(newEditor, log))
	mux.HandleFunc("/chart", func(w http.ResponseWriter, r *http.Request) {
		source := 0
		if raw := r.URL.Query().Get("source"); raw != "" {
			v, err := strconv.Atoi(raw)
			if err != nil {
				http.Error(w, "bad source", http.StatusBadRequest)
				return
			}
			source = v
		}
		scene, _, err := sampleScene(newEditor(), graphstore.NodeIndex(source))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err = chart.Render(w, scene); err != nil {
			log.Error("chart render failed", "error", err)
		}
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdown); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// renderSample writes the sample drawing with the path from source
// highlighted.
func renderSample(path string, source graphstore.NodeIndex, ed *editor.Editor) error {
	scene, lines, err := sampleScene(ed, source)
	if err != nil {
		return err
	}
	for _, line := range lines {
		fmt.Println(line)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return chart.Render(f, scene)
}

// sampleScene builds a small drawing through the editor API and queries it.
func sampleScene(ed *editor.Editor, source graphstore.NodeIndex) (chart.Scene, []string, error) {
	for _, p := range []graphstore.Point{{X: 100, Y: 100}, {X: 400, Y: 120}, {X: 220, Y: 300}, {X: 520, Y: 320}, {X: 700, Y: 100}} {
		if _, err := ed.CreateNode(p); err != nil {
			return chart.Scene{}, nil, err
		}
	}
	if err := ed.ToggleEdgeAuthoring(true); err != nil {
		return chart.Scene{}, nil, err
	}
	for _, pair := range [][2]graphstore.NodeIndex{{0, 1}, {0, 2}, {2, 1}, {1, 3}, {2, 3}} {
		if _, err := ed.SelectNodeForEdge(pair[0]); err != nil {
			return chart.Scene{}, nil, err
		}
		if _, err := ed.SelectNodeForEdge(pair[1]); err != nil {
			return chart.Scene{}, nil, err
		}
	}

	steps, err := ed.FindShortestPath(source)
	if err != nil {
		return chart.Scene{}, nil, err
	}

	return chart.Scene{
		Title:      "pathboard sample",
		Positions:  ed.Positions(),
		Edges:      ed.Edges(),
		Highlights: pathrender.Highlights(steps.Steps),
		Source:     source,
		HasSource:  true,
	}, pathrender.Lines(steps.Steps), nil
}

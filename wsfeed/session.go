// SPDX-License-Identifier: MIT

// Package wsfeed exposes an editor.Editor over a WebSocket: the browser
// sends JSON commands (one per user event) and receives acknowledgements,
// errors and the paced stream of path-rendering steps.
//
// Each connection owns its own Editor. Path playback runs in a separate
// goroutine so that a "reset" arriving mid-animation cancels it.
package wsfeed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/katalvlaran/pathboard/authoring"
	"github.com/katalvlaran/pathboard/editor"
	"github.com/katalvlaran/pathboard/graphstore"
	"github.com/katalvlaran/pathboard/pathrender"
)

// conn serialises writes; gorilla allows one concurrent writer.
type conn struct {
	c       *websocket.Conn
	writeMu sync.Mutex
}

func (c *conn) send(m Message) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	return c.c.WriteJSON(m)
}

// Handler upgrades requests and runs one session per connection.
type Handler struct {
	newEditor func() *editor.Editor
	log       *slog.Logger
	upgrader  websocket.Upgrader
}

// NewHandler returns a Handler. newEditor is called once per connection.
func NewHandler(newEditor func() *editor.Editor, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &Handler{
		newEditor: newEditor,
		log:       log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer c.Close()

	s := &session{
		conn: &conn{c: c},
		ed:   h.newEditor(),
		log:  h.log.With("remote", r.RemoteAddr),
	}
	s.log.Info("session started")
	s.run(r.Context())
	s.log.Info("session ended")
}

type session struct {
	conn *conn
	ed   *editor.Editor
	log  *slog.Logger

	// Running playback; touched only by the read loop.
	cancel   context.CancelFunc
	finished chan struct{}
}

func (s *session) run(parent context.Context) {
	ctx, cancel := context.WithCancel(parent)
	defer func() {
		cancel()
		s.stopPlayback()
	}()

	for {
		var cmd Command
		if err := s.conn.c.ReadJSON(&cmd); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Debug("read failed", "error", err)
			}
			return
		}
		if err := s.dispatch(ctx, cmd); err != nil {
			s.log.Debug("write failed", "error", err)
			return
		}
	}
}

// dispatch handles one command; it returns only transport errors.
func (s *session) dispatch(ctx context.Context, cmd Command) error {
	switch cmd.Op {
	case OpCreateNode:
		idx, err := s.ed.CreateNode(graphstore.Point{X: cmd.X, Y: cmd.Y})
		if err != nil {
			return s.fail(cmd.Op, err)
		}
		n := int(idx)
		return s.conn.send(Message{Type: TypeAck, Op: cmd.Op, Node: &n})

	case OpToggleAuthoring:
		if err := s.ed.ToggleEdgeAuthoring(cmd.On); err != nil {
			return s.fail(cmd.Op, err)
		}
		return s.conn.send(Message{Type: TypeAck, Op: cmd.Op})

	case OpSelect:
		i, err := index("node", cmd.Node)
		if err != nil {
			return s.fail(cmd.Op, err)
		}
		tr, err := s.ed.SelectNodeForEdge(i)
		if err != nil {
			return s.fail(cmd.Op, err)
		}
		n := int(i)
		m := Message{Type: TypeAck, Op: cmd.Op, Node: &n, Outcome: tr.Outcome.String()}
		if tr.Outcome == authoring.OutcomeEdgeCreated {
			w := int64(tr.Weight)
			m.Weight = &w
		}
		return s.conn.send(m)

	case OpEditWeight:
		a, err := index("a", cmd.A)
		if err != nil {
			return s.fail(cmd.Op, err)
		}
		b, err := index("b", cmd.B)
		if err != nil {
			return s.fail(cmd.Op, err)
		}
		if err = s.ed.EditWeightText(a, b, cmd.Raw); err != nil {
			return s.fail(cmd.Op, err)
		}
		return s.conn.send(Message{Type: TypeAck, Op: cmd.Op})

	case OpFindPath:
		src, err := index("source", cmd.Source)
		if err != nil {
			return s.fail(cmd.Op, err)
		}
		// a new query replaces the one on screen
		s.stopPlayback()
		p, err := s.ed.FindShortestPath(src)
		if err != nil {
			return s.fail(cmd.Op, err)
		}
		if err = s.conn.send(Message{Type: TypeAck, Op: cmd.Op}); err != nil {
			return err
		}
		pctx, cancel := context.WithCancel(ctx)
		s.cancel, s.finished = cancel, make(chan struct{})
		go s.play(pctx, p, s.finished)
		return nil

	case OpReset:
		s.ed.Reset()
		// the playback sees the reset and reports it before the ack
		s.waitPlayback()
		return s.conn.send(Message{Type: TypeAck, Op: cmd.Op})

	case OpState:
		return s.conn.send(s.state())

	default:
		return s.fail(cmd.Op, fmt.Errorf("unknown op %q", cmd.Op))
	}
}

// stopPlayback cancels the running playback, if any, and waits for it to
// return. A cancelled playback sends nothing more.
func (s *session) stopPlayback() {
	if s.cancel != nil {
		s.cancel()
	}
	s.waitPlayback()
}

func (s *session) waitPlayback() {
	if s.finished == nil {
		return
	}
	<-s.finished
	s.cancel()
	s.cancel, s.finished = nil, nil
}

func (s *session) play(ctx context.Context, p *editor.Presentation, finished chan<- struct{}) {
	defer close(finished)

	err := s.ed.Play(ctx, p, editor.SinkFunc(func(_ context.Context, st pathrender.Step) error {
		return s.conn.send(Message{Type: TypeStep, Step: stepMessage(st)})
	}))
	switch {
	case err == nil:
		_ = s.conn.send(Message{Type: TypeDone, Op: OpFindPath})
	case errors.Is(err, editor.ErrPlaybackCancelled):
		_ = s.conn.send(Message{Type: TypeError, Op: OpFindPath, Error: err.Error()})
	default:
		s.log.Debug("playback stopped", "error", err)
	}
}

func (s *session) state() Message {
	m := Message{Type: TypeState}
	for i, p := range s.ed.Positions() {
		m.Nodes = append(m.Nodes, NodeMessage{Index: i, X: p.X, Y: p.Y})
	}
	for _, e := range s.ed.Edges() {
		m.Edges = append(m.Edges, edgeMessage(e))
	}

	return m
}

func (s *session) fail(op string, err error) error {
	return s.conn.send(Message{Type: TypeError, Op: op, Error: err.Error()})
}

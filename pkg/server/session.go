package server

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/loom-ui/loom/pkg/dom"
	"github.com/loom-ui/loom/pkg/protocol"
	"github.com/loom-ui/loom/pkg/reactive"
	"github.com/loom-ui/loom/pkg/render"
	"github.com/loom-ui/loom/pkg/vdom"
)

var tracer = otel.Tracer("loom/server")

// Session is one connected client: a live document, a reactivity
// context and the render effect that keeps them in sync with state.
//
// All mutation of the document happens on the session loop goroutine.
// The read loop only decodes frames and forwards them over channels.
type Session struct {
	id      uint64
	conn    *websocket.Conn
	app     App
	cfg     Config
	logger  *slog.Logger
	metrics *Metrics

	doc     *dom.Document
	rctx    *reactive.Context
	prev    *vdom.VNode
	pending []dom.Mutation

	events chan protocol.Event
	pings  chan struct{}
	done   chan struct{}

	closeOnce sync.Once
}

func newSession(id uint64, conn *websocket.Conn, app App, cfg Config, logger *slog.Logger, metrics *Metrics) *Session {
	return &Session{
		id:      id,
		conn:    conn,
		app:     app,
		cfg:     cfg,
		logger:  logger.With("session", id),
		metrics: metrics,
		events:  make(chan protocol.Event, cfg.EventQueueSize),
		pings:   make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
}

// Run mounts the application and processes events until the connection
// closes. It blocks for the lifetime of the session.
func (s *Session) Run() {
	defer s.Close()

	s.doc = dom.NewDocument()
	s.doc.Observe(func(m dom.Mutation) {
		s.pending = append(s.pending, m)
	})
	s.rctx = reactive.NewContext()

	renderFn := s.app(s.rctx, s.doc)

	// The render effect: the first run mounts, later runs patch. State
	// the render function reads during a run is tracked, so a listener
	// writing that state re-enters here synchronously. The effect only
	// ever runs on this goroutine, so it is also disposed here.
	_, span := tracer.Start(context.Background(), "session.render")
	effect := s.rctx.Effect(func() {
		next := renderFn()
		if s.prev == nil {
			s.doc.Body().AppendChild(render.Render(s.doc, next))
		} else if err := render.Patch(s.doc.Body(), next, s.prev, 0); err != nil {
			s.logger.Error("patch failed", "error", err)
		}
		s.prev = next
	})
	span.End()
	defer effect.Dispose()

	if err := s.flush(); err != nil {
		s.logger.Error("initial flush failed", "error", err)
		return
	}

	go s.readLoop()

	ping := time.NewTicker(s.cfg.PingInterval)
	defer ping.Stop()

	for {
		select {
		case ev := <-s.events:
			s.handleEvent(ev)

		case <-s.pings:
			s.writeFrame(protocol.NewFrame(protocol.FramePong, nil).Encode())

		case <-ping.C:
			if err := s.writeFrame(protocol.NewFrame(protocol.FramePing, nil).Encode()); err != nil {
				return
			}

		case <-s.done:
			return
		}
	}
}

// Close stops the session loop and closes the connection. Safe to call
// from any goroutine, more than once; the render effect is disposed by
// the session loop itself as it unwinds.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.conn.Close()
		s.logger.Info("session closed")
	})
}

// readLoop receives frames from the client, decodes them and forwards
// work to the session loop. Runs on its own goroutine; it never touches
// the document.
func (s *Session) readLoop() {
	defer s.Close()

	for {
		s.conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))

		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "error", err)
			}
			return
		}

		frame, err := protocol.DecodeFrame(msg)
		if err != nil {
			s.logger.Error("frame decode error", "error", err)
			continue
		}

		switch frame.Type {
		case protocol.FrameEvent:
			ev, err := protocol.DecodeEvent(frame.Payload)
			if err != nil {
				s.logger.Error("event decode error", "error", err)
				continue
			}
			s.metrics.EventsReceived.Inc()
			select {
			case s.events <- ev:
			default:
				s.metrics.EventsDropped.Inc()
				s.logger.Warn("event queue full, dropping event",
					"node", ev.Node, "type", ev.Type)
			}

		case protocol.FramePing:
			select {
			case s.pings <- struct{}{}:
			default:
			}

		case protocol.FramePong:
			// Heartbeat ack; the read deadline reset above is enough.

		default:
			s.logger.Warn("unexpected frame type", "type", frame.Type)
		}
	}
}

// handleEvent dispatches one client event into the live tree and
// flushes the mutations the listeners caused.
func (s *Session) handleEvent(ev protocol.Event) {
	start := time.Now()
	_, span := tracer.Start(context.Background(), "session.event",
		trace.WithAttributes(
			attribute.String("event.type", ev.Type),
			attribute.Int64("node.id", int64(ev.Node)),
		))
	defer span.End()
	defer func() {
		s.metrics.EventDuration.Observe(time.Since(start).Seconds())
	}()

	node := s.doc.NodeByID(ev.Node)
	if node == nil {
		s.logger.Warn("event for unknown node", "node", ev.Node, "type", ev.Type)
		return
	}
	el, ok := node.(*dom.Element)
	if !ok {
		s.logger.Warn("event target is not an element", "node", ev.Node)
		return
	}

	// Listener execution may write reactive state, which re-runs the
	// render effect and patches the document before DispatchEvent
	// returns.
	el.DispatchEvent(&dom.Event{Type: ev.Type, Value: ev.Value})

	if err := s.flush(); err != nil {
		s.logger.Error("flush failed", "error", err)
		s.Close()
	}
}

// flush encodes and sends all pending mutations.
func (s *Session) flush() error {
	if len(s.pending) == 0 {
		return nil
	}
	muts := s.pending
	s.pending = nil

	frames, err := protocol.FrameOpsBatches(muts)
	if err != nil {
		return err
	}
	for _, frame := range frames {
		if err := s.writeFrame(frame); err != nil {
			return err
		}
	}
	s.metrics.OpsSent.Add(float64(len(muts)))
	return nil
}

// writeFrame writes one encoded frame with the configured deadline.
// Only ever called from the session loop goroutine.
func (s *Session) writeFrame(data []byte) error {
	s.conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
	if err := s.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
		s.logger.Error("write error", "error", err)
		return err
	}
	s.metrics.FramesSent.Inc()
	return nil
}
